/**
Wrapper around the go-hid package to simplify the interface

This wrapper should:
1. Open the first meter found on the static vendor/product allowlist
2. Send the length-prefixed poll command as an output report
3. Read input reports with a bounded timeout and unwrap them
*/

package hidport

import (
	"errors"
	"time"

	"github.com/sstallion/go-hid"
	"go.uber.org/zap"

	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

const READ_TIMEOUT = 500 * time.Millisecond

// deviceID is one (vendor, product) pair the meter enumerates as.
type deviceID struct {
	vid, pid uint16
	name     string
}

// DEVICE_IDS is the static allowlist, tried in order. The first id
// that opens wins; there is no further discovery.
var DEVICE_IDS = []deviceID{
	{0x1A86, 0xE429, "QinHeng"},
	{0x10C4, 0xEA80, "Silicon Labs CP2110"},
}

var ErrNoDevice = errors.New("hidport: no UT61E+ on any known vendor/product id")

type HIDPort struct {
	*hid.Device

	logger *zap.Logger
}

// Open initializes the HID backend and tries each known id in order.
func Open(logger *zap.Logger) (*HIDPort, error) {
	if err := hid.Init(); err != nil {
		return nil, err
	}

	for _, id := range DEVICE_IDS {
		dev, err := hid.OpenFirst(id.vid, id.pid)
		if err != nil {
			logger.Debug("no meter on id",
				zap.String("bridge", id.name),
				zap.Uint16("vid", id.vid),
				zap.Uint16("pid", id.pid),
				zap.Error(err))
			continue
		}

		logger.Info("opened meter",
			zap.String("bridge", id.name),
			zap.Uint16("vid", id.vid),
			zap.Uint16("pid", id.pid))
		return &HIDPort{Device: dev, logger: logger}, nil
	}

	hid.Exit()
	return nil, ErrNoDevice
}

func (p *HIDPort) Close() error {
	err := p.Device.Close()
	hid.Exit()
	return err
}

// WriteCommand sends one opcode sequence, prefixed with its length the
// way the HID bridge expects.
func (p *HIDPort) WriteCommand(cmd []byte) error {
	report := ut61e.EncodeCommand(cmd)

	n, err := p.Write(report)
	if err != nil {
		p.logger.Error("error while writing command report", zap.Error(err))
		return err
	}

	p.logger.Debug("wrote command report", zap.Int("bytesWritten", n))
	return nil
}

// ReadPayload performs one bounded report read. A timeout or a frame
// that fails validation yields ok=false with no error: nothing this
// attempt, the caller decides whether to read again.
func (p *HIDPort) ReadPayload() ([]byte, bool, error) {
	buf := make([]byte, ut61e.REPORT_SIZE)

	n, err := p.ReadWithTimeout(buf, READ_TIMEOUT)
	if err != nil {
		p.logger.Error("error while reading report", zap.Error(err))
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	payload, ok := ut61e.DecodeFrame(buf[:n])
	return payload, ok, nil
}
