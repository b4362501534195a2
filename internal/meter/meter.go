package meter

import (
	"errors"

	"go.uber.org/zap"

	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

// one poll round-trip tolerates a few malformed or empty reports
// before giving up on the cycle
const MAX_READ_ATTEMPTS = 8

// ReportTransport is the device link the meter polls over. Both the
// HID bridge and the serial cable satisfy it.
type ReportTransport interface {
	WriteCommand(cmd []byte) error
	ReadPayload() ([]byte, bool, error)
	Close() error
}

// ErrNoFrame means no well-formed frame arrived within the attempt
// budget. Not fatal: the caller skips this cycle and polls again.
var ErrNoFrame = errors.New("meter: no well-formed frame within attempt budget")

type Meter struct {
	transport ReportTransport
	logger    *zap.Logger
}

func New(transport ReportTransport, logger *zap.Logger) *Meter {
	return &Meter{
		transport: transport,
		logger:    logger,
	}
}

func (m *Meter) Close() error {
	return m.transport.Close()
}

// GetMeasurement runs one write-command/read-frame/decode cycle.
// Malformed frames are discarded and re-read up to the attempt budget;
// a nil result means "nothing this cycle", never a dead device.
func (m *Meter) GetMeasurement() (*ut61e.Measurement, error) {
	if err := m.transport.WriteCommand(ut61e.GET_MEASUREMENT); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < MAX_READ_ATTEMPTS; attempt++ {
		payload, ok, err := m.transport.ReadPayload()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		return ut61e.Decode(payload)
	}

	m.logger.Warn("poll cycle exhausted read attempts", zap.Int("attempts", MAX_READ_ATTEMPTS))
	return nil, ErrNoFrame
}
