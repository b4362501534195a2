/**
Wrapper around the regular serial package to simplify the interface

This wrapper should:
1. Be able to list all the open ports and connect to one
2. Hunt for the AB CD frame header in the byte stream and resync on garbage
3. Send the bare poll command through the serial port

The UART cable carries the same framing as the HID bridge, minus the
per-report length byte, so frames are reassembled from the stream here.
*/

package serialport

import (
	"io"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

const BAUD_RATE = 9600
const READ_TIMEOUT = 500 * time.Millisecond

type SerialPort struct {
	serial.Port

	logger *zap.Logger
}

func Open(portName string, logger *zap.Logger) (*SerialPort, error) {
	mode := &serial.Mode{
		BaudRate: BAUD_RATE,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		logger.Error("error opening serial port", zap.Error(err), zap.String("portName", portName))
		return nil, err
	}

	if err := port.SetReadTimeout(READ_TIMEOUT); err != nil {
		port.Close()
		return nil, err
	}

	logger.Info("opened meter", zap.String("portName", portName))
	return &SerialPort{Port: port, logger: logger}, nil
}

func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

// WriteCommand sends the opcode sequence bare; the cable has no report
// length byte.
func (s *SerialPort) WriteCommand(cmd []byte) error {
	n, err := s.Write(cmd)
	if err != nil {
		s.logger.Error("error while writing command", zap.Error(err))
		return err
	}

	s.logger.Debug("wrote command", zap.Int("bytesWritten", n))
	return nil
}

// ReadPayload reassembles one frame from the stream. Reads are bounded
// by the port timeout; an exhausted timeout yields ok=false with no
// error so the caller can retry on its next poll tick.
func (s *SerialPort) ReadPayload() ([]byte, bool, error) {
	return scanFrame(s.Port)
}

// scanFrame hunts for the two header bytes one byte at a time, the
// simplest way to resync after line noise, then collects the declared
// length and hands the assembled frame to the shared unwrapper.
func scanFrame(r io.Reader) ([]byte, bool, error) {
	twoBytes := [2]byte{}
	oneByte := [1]byte{}

	for twoBytes != [2]byte{ut61e.HEADER_BYTE_0, ut61e.HEADER_BYTE_1} {
		n, err := r.Read(oneByte[:])
		if err != nil {
			return nil, false, err
		}
		if n == 0 {
			// read timeout, nothing this poll
			return nil, false, nil
		}

		twoBytes[0] = twoBytes[1]
		twoBytes[1] = oneByte[0]
	}

	n, err := r.Read(oneByte[:])
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	frameLen := int(oneByte[0])
	if frameLen > ut61e.REPORT_SIZE {
		// implausible length, treat as noise and resync next call
		return nil, false, nil
	}

	frame := make([]byte, 3+frameLen)
	frame[0], frame[1], frame[2] = ut61e.HEADER_BYTE_0, ut61e.HEADER_BYTE_1, oneByte[0]

	for filled := 3; filled < len(frame); {
		n, err := r.Read(frame[filled:])
		if err != nil {
			return nil, false, err
		}
		if n == 0 {
			// frame truncated mid-stream, discard it
			return nil, false, nil
		}
		filled += n
	}

	payload, ok := ut61e.UnwrapFrame(frame)
	return payload, ok, nil
}
