/**
Framing layer for the UT61E+ HID protocol

The meter speaks a single request/response exchange:
1. Host sends the fixed poll command, prefixed with a one-byte length
2. Meter answers with a length-delimited frame inside one HID report
3. The frame carries a payload followed by two checksum bytes
*/

package ut61e

// GET_MEASUREMENT is the only command the meter answers: header, length,
// opcode, sub-opcode, checksum. It never changes and is never mutated.
var GET_MEASUREMENT = []byte{0xAB, 0xCD, 0x03, 0x5E, 0x01, 0xD9}

const (
	HEADER_BYTE_0 = 0xAB
	HEADER_BYTE_1 = 0xCD

	CHECKSUM_SIZE = 2
	REPORT_SIZE   = 64
)

// EncodeCommand prepends the one-byte length prefix the HID bridge
// expects in front of the opcode sequence.
func EncodeCommand(cmd []byte) []byte {
	out := make([]byte, 0, len(cmd)+1)
	out = append(out, byte(len(cmd)))
	return append(out, cmd...)
}

// DecodeFrame unwraps one HID input report into the bare payload. The
// first byte is the bridge's own report-length count, not part of the
// protocol, and is dropped before the frame is inspected. A report that
// is empty, malformed or truncated yields ok=false: the frame is
// discarded and the caller simply reads again, nothing is buffered for
// continuation.
func DecodeFrame(report []byte) ([]byte, bool) {
	if len(report) == 0 {
		return nil, false
	}
	return UnwrapFrame(report[1:])
}

// UnwrapFrame validates the AB CD header and the declared length, then
// returns the payload with the trailing checksum bytes removed. The
// checksum bytes are consumed but never verified, matching the meter's
// stock software.
func UnwrapFrame(frame []byte) ([]byte, bool) {
	if len(frame) <= 3 || frame[0] != HEADER_BYTE_0 || frame[1] != HEADER_BYTE_1 {
		return nil, false
	}

	payloadLen := int(frame[2])
	if payloadLen < CHECKSUM_SIZE || len(frame) < 3+payloadLen {
		return nil, false
	}

	return frame[3 : 3+payloadLen-CHECKSUM_SIZE], true
}
