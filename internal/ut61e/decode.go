package ut61e

import (
	"errors"
	"strconv"
)

// Payload positions. The display digits sit at a fixed offset from the
// front; the status bytes sit at fixed offsets from the back, so they
// stay put when the payload length varies.
const (
	MODE_IDX      = 0
	RANGE_IDX     = 1
	DISPLAY_START = 2
	DISPLAY_END   = 9
)

// Flag byte semantics. REL and HOLD are bit flags; MIN and MAX are
// whole-byte codes carried in the same position. The meter can emit a
// bit flag and a min/max code at once, so they decode independently.
const (
	FLAG_REL  = 0x01
	FLAG_HOLD = 0x02
	FLAG_MIN  = 52
	FLAG_MAX  = 56

	RANGE_AUTO   = 48
	RANGE_MANUAL = 52
)

// ErrNoReading is the only hard decode failure: the display text did
// not parse as a number (blank segments mid-autorange, overload text).
// The caller shows "no data" this cycle and polls again.
var ErrNoReading = errors.New("ut61e: display text is not a numeric reading")

// Decode maps one payload to a Measurement. Every lookup is total:
// unrecognized mode, range or status codes render as UNKNOWN or as an
// empty flag and never fail the decode.
func Decode(payload []byte) (*Measurement, error) {
	value, err := strconv.ParseFloat(displayText(payload), 64)
	if err != nil {
		return nil, ErrNoReading
	}

	var mode, rangeCode byte
	if len(payload) > MODE_IDX {
		mode = payload[MODE_IDX]
	}
	if len(payload) > RANGE_IDX {
		rangeCode = payload[RANGE_IDX]
	}

	var autoManualByte, flagByte byte
	if len(payload) >= 2 {
		autoManualByte = payload[len(payload)-2]
	}
	if len(payload) >= 3 {
		flagByte = payload[len(payload)-3]
	}

	return &Measurement{
		Value:      value,
		Unit:       UnitLabel(mode, rangeCode),
		Mode:       ModeLabel(mode),
		AutoManual: autoManualLabel(autoManualByte),
		Rel:        bitFlagLabel(flagByte, FLAG_REL, "REL"),
		Hold:       bitFlagLabel(flagByte, FLAG_HOLD, "HOLD"),
		MinMax:     minMaxLabel(flagByte),
	}, nil
}

// displayText extracts the seven ASCII display characters. Blank
// segments arrive as spaces and idle digit cells as NULs; both are
// stripped before the numeric parse. A payload too short to hold the
// display yields UNKNOWN, which fails the parse upstream.
func displayText(payload []byte) string {
	if len(payload) < DISPLAY_END {
		return UNKNOWN
	}

	text := make([]byte, 0, DISPLAY_END-DISPLAY_START)
	for _, c := range payload[DISPLAY_START:DISPLAY_END] {
		if c == ' ' || c == 0 {
			continue
		}
		text = append(text, c)
	}
	return string(text)
}

func autoManualLabel(b byte) string {
	switch b {
	case RANGE_AUTO:
		return "AUTO"
	case RANGE_MANUAL:
		return "MANUAL"
	default:
		return UNKNOWN
	}
}

func bitFlagLabel(b, mask byte, label string) string {
	if b&mask != 0 {
		return label
	}
	return ""
}

func minMaxLabel(b byte) string {
	switch b {
	case FLAG_MAX:
		return "MAX"
	case FLAG_MIN:
		return "MIN"
	default:
		return ""
	}
}
