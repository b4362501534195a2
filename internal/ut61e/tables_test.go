package ut61e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeLabelKnownCodes(t *testing.T) {
	expected := map[byte]string{
		0:  "V_AC",
		1:  "mV_AC",
		2:  "V_DC",
		3:  "mV_DC",
		4:  "Hz",
		5:  "%",
		6:  "Resistance Ω",
		7:  "Continuity",
		8:  "Diode",
		9:  "Capacitance",
		12: "μA_DC",
		13: "μA_AC",
		14: "mA_DC",
		15: "mA_AC",
		16: "A_DC",
		17: "A_AC",
		18: "Transistor gain β hFE",
		20: "NCV",
		24: "V_AC_LPF",
		25: "V_AC_DC",
	}

	for code, label := range expected {
		assert.Equal(t, label, ModeLabel(code), "mode %d", code)
	}
}

func TestModeLabelUnknownCodes(t *testing.T) {
	for _, code := range []byte{10, 11, 19, 21, 22, 23, 26, 0xFF} {
		assert.Equal(t, UNKNOWN, ModeLabel(code), "mode %d", code)
	}
}

func TestUnitLabelAllCells(t *testing.T) {
	// every (mode, range) cell the meter documents, checked one by one
	cases := []struct {
		mode byte
		lo   byte
		hi   byte
		unit string
	}{
		{0, 0x30, 0x33, "V"},
		{1, 0x30, 0x30, "mV"},
		{2, 0x30, 0x33, "V"},
		{3, 0x30, 0x30, "mV"},
		{4, 0x30, 0x31, "Hz"},
		{4, 0x32, 0x34, "kHz"},
		{4, 0x35, 0x37, "MHz"},
		{5, 0x30, 0x30, "%"},
		{6, 0x30, 0x30, "Ω"},
		{6, 0x31, 0x33, "kΩ"},
		{6, 0x34, 0x36, "MΩ"},
		{7, 0x30, 0x36, "Ω"},
		{8, 0x30, 0x30, "V"},
		{9, 0x30, 0x31, "nF"},
		{9, 0x32, 0x34, "μF"},
		{9, 0x35, 0x36, "mF"},
		{12, 0x30, 0x31, "μA"},
		{13, 0x30, 0x31, "μA"},
		{14, 0x30, 0x31, "mA"},
		{15, 0x30, 0x31, "mA"},
		{16, 0x31, 0x31, "A"},
		{17, 0x31, 0x31, "A"},
		{18, 0x30, 0x30, "β"},
		{20, 0x30, 0x30, "NCV"},
		{24, 0x30, 0x33, "V"},
		{25, 0x30, 0x33, "V"},
	}

	for _, c := range cases {
		for code := c.lo; code <= c.hi; code++ {
			assert.Equal(t, c.unit, UnitLabel(c.mode, code), "mode %d range %#x", c.mode, code)
		}
	}
}

func TestUnitLabelOutsideAcceptedRanges(t *testing.T) {
	cases := []struct {
		mode      byte
		rangeCode byte
	}{
		{0, 0x34},  // V_AC stops at 0x33
		{1, 0x31},  // mV_AC accepts only 0x30
		{6, 0x37},  // resistance stops at 0x36
		{6, 0x2F},  // below every band
		{9, 0x37},  // capacitance stops at 0x36
		{16, 0x30}, // A_DC accepts only 0x31
		{20, 0x31}, // NCV accepts only 0x30
	}

	for _, c := range cases {
		assert.Equal(t, UNKNOWN, UnitLabel(c.mode, c.rangeCode), "mode %d range %#x", c.mode, c.rangeCode)
	}
}

func TestUnitLabelUnknownMode(t *testing.T) {
	assert.Equal(t, UNKNOWN, UnitLabel(10, 0x30))
	assert.Equal(t, UNKNOWN, UnitLabel(0xFF, 0x31))
}
