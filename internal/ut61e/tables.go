package ut61e

// UNKNOWN is rendered whenever a mode, range or status byte falls
// outside the documented tables. Unknown codes are not errors.
const UNKNOWN = "?"

// modeLabels maps the meter's function byte to its display label. The
// codes are sparse; everything absent decodes to UNKNOWN.
var modeLabels = map[byte]string{
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

// rangeBand is one contiguous run of range codes sharing a unit.
type rangeBand struct {
	lo, hi byte
	unit   string
}

// unitBands maps each mode to the range codes it accepts and the unit
// each run of codes selects. There is no rule unifying the modes; the
// table is meter firmware behavior, recorded cell by cell.
var unitBands = map[byte][]rangeBand{
	0:  {{0x30, 0x33, "V"}},
	1:  {{0x30, 0x30, "mV"}},
	2:  {{0x30, 0x33, "V"}},
	3:  {{0x30, 0x30, "mV"}},
	4:  {{0x30, 0x31, "Hz"}, {0x32, 0x34, "kHz"}, {0x35, 0x37, "MHz"}},
	5:  {{0x30, 0x30, "%"}},
	6:  {{0x30, 0x30, "Ω"}, {0x31, 0x33, "kΩ"}, {0x34, 0x36, "MΩ"}},
	7:  {{0x30, 0x36, "Ω"}},
	8:  {{0x30, 0x30, "V"}},
	9:  {{0x30, 0x31, "nF"}, {0x32, 0x34, "μF"}, {0x35, 0x36, "mF"}},
	12: {{0x30, 0x31, "μA"}},
	13: {{0x30, 0x31, "μA"}},
	14: {{0x30, 0x31, "mA"}},
	15: {{0x30, 0x31, "mA"}},
	16: {{0x31, 0x31, "A"}},
	17: {{0x31, 0x31, "A"}},
	18: {{0x30, 0x30, "β"}},
	20: {{0x30, 0x30, "NCV"}},
	24: {{0x30, 0x33, "V"}},
	25: {{0x30, 0x33, "V"}},
}

// ModeLabel returns the label for a function byte, or UNKNOWN.
func ModeLabel(mode byte) string {
	if label, ok := modeLabels[mode]; ok {
		return label
	}
	return UNKNOWN
}

// UnitLabel returns the unit selected by a (mode, range) pair, or
// UNKNOWN when the range code falls outside the mode's accepted set or
// the mode itself is unrecognized.
func UnitLabel(mode, rangeCode byte) string {
	for _, band := range unitBands[mode] {
		if rangeCode >= band.lo && rangeCode <= band.hi {
			return band.unit
		}
	}
	return UNKNOWN
}
