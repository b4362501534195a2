package ut61e

import (
	"fmt"
	"strings"
)

// Measurement is one fully decoded reading. The flag fields hold either
// their label or the empty string; consumers concatenate them directly
// into display or log lines without re-checking booleans.
type Measurement struct {
	Value      float64
	Unit       string
	Mode       string
	AutoManual string
	Rel        string
	Hold       string
	MinMax     string
}

// CSVRecord renders the reading as one headerless log line:
// value,unit,mode,range,rel,hold,minmax
func (m *Measurement) CSVRecord() string {
	return fmt.Sprintf("%g,%s,%s,%s,%s,%s,%s",
		m.Value, m.Unit, m.Mode, m.AutoManual, m.Rel, m.Hold, m.MinMax)
}

func (m *Measurement) String() string {
	parts := []string{fmt.Sprintf("%g %s [%s] %s", m.Value, m.Unit, m.Mode, m.AutoManual)}
	for _, flag := range []string{m.Rel, m.Hold, m.MinMax} {
		if flag != "" {
			parts = append(parts, flag)
		}
	}
	return strings.Join(parts, " ")
}
