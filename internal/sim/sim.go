// Package sim produces plausible measurements without hardware, for
// exercising the UI and the CSV logger on machines with no meter
// attached.
package sim

import (
	"math"
	"math/rand"

	"github.com/kevontheweb/ut61e-plus-logger/internal/ut61e"
)

// one simulated function per entry; the source cycles through them
var simModes = []struct {
	mode string
	unit string
}{
	{"V_AC", "V"},
	{"V_DC", "V"},
	{"Resistance Ω", "Ω"},
	{"Hz", "Hz"},
	{"%", "%"},
	{"A_DC", "A"},
}

// ticks per simulated mode before switching to the next
const MODE_PERIOD = 100

type Source struct {
	t       float64
	modeIdx int
}

func NewSource() *Source {
	return &Source{}
}

// GetMeasurement returns a slow sine wave with noise on top, cycling
// the displayed mode and toggling the status flags periodically so
// every field of the UI gets exercised.
func (s *Source) GetMeasurement() (*ut61e.Measurement, error) {
	s.t++
	tick := uint64(s.t)

	if tick%MODE_PERIOD == 0 {
		s.modeIdx = (s.modeIdx + 1) % len(simModes)
	}

	m := &ut61e.Measurement{
		Value: math.Sin(s.t*0.2)*10.0 + rand.Float64() - 0.5,
		Unit:  simModes[s.modeIdx].unit,
		Mode:  simModes[s.modeIdx].mode,
	}

	if tick%60 < 30 {
		m.AutoManual = "AUTO"
	} else {
		m.AutoManual = "MANUAL"
	}
	if tick%50 < 10 {
		m.Rel = "REL"
	}
	if tick%80 < 10 {
		m.Hold = "HOLD"
	}
	switch {
	case tick%120 < 10:
		m.MinMax = "MAX"
	case tick%120 > 110:
		m.MinMax = "MIN"
	}

	return m, nil
}
