package ut61e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payloadWith builds a resistance-mode payload carrying the given
// display text. The flag byte sits third from the end and the
// auto/manual byte second from the end, so one more byte follows them.
func payloadWith(display string, flagByte, autoManualByte byte) []byte {
	p := []byte{6, 0x31}
	text := []byte("       ")
	copy(text, display)
	p = append(p, text...)
	return append(p, flagByte, autoManualByte, 0x00)
}

func TestDecodeResistanceExample(t *testing.T) {
	payload := []byte{0x06, 0x31, '1', '2', '.', '3', '4', 0x00, 0x30, 0x30}

	m, err := Decode(payload)

	require.NoError(t, err)
	assert.InDelta(t, 12.34, m.Value, 1e-9)
	assert.Equal(t, "kΩ", m.Unit)
	assert.Equal(t, "Resistance Ω", m.Mode)
	assert.Equal(t, "AUTO", m.AutoManual)
	assert.Equal(t, "", m.Rel)
	assert.Equal(t, "", m.Hold)
	assert.Equal(t, "", m.MinMax)
}

func TestDecodeFlagBits(t *testing.T) {
	cases := []struct {
		flagByte byte
		rel      string
		hold     string
		minmax   string
	}{
		{0x00, "", "", ""},
		{0x01, "REL", "", ""},
		{0x02, "", "HOLD", ""},
		{0x03, "REL", "HOLD", ""},
		{52, "", "", "MIN"},
		{56, "", "", "MAX"},
	}

	for _, c := range cases {
		m, err := Decode(payloadWith("1.0", c.flagByte, RANGE_AUTO))

		require.NoError(t, err, "flag byte %#x", c.flagByte)
		assert.Equal(t, c.rel, m.Rel, "flag byte %#x", c.flagByte)
		assert.Equal(t, c.hold, m.Hold, "flag byte %#x", c.flagByte)
		assert.Equal(t, c.minmax, m.MinMax, "flag byte %#x", c.flagByte)
	}
}

// 52 means MIN in the flag position and MANUAL in the range position.
// The two bytes must be read independently of each other.
func TestDecodeMinAndManualShareCode52(t *testing.T) {
	m, err := Decode(payloadWith("1.0", 52, 52))

	require.NoError(t, err)
	assert.Equal(t, "MIN", m.MinMax)
	assert.Equal(t, "MANUAL", m.AutoManual)
}

func TestDecodeAutoManual(t *testing.T) {
	cases := []struct {
		b     byte
		label string
	}{
		{48, "AUTO"},
		{52, "MANUAL"},
		{0x00, UNKNOWN},
		{49, UNKNOWN},
	}

	for _, c := range cases {
		m, err := Decode(payloadWith("1.0", 0x00, c.b))

		require.NoError(t, err, "byte %d", c.b)
		assert.Equal(t, c.label, m.AutoManual, "byte %d", c.b)
	}
}

func TestDecodeNegativeAndPaddedDisplay(t *testing.T) {
	m, err := Decode(payloadWith(" -0.512", 0x00, RANGE_AUTO))

	require.NoError(t, err)
	assert.InDelta(t, -0.512, m.Value, 1e-9)
}

func TestDecodeBlankDisplayFails(t *testing.T) {
	m, err := Decode(payloadWith("       ", 0x00, RANGE_AUTO))

	assert.ErrorIs(t, err, ErrNoReading)
	assert.Nil(t, m)
}

func TestDecodeOverloadTextFails(t *testing.T) {
	m, err := Decode(payloadWith("  OL.  ", 0x00, RANGE_AUTO))

	assert.ErrorIs(t, err, ErrNoReading)
	assert.Nil(t, m)
}

func TestDecodeShortPayloadFails(t *testing.T) {
	m, err := Decode([]byte{0x06, 0x31, '1'})

	assert.ErrorIs(t, err, ErrNoReading)
	assert.Nil(t, m)
}

func TestDecodeUnknownModeStillSucceeds(t *testing.T) {
	payload := payloadWith("3.3", 0x00, RANGE_AUTO)
	payload[MODE_IDX] = 11

	m, err := Decode(payload)

	require.NoError(t, err)
	assert.Equal(t, UNKNOWN, m.Mode)
	assert.Equal(t, UNKNOWN, m.Unit)
	assert.InDelta(t, 3.3, m.Value, 1e-9)
}

func TestMeasurementCSVRecord(t *testing.T) {
	m := &Measurement{
		Value:      12.34,
		Unit:       "kΩ",
		Mode:       "Resistance Ω",
		AutoManual: "AUTO",
		Hold:       "HOLD",
	}

	assert.Equal(t, "12.34,kΩ,Resistance Ω,AUTO,,HOLD,", m.CSVRecord())
}

func TestMeasurementString(t *testing.T) {
	m := &Measurement{
		Value:      5,
		Unit:       "V",
		Mode:       "V_DC",
		AutoManual: "MANUAL",
		Rel:        "REL",
		MinMax:     "MAX",
	}

	assert.Equal(t, "5 V [V_DC] MANUAL REL MAX", m.String())
}
