package protocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloRoundTrip(t *testing.T) {
	for _, seq := range []int32{0, 1, -1, 100, 101, math.MaxInt32, math.MinInt32} {
		parsed, err := ParseHello(FormatHello(seq))
		require.NoError(t, err)
		assert.Equal(t, seq, parsed)
	}
}

func TestFormatHello(t *testing.T) {
	assert.Equal(t, "HELLO 100", FormatHello(100))
	assert.Equal(t, "HELLO -5", FormatHello(-5))
}

func TestParseHelloMalformed(t *testing.T) {
	cases := []string{
		"HI 5",
		"HELLO",
		"HELLO 1 2",
		"hello 5",
		"HELLO5",
		"",
		"   ",
	}

	for _, text := range cases {
		_, err := ParseHello(text)
		require.Error(t, err, "input %q", text)

		var formatErr *MessageFormatError
		assert.ErrorAs(t, err, &formatErr, "input %q", text)
	}
}

func TestParseHelloInvalidSequence(t *testing.T) {
	for _, text := range []string{"HELLO abc", "HELLO 12x", "HELLO 9999999999999"} {
		_, err := ParseHello(text)
		require.Error(t, err, "input %q", text)

		var seqErr *SequenceNumberError
		assert.ErrorAs(t, err, &seqErr, "input %q", text)
	}
}

func TestParseHelloTrimsPadding(t *testing.T) {
	// surrounding whitespace survives NUL-stripping in the blocking
	// transport; Fields-based splitting must still accept it
	parsed, err := ParseHello("HELLO 42 ")
	require.NoError(t, err)
	assert.Equal(t, int32(42), parsed)
}
