package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcp-handshake/pkg/protocol"
)

func TestParseClientArgs(t *testing.T) {
	host, port, seq, err := ParseClientArgs([]string{"10.0.0.1", "8080", "100"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", host)
	assert.Equal(t, uint16(8080), port)
	assert.Equal(t, int32(100), seq)
}

func TestParseClientArgsWrongArity(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"10.0.0.1"},
		{"10.0.0.1", "8080"},
		{"10.0.0.1", "8080", "100", "extra"},
	} {
		_, _, _, err := ParseClientArgs(args)

		var argErr *ArgumentError
		assert.ErrorAs(t, err, &argErr, "args %v", args)
	}
}

func TestParseClientArgsBadPort(t *testing.T) {
	for _, bad := range []string{"notaport", "-1", "70000"} {
		_, _, _, err := ParseClientArgs([]string{"10.0.0.1", bad, "100"})

		var portErr *PortError
		assert.ErrorAs(t, err, &portErr, "port %q", bad)
	}
}

func TestParseClientArgsBadSequence(t *testing.T) {
	_, _, _, err := ParseClientArgs([]string{"10.0.0.1", "8080", "abc"})

	var seqErr *protocol.SequenceNumberError
	assert.ErrorAs(t, err, &seqErr)
}

func TestParseServerArgs(t *testing.T) {
	port, err := ParseServerArgs([]string{"9000"})
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), port)

	_, err = ParseServerArgs(nil)
	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)

	_, err = ParseServerArgs([]string{"bad"})
	var portErr *PortError
	assert.ErrorAs(t, err, &portErr)
}

func TestAddrHelpers(t *testing.T) {
	assert.Equal(t, "10.0.0.1:8080", ServerAddr("10.0.0.1", 8080))
	assert.Equal(t, "[::1]:8080", ServerAddr("::1", 8080))
	assert.Equal(t, "0.0.0.0:9000", BindAddr(9000))
}
