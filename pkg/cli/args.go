package cli

import (
	"fmt"
	"net"
	"strconv"

	"tcp-handshake/pkg/protocol"
)

type ArgumentError struct {
	Usage string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid command line arguments: usage: %s", e.Usage)
}

type PortError struct {
	Token string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("invalid port number: %s", e.Token)
}

// ParseClientArgs parses the client's positional arguments:
// <server_ip> <server_port> <initial_sequence>.
func ParseClientArgs(args []string) (string, uint16, int32, error) {
	if len(args) != 3 {
		return "", 0, 0, &ArgumentError{Usage: "<server_ip> <server_port> <initial_sequence>"}
	}

	host := args[0]

	port, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return "", 0, 0, &PortError{Token: args[1]}
	}

	seq, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		return "", 0, 0, &protocol.SequenceNumberError{Token: args[2]}
	}

	return host, uint16(port), int32(seq), nil
}

// ParseServerArgs parses the server's single positional argument:
// <server_port>.
func ParseServerArgs(args []string) (uint16, error) {
	if len(args) != 1 {
		return 0, &ArgumentError{Usage: "<server_port>"}
	}

	port, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return 0, &PortError{Token: args[0]}
	}

	return uint16(port), nil
}

// ServerAddr formats the host:port pair a client dials.
func ServerAddr(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}

// BindAddr is the all-interfaces listen address for a port.
func BindAddr(port uint16) string {
	return fmt.Sprintf("0.0.0.0:%d", port)
}
