package protocol

import (
	"strconv"
	"strings"
)

// MsgSize is the fixed frame capacity, in bytes, for one read or write
// against the stream. Messages never span frames.
const MsgSize = 64

// FormatHello renders the single wire message type: "HELLO <seq>".
// No padding and no trailing newline; the transport sizes the frame.
func FormatHello(seq int32) string {
	return "HELLO " + strconv.FormatInt(int64(seq), 10)
}

// ParseHello extracts the sequence number from a HELLO message.
// The message must be exactly two whitespace-separated tokens, the first
// literally "HELLO" and the second a decimal int32.
func ParseHello(text string) (int32, error) {
	parts := strings.Fields(text)

	if len(parts) != 2 || parts[0] != "HELLO" {
		return 0, &MessageFormatError{Message: text}
	}

	seq, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return 0, &SequenceNumberError{Token: parts[1]}
	}

	return int32(seq), nil
}
