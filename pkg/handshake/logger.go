package handshake

// Logger is the minimal logging surface the handshake and dispatch layers
// need. *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{}) {}

func (nopLogger) Errorf(string, ...interface{}) {}

func NopLogger() Logger {
	return nopLogger{}
}
