package log

// NewNullLogger returns a Logger that discards every entry. It is the
// default logger of a CPU.
func NewNullLogger() Logger {
	return nullLogger{}
}

type nullLogger struct{}

var _ Logger = nullLogger{}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}
