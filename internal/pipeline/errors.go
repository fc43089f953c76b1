package pipeline

// ConfigError reports a missing or invalid configuration field, or an
// unreadable config file.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "config error: " + e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// InputError reports a missing, empty, or malformed input series.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return "input error: " + e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// IOError reports a failure writing the run's output.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "io error: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }
