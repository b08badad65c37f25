package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool // human readable output instead of json
}

// RollingFile holds the rotation settings of a single log file.
type RollingFile struct {
	Name       string `toml:"name"`
	MaxSize    int    `toml:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access RollingFile `toml:"access"`
	Error  RollingFile `toml:"error"`
	Info   RollingFile `toml:"info"`
	Trace  RollingFile `toml:"trace"`
	Warn   RollingFile `toml:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string // trace, debug, info, warn, error.
	LogEnv   string

	// EnableAccessLogToConsole if true, the webservice access log is written to the console.
	// Does not overrule flag Console.Enabled!
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // do not log /checkalive calls

	AppName     string
	ServiceName string

	// Console used mainly for docker and dev.
	Console Console

	File LogFile `toml:"file"`
}
