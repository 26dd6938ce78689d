package logger

// Console implements a console based logger. Console output goes to stderr,
// stdout is reserved for generated strings.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	ErrorLog        string `toml:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"`

	InfoLog        string `toml:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"`

	TraceLog        string `toml:"trace"`
	TraceMaxSize    int    `toml:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge"`

	WarnLog        string `toml:"warn"`
	WarnMaxSize    int    `toml:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `toml:"logLevel"` // trace, debug, info, warn, error.
	ReportCaller bool   `toml:"reportCaller"`

	AppName     string `toml:"appName"`
	ServiceName string `toml:"serviceName"`

	// Console used for interactive runs.
	Console Console `toml:"console"`

	// File writes rolling log files split by level.
	File LogFile `toml:"file"`
}
