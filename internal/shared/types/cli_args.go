package types

// CLIArgs represents the command-line arguments of the dashboard command.
type CLIArgs struct {
	ConfigFile string
	APIURL     string
	ReportName string
	ReportType []string
	Dir        string
	Timeout    int
}

// ServeArgs represents the command-line arguments of the serve command.
type ServeArgs struct {
	ConfigFile  string
	Port        string
	Environment string
	StaticDir   string
	CORSOrigins []string
	LogLevel    string
}
