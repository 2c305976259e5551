package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	Directory  string
	Pattern    string
	ConfigFile string
	Currency   string
	Locales    []string
	ReportName string
	ReportType []string
	Dir        string
}
