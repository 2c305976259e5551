package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Directory  string   `json:"directory" yaml:"directory" toml:"directory"`
	Pattern    string   `json:"pattern" yaml:"pattern" toml:"pattern"`
	Currency   string   `json:"currency" yaml:"currency" toml:"currency"`
	Locales    []string `json:"locales" yaml:"locales" toml:"locales"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}
