package entities

type TimejConfig struct {
	Debug      string `mapstructure:"debug"`
	ReportFile string `mapstructure:"report_file"`
}

// DebugEnabled is true for any non-empty TIMEJ_DEBUG.
func (c *TimejConfig) DebugEnabled() bool {
	return c.Debug != ""
}
