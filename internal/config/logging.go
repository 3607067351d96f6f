package config

import "github.com/tliron/commonlog"

// ConfigureLogging applies the log section to commonlog. The binaries import a
// commonlog backend; without one this is a no-op.
func (c Config) ConfigureLogging() {
	var path *string
	if c.Log.File != "" {
		path = &c.Log.File
	}
	commonlog.Configure(c.Log.Verbosity, path)
}
