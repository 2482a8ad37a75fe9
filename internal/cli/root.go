package cli

import (
	"github.com/spf13/cobra"
)

// preRun loads the configuration, sets the log level and attaches the
// logger to the command context. --verbose wins over the configured level.
func (c *CLI) preRun(cmd *cobra.Command, args []string) error {
	path := c.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg

	level := cfg.level()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("configuration loaded", "path", path, "level", level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
