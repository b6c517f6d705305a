// gridmate hosts a spreadsheet application's assistant panels in the
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/gridmate/gridmate/cmd"
	"github.com/gridmate/gridmate/config"
	"github.com/gridmate/gridmate/logger"
)

func main() {
	if dir := os.Getenv("GRIDMATE_CONFIG_DIR"); dir != "" {
		config.SetConfigDir(dir)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	configDir, _ := config.ConfigDir()
	if err := logger.Init(cfg.BuildLoggerConfig(), configDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
	}
	cmd.Execute()
}
