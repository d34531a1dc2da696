package main

import (
	"os"
	"path/filepath"

	"vsnlog"
	"vsnlog/config"
)

const sampleConfig = `# Demo configuration
[global]
log_dir = ./logs
log_level = 1

[config-demo]
console_output = true
use_colors = true
file_output = true
max_file_size = 1048576
max_files = 3
`

func main() {
	// Write a sample configuration file and initialize from it.
	dir, err := os.MkdirTemp("", "vsnlog-config-demo")
	if err != nil {
		println("tempdir:", err.Error())
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	confPath := filepath.Join(dir, "vsnlog.conf")
	if err := os.WriteFile(confPath, []byte(sampleConfig), 0o644); err != nil {
		println("write config:", err.Error())
		os.Exit(1)
	}

	// Environment variables override the file. Try for example:
	//   VSNLOG_GLOBAL_LOG_LEVEL=4 go run ./cmd/vsnlog-config-demo
	if err := vsnlog.InitializeWithConfig("config-demo", confPath); err != nil {
		println("initialize:", err.Error())
		os.Exit(1)
	}
	defer vsnlog.Shutdown()

	vsnlog.Debug("level 1 from the file keeps debug records")
	vsnlog.Info("log directory resolved to %q", config.Default().GetString(config.GlobalSection, "log_dir", "?"))
	vsnlog.Component("loader").Info("configuration sections: %d", len(config.Default().Sections()))

	vsnlog.Flush()
}
