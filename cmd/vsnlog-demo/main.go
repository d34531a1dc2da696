package main

import (
	"os"

	"vsnlog"
)

func main() {
	// Initialize the default logger into a local directory so the demo does
	// not need write access to /var/log.
	if err := vsnlog.InitializeFull("vsnlog-demo", "./logs", vsnlog.TraceLevel); err != nil {
		println("initialize failed:", err.Error())
		os.Exit(1)
	}
	defer vsnlog.Shutdown()

	// Demo all severity levels
	vsnlog.Trace("resolver cache warmed with %d entries", 128)
	vsnlog.Debug("connection pool sized to %d", 16)
	vsnlog.Info("application started on port %d", 8080)
	vsnlog.Warn("configuration key %q missing, using default", "max_connections")
	vsnlog.Error("upstream %s unreachable after %d attempts", "billing", 3)
	vsnlog.Critical("data directory %s is read only", "/srv/data")

	// Demo component-tagged logging through the shared default logger
	db := vsnlog.Component("db")
	db.Info("migrations applied: %d", 42)
	db.Warn("slow query took %dms", 950)

	// Demo runtime level filtering
	vsnlog.SetLevel(vsnlog.WarnLevel)
	vsnlog.Info("this record is filtered out")
	vsnlog.Warn("this record still shows")

	// Demo pattern switching: the active pattern drives the sink layout
	vsnlog.SetPattern("json")
	vsnlog.SetLevel(vsnlog.InfoLevel)
	vsnlog.Info("console and file records now render as json")

	vsnlog.Flush()
}
