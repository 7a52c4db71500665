package main

import (
	"firewatch-backend/cmd/firewatch-cli/commands"
	"firewatch-backend/lib/telemetry"
	"firewatch-backend/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "firewatch-cli")
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
