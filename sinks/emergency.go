package sinks

import (
	"os"

	"go.uber.org/zap/zapcore"

	"vsnlog/formatters"
)

// EmergencyCore builds a plain stderr console core outside the factory. It
// exists for the last-resort logger: it consumes no allocation slot, so it
// keeps working when the cap is exhausted or the factory is torn down.
func EmergencyCore() zapcore.Core {
	enc := encoderFor(formatters.Console, false)
	return zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.InfoLevel)
}
