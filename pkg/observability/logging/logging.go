package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init installs the global logger for the hook. Output goes to stderr so
// dpkg and journald capture it alongside the maintainer-script output.
func Init(debug bool) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)
}
