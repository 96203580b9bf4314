package injector

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger builds a JSON logger writing to logPath. An empty path disables
// logging, since the terminal front end owns stdout and stderr. The cleanup
// flushes the logger and closes the file.
func ProvideLogger(logPath string) (*zap.Logger, func(), error) {
	if logPath == "" {
		return zap.NewNop(), func() {}, nil
	}
	sink, closeSink, err := zap.Open(logPath)
	if err != nil {
		return nil, nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
	logger := zap.New(core, zap.ErrorOutput(sink))
	return logger, func() {
		_ = logger.Sync()
		closeSink()
	}, nil
}
