package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/randomairborne/google-classroom/pkg/config"
)

// Option adjusts how New builds a logger.
type Option func(*options)

type options struct {
	output zapcore.WriteSyncer
}

// WithOutput sends log entries to w instead of stderr.
func WithOutput(w zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New builds the CLI logger. Entries go to stderr so they never mix with
// rendered output on stdout. Every entry carries the Classroom API version
// the shapes were checked against.
func New(cfg *config.Config, opts ...Option) (*zap.Logger, error) {
	o := options{output: zapcore.Lock(os.Stderr)}
	for _, opt := range opts {
		opt(&o)
	}

	production := cfg.Env == config.EnvProduction
	core := zapcore.NewCore(newEncoder(cfg.Log.Format, production), o.output, parseLevel(cfg.Log.Level))

	zapOpts := []zap.Option{
		zap.AddCaller(),
		zap.ErrorOutput(o.output),
		zap.Fields(zap.Int("api_version", cfg.Classroom.APIVersion)),
	}
	if production {
		zapOpts = append(zapOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		zapOpts = append(zapOpts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	return zap.New(core, zapOpts...), nil
}

func newEncoder(format string, production bool) zapcore.Encoder {
	encCfg := zap.NewDevelopmentEncoderConfig()
	if production {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// parseLevel falls back to info for unknown names.
func parseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// FileOutcome logs the result of checking one input file.
func FileOutcome(l *zap.Logger, path, kind string, items int, err error) {
	fields := []zap.Field{
		zap.String("file", path),
		zap.String("kind", kind),
		zap.Int("items", items),
	}
	if err != nil {
		l.Warn("schema check failed", append(fields, zap.Error(err))...)
		return
	}
	l.Info("schema check passed", fields...)
}
