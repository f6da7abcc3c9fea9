package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例，未初始化前为 Nop，调用方无需判空
var Log = zap.NewNop()

// Options 日志配置
type Options struct {
	Level    string // debug / info / warn / error
	Encoding string // console / json
	Debug    bool
}

// InitLogger 初始化全局日志，输出到 stderr，避免干扰 stdout 上的交互内容
func InitLogger(opts Options) (func(), error) {
	l, err := New(opts)
	if err != nil {
		return func() {}, err
	}
	Log = l
	undo := zap.ReplaceGlobals(l)
	return func() {
		undo()
		_ = l.Sync()
	}, nil
}

// New 按配置构建 logger
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = zapcore.WarnLevel
	}
	if opts.Debug && opts.Level == "" {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if opts.Encoding != "" {
		cfg.Encoding = opts.Encoding
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
