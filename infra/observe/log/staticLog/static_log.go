package staticLog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 全局日志, 未 Init 时输出到 stderr, 级别 Info
var Log = newDefault()

type Options struct {
	Level      string
	File       string // 为空则只写 stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init 按配置重置全局日志
func Init(opt Options) error {
	lvl := logrus.InfoLevel
	if opt.Level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(opt.Level); err != nil {
			return err
		}
	}

	var out io.Writer = os.Stderr
	if opt.File != "" {
		if err := os.MkdirAll(filepath.Dir(opt.File), 0755); err != nil {
			return err
		}
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    opt.MaxSizeMB,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAgeDays,
			Compress:   opt.Compress,
		})
	}

	Log.SetLevel(lvl)
	Log.SetOutput(out)
	return nil
}
