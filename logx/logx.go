package logx

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		TimestampFormat:        "2006/01/02 15:04:05",
	}
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		Logger.SetLevel(level)
	}
}

func Debugf(format string, args ...any) { Logger.Debugf(format, args...) }
func Debug(args ...any)                 { Logger.Debugln(args...) }

func Infof(format string, args ...any) { Logger.Infof(format, args...) }
func Info(args ...any)                 { Logger.Infoln(args...) }

func Warnf(format string, args ...any) { Logger.Warnf(format, args...) }
func Warn(args ...any)                 { Logger.Warnln(args...) }

func Errorf(format string, args ...any) { Logger.Errorf(format, args...) }
func Error(args ...any)                 { Logger.Errorln(args...) }

func Fatalf(format string, args ...any) { Logger.Fatalf(format, args...) }
func Fatal(args ...any)                 { Logger.Fatalln(args...) }
