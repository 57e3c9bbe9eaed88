package logger

import (
	"io"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
}

func Configure(config *Configuration) error {
	logger.SetLevel(config.Level)

	// 控制台输出, 必须打开 FullTimestamp 才会打印时间戳
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true,
	})

	// 重复 Configure 时先清掉旧的 hook, 否则每行会写多次
	logger.ReplaceHooks(make(logrus.LevelHooks))
	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for level, name := range map[logrus.Level]string{
			logrus.DebugLevel: "debug",
			logrus.InfoLevel:  "info",
			logrus.WarnLevel:  "warn",
			logrus.ErrorLevel: "error",
		} {
			writer, err := setupWriter(config.LogPath, name)
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		// 文件中禁用颜色
		hook := lfshook.NewHook(writerMap, &logrus.TextFormatter{
			TimestampFormat: config.TimeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		})
		logger.AddHook(hook)
	}

	// 输出到 stderr, stdout 留给链表的输出
	logger.SetOutput(os.Stderr)
	return nil
}

// SetOutput is used by tests to capture log lines.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		path.Join(logPath, level)+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
