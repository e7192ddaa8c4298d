package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger оборачивает logrus и несет поле service во всех записях
type Logger struct {
	*logrus.Entry
}

// New создает логгер сервиса. level - уровень logrus (debug, info, warn, error),
// format - json или text. Неизвестный уровень означает info.
func New(serviceName, level, format string) *Logger {
	return newWithOutput(serviceName, level, format, os.Stdout)
}

func newWithOutput(serviceName, level, format string, out io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(out)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &Logger{Entry: log.WithField("service", serviceName)}
}

// WithRequestID добавляет ID запроса
func (l *Logger) WithRequestID(requestID string) *logrus.Entry {
	return l.WithField("request_id", requestID)
}

// Discard логгер, который ничего не пишет. Удобен в тестах.
func Discard() *Logger {
	return newWithOutput("test", "panic", "json", io.Discard)
}
