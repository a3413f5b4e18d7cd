package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// WithComponent возвращает логгер, добавляющий поле component ко всем записям.
// Вывод, формат и уровень наследуются от base.
func WithComponent(base *logrus.Logger, component string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(base.Formatter)
	log.SetOutput(base.Out)
	log.SetLevel(base.GetLevel())
	log.AddHook(componentHook{component: component})
	return log
}

type componentHook struct {
	component string
}

func (h componentHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h componentHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["component"]; !ok {
		entry.Data["component"] = h.component
	}
	return nil
}
