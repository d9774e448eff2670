package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once sync.Once
	log  *slog.Logger
)

func GetLogger() *slog.Logger {
	once.Do(func() {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})

	return log
}
