package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"p2pconsole/internal/backend/rest"
	"p2pconsole/internal/config"
	"p2pconsole/internal/console"
	"p2pconsole/internal/logger"
	"p2pconsole/internal/session"
)

func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logger.New(logger.Config{
		Level:      cfg.Runtime.Log.Level,
		Format:     cfg.Runtime.Log.Format,
		Output:     cfg.Runtime.Log.File,
		MaxSize:    cfg.Runtime.Log.MaxSize,
		MaxBackups: cfg.Runtime.Log.MaxBackups,
		MaxAge:     cfg.Runtime.Log.MaxAge,
		Compress:   cfg.Runtime.Log.Compress,
	})

	logger.Info("Консоль запущена.")

	store := session.New(cfg.Session.File)
	client := rest.New(cfg.Backend.BaseUrl, store, time.Duration(cfg.Backend.TimeoutSec)*time.Second, logger)
	prompt := newTerminalPrompter()
	ctrl := console.New(cfg, client, store, prompt, os.Stdout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-sigCh
		cancel()
	}()

	go func() {
		if err := ctrl.Run(ctx); err != nil && ctx.Err() == nil {
			logger.WithError(err).Fatal("Цикл событий завершился с ошибкой.")
		}
	}()

	fmt.Printf("Бэкенд: %s\n", cfg.Backend.BaseUrl)
	ctrl.StartupCheck(ctx)

	for {
		if ctx.Err() != nil {
			break
		}
		line, err := prompt.Line("> ")
		if err != nil {
			break
		}
		if !ctrl.Handle(ctx, line) {
			break
		}
	}

	cancel()
	ctrl.Close()
	logger.Info("Консоль остановлена.")
}
