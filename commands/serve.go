package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/xlsplit/server"
	"github.com/urfave/cli/v2"
)

type ServeOption struct {
	GlobalOption
	Listen          string
	MaxUpload       int64
	ShutdownTimeout time.Duration
}

func BuildServeFlags() []cli.Flag {
	return append(BuildGlobalFlags(), []cli.Flag{
		&cli.StringFlag{Name: "listen", Aliases: []string{"l"}, Value: "127.0.0.1:8080", Usage: "http listen address"},
		&cli.Int64Flag{Name: "max-upload", Value: server.DefaultMaxUpload, Usage: "maximum request body size in bytes"},
		&cli.DurationFlag{Name: "shutdown-timeout", Value: 30 * time.Second, Usage: "graceful shutdown timeout"},
	}...)
}

func resolveServeOption(c *cli.Context) ServeOption {
	return ServeOption{
		GlobalOption:    resolveGlobalOption(c),
		Listen:          c.String("listen"),
		MaxUpload:       c.Int64("max-upload"),
		ShutdownTimeout: c.Duration("shutdown-timeout"),
	}
}

// ServeCommand 启动 HTTP 服务，提供上传拆分页面
func ServeCommand(c *cli.Context) error {
	opt := resolveServeOption(c)
	setupLogger(opt.GlobalOption)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              opt.Listen,
		Handler:           server.New(opt.MaxUpload).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("http server listening on %s", opt.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		log.Infof("shutdown signal received, stopping http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opt.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	log.Infof("http server stopped")
	return nil
}
