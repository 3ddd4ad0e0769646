package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/growi-editor/internal/build"
	"github.com/bornholm/growi-editor/internal/config"
	"github.com/bornholm/growi-editor/internal/desktop"
	"github.com/bornholm/growi-editor/internal/setup"
	"github.com/pkg/errors"
	"github.com/zserge/lorca"
)

var (
	logLevel   int    = int(slog.LevelInfo)
	configFile string = config.DefaultFilename
)

func init() {
	flag.IntVar(&logLevel, "log-level", logLevel, "log level")
	flag.StringVar(&configFile, "config", configFile, "configuration file")
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.Level(logLevel),
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	conf, confErr := config.Load(configFile)
	if confErr != nil {
		slog.ErrorContext(ctx, "could not load configuration", slogx.Error(confErr))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	app, err := lorca.New(
		lorca.WithWindowSize(550, 500),
		lorca.WithAdditionalCustomArgs(
			"--guest",
			fmt.Sprintf("--user-agent=%s/%s", desktop.UserAgentPrefix, build.ShortVersion),
		),
	)
	if err != nil {
		slog.Error("could not run app", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	defer app.Close()

	server, err := setup.NewDesktopServer(ctx, conf, confErr)
	if err != nil {
		slog.Error("could not create desktop server", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	var listener net.Listener

	retries := 0
	for {
		port, total := desktop.NextPort()

		listener, err = net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			slog.Error("could not listen", slog.Any("error", errors.WithStack(err)))
			if retries > total {
				os.Exit(1)
			}
			retries++
			continue
		}

		break
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("could not serve application", slog.Any("error", errors.WithStack(err)))
			os.Exit(1)
		}
	}()

	serverAddr := listener.Addr()

	if err := app.Load(fmt.Sprintf("http://%s", serverAddr.String())); err != nil {
		slog.Error("could not serve application", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	select {
	case <-app.Done():
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.Background()); err != nil {
		slog.Error("could not shutdown server", slogx.Error(err))
	}
}
