// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/simple-web-server/cliparse"
	"github.com/danielhkuo/simple-web-server/logging"
	"github.com/danielhkuo/simple-web-server/router"
	"github.com/danielhkuo/simple-web-server/server"
)

func main() {
	// Optional; real environment variables take precedence
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Args)
	stop()
	os.Exit(code)
}

// run starts the server and returns the process exit code.
// args is the full argument vector, program name included.
func run(ctx context.Context, stdout io.Writer, args []string) int {
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		fatal(stdout, "Error parsing arguments: "+err.Error())
		return 1
	}

	if cfg.ShowHelp {
		fmt.Fprintln(stdout, cliparse.HelpText)
		return 0
	}

	logging.Setup(cfg.LogLevel)
	slog.Info("starting up", "loglevel", cfg.LogLevel.String())

	if err := server.Run(ctx, cfg.ListenAddr, router.NewRouter(cfg)); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// fatal prints a startup error followed by the help text
func fatal(w io.Writer, msg string) {
	fmt.Fprintf(w, "Error: %s\r\n%s\n", msg, cliparse.HelpText)
}
