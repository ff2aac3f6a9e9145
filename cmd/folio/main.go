package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/hsayar/folio"
	"github.com/hsayar/folio/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe(args)
	case "export":
		err = runExport(args)
	case "new":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "Usage: folio new <dir>")
			os.Exit(1)
		}
		err = runNew(args[0])
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `folio - a single-page portfolio server built with Go, Echo, and templ

Usage:
  folio [command] [flags] [arguments]

Commands:
  serve             Serve the portfolio (default)
  export [dir]      Write the portfolio as static files into dir (default dist)
  new <dir>         Create a content file and .env.example in dir
  version           Print the folio version
  help              Show this help message

Flags:
  -config <file>    YAML configuration file (env: FOLIO_CONFIG)

Configuration keys can be overridden with FOLIO_ environment variables,
e.g. FOLIO_ADDR=:8080 or FOLIO_LOG__LEVEL=debug.`)
}

// setup parses the shared flags and builds the logger and the app. It
// returns the positional arguments.
func setup(name string, args []string) (*folio.App, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("FOLIO_CONFIG"), "YAML configuration file")
	rest, err := parseInterspersed(fs, args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := folio.LoadConfig(*configPath)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	app, err := folio.New(cfg, folio.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return app, rest, nil
}

// parseInterspersed parses fs from args, allowing flags after positional
// arguments, and returns the positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		n := len(args) - fs.NArg()
		if n > 0 && args[n-1] == "--" {
			return append(rest, fs.Args()...), nil
		}
		args = fs.Args()
		if len(args) == 0 {
			return rest, nil
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
}

func runServe(args []string) error {
	app, _, err := setup("serve", args)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Start(ctx)
}

func runExport(args []string) error {
	app, rest, err := setup("export", args)
	if err != nil {
		return err
	}
	defer app.Close()

	dir := "dist"
	if len(rest) > 0 {
		dir = rest[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Export(ctx, dir)
}
