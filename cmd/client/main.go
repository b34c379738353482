package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iudanet/taskplanner/internal/client/api"
	"github.com/iudanet/taskplanner/internal/client/auth"
	"github.com/iudanet/taskplanner/internal/client/cli"
	"github.com/iudanet/taskplanner/internal/client/iocli"
	"github.com/iudanet/taskplanner/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "taskplanner-client.db", "Path to local session database")
	password := flag.String("password", "", "Login password (not recommended, use env var or file)")
	passwordFile := flag.String("password-file", "", "Path to file containing login password")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, stdio, *serverURL, *dbPath, cli.Passwords{FromFile: *passwordFile, FromArgs: *password}, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, stdio iocli.IO, serverURL, dbPath string, passwords cli.Passwords, args []string) error {
	boltStorage, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(serverURL)
	authService := auth.NewService(apiClient, boltStorage, serverURL)

	return cli.New(stdio, authService, apiClient, passwords).Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("TaskPlanner Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
