package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eduline/elearn-client/internal/client/api"
	"github.com/eduline/elearn-client/internal/client/auth"
	"github.com/eduline/elearn-client/internal/client/cli"
	"github.com/eduline/elearn-client/internal/client/config"
	"github.com/eduline/elearn-client/internal/client/iocli"
	"github.com/eduline/elearn-client/internal/client/realtime"
	"github.com/eduline/elearn-client/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.ServerURL, "Server URL")
	wsBaseURL := flag.String("ws", cfg.WSBaseURL, "Websocket base URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	if *wsBaseURL == cfg.WSBaseURL && *serverURL != cfg.ServerURL {
		// --server moved but --ws did not; keep them pointing at one host
		*wsBaseURL = config.DeriveWSBaseURL(*serverURL)
	}

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	apiClient.SetTokenSource(func(ctx context.Context) string {
		creds, err := boltStorage.GetCredentials(ctx)
		if err != nil {
			return ""
		}
		return creds.AccessToken
	})

	session := auth.NewService(apiClient, boltStorage)
	guard := auth.NewGuard(boltStorage, session)
	dialer := realtime.NewDialer(*wsBaseURL)

	app := cli.New(apiClient, session, guard, boltStorage, dialer, iocli.NewStdio())
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("eLearning Platform Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
