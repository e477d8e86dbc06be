package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/peerjakobsen/md-gtd-mcp/internal"
	pkgconfig "github.com/peerjakobsen/md-gtd-mcp/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		// Stdio mode works out of the box: a missing config file falls back
		// to defaults plus environment overrides.
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if vaultPath := cmd.String("vault"); vaultPath != "" {
		cfg.Vault.Path = vaultPath
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithStdio(cmd.Bool("stdio")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "md-gtd-mcp",
		Usage:  "GTD vault server exposing Markdown task files over MCP and REST",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "vault",
				Usage:   "Path to the vault directory (overrides config)",
				Sources: cli.EnvVars("GTD_VAULT_PATH"),
			},
			&cli.BoolFlag{
				Name:    "stdio",
				Usage:   "Run the MCP server on stdin/stdout instead of the HTTP server",
				Sources: cli.EnvVars("GTD_STDIO"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
