package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/studiosync/syncserver/internal/server"
	"github.com/studiosync/syncserver/internal/server/auth"
	"github.com/studiosync/syncserver/internal/server/export"
	"github.com/studiosync/syncserver/internal/version"
)

const envPrefix = "STUDIO_SYNC"

var rootCmd = &cobra.Command{
	Use:     "studiosync",
	Short:   "Studio file sync server",
	Version: version.Detailed(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		s, err := server.New(cfg)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return s.Start(cmd.Context())
	},
}

func init() {
	registerServerFlags(rootCmd)
}

func registerServerFlags(cmd *cobra.Command) {
	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	cmd.Flags().StringP("root", "r", "", "Project root (defaults to the working directory)")
	cmd.Flags().String("cert", "", "Path to the TLS certificate file")
	cmd.Flags().String("key", "", "Path to the TLS key file")
	cmd.PersistentFlags().StringP("config", "c", "", "Config file (yaml or json)")
}

func main() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	// a missing .env is fine, real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the optional config file, STUDIO_SYNC_* environment
// variables and flags, in increasing order of precedence.
func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	v := viper.New()

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	exportDefaults := export.DefaultConfig()
	v.SetDefault("http.addr", server.DefaultAddr)
	v.SetDefault("http.cert_file", "")
	v.SetDefault("http.key_file", "")
	v.SetDefault("http.max_body_size", server.DefaultMaxBodySize)
	v.SetDefault("http.rate_limit", "")
	v.SetDefault("auth.secret", auth.DefaultSecret)
	v.SetDefault("auth.max_clock_skew", auth.DefaultMaxClockSkew)
	v.SetDefault("export.source_dir", exportDefaults.SourceDir)
	v.SetDefault("export.prefix", exportDefaults.Prefix)
	v.SetDefault("export.extensions", exportDefaults.Extensions)
	v.SetDefault("export.skip_dirs", exportDefaults.SkipDirs)
	v.SetDefault("export.ignore", []string{})
	v.SetDefault("project_root", wd)

	if flag := cmd.Flag("config"); flag != nil && flag.Value.String() != "" {
		v.SetConfigFile(flag.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("auth.secret", envPrefix+"_AUTH_SECRET", "SYNC_SECRET"); err != nil {
		return nil, err
	}

	for key, name := range map[string]string{
		"http.addr":      "bind",
		"http.cert_file": "cert",
		"http.key_file":  "key",
		"project_root":   "root",
	} {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	var cfg server.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
