// Package web wires configuration and startup for the character sheet
// web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/louisbranch/zenstats/internal/charsheet/storage/sqlite"
	"github.com/louisbranch/zenstats/internal/miniapp"
	"github.com/louisbranch/zenstats/internal/platform/config"
	"github.com/louisbranch/zenstats/internal/web"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the web command configuration. Environment variables seed
// the defaults; flags override them.
type Config struct {
	HTTPAddr string `env:"ZENSTATS_WEB_HTTP_ADDR"`
	// DBPath enables the /api/stats endpoint when set.
	DBPath string `env:"ZENSTATS_WEB_DB_PATH"`
	// SDKURL is the host shell SDK script; empty disables SDK wiring.
	SDKURL string `env:"ZENSTATS_WEB_SDK_URL"`
}

// ParseConfig parses environment variables and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr: defaultHTTPAddr,
		SDKURL:   miniapp.DefaultSDKURL,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite character store path (enables /api/stats)")
	fs.StringVar(&cfg.SDKURL, "sdk-url", cfg.SDKURL, "mini-app SDK script URL (empty disables SDK wiring)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the character sheet web server.
func Run(ctx context.Context, cfg Config) error {
	serverConfig := web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Shell:    miniapp.Shell{SDKURL: cfg.SDKURL},
	}

	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open character store: %w", err)
		}
		defer func() { _ = store.Close() }()
		serverConfig.Characters = store
	}

	server, err := web.NewServer(serverConfig)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
