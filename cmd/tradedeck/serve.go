package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/newthinker/tradedeck/internal/api"
	"github.com/newthinker/tradedeck/internal/clipboard"
	"github.com/newthinker/tradedeck/internal/config"
	"github.com/newthinker/tradedeck/internal/dashboard"
	"github.com/newthinker/tradedeck/internal/logger"
	"github.com/newthinker/tradedeck/internal/metrics"
	"github.com/newthinker/tradedeck/internal/storage/kv"
	"github.com/newthinker/tradedeck/internal/symbols"
	"github.com/newthinker/tradedeck/internal/template"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TradeDeck server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize logger
	log := logger.Must(debug)
	defer log.Sync()

	// Load config
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("starting TradeDeck server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Type),
	)

	// Storage backend for templates and the handoff slot
	store, err := newKVStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("creating storage: %w", err)
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	templates := template.NewStore(store, log)
	form := template.NewForm(templates, log)

	// Generator page-load behavior: consume a pending handoff, if any.
	if form.ApplyHandoff(context.Background()) {
		log.Info("applied pending handoff payload")
	}

	// Dashboard polling
	client := dashboard.NewClient(cfg.Dashboard.BaseURL)
	svc := dashboard.NewService(client, log)

	refreshPoller := dashboard.NewPoller("dashboard", cfg.Dashboard.RefreshInterval,
		func(ctx context.Context) {
			start := time.Now()
			svc.RefreshDashboard(ctx)
			if reg != nil {
				reg.RecordPollCycle("dashboard", time.Since(start).Seconds())
			}
		}, log)
	notifyPoller := dashboard.NewPoller("notifications", cfg.Dashboard.NotificationInterval,
		func(ctx context.Context) {
			start := time.Now()
			svc.RefreshNotifications(ctx)
			if reg != nil {
				reg.RecordPollCycle("notifications", time.Since(start).Seconds())
				reg.SetNotificationCount(svc.State().Get().NotificationCount)
			}
		}, log)

	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()
	refreshPoller.Start(pollCtx)
	notifyPoller.Start(pollCtx)

	// API server
	server := api.NewServer(api.Config{
		Host:   cfg.Server.Host,
		Port:   cfg.Server.Port,
		APIKey: cfg.Server.APIKey,
	}, api.Deps{
		Templates:     templates,
		Form:          form,
		Dashboard:     svc.State(),
		Symbols:       symbols.NewClient(cfg.Dashboard.BaseURL),
		Clipboard:     clipboard.System{},
		WebhookOrigin: cfg.Webhook.Origin,
		Metrics:       reg,
	}, log)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down TradeDeck server")

	refreshPoller.Stop()
	notifyPoller.Stop()

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

// newKVStore builds the configured KV backend.
func newKVStore(cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Type {
	case "localfs":
		return kv.NewLocalFS(cfg.Path)
	case "s3":
		return kv.NewS3(kv.S3Config{
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Prefix:    cfg.S3.Prefix,
		})
	case "redis":
		return kv.NewRedis(kv.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}), nil
	case "memory":
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
