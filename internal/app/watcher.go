package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/iis-schedule-client/internal/config"
	"github.com/samvad-hq/iis-schedule-client/internal/logger"
	"github.com/samvad-hq/iis-schedule-client/internal/storage"
	"github.com/samvad-hq/iis-schedule-client/internal/watch"
	"github.com/samvad-hq/iis-schedule-client/pkg/httpclient"
	"github.com/samvad-hq/iis-schedule-client/pkg/iis"
	"github.com/samvad-hq/iis-schedule-client/pkg/publishers"
)

// Watcher is the schedule watcher runtime. It owns the poll loop, the
// publishers fanout and the dedup store.
type Watcher struct {
	cfg          *config.Config
	targets      []watch.Target
	fanout       *publishers.Fanout
	service      *watch.Service
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
}

// NewClient builds the IIS client described by cfg.
func NewClient(cfg *config.Config) *iis.Client {
	return iis.New(cfg.BaseURL,
		iis.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		iis.WithStatusCheck(cfg.StatusCheck),
	)
}

// NewWatcher builds a watcher runtime from config files.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	targets, err := watch.LoadTargets(cfg.TargetsFile)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	targetIDs := make([]string, 0, len(targets))
	for _, t := range targets {
		targetIDs = append(targetIDs, t.ID)
	}
	log.InfoObj("targets loaded", "targets_meta", map[string]any{
		"count": len(targetIDs),
		"ids":   targetIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storage.Options{
		EntryTTL:        cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"entry_ttl_seconds":        int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	return &Watcher{
		cfg:          cfg,
		targets:      targets,
		fanout:       fanout,
		service:      watch.NewService(NewClient(cfg), fanout, log, store),
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
	}, nil
}

// Run polls until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.service == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.close()

	w.log.InfoObj("watch loop starting", "watcher_state", map[string]any{
		"targets_count":    len(w.targets),
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.pollInterval.String(),
		"base_url":         w.cfg.BaseURL,
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial poll failed", "error", err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watch loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled poll failed", "error", err)
			}
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) error {
	start := time.Now()
	if err := w.service.Run(ctx, w.targets); err != nil {
		return err
	}
	w.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"targets_count": len(w.targets),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}

func (w *Watcher) close() {
	if w == nil {
		return
	}
	var errs []error
	if w.store != nil {
		errs = append(errs, w.store.Close())
	}
	errs = append(errs, w.fanout.Close())
	if err := errors.Join(errs...); err != nil {
		w.log.ErrorObj("watcher shutdown failed", "error", err)
	}
}
