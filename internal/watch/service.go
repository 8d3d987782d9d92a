package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/samvad-hq/iis-schedule-client/internal/logger"
	"github.com/samvad-hq/iis-schedule-client/internal/storage"
	"github.com/samvad-hq/iis-schedule-client/pkg/iis"
	"github.com/samvad-hq/iis-schedule-client/pkg/publishers"
)

// LastUpdateFetcher is the part of iis.Client the watcher needs.
type LastUpdateFetcher interface {
	LastUpdate(ctx context.Context, q iis.LastUpdateQuery) (iis.LastUpdate, error)
}

// EventPublisher delivers change events and reports how many sinks accepted them.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Service polls last-update dates and publishes an event whenever one changes.
type Service struct {
	client    LastUpdateFetcher
	publisher EventPublisher
	store     storage.Store
	log       logger.Logger
}

// NewService wires a watcher. A nil store disables dedup, a nil logger discards logs.
func NewService(client LastUpdateFetcher, pub EventPublisher, log logger.Logger, store storage.Store) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	if store == nil {
		store, _ = storage.NewStore("none", "", storage.Options{})
	}
	return &Service{
		client:    client,
		publisher: pub,
		store:     store,
		log:       log,
	}
}

// Run executes one polling pass over targets.
func (s *Service) Run(ctx context.Context, targets []Target) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("watch service is not initialized")
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets configured for watching")
	}

	errs := s.runAll(ctx, targets)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) runAll(ctx context.Context, targets []Target) []error {
	errs := make([]error, 0, len(targets))

	for _, t := range targets {
		if ctx.Err() != nil {
			break
		}
		if err := s.checkTarget(ctx, t); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("target check failed", "target_error", map[string]any{
				"target_id": t.ID,
				"error":     err.Error(),
			})
		}
	}

	return errs
}

func (s *Service) checkTarget(ctx context.Context, t Target) error {
	q, err := t.Query()
	if err != nil {
		return err
	}

	lu, err := s.client.LastUpdate(ctx, q)
	if err != nil {
		return fmt.Errorf("fetch last update for target %s: %w", t.ID, err)
	}

	prev, seen, err := s.store.LastSeen(t.ID)
	if err != nil {
		return fmt.Errorf("lookup target %s: %w", t.ID, err)
	}
	if seen && prev == lu.LastUpdateDate {
		// Re-record so the entry only expires once the target stops being polled.
		if err := s.store.Record(t.ID, prev); err != nil {
			return fmt.Errorf("refresh target %s: %w", t.ID, err)
		}
		s.log.DebugObj("target unchanged", "target_result", map[string]any{
			"target_id":   t.ID,
			"last_update": lu.LastUpdateDate,
		})
		return nil
	}

	evt := publishers.NewEvent(t.ID, t.Name, t.Kind, t.Value, lu.LastUpdateDate, prev)
	delivered := 0
	var pubErr error
	if s.publisher != nil {
		delivered, pubErr = s.publisher.Publish(ctx, evt)
	}
	if delivered == 0 && pubErr != nil {
		return fmt.Errorf("publish change for target %s: %w", t.ID, pubErr)
	}

	if err := s.store.Record(t.ID, lu.LastUpdateDate); err != nil {
		return fmt.Errorf("record target %s: %w", t.ID, err)
	}

	s.log.InfoObj("schedule change published", "target_result", map[string]any{
		"target_id":     t.ID,
		"last_update":   lu.LastUpdateDate,
		"previous":      prev,
		"publishers_ok": delivered,
	})
	if pubErr != nil {
		return fmt.Errorf("partial publish for target %s: %w", t.ID, pubErr)
	}
	return nil
}
