package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// ZooFacade exposes the subset of application functionality required by the sweeper.
type ZooFacade interface {
	ReferencedPhotoKeys(ctx context.Context) ([]string, error)
}

// PhotoSweeper periodically removes stored photo files no animal record
// references anymore: leftovers of deleted records and of updates that
// switched a record to an external URL.
type PhotoSweeper struct {
	facade   ZooFacade
	store    repository.PhotoStore
	interval time.Duration
	grace    time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPhotoSweeper constructs the background sweeper.
func NewPhotoSweeper(facade ZooFacade, store repository.PhotoStore, interval, grace time.Duration, logger *slog.Logger) *PhotoSweeper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if grace <= 0 {
		grace = time.Hour
	}
	return &PhotoSweeper{
		facade:   facade,
		store:    store,
		interval: interval,
		grace:    grace,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *PhotoSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *PhotoSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *PhotoSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes unreferenced files older than the grace period. The grace
// period keeps in-flight uploads safe: a file may exist briefly before
// its row commits.
func (s *PhotoSweeper) Sweep(ctx context.Context) {
	keys, err := s.facade.ReferencedPhotoKeys(ctx)
	if err != nil {
		s.logger.Error("list referenced photo keys failed", slog.String("error", err.Error()))
		return
	}

	referenced := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		referenced[key] = struct{}{}
	}

	stored, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("list stored photos failed", slog.String("error", err.Error()))
		return
	}

	cutoff := time.Now().Add(-s.grace)
	for _, photo := range stored {
		if _, ok := referenced[photo.Key]; ok {
			continue
		}
		if photo.ModTime.After(cutoff) {
			continue
		}
		if err := s.store.Remove(ctx, photo.Key); err != nil {
			s.logger.Error("remove orphan photo failed", slog.String("key", photo.Key), slog.String("error", err.Error()))
			continue
		}
		s.logger.Info("removed orphan photo", slog.String("key", photo.Key))
	}
}
