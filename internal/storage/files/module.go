package files

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/zoopark/internal/config"
	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// Module wires the local photo store.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(func(s *Store) repository.PhotoStore { return s }),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return NewStore(p.Config.UploadDir, p.Logger)
}
