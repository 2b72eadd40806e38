package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/zoopark/internal/app"
	"github.com/polkiloo/zoopark/internal/config"
	"github.com/polkiloo/zoopark/internal/logger"
	"github.com/polkiloo/zoopark/internal/pkg/auth"
	"github.com/polkiloo/zoopark/internal/server/http/handlers"
	"github.com/polkiloo/zoopark/internal/server/http/router"
	"github.com/polkiloo/zoopark/internal/storage/files"
	"github.com/polkiloo/zoopark/internal/storage/postgres"
	"github.com/polkiloo/zoopark/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		files.Module,
		usecase.Module,
		fx.Provide(func(f *app.ZooFacade) handlers.ZooFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
