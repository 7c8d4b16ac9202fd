package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/photocatalog/internal/app"
	"github.com/polkiloo/photocatalog/internal/config"
	"github.com/polkiloo/photocatalog/internal/logger"
	"github.com/polkiloo/photocatalog/internal/metrics"
	"github.com/polkiloo/photocatalog/internal/server/http/router"
	"github.com/polkiloo/photocatalog/internal/storage/postgres"
	"github.com/polkiloo/photocatalog/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		metrics.Module,
		fx.Provide(func(m *metrics.ShopMetrics) usecase.CheckoutRecorder { return m }),
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.Seeder { return s },
			func(s *postgres.Storage) app.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
