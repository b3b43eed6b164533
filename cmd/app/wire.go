//go:build wireinject
// +build wireinject

package main

import (
	"github.com/zungle102/shiftrec-sub000/config"
	"github.com/zungle102/shiftrec-sub000/internal/command"
	"github.com/zungle102/shiftrec-sub000/internal/cron"
	"github.com/zungle102/shiftrec-sub000/internal/database"
	"github.com/zungle102/shiftrec-sub000/internal/handler"
	"github.com/zungle102/shiftrec-sub000/internal/middleware"
	"github.com/zungle102/shiftrec-sub000/internal/router"
	"github.com/zungle102/shiftrec-sub000/internal/service"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(database.ProviderSet, telemetry.ProviderSet, command.ProviderSet))
}
