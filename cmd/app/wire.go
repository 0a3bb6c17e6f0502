//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/gayathri-1911/travel-assistant/internal/bootstrap"
	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
	"github.com/gayathri-1911/travel-assistant/internal/domain/chat"
	"github.com/gayathri-1911/travel-assistant/internal/infra/config"
	"github.com/gayathri-1911/travel-assistant/internal/infra/llm"
	httpiface "github.com/gayathri-1911/travel-assistant/internal/interface/http"
	"github.com/gayathri-1911/travel-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCatalogConfig,
		provideChatConfig,
		provideCatalogRepository,
		provideCatalogCache,
		provideSessionClient,
		catalog.NewService,
		chat.NewService,
		wire.Bind(new(chat.SessionClient), new(*llm.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
