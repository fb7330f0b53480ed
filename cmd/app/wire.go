//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Sadiya-27/Customer-support-bot/internal/bootstrap"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/fulfillment"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/notify"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/config"
	httpiface "github.com/Sadiya-27/Customer-support-bot/internal/interface/http"
	"github.com/Sadiya-27/Customer-support-bot/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideBotConfig,
		provideNotifyConfig,
		provideTurnCounters,
		providePostgresPool,
		provideKnowledgeRepository,
		provideMatcher,
		provideQueryStore,
		provideUnansweredCounter,
		provideMailer,
		querylog.NewRecorder,
		notify.NewNotifier,
		fulfillment.NewService,
		wire.Bind(new(fulfillment.Matcher), new(*faq.Matcher)),
		wire.Bind(new(fulfillment.Recorder), new(*querylog.Recorder)),
		wire.Bind(new(fulfillment.Notifier), new(*notify.Notifier)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
