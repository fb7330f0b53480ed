package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/fulfillment"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/notify"
	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/config"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/faqrepo"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/mailer"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/queryrepo"
	"github.com/Sadiya-27/Customer-support-bot/internal/infra/trending"
	"github.com/Sadiya-27/Customer-support-bot/pkg/metrics"
)

func provideBotConfig(cfg *config.Config) fulfillment.Config {
	return fulfillment.Config{
		IdentityIntent:   cfg.Bot.IdentityIntent,
		FallbackIntent:   cfg.Bot.FallbackIntent,
		EmailSlot:        cfg.Bot.EmailSlot,
		LocationSlot:     cfg.Bot.LocationSlot,
		SessionEmailKey:  cfg.Bot.SessionEmailKey,
		GreetingTemplate: cfg.Bot.GreetingTemplate,
		ApologyMessage:   cfg.Bot.ApologyMessage,
	}
}

func provideNotifyConfig(cfg *config.Config) notify.Config {
	return notify.Config{
		OperatorAddress: cfg.Notifier.OperatorEmail,
		SenderAddress:   cfg.Notifier.SenderEmail,
	}
}

func provideTurnCounters() *metrics.TurnCounters {
	return metrics.NewTurnCounters()
}

// providePostgresPool returns the shared pool, or nil when no DSN is
// configured and the memory fallbacks should be used instead.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory storage")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory storage", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory storage", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory storage", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres storage enabled")
	return pool
}

func provideKnowledgeRepository(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) faq.Repository {
	if pool != nil {
		return faqrepo.NewPostgresRepository(pool, cfg.KnowledgeBase.Table)
	}
	repo := faqrepo.NewMemoryRepository()
	if path := strings.TrimSpace(cfg.KnowledgeBase.SeedFile); path != "" {
		entries, err := faqrepo.LoadSeedFile(path)
		if err != nil {
			logger.Error("failed to load knowledge base seed file", "path", path, "error", err)
		} else {
			repo.Add(entries...)
			logger.Info("knowledge base seeded from file", "path", path, "entries", len(entries))
		}
	}
	return repo
}

func provideMatcher(cfg *config.Config, repo faq.Repository) *faq.Matcher {
	return faq.NewMatcher(repo, cfg.KnowledgeBase.ScanPageSize)
}

func provideQueryStore(cfg *config.Config, pool *pgxpool.Pool) querylog.Store {
	if pool != nil {
		return queryrepo.NewPostgresStore(pool, cfg.QueryLog.Table)
	}
	return queryrepo.NewMemoryStore()
}

func provideUnansweredCounter(cfg *config.Config, logger *slog.Logger) querylog.Counter {
	if cfg.Trending.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory counter", "error", err)
			return trending.NewMemoryCounter()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory counter", "error", err)
			return trending.NewMemoryCounter()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory counter", "error", err)
		} else {
			logger.Info("valkey unanswered counter enabled", "addr", cfg.Trending.Valkey.Addr)
			return trending.NewValkeyCounter(client, "queries")
		}
	}
	return trending.NewMemoryCounter()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Trending.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Trending.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Trending.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideMailer(cfg *config.Config, logger *slog.Logger) notify.Mailer {
	if strings.TrimSpace(cfg.Notifier.APIKey) == "" {
		logger.Info("mail api key not set, escalation emails go to the log")
		return mailer.NewLogMailer(logger)
	}
	client, err := mailer.NewClient(cfg.Notifier.APIKey, cfg.Notifier.APIBaseURL, cfg.Notifier.Timeout)
	if err != nil {
		logger.Error("failed to build mail client, escalation emails go to the log", "error", err)
		return mailer.NewLogMailer(logger)
	}
	return client
}
