// Package app builds the service graph shared by the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"tag-ledger/internal/config"
	"tag-ledger/internal/models"
	"tag-ledger/internal/repositories"
	"tag-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB

	Tags     repositories.TagRepositoryInterface
	Banks    repositories.BankRepositoryInterface
	Ledger   repositories.LedgerStoreInterface
	Summary  repositories.SummaryRepositoryInterface
	Jobs     repositories.RecomputeJobRepositoryInterface
	Imports  repositories.ImportJobRepositoryInterface
	Router   *services.TableRouter
	Metrics  *services.PrometheusMetrics
	Events   services.RecomputeLoggerInterface
	Breaker  services.CircuitBreakerInterface
	Classify services.ClassifierInterface

	Engine        services.TagAggregationServiceInterface
	Queue         services.RecomputeQueueServiceInterface
	TagService    services.TagServiceInterface
	BankService   services.BankServiceInterface
	TxService     services.TransactionServiceInterface
	ImportService *services.ImportService
}

// New wires repositories and services over db. Metrics are registered on reg.
func New(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer) (*App, error) {
	classifierConfig, err := services.LoadClassifierConfig(cfg.Engine.ClassifierConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier config: %w", err)
	}

	a := &App{
		Config:   cfg,
		DB:       db,
		Tags:     repositories.NewTagRepository(db),
		Banks:    repositories.NewBankRepository(db),
		Ledger:   repositories.NewLedgerStore(db),
		Summary:  repositories.NewSummaryRepository(db),
		Jobs:     repositories.NewRecomputeJobRepository(db),
		Imports:  repositories.NewImportJobRepository(db),
		Router:   services.NewTableRouter(cfg.Engine.TableNamespace),
		Metrics:  services.NewPrometheusMetrics(reg),
		Events:   services.NewRecomputeLogger(slog.Default()),
		Classify: services.NewClassifier(classifierConfig),
	}

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = a.onBreakerStateChange
	a.Breaker = services.NewCircuitBreaker(breakerConfig)

	scanConfig := services.DefaultScanConfig()
	if cfg.Engine.PageSize > 0 {
		scanConfig.PageSize = cfg.Engine.PageSize
	}
	if cfg.Engine.PageDelay >= 0 {
		scanConfig.PageDelay = cfg.Engine.PageDelay
	}

	a.Engine = services.NewTagAggregationService(
		a.Tags,
		a.Banks,
		a.Ledger,
		services.NewSummaryWriter(a.Summary),
		a.Classify,
		a.Router,
		scanConfig,
		a.Events,
		a.Metrics,
	)
	a.Queue = services.NewRecomputeQueueService(
		a.Jobs,
		a.Engine,
		a.Events,
		a.Metrics,
		a.Breaker,
		cfg.Queue.Workers,
		cfg.Queue.PollInterval,
	)
	a.TagService = services.NewTagService(a.Tags, a.Summary, a.Queue, a.Metrics)
	a.BankService = services.NewBankService(a.Banks, a.Ledger, a.Router)
	a.TxService = services.NewTransactionService(a.Banks, a.Tags, a.Ledger, a.Router, a.Queue, a.Metrics)
	a.ImportService = services.NewImportService(
		a.Imports,
		a.Banks,
		a.Ledger,
		a.Router,
		a.Queue,
		a.Events,
		a.Metrics,
		cfg.Import.BatchSize,
	)

	return a, nil
}

func (a *App) onBreakerStateChange(name string, from, to models.CircuitBreakerState) {
	a.Events.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
	a.Metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": name})
}
