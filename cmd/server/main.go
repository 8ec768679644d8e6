package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	ratesclient "max.ks1230/finance-app/internal/clients/rates"

	"max.ks1230/finance-app/internal/clients/cache"
	"max.ks1230/finance-app/internal/clients/kafka"
	"max.ks1230/finance-app/internal/config"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/budgets"
	"max.ks1230/finance-app/internal/model/rates"
	"max.ks1230/finance-app/internal/model/recurring"
	"max.ks1230/finance-app/internal/model/reports"
	"max.ks1230/finance-app/internal/model/storage"
	"max.ks1230/finance-app/internal/model/transactions"
	"max.ks1230/finance-app/internal/model/users"
	"max.ks1230/finance-app/internal/model/wallets"
	"max.ks1230/finance-app/internal/server"
	"max.ks1230/finance-app/internal/tracing"
)

func main() {
	logger.Info("Server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	tracingCloser, err := tracing.Init("finance-api")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer tracingCloser.Close()

	db, err := storage.NewPostgresStorage(conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init postgres", zap.Error(err))
	}
	defer db.Close()

	ratesService := rates.NewService(db, ratesclient.New(conf.Rates()), conf.App())
	puller := rates.NewPuller(ratesService, conf.App())

	usersService := users.NewService(db, conf.App())
	walletsService := wallets.NewService(db)
	transactionsService := transactions.NewService(db, ratesService, usersService)
	budgetsService := budgets.NewService(db)
	reportsGenerator := reports.NewGenerator(db, transactionsService, usersService)
	generator := recurring.NewGenerator(db, transactionsService, conf.App())

	producer, err := kafka.NewProducer(conf.Kafka())
	if err != nil {
		logger.Fatal("failed to init kafka producer", zap.Error(err))
	}
	defer producer.Close()

	memcached, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}

	srv := server.New(conf.Server(), server.Deps{
		Users:        usersService,
		Wallets:      walletsService,
		Transactions: transactionsService,
		Budgets:      budgetsService,
		Rates:        ratesService,
		Reports:      reportsGenerator,
		Producer:     producer,
		ReportsCache: memcached,
	})

	logger.Info("Server init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go puller.Pull(ctx)
	go generator.Run(ctx)

	if err = srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
