package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	ratesclient "max.ks1230/finance-app/internal/clients/rates"

	"max.ks1230/finance-app/internal/clients/cache"
	"max.ks1230/finance-app/internal/clients/kafka"
	"max.ks1230/finance-app/internal/config"
	"max.ks1230/finance-app/internal/logger"
	"max.ks1230/finance-app/internal/model/rates"
	"max.ks1230/finance-app/internal/model/reports"
	"max.ks1230/finance-app/internal/model/storage"
	"max.ks1230/finance-app/internal/model/transactions"
	"max.ks1230/finance-app/internal/model/users"
	"max.ks1230/finance-app/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	tracingCloser, err := tracing.Init("finance-reporter")
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
	usersService := users.NewService(db, conf.App())
	transactionsService := transactions.NewService(db, ratesService, usersService)
	generator := reports.NewGenerator(db, transactionsService, usersService)

	memcached, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached", zap.Error(err))
	}
	sink := reports.NewSink(memcached)

	consumer, err := kafka.NewConsumer(conf.Kafka(), generator, sink)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
