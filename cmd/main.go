package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/andeanbank/microservices/credit/internal/api"
	"github.com/andeanbank/microservices/credit/internal/clients/cards"
	"github.com/andeanbank/microservices/credit/internal/clients/customers"
	"github.com/andeanbank/microservices/credit/internal/gateway"
	"github.com/andeanbank/microservices/credit/internal/repository"
	"github.com/andeanbank/microservices/credit/internal/service"
	"github.com/andeanbank/microservices/credit/pkg/broker"
	"github.com/andeanbank/microservices/credit/pkg/config"
	"github.com/andeanbank/microservices/credit/pkg/logger"
	"github.com/andeanbank/microservices/credit/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	customerClient := customers.NewClient(cfg.CustomerService.BaseURL, cfg.CustomerService.RetryMax)
	cardClient := cards.NewClient(cfg.CardService.BaseURL)

	gw := gateway.New(customerClient, cardClient, gateway.Config{
		CustomerTimeout: cfg.CustomerService.Timeout,
		CardTimeout:     cfg.CardService.Timeout,
		Interval:        cfg.Breaker.Interval,
		Cooldown:        cfg.Breaker.Cooldown,
		MinRequests:     cfg.Breaker.MinRequests,
		FailureRatio:    cfg.Breaker.FailureRatio,
	})

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.CreditEventsTopic)
	defer producer.Close()

	s := service.New(repo, gw, gw, producer, nil)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
