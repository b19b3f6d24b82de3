package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	apihandler "github.com/a0l6g0r8a9l2/investHelperBE/internal/api/handlers/notification"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/api/router"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/api/server"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/cache"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/config"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/delivery"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/lifecycle"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/outbound"
	notifmsg "github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/handlers/notification"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/rabbitmq/queue"
	notifrepo "github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/notification"
	pricerepo "github.com/a0l6g0r8a9l2/investHelperBE/internal/repository/price"
	notifsvc "github.com/a0l6g0r8a9l2/investHelperBE/internal/service/notification"
	pricesvc "github.com/a0l6g0r8a9l2/investHelperBE/internal/service/price"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/worker"
	"github.com/a0l6g0r8a9l2/investHelperBE/pkg/email"
	"github.com/a0l6g0r8a9l2/investHelperBE/pkg/quotes"
	"github.com/a0l6g0r8a9l2/investHelperBE/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewStatusQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create status queue")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	store := cache.New(rdb, cfg.Retry)
	notifRepo := notifrepo.NewRepository(store)
	priceRepo := pricerepo.NewRepository(store)

	quoteClient := quotes.NewClient(cfg.Quotes.BaseURL, cfg.Quotes.Timeout)
	priceService := pricesvc.NewService(priceRepo, quoteClient)

	statusNotifier := outbound.NewNotifier(q, cfg.Retry)
	manager := lifecycle.NewManager(ctx, priceService, notifRepo, statusNotifier)
	registry := notifsvc.NewService(notifRepo, priceService, manager)

	telegramClient := telegram.NewClient(cfg.Telegram.Token)
	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Subject,
	)

	sender := delivery.NewSender(map[string]delivery.Notifier{
		"telegram": telegramClient,
		"email":    emailClient,
	})
	messageHandler := notifmsg.NewHandler(sender, cfg.Delivery.Channels, cfg.Delivery.EmailTo)

	notifier := worker.NewNotifier(q, messageHandler)
	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	notifHandler := apihandler.NewHandler(registry, val)
	r := router.New(notifHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	zlog.Logger.Info().Msg("draining lifecycles")
	manager.Wait()

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
