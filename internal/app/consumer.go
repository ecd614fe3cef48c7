package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"restropay/internal/absence"
	"restropay/internal/currency"
	"restropay/internal/employee"
	"restropay/internal/estimation"
	"restropay/internal/events"
	"restropay/internal/messaging/kafka/consumer"
	"restropay/internal/payment"
	"restropay/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	estimationService := estimation.NewServiceWithCache(
		employee.NewRepository(gormDB),
		absence.NewRepository(gormDB),
		payment.NewRepository(gormDB),
		currency.NewRupeeFormatter(),
		redisClient,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		GroupTopics:    []string{events.AbsenceChangedTopic, events.PaymentChangedTopic, events.EmployeeChangedTopic},
		GroupID:        "restropay-estimation-cache",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLedgerChanges(ctx, reader, estimationService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
