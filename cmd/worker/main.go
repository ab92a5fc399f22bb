package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/ToolRent/GoToolRent/configs"
	"github.com/ToolRent/GoToolRent/internal/infra/notification"
	"github.com/ToolRent/GoToolRent/internal/infra/storage"
	"github.com/ToolRent/GoToolRent/pkg/logger"
	"github.com/ToolRent/GoToolRent/pkg/metrics"
	"github.com/ToolRent/GoToolRent/pkg/otel"
)

const serviceName = "toolrent-worker"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewLogger(serviceName, config.Env == "production")

	if config.OtelCollector != "" {
		shutdown, err := otel.InitProvider(ctx, serviceName, config.OtelCollector)
		if err != nil {
			panic(err)
		}
		defer shutdown()
	}

	conn, err := amqp.Dial(config.AMQPURL)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer rdb.Close()

	m := metrics.NewPrometheusMetrics(prometheus.NewRegistry(), serviceName)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "sms-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	handler := notification.GatewayHandler(&notification.LogGateway{Log: log})
	handler = notification.WrapResilient(m, "sms", 5*time.Second, breaker, handler)
	handler = notification.WrapExponentialBackoff(log, m, "sms", 3, 500*time.Millisecond, handler)
	handler = notification.WrapIdempotency(log, storage.NewRedisAdapter(rdb), "sms", 24*time.Hour, handler)

	consumer := notification.NewConsumer(conn, handler, log)
	if err := consumer.Start(ctx, notification.SMSQueue); err != nil && ctx.Err() == nil {
		panic(err)
	}
}
