package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ToolRent/GoToolRent/configs"
	"github.com/ToolRent/GoToolRent/internal/application/usecase/category"
	"github.com/ToolRent/GoToolRent/internal/application/usecase/checkout"
	"github.com/ToolRent/GoToolRent/internal/application/usecase/order"
	"github.com/ToolRent/GoToolRent/internal/application/usecase/product"
	"github.com/ToolRent/GoToolRent/internal/infra/database"
	"github.com/ToolRent/GoToolRent/internal/infra/notification"
	"github.com/ToolRent/GoToolRent/internal/infra/web"
	"github.com/ToolRent/GoToolRent/internal/infra/web/handler"
	"github.com/ToolRent/GoToolRent/pkg/logger"
	"github.com/ToolRent/GoToolRent/pkg/metrics"
	"github.com/ToolRent/GoToolRent/pkg/otel"
)

const serviceName = "toolrent-api"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	isProd := config.Env == "production"
	log := logger.NewLogger(serviceName, isProd)

	if config.OtelCollector != "" {
		shutdown, err := otel.InitProvider(ctx, serviceName, config.OtelCollector)
		if err != nil {
			panic(err)
		}
		defer shutdown()
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)
	db, err := sqlx.Open(config.DBDriver, dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err = db.PingContext(ctx); err != nil {
		panic(err)
	}
	if err = database.EnsureSchema(ctx, db); err != nil {
		panic(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer rdb.Close()

	amqpConn, err := amqp.Dial(config.AMQPURL)
	if err != nil {
		panic(err)
	}
	defer amqpConn.Close()
	amqpChannel, err := amqpConn.Channel()
	if err != nil {
		panic(err)
	}
	defer amqpChannel.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	uowFactory := database.NewUnitOfWorkFactory(db, log)
	smsSender := notification.NewAMQPSMSSender(amqpChannel)
	emailSender := notification.NewSMTPEmailSender(notification.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUser,
		Password: config.SMTPPassword,
		From:     config.SMTPFrom,
	})

	checkoutUseCase := checkout.NewCheckoutUseCase(uowFactory, smsSender, emailSender, log,
		checkout.OperatorContact{
			SMSFrom: config.SMSFrom,
			SMSTo:   config.OperatorPhone,
			EmailTo: config.OperatorEmail,
		})
	checkoutUseCase.NotifyAdminUser = config.NotifyAdminUser

	router := web.NewRouter(web.RouterDeps{
		ServiceName: serviceName,
		Log:         log,
		Metrics:     m,
		Registry:    registry,
		Products: handler.NewProductHandler(
			product.NewListUseCase(uowFactory),
			product.NewGetUseCase(uowFactory),
			product.NewCreateUseCase(uowFactory),
			product.NewUpdateUseCase(uowFactory),
			product.NewDeleteUseCase(uowFactory),
		),
		Categories: handler.NewCategoryHandler(
			category.NewListUseCase(uowFactory),
			category.NewGetUseCase(uowFactory),
			category.NewCreateUseCase(uowFactory),
			category.NewUpdateUseCase(uowFactory),
			category.NewDeleteUseCase(uowFactory),
		),
		Orders: handler.NewOrderHandler(
			order.NewListUseCase(uowFactory),
			order.NewGetUseCase(uowFactory),
			order.NewUpdateStatusUseCase(uowFactory, m),
			order.NewDeleteUseCase(uowFactory),
		),
		Checkout: handler.NewCheckoutHandler(&checkout.MetricsDecorator{
			Next:    checkoutUseCase,
			Metrics: m,
		}),
		Health: handler.NewHealthHandler(serviceName,
			handler.WithPostgres(db),
			handler.WithRedis(rdb),
			handler.WithRabbitMQ(config.AMQPURL),
		),
	})

	server := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gCtx, "server running", logger.String("port", config.WebServerPort))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(ctx, "server stopped", logger.WithError(err))
	}
}
