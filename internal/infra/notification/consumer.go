package notification

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ToolRent/GoToolRent/pkg/logger"
	carrier "github.com/ToolRent/GoToolRent/pkg/otel"
)

// SMSGateway is the carrier-side collaborator the worker hands messages
// to. The real implementation wraps the provider's API.
type SMSGateway interface {
	Deliver(ctx context.Context, from, to, body string) error
}

// LogGateway stands in for a real carrier integration: it only records
// the delivery.
type LogGateway struct {
	Log logger.Logger
}

func (g *LogGateway) Deliver(ctx context.Context, from, to, body string) error {
	g.Log.Info(ctx, "sms delivered",
		logger.String("from", from),
		logger.String("to", to),
		logger.Int("length", len(body)),
	)
	return nil
}

// Consumer drains the SMS queue and pushes each message through the
// wrapped handler chain.
type Consumer struct {
	Conn    *amqp.Connection
	Handler MessageHandler
	Logger  logger.Logger
}

func NewConsumer(conn *amqp.Connection, handler MessageHandler, l logger.Logger) *Consumer {
	return &Consumer{Conn: conn, Handler: handler, Logger: l}
}

// GatewayHandler is the innermost handler: decode and deliver.
func GatewayHandler(gateway SMSGateway) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var sms SMSMessage
		if err := json.Unmarshal(msg, &sms); err != nil {
			return fmt.Errorf("unmarshal sms message: %w", err)
		}
		return gateway.Deliver(ctx, sms.From, sms.To, sms.Body)
	}
}

func (c *Consumer) Start(ctx context.Context, queueName string) error {
	ch, err := c.Conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}
	if err := ch.QueueBind(queueName, queueName, "amq.direct", false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", queueName, err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	c.Logger.Info(ctx, "waiting for messages", logger.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			c.handle(ctx, queueName, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, queueName string, d amqp.Delivery) {
	amqpCarrier := carrier.AMQPHeadersCarrier(d.Headers)
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, amqpCarrier)

	tracer := otel.GetTracerProvider().Tracer("notification-worker")
	msgCtx, span := tracer.Start(msgCtx, "DeliverSMS", trace.WithAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.message_id", d.MessageId),
	))
	defer span.End()

	if err := c.Handler(msgCtx, d.Body, d.Headers); err != nil {
		c.Logger.Error(msgCtx, "sms delivery failed, requeueing",
			logger.String("message_id", d.MessageId),
			logger.WithError(err),
		)
		span.RecordError(err)
		d.Nack(false, true)
		return
	}
	d.Ack(false)
}
