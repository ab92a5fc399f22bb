package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"

	"github.com/ToolRent/GoToolRent/internal/domain/entity"
	carrier "github.com/ToolRent/GoToolRent/pkg/otel"
)

const SMSQueue = "notifications.sms"

// SMSMessage is the wire shape published for the gateway worker.
type SMSMessage struct {
	MessageID string `json:"messageId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
}

// AMQPSMSSender publishes SMS requests to the gateway queue. Delivery to
// the carrier happens in the worker; from the checkout workflow's view
// this is fire and forget.
type AMQPSMSSender struct {
	Channel *amqp.Channel
}

func NewAMQPSMSSender(ch *amqp.Channel) *AMQPSMSSender {
	return &AMQPSMSSender{Channel: ch}
}

func (s *AMQPSMSSender) SendSMS(ctx context.Context, from, to, body string) error {
	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))

	msg := SMSMessage{
		MessageID: uuid.NewString(),
		From:      from,
		To:        to,
		Body:      body,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: marshal sms: %v", entity.ErrNotification, err)
	}
	headers["x-event-id"] = msg.MessageID

	err = s.Channel.PublishWithContext(
		ctx,
		"amq.direct",
		SMSQueue,
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			MessageId:   msg.MessageID,
			Timestamp:   time.Now(),
			Body:        payload,
		})
	if err != nil {
		return fmt.Errorf("%w: publish sms: %v", entity.ErrNotification, err)
	}
	return nil
}
