package events

import (
	"context"
	"time"

	"audit-service/internal/app/contracts"
	"audit-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Connection *amqp091.Connection
	Queue      string
	Log        *zap.Logger
}

// NewRabbitMQPublisher declares the queue once up front so publishing never
// races queue creation.
func NewRabbitMQPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.ErrEventPublish(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrEventPublish(err)
	}

	return &rabbitMQPublisher{
		Connection: connection,
		Queue:      queue,
		Log:        logger,
	}, nil
}

type eventEnvelope struct {
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, eventName string, payload interface{}) error {
	body, err := json.Marshal(eventEnvelope{
		Event:      eventName,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrEventPublish(err)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.Queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrEventPublish(err)
	}

	p.Log.Debug("event published",
		zap.String("event", eventName),
		zap.String("queue", p.Queue),
	)
	return nil
}
