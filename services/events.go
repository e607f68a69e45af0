package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Mohajiro/moneyponey/utils"
)

const (
	ExpenseCreated = "expense.created"
	ExpenseUpdated = "expense.updated"
	ExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is the message emitted after every successful mutation.
type ExpenseEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ExpenseID  int64     `json:"expense_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewExpenseEvent(eventType string, expenseID int64) ExpenseEvent {
	return ExpenseEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		ExpenseID:  expenseID,
		OccurredAt: time.Now().UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, event ExpenseEvent) error
	Close() error
}

// RabbitMQPublisher sends expense events to a durable queue. The
// publisher is optional: when AMQP_URL is unset the service simply
// runs without one.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewRabbitMQPublisher(amqpURL string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	queue, err := ch.QueueDeclare(
		"expense_events", // name
		true,             // durable
		false,            // auto-delete
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQPublisher{conn: conn, channel: ch, queue: queue}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event ExpenseEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		"",           // default exchange
		p.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID,
			Timestamp:   event.OccurredAt,
			Body:        body,
		},
	)
	if err != nil {
		return err
	}

	utils.SafeDebug("Published %s for expense %d", event.Type, event.ExpenseID)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
