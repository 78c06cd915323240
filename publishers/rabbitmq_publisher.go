package publishers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/streadway/amqp"

	"vacation-rentals/domain"
	"vacation-rentals/utils"
)

// PropertyMessage is the body published for property changes.
type PropertyMessage struct {
	Action     string `json:"action"` // only "create" is produced today
	PropertyID string `json:"property_id"`
}

// PropertyEventPublisher announces committed property changes.
type PropertyEventPublisher interface {
	PublishPropertyCreated(ctx context.Context, property *domain.VacationProperty) error
	Close() error
}

// RabbitMQPublisher publishes to a durable queue on the default exchange.
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	mu         sync.Mutex // amqp channels are not safe for concurrent publish
}

// NewRabbitMQPublisher dials rabbitURL and declares queueName.
func NewRabbitMQPublisher(rabbitURL, queueName string) (*RabbitMQPublisher, error) {
	utils.Logger.Infof("Connecting to RabbitMQ for queue '%s'", queueName)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishPropertyCreated sends {"action":"create","property_id":...}.
func (p *RabbitMQPublisher) PublishPropertyCreated(ctx context.Context, property *domain.VacationProperty) error {
	body, err := json.Marshal(NewPropertyCreatedMessage(property))
	if err != nil {
		return fmt.Errorf("marshal property message: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", p.queueName, err)
	}
	return nil
}

// Close shuts the channel and the connection.
func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.connection.Close()
		return err
	}
	return p.connection.Close()
}

// NewPropertyCreatedMessage builds the message for a new listing.
func NewPropertyCreatedMessage(property *domain.VacationProperty) PropertyMessage {
	return PropertyMessage{
		Action:     "create",
		PropertyID: strconv.FormatUint(uint64(property.ID), 10),
	}
}

// NoopPublisher is used when RABBITMQ_URL is unset.
type NoopPublisher struct{}

func (NoopPublisher) PublishPropertyCreated(context.Context, *domain.VacationProperty) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
