package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"atlas/pkg/config"
	"atlas/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const EventsExchange = "atlas.events"

// Routing keys of the domain events.
const (
	EventUserRegistered    = "user.registered"
	EventCourseSubmitted   = "course.submitted"
	EventClassSubmitted    = "class.submitted"
	EventPostCreated       = "post.created"
	EventPremiumActivated  = "premium.activated"
	EventDonationCompleted = "donation.completed"
)

// Publisher is what the use cases need from the broker.
type Publisher interface {
	PublishEvent(routingKey string, payload interface{}) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Event is the envelope of every published message.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// PublishEvent publishes a persistent JSON event on the topic exchange.
func (c *Client) PublishEvent(routingKey string, payload interface{}) error {
	body, err := json.Marshal(Event{
		Type:       routingKey,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		EventsExchange, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish event to exchange=%s, routing_key=%s: %v", EventsExchange, routingKey, err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published event to exchange=%s, routing_key=%s", EventsExchange, routingKey)
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(string, interface{}) error {
	return nil
}
