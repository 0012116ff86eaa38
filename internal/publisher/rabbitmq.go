package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"site_functions/internal/domain"
)

const defaultDialTimeout = 2 * time.Second

// RabbitMQ publishes engagement events to a topic exchange. Each event is
// routed under "<routing key>.<event type>", e.g. "engagement.like.created".
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL         string
	Exchange    string
	RoutingKey  string
	QueueName   string
	DialTimeout time.Duration
}

func NewRabbitMQ(ctx context.Context, cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.DialConfig(cfg.URL, amqp.Config{
		Dial: amqp.DefaultDial(dialTimeout(ctx, cfg.DialTimeout)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Debug("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"binding", bindingKey(cfg.RoutingKey),
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// declareTopology makes sure the exchange exists and that the events queue
// receives every engagement event type.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, bindingKey(cfg.RoutingKey), cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// dialTimeout caps the configured timeout by what is left of ctx.
func dialTimeout(ctx context.Context, configured time.Duration) time.Duration {
	timeout := configured
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = max(remaining, time.Millisecond)
		}
	}
	return timeout
}

func eventRoutingKey(prefix string, eventType domain.EventType) string {
	return prefix + "." + string(eventType)
}

func bindingKey(prefix string) string {
	return prefix + ".#"
}

func (r *RabbitMQ) Publish(ctx context.Context, event *domain.EngagementEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	key := eventRoutingKey(r.routingKey, event.Type)
	err = r.channel.PublishWithContext(ctx, r.exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         string(event.Type),
		Body:         body,
		Timestamp:    event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	r.logger.Debug("published engagement event",
		"routing_key", key,
		"article_id", event.ArticleID,
		"comment_id", event.CommentID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
