package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"bistro/internal/models"

	log "github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

const (
	// PaymentEventsQueue receives a message for every recorded payment.
	PaymentEventsQueue = "payment_events"
	// CartCleanupQueue receives cart deletions that failed after a payment was recorded.
	CartCleanupQueue = "cart_cleanup"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// amqp channels are not safe for concurrent publishing.
	mu sync.Mutex
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the queues this service uses.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, name := range []string{PaymentEventsQueue, CartCleanupQueue} {
		if _, err := declare(ch, name); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}

	log.WithField("queues", []string{PaymentEventsQueue, CartCleanupQueue}).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declare(ch *amqp.Channel, name string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", name, err)
	}
	return q, nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// PublishJSON marshals body and publishes it as a persistent message on queue.
func (c *Client) PublishJSON(queue string, body interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", queue, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		"",    // default exchange
		queue, // routing key is the queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}

	log.WithField("queue", queue).Debugf("sent %s", payload)
	return nil
}

// PublishPaymentCreated announces a recorded payment.
func (c *Client) PublishPaymentCreated(event models.PaymentEvent) error {
	return c.PublishJSON(PaymentEventsQueue, event)
}

// PublishCartCleanup queues a cart deletion to be retried by the cleanup consumer.
func (c *Client) PublishCartCleanup(task models.CartCleanup) error {
	return c.PublishJSON(CartCleanupQueue, task)
}

// ConsumeCartCleanup starts delivering cart cleanup tasks to handler until the channel closes.
// A failed task is requeued once; a second failure drops it.
func (c *Client) ConsumeCartCleanup(handler func(body []byte) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		CartCleanupQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", CartCleanupQueue).Info("waiting for cart cleanup tasks")

	for msg := range msgs {
		entry := log.WithField("deliveryTag", msg.DeliveryTag)
		err := handler(msg.Body)
		if err != nil {
			entry.WithError(err).Warn("cart cleanup failed")
		}
		if settleErr := settle(msg, verdict(msg.Redelivered, err)); settleErr != nil {
			entry.WithError(settleErr).Error("failed to settle message")
		}
	}
	return nil
}

// outcome is what happens to a delivery once its handler returned.
type outcome int

const (
	outcomeAck outcome = iota
	outcomeRequeue
	outcomeDrop
)

// verdict decides the fate of a delivery: success is acked, a first failure is
// requeued and a failure of a redelivered message is dropped.
func verdict(redelivered bool, handlerErr error) outcome {
	switch {
	case handlerErr == nil:
		return outcomeAck
	case !redelivered:
		return outcomeRequeue
	default:
		return outcomeDrop
	}
}

// acknowledger is the part of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func settle(msg acknowledger, o outcome) error {
	switch o {
	case outcomeAck:
		return msg.Ack(false)
	case outcomeRequeue:
		return msg.Nack(false, true)
	default:
		return msg.Nack(false, false)
	}
}
