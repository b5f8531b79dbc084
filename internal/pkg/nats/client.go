package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/urbancabz/console/internal/pkg/logger"
)

// MessageHandler processes the payload of one message
type MessageHandler func(data []byte) error

// Client is a core NATS connection used for fire-and-forget fan-out between console
// instances. Nothing sent through it needs durability.
type Client struct {
	conn *nats.Conn
	subs []*nats.Subscription
}

// NewClient connects to NATS with reconnects enabled
func NewClient(url, name string) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("failed to connect to NATS server: empty url")
	}

	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports whether the connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Publish sends raw data to subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON encodes message as JSON and publishes it
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.Publish(subject, data)
}

// Subscribe registers handler for subject. Handler errors are logged and dropped.
func (c *Client) Subscribe(subject string, handler MessageHandler) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing NATS message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	c.subs = append(c.subs, sub)
	logger.Info("Subscribed to NATS subject", logger.String("subject", subject))
	return nil
}

// Close drains subscriptions and closes the connection
func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
