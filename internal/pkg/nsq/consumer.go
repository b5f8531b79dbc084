package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/urbancabz/console/internal/pkg/logger"
)

// maxAttempts bounds redelivery of a message whose handler keeps failing
const maxAttempts = 5

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a new NSQ consumer for a topic/channel connected to one nsqd
func NewConsumer(topic, channel, address string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = maxAttempts

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(nsq.HandlerFunc(Handle(topic, handler)))

	if err := consumer.ConnectToNSQD(address); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// Handle adapts handler to go-nsq. Returning an error requeues the message;
// after maxAttempts the message is logged and finished.
func Handle(topic string, handler MessageHandler) func(*nsq.Message) error {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}

		if err := handler(message.Body); err != nil {
			if message.Attempts >= maxAttempts {
				logger.Error("Dropping NSQ message after max attempts",
					logger.String("topic", topic),
					logger.Int("attempts", int(message.Attempts)),
					logger.Err(err))
				return nil
			}
			logger.Warn("Error processing NSQ message",
				logger.String("topic", topic),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
