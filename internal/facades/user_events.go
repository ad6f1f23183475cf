package facades

//go:generate mockgen -source=user_events.go -destination=user_events_mock.go -package=facades

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-accounts/internal/logger"
	"github.com/sbilibin2017/gw-accounts/internal/models"
	"github.com/segmentio/kafka-go"
)

// UserRegisteredEventType is carried in the "event" header of every registration message.
const UserRegisteredEventType = "user.registered"

// MessageWriter is the subset of *kafka.Writer the facade needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// UserEventsKafkaFacade publishes account lifecycle events to Kafka.
type UserEventsKafkaFacade struct {
	writer MessageWriter
}

// NewUserEventsKafkaFacade creates a new facade with a Kafka writer.
func NewUserEventsKafkaFacade(writer MessageWriter) *UserEventsKafkaFacade {
	return &UserEventsKafkaFacade{writer: writer}
}

// PublishUserRegistered writes a registration event keyed by user id.
func (f *UserEventsKafkaFacade) PublishUserRegistered(ctx context.Context, event models.UserRegisteredEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(UserRegisteredEventType)},
		},
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user event via kafka",
			"event", UserRegisteredEventType, "user_id", event.UserID, "error", err)
		return err
	}
	return nil
}

// NewKafkaWriter builds an asynchronous writer for topic. Delivery errors
// are reported to the log since async writes return before acknowledgement.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		MaxAttempts:            3,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("kafka delivery failed", "topic", topic, "messages", len(messages), "error", err)
			}
		},
	}
}
