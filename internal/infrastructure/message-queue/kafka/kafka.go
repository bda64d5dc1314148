package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/config"
	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/dto"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter returns nil when no broker is configured.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

type EventPublisher struct {
	writer *kafka.Writer
}

func CreateEventPublisher(writer *kafka.Writer) *EventPublisher {
	return &EventPublisher{writer: writer}
}

func (p *EventPublisher) PublishEvent(ctx context.Context, key string, message dto.KafkaMessage) error {
	if p == nil || p.writer == nil {
		return nil
	}

	msg, err := encodeMessage(key, message)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}

	return p.writer.Close()
}

func encodeMessage(key string, message dto.KafkaMessage) (kafka.Message, error) {
	value, err := json.Marshal(message)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}, nil
}
