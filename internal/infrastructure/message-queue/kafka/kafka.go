package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Publisher emits one event per state change or order.
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{})
	Close() error
}

type WriterPublisher struct {
	writer *kafka.Writer
}

// CreateKafkaPublisher returns a publisher for the configured topic, or a
// no-op publisher when no broker is configured.
func CreateKafkaPublisher(config *config.Config) Publisher {
	if config.KafkaConfig.BrokerAddress == "" {
		return NopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Str("component", "KafkaPublisher").Int("messages", len(messages)).Msg("dropping events")
			}
		},
	}

	return &WriterPublisher{writer: writer}
}

func (p *WriterPublisher) Publish(ctx context.Context, eventType string, data interface{}) {
	msg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "KafkaPublisher").Msg("")
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ulid.Make().String()),
		Value: msg,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "KafkaPublisher").Str("event", eventType).Msg("")
	}
}

func (p *WriterPublisher) Close() error {
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, eventType string, data interface{}) {
	log.Ctx(ctx).Debug().Str("component", "NopPublisher").Str("event", eventType).Msg("")
}

func (NopPublisher) Close() error {
	return nil
}
