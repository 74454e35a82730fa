package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/koffe-supply/koffe-be/config"
	circuitbreaker "github.com/koffe-supply/koffe-be/internal/infrastructure/circuit-breaker"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const maxRetries = 3

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes domain events to a single topic. Delivery is best effort:
// failures are retried, then logged and dropped.
type Publisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	backoff time.Duration
}

func CreateKafkaWriter(conf config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(conf.BrokerAddress),
		Topic:                  conf.BrokerTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}

func CreatePublisher(writer messageWriter) *Publisher {
	return &Publisher{
		writer:  writer,
		breaker: circuitbreaker.CreateCircuitBreaker[struct{}]("kafka-publisher"),
		backoff: time.Second,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType string, key string, data interface{}) {
	logger := log.Ctx(ctx).With().Str("component", "Publish").Str("event_type", eventType).Logger()

	msg, err := json.Marshal(dto.KafkaMessage{
		EventType: eventType,
		EventID:   ulid.Make().String(),
		Data:      data,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal kafka message")
		return
	}

	// the request may finish before the retries do
	ctx = context.WithoutCancel(ctx)

	for i := 0; i < maxRetries; i++ {
		_, err = p.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: msg})
		})
		if err == nil {
			return
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logger.Error().Err(err).Msg("dropping event, broker circuit is open")
			return
		}

		logger.Warn().Err(err).Int("attempt", i+1).Msg("failed to write kafka message")
		if i < maxRetries-1 {
			time.Sleep(p.backoff * time.Duration(i+1))
		}
	}

	logger.Error().Err(err).Msgf("dropping event after %d attempts", maxRetries)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) {
	log.Ctx(ctx).Debug().Str("component", "Publish").Str("event_type", eventType).Str("key", key).Msg("no broker configured, event skipped")
}

func (NoopPublisher) Close() error { return nil }
