// Package queue assembles the webhook queue transport selected by QUEUE_DRIVER.
package queue

import (
	"context"
	"errors"
	"fmt"

	"sellerops/config"
	"sellerops/internal/shared/messaging"
	kafkaqueue "sellerops/internal/shared/queue/kafka"
	"sellerops/internal/shared/queue/memory"
	sqsqueue "sellerops/internal/shared/queue/sqs"
	"sellerops/pkg/health"
)

// Transport bundles the pieces of one queue driver.
type Transport struct {
	Driver    string
	Name      string
	Publisher messaging.Publisher
	// Workers is empty for publish-only transports (the ingest gateway).
	Workers []messaging.Worker
	// DLQ is nil when the driver has no dead letter destination configured.
	DLQ     messaging.DLQPublisher
	Checker health.Checker

	closers []func() error
}

// Close releases publishers and DLQ writers. Workers are closed by their Runner.
func (t *Transport) Close() error {
	var errs []error
	for _, c := range t.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// New builds the transport. withWorkers=false skips consumer construction.
func New(ctx context.Context, cfg config.QueueConfig, withWorkers bool) (*Transport, error) {
	switch cfg.Driver {
	case config.QueueDriverMemory:
		return newMemory(cfg, withWorkers), nil
	case config.QueueDriverSQS:
		return newSQS(ctx, cfg, withWorkers)
	case config.QueueDriverKafka:
		return newKafka(cfg, withWorkers), nil
	default:
		return nil, fmt.Errorf("unknown queue driver %q", cfg.Driver)
	}
}

func newMemory(cfg config.QueueConfig, withWorkers bool) *Transport {
	q := memory.New(memory.Options{
		VisibilityTimeout: cfg.MemoryVisibilityTimeout,
		PollInterval:      cfg.MemoryPollInterval,
		MaxReceives:       cfg.MemoryMaxReceives,
	})

	t := &Transport{
		Driver:    config.QueueDriverMemory,
		Name:      "memory",
		Publisher: messaging.NewLoggingPublisher(q, config.QueueDriverMemory),
		DLQ:       q,
		closers:   []func() error{q.Close},
	}
	if withWorkers {
		for range cfg.Workers {
			t.Workers = append(t.Workers, q.Worker())
		}
	}
	return t
}

func newSQS(ctx context.Context, cfg config.QueueConfig, withWorkers bool) (*Transport, error) {
	client, err := sqsqueue.NewClient(ctx, sqsqueue.ClientConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Endpoint:        cfg.SQSEndpoint,
	})
	if err != nil {
		return nil, err
	}

	t := &Transport{
		Driver:    config.QueueDriverSQS,
		Name:      cfg.SQSQueueURL,
		Publisher: messaging.NewLoggingPublisher(sqsqueue.NewPublisher(client, cfg.SQSQueueURL), config.QueueDriverSQS),
		Checker:   health.NewSQSChecker(client, cfg.SQSQueueURL),
	}
	// Without an explicit DLQ the queue's own redrive policy takes over.
	if cfg.SQSDLQURL != "" {
		t.DLQ = sqsqueue.NewDLQPublisher(client, cfg.SQSDLQURL)
	}
	if withWorkers {
		for range cfg.Workers {
			t.Workers = append(t.Workers, sqsqueue.NewConsumer(client, sqsqueue.ConsumerConfig{
				QueueURL:          cfg.SQSQueueURL,
				WaitTime:          cfg.SQSWaitTime,
				VisibilityTimeout: cfg.SQSVisibility,
				MaxMessages:       cfg.SQSMaxMessages,
			}))
		}
	}
	return t, nil
}

func newKafka(cfg config.QueueConfig, withWorkers bool) *Transport {
	pub := kafkaqueue.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	t := &Transport{
		Driver:    config.QueueDriverKafka,
		Name:      cfg.KafkaTopic,
		Publisher: messaging.NewLoggingPublisher(pub, config.QueueDriverKafka),
		Checker:   health.NewKafkaChecker(cfg.KafkaBrokers, cfg.KafkaTopic),
		closers:   []func() error{pub.Close},
	}
	if withWorkers {
		dlq := kafkaqueue.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaDLQTopic)
		t.DLQ = dlq
		t.closers = append(t.closers, dlq.Close)
		for range cfg.Workers {
			t.Workers = append(t.Workers, kafkaqueue.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaConsumerGroup))
		}
	}
	return t
}

// Handler wraps h with the standard middleware chain:
// metrics -> DLQ (when configured) -> retry -> idempotency (when a store is given).
func (t *Transport) Handler(h messaging.MessageHandler, cfg config.QueueConfig, store messaging.IdempotencyStore) messaging.MessageHandler {
	if store != nil {
		h = messaging.WithIdempotency(h, store, cfg.DedupTTL)
	}
	h = messaging.WithRetry(h, messaging.RetryConfig{
		MaxAttempts:    cfg.MaxAttempts,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
	})
	if t.DLQ != nil {
		h = messaging.WithDLQ(h, t.DLQ)
	}
	return messaging.WithMetrics(t.Name, t.Driver, h)
}
