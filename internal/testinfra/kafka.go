//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

type KafkaContainer struct {
	Container *kafka.KafkaContainer
	Brokers   []string
	Topic     string
	DLQTopic  string
	Group     string
}

func NewKafka(ctx context.Context) (*KafkaContainer, error) {
	container, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka container: %w", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get brokers: %w", err)
	}

	// Unique names per run so reruns never see stale offsets.
	suffix := uuid.New().String()[:8]
	topic := "test-notifications-" + suffix
	dlqTopic := topic + ".dlq"

	if err := createTopics(ctx, brokers, 3, topic, dlqTopic); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to create topics: %w", err)
	}

	return &KafkaContainer{
		Container: container,
		Brokers:   brokers,
		Topic:     topic,
		DLQTopic:  dlqTopic,
		Group:     "test-group-notifications-" + suffix,
	}, nil
}

// createTopics goes through the controller so consumers can join before the
// first publish. Brokers may accept connections a moment before admin calls work.
func createTopics(ctx context.Context, brokers []string, partitions int, topics ...string) error {
	configs := make([]kafkago.TopicConfig, 0, len(topics))
	for _, t := range topics {
		configs = append(configs, kafkago.TopicConfig{Topic: t, NumPartitions: partitions, ReplicationFactor: 1})
	}

	var lastErr error
	for range 20 {
		if lastErr = createOnController(ctx, brokers[0], configs); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
	return lastErr
}

func createOnController(ctx context.Context, broker string, configs []kafkago.TopicConfig) error {
	conn, err := kafkago.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	ctrl, err := kafkago.DialContext(ctx, "tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	return ctrl.CreateTopics(configs...)
}

func (c *KafkaContainer) Cleanup(ctx context.Context) {
	if c.Container != nil {
		_ = c.Container.Terminate(ctx)
	}
}
