package health

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker dials the brokers in order and reports the partition count of
// the webhook topic from the first one that answers.
type KafkaChecker struct {
	brokers []string
	topic   string
}

func NewKafkaChecker(brokers []string, topic string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers, topic: topic}
}

func (c *KafkaChecker) Name() string {
	return "kafka"
}

func (c *KafkaChecker) Check(ctx context.Context) Result {
	var lastErr error
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err != nil {
			lastErr = err
			continue
		}
		partitions, err := conn.ReadPartitions(c.topic)
		_ = conn.Close()
		if err != nil {
			return Down(fmt.Errorf("topic %s: %w", c.topic, err))
		}
		return Result{Status: StatusUp, Message: fmt.Sprintf("%s: %d partitions", c.topic, len(partitions))}
	}
	if lastErr == nil {
		return Result{Status: StatusDown, Message: "no brokers configured"}
	}
	return Down(fmt.Errorf("all brokers unreachable: %w", lastErr))
}
