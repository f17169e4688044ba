package sqs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sellerops/internal/shared/messaging"
	"sellerops/pkg/correlation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const (
	deleteTimeout  = 5 * time.Second
	receiveBackoff = time.Second
)

type ConsumerConfig struct {
	QueueURL          string
	WaitTime          time.Duration
	VisibilityTimeout time.Duration
	MaxMessages       int32
}

// Consumer implements messaging.Worker with a long-poll receive / delete loop.
// A failed message is not deleted; SQS makes it visible again after the visibility timeout.
type Consumer struct {
	api API
	cfg ConsumerConfig
}

func NewConsumer(api API, cfg ConsumerConfig) *Consumer {
	if cfg.MaxMessages <= 0 || cfg.MaxMessages > 10 {
		cfg.MaxMessages = 10
	}
	if cfg.WaitTime < 0 || cfg.WaitTime > 20*time.Second {
		cfg.WaitTime = 20 * time.Second
	}
	return &Consumer{api: api, cfg: cfg}
}

func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	slog.Info("Consumer started", "driver", "sqs", "queue_url", c.cfg.QueueURL)

	for {
		if ctx.Err() != nil {
			slog.Info("Consumer stopped (context cancelled)", "driver", "sqs")
			return nil
		}

		out, err := c.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:                    aws.String(c.cfg.QueueURL),
			MaxNumberOfMessages:         c.cfg.MaxMessages,
			WaitTimeSeconds:             int32(c.cfg.WaitTime / time.Second),
			VisibilityTimeout:           int32(c.cfg.VisibilityTimeout / time.Second),
			MessageAttributeNames:       []string{"All"},
			MessageSystemAttributeNames: []types.MessageSystemAttributeName{
				types.MessageSystemAttributeNameApproximateReceiveCount,
				types.MessageSystemAttributeNameMessageGroupId,
			},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				slog.Info("Consumer stopped (context cancelled)", "driver", "sqs")
				return nil
			}
			slog.Error("Failed to receive messages", "queue_url", c.cfg.QueueURL, slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(receiveBackoff):
			}
			continue
		}

		c.processBatch(ctx, out.Messages, handler)
	}
}

// processBatch handles messages in receive order. On a FIFO queue a failure
// blocks the rest of its message group in this batch: those messages stay
// undeleted and come back after the failed one, keeping per-seller order.
func (c *Consumer) processBatch(ctx context.Context, msgs []types.Message, handler messaging.MessageHandler) {
	var blocked map[string]bool
	for _, msg := range msgs {
		group := msg.Attributes[string(types.MessageSystemAttributeNameMessageGroupId)]
		if group != "" && blocked[group] {
			slog.WarnContext(ctx, "Message skipped, earlier message of its group failed",
				"message_id", aws.ToString(msg.MessageId),
				"group_id", group)
			continue
		}
		if !c.process(ctx, msg, handler) && group != "" {
			if blocked == nil {
				blocked = make(map[string]bool)
			}
			blocked[group] = true
		}
	}
}

// process reports whether the handler accepted the message.
func (c *Consumer) process(ctx context.Context, msg types.Message, handler messaging.MessageHandler) bool {
	msgCtx := correlation.Ensure(ctx)
	if v, ok := msg.MessageAttributes[correlation.MessageAttribute]; ok && v.StringValue != nil {
		msgCtx = correlation.WithID(ctx, *v.StringValue)
	}

	var key []byte
	if v, ok := msg.MessageAttributes[attrKey]; ok && v.StringValue != nil {
		key = []byte(*v.StringValue)
	}

	slog.DebugContext(msgCtx, "Message received",
		"message_id", aws.ToString(msg.MessageId),
		"receive_count", msg.Attributes[string(types.MessageSystemAttributeNameApproximateReceiveCount)],
		"key", string(key))

	if err := handler(msgCtx, key, []byte(aws.ToString(msg.Body))); err != nil {
		slog.ErrorContext(msgCtx, "Handler error, message not deleted",
			"message_id", aws.ToString(msg.MessageId),
			"key", string(key),
			slog.Any("error", err))
		return false
	}

	// Detached so a processed message is still deleted during shutdown.
	delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deleteTimeout)
	defer cancel()
	if _, err := c.api.DeleteMessage(delCtx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.cfg.QueueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		slog.ErrorContext(msgCtx, "Failed to delete message",
			"message_id", aws.ToString(msg.MessageId),
			slog.Any("error", err))
	}
	return true
}

func (c *Consumer) Close() error {
	return nil
}
