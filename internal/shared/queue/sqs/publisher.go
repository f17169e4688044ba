package sqs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sellerops/internal/shared/messaging"
	"sellerops/pkg/correlation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

const (
	attrKey   = "key"
	attrType  = "type"
	attrError = "error"

	dlqSuffix             = "-dlq"
	maxDeduplicationIDLen = 128
)

// Publisher implements messaging.Publisher on top of SendMessage.
type Publisher struct {
	api      API
	queueURL string
}

func NewPublisher(api API, queueURL string) *Publisher {
	return &Publisher{api: api, queueURL: queueURL}
}

func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	attrs := map[string]types.MessageAttributeValue{
		attrKey:  stringAttr(env.Key),
		attrType: stringAttr(env.Type),
	}
	if corrID := correlation.FromContext(ctx); corrID != "" {
		attrs[correlation.MessageAttribute] = stringAttr(corrID)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:          aws.String(p.queueURL),
		MessageBody:       aws.String(string(body)),
		MessageAttributes: attrs,
	}
	// FIFO queues keep per-seller ordering and dedupe on the marketplace event id.
	if isFIFO(p.queueURL) {
		input.MessageGroupId = aws.String(env.Key)
		input.MessageDeduplicationId = aws.String(env.EventID)
	}

	if _, err := p.api.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("sqs send message: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return nil
}

// DLQPublisher forwards failed messages to a dead letter queue URL with the failure reason attached.
type DLQPublisher struct {
	api      API
	queueURL string
}

func NewDLQPublisher(api API, queueURL string) *DLQPublisher {
	return &DLQPublisher{api: api, queueURL: queueURL}
}

func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, err error) error {
	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(value)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			attrKey:     stringAttr(string(key)),
			attrError:   stringAttr(err.Error()),
			"failed_at": stringAttr(time.Now().UTC().Format(time.RFC3339)),
		},
	}
	if isFIFO(p.queueURL) {
		input.MessageGroupId = aws.String(string(key))
		input.MessageDeduplicationId = aws.String(dlqDeduplicationID(value))
	}

	if _, sendErr := p.api.SendMessage(ctx, input); sendErr != nil {
		slog.ErrorContext(ctx, "Failed to publish to DLQ",
			"queue_url", p.queueURL,
			"key", string(key),
			slog.Any("error", sendErr),
			slog.Any("original_error", err))
		return sendErr
	}

	slog.WarnContext(ctx, "Message sent to DLQ", "queue_url", p.queueURL, "key", string(key), slog.Any("error", err))
	return nil
}

// dlqDeduplicationID keys a dead letter on its event id. The suffix keeps it apart
// from the id the message was first published with. Bodies without an event id
// fall back to a hash of the body.
func dlqDeduplicationID(value []byte) string {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err == nil && env.EventID != "" && len(env.EventID) <= maxDeduplicationIDLen-len(dlqSuffix) {
		return env.EventID + dlqSuffix
	}
	sum := sha256.Sum256(value)
	return hex.EncodeToString(sum[:])
}

func stringAttr(v string) types.MessageAttributeValue {
	if v == "" {
		v = "-"
	}
	return types.MessageAttributeValue{DataType: aws.String("String"), StringValue: aws.String(v)}
}

func isFIFO(queueURL string) bool {
	return strings.HasSuffix(queueURL, ".fifo")
}
