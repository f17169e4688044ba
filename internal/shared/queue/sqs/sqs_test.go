package sqs

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"sellerops/internal/shared/messaging"
	"sellerops/pkg/correlation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSQS keeps sent messages in memory and serves them back on ReceiveMessage.
type fakeSQS struct {
	mu       sync.Mutex
	sent     []*sqs.SendMessageInput
	inbox    []types.Message
	deleted  []string
	received int
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return &sqs.SendMessageOutput{MessageId: aws.String("m")}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, in *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if len(f.inbox) > 0 {
		msgs := f.inbox
		f.inbox = nil
		f.received += len(msgs)
		f.mu.Unlock()
		return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
	}
	f.mu.Unlock()

	// emulate long polling
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(5 * time.Millisecond):
		return &sqs.ReceiveMessageOutput{}, nil
	}
}

func (f *fakeSQS) DeleteMessage(ctx context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) deletedHandles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	api := &fakeSQS{}
	env, err := messaging.NewEnvelope("evt-1", "123456", "notification.orders_v2", map[string]string{"resource": "/orders/1"})
	require.NoError(t, err)

	ctx := correlation.WithID(context.Background(), "corr-7")
	require.NoError(t, NewPublisher(api, "https://sqs.us-east-1.amazonaws.com/1/notifications").Publish(ctx, env))

	require.Len(t, api.sent, 1)
	in := api.sent[0]
	assert.Nil(t, in.MessageGroupId)
	assert.Equal(t, "123456", aws.ToString(in.MessageAttributes[attrKey].StringValue))
	assert.Equal(t, "corr-7", aws.ToString(in.MessageAttributes[correlation.MessageAttribute].StringValue))

	var decoded messaging.Envelope
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.MessageBody)), &decoded))
	assert.Equal(t, "evt-1", decoded.EventID)
}

func TestPublisher_FIFO(t *testing.T) {
	t.Parallel()

	api := &fakeSQS{}
	env, err := messaging.NewEnvelope("evt-2", "99", "notification.items", nil)
	require.NoError(t, err)

	require.NoError(t, NewPublisher(api, "https://sqs.local/1/notifications.fifo").Publish(context.Background(), env))

	require.Len(t, api.sent, 1)
	assert.Equal(t, "99", aws.ToString(api.sent[0].MessageGroupId))
	assert.Equal(t, "evt-2", aws.ToString(api.sent[0].MessageDeduplicationId))
}

func TestConsumer_DeletesOnlyHandledMessages(t *testing.T) {
	t.Parallel()

	api := &fakeSQS{inbox: []types.Message{
		{
			MessageId:     aws.String("1"),
			ReceiptHandle: aws.String("rh-ok"),
			Body:          aws.String(`{"event_id":"a"}`),
			MessageAttributes: map[string]types.MessageAttributeValue{
				attrKey:                      stringAttr("42"),
				correlation.MessageAttribute: stringAttr("corr-1"),
			},
		},
		{
			MessageId:     aws.String("2"),
			ReceiptHandle: aws.String("rh-fail"),
			Body:          aws.String(`{"event_id":"b"}`),
		},
	}}

	var mu sync.Mutex
	var keys, corrIDs []string
	handler := func(ctx context.Context, key, value []byte) error {
		mu.Lock()
		defer mu.Unlock()
		keys = append(keys, string(key))
		corrIDs = append(corrIDs, correlation.FromContext(ctx))
		if string(value) == `{"event_id":"b"}` {
			return assert.AnError
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewConsumer(api, ConsumerConfig{QueueURL: "q", WaitTime: time.Second}).Start(ctx, handler)
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(keys) == 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{"rh-ok"}, api.deletedHandles())
	assert.Equal(t, []string{"42", ""}, keys)
	assert.Equal(t, "corr-1", corrIDs[0])
	assert.NotEmpty(t, corrIDs[1])
}

func TestDLQPublisher(t *testing.T) {
	t.Parallel()

	api := &fakeSQS{}
	err := NewDLQPublisher(api, "dlq").PublishToDLQ(context.Background(), []byte("k"), []byte("body"), assert.AnError)
	require.NoError(t, err)

	require.Len(t, api.sent, 1)
	assert.Equal(t, "body", aws.ToString(api.sent[0].MessageBody))
	assert.Equal(t, assert.AnError.Error(), aws.ToString(api.sent[0].MessageAttributes[attrError].StringValue))
}

func TestDLQPublisher_FIFO(t *testing.T) {
	t.Parallel()

	const dlqURL = "https://sqs.local/1/notifications-dlq.fifo"

	t.Run("dedupes on the envelope event id", func(t *testing.T) {
		api := &fakeSQS{}
		env, err := messaging.NewEnvelope("evt-3", "99", "notification.orders_v2", nil)
		require.NoError(t, err)
		body, err := json.Marshal(env)
		require.NoError(t, err)

		require.NoError(t, NewDLQPublisher(api, dlqURL).PublishToDLQ(context.Background(), []byte("99"), body, assert.AnError))

		require.Len(t, api.sent, 1)
		assert.Equal(t, "99", aws.ToString(api.sent[0].MessageGroupId))
		assert.Equal(t, "evt-3-dlq", aws.ToString(api.sent[0].MessageDeduplicationId))
	})

	t.Run("falls back to a body hash", func(t *testing.T) {
		api := &fakeSQS{}

		require.NoError(t, NewDLQPublisher(api, dlqURL).PublishToDLQ(context.Background(), []byte("99"), []byte("not json"), assert.AnError))

		require.Len(t, api.sent, 1)
		assert.Len(t, aws.ToString(api.sent[0].MessageDeduplicationId), 64)
	})
}

func TestConsumer_FIFOGroupStopsAfterFailure(t *testing.T) {
	t.Parallel()

	fifoMsg := func(id, group string) types.Message {
		return types.Message{
			MessageId:     aws.String(id),
			ReceiptHandle: aws.String("rh-" + id),
			Body:          aws.String(id),
			Attributes: map[string]string{
				string(types.MessageSystemAttributeNameMessageGroupId): group,
			},
		}
	}
	api := &fakeSQS{inbox: []types.Message{
		fifoMsg("a1", "seller-a"),
		fifoMsg("b1", "seller-b"),
		fifoMsg("a2", "seller-a"),
		fifoMsg("b2", "seller-b"),
	}}

	var mu sync.Mutex
	var handled []string
	handler := func(_ context.Context, _, value []byte) error {
		mu.Lock()
		defer mu.Unlock()
		handled = append(handled, string(value))
		if string(value) == "a1" {
			return assert.AnError
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewConsumer(api, ConsumerConfig{QueueURL: "q.fifo", WaitTime: time.Second}).Start(ctx, handler)
	}()

	require.Eventually(t, func() bool {
		return len(api.deletedHandles()) == 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a1", "b1", "b2"}, handled)
	assert.Equal(t, []string{"rh-b1", "rh-b2"}, api.deletedHandles())
}
