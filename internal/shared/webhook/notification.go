package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sellerops/internal/shared/messaging"
)

// Topics the marketplace notifies about.
const (
	TopicItems     = "items"
	TopicOrders    = "orders"
	TopicOrdersV2  = "orders_v2"
	TopicShipments = "shipments"
	TopicQuestions = "questions"
)

const messageTypePrefix = "notification."

var (
	ErrInvalidNotification = errors.New("invalid notification")
	ErrUnknownMessageType  = errors.New("unknown message type")
)

// Notification is the marketplace webhook body. Only resource, topic and user id
// are required; the marketplace expects a 2xx within a few seconds or it retries.
type Notification struct {
	ID            string    `json:"_id"`
	Resource      string    `json:"resource" binding:"required"`
	UserID        int64     `json:"user_id" binding:"required"`
	Topic         string    `json:"topic" binding:"required"`
	ApplicationID int64     `json:"application_id,omitempty"`
	Attempts      int       `json:"attempts,omitempty"`
	Sent          time.Time `json:"sent,omitzero"`
	Received      time.Time `json:"received,omitzero"`
}

// ResourceID returns the last path segment of Resource ("/orders/123" -> "123").
func (n Notification) ResourceID() (string, error) {
	path := strings.TrimRight(strings.SplitN(n.Resource, "?", 2)[0], "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 || idx == len(path)-1 {
		return "", fmt.Errorf("%w: resource %q has no id", ErrInvalidNotification, n.Resource)
	}
	return path[idx+1:], nil
}

// UserKey is the queue partition / group key: all notifications of a seller share it.
func (n Notification) UserKey() string {
	return strconv.FormatInt(n.UserID, 10)
}

func (n Notification) Validate() error {
	switch {
	case n.Topic == "":
		return fmt.Errorf("%w: topic is required", ErrInvalidNotification)
	case n.Resource == "":
		return fmt.Errorf("%w: resource is required", ErrInvalidNotification)
	case n.UserID <= 0:
		return fmt.Errorf("%w: user_id is required", ErrInvalidNotification)
	}
	return nil
}

// Envelope wraps n for the queue, reusing the marketplace event id when present.
func (n Notification) Envelope() (messaging.Envelope, error) {
	return messaging.NewEnvelope(n.ID, n.UserKey(), messageTypePrefix+n.Topic, n)
}

// Decode parses a queued envelope back into a Notification.
func Decode(value []byte) (messaging.Envelope, Notification, error) {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return env, Notification{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if !strings.HasPrefix(env.Type, messageTypePrefix) {
		return env, Notification{}, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}

	var n Notification
	if err := json.Unmarshal(env.Payload, &n); err != nil {
		return env, Notification{}, fmt.Errorf("unmarshal notification: %w", err)
	}
	if n.ID == "" {
		n.ID = env.EventID
	}
	return env, n, n.Validate()
}
