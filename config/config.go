package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	WebhookModeSync  = "sync"
	WebhookModeQueue = "queue"

	QueueDriverMemory = "memory"
	QueueDriverSQS    = "sqs"
	QueueDriverKafka  = "kafka"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Where the dashboard lives; the OAuth callback redirects there with the session token.
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"http://localhost:5173"`

	TokenEncryptionKey string        `env:"TOKEN_ENCRYPTION_KEY,required"`
	SessionSecret      string        `env:"SESSION_SECRET,required"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionIssuer      string        `env:"SESSION_ISSUER" envDefault:"sellerops"`

	// Optional. Enables the shared OAuth state store and webhook dedup store.
	RedisURL string `env:"REDIS_URL"`

	Marketplace MarketplaceConfig

	// Webhook processing mode: "sync" (dispatch inline) or "queue" (publish, consume with workers)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`
	Queue       QueueConfig

	SyncEnabled     bool          `env:"SYNC_ENABLED" envDefault:"true"`
	SyncTick        time.Duration `env:"SYNC_TICK" envDefault:"1m"`
	SyncConcurrency int           `env:"SYNC_CONCURRENCY" envDefault:"4"`
	SyncJobTimeout  time.Duration `env:"SYNC_JOB_TIMEOUT" envDefault:"5m"`
	SyncOrdersSince time.Duration `env:"SYNC_ORDERS_SINCE" envDefault:"720h"`

	// Backoff for accounts whose scheduled sync keeps failing.
	SyncFailureBackoff    time.Duration `env:"SYNC_FAILURE_BACKOFF" envDefault:"5m"`
	SyncMaxFailureBackoff time.Duration `env:"SYNC_MAX_FAILURE_BACKOFF" envDefault:"6h"`

	TestDataEnabled bool `env:"TEST_DATA_ENABLED" envDefault:"false"`
}

type MarketplaceConfig struct {
	APIURL         string        `env:"MARKETPLACE_API_URL" envDefault:"https://api.mercadolibre.com"`
	AuthURL        string        `env:"MARKETPLACE_AUTH_URL" envDefault:"https://auth.mercadolibre.com/authorization"`
	TokenURL       string        `env:"MARKETPLACE_TOKEN_URL" envDefault:"https://api.mercadolibre.com/oauth/token"`
	ClientID       string        `env:"MARKETPLACE_CLIENT_ID"`
	ClientSecret   string        `env:"MARKETPLACE_CLIENT_SECRET"`
	RedirectURL    string        `env:"MARKETPLACE_REDIRECT_URL" envDefault:"http://localhost:3000/auth/callback"`
	Timeout        time.Duration `env:"MARKETPLACE_TIMEOUT" envDefault:"15s"`
	RateLimit      float64       `env:"MARKETPLACE_RATE_LIMIT" envDefault:"10"`
	RetryAttempts  int           `env:"MARKETPLACE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"MARKETPLACE_RETRY_BASE_DELAY" envDefault:"200ms"`
	RetryMaxDelay  time.Duration `env:"MARKETPLACE_RETRY_MAX_DELAY" envDefault:"5s"`
}

type QueueConfig struct {
	Driver  string `env:"QUEUE_DRIVER" envDefault:"memory"`
	Workers int    `env:"QUEUE_WORKERS" envDefault:"2"`

	MaxAttempts    int           `env:"QUEUE_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	InitialBackoff time.Duration `env:"QUEUE_RETRY_INITIAL_BACKOFF" envDefault:"100ms"`
	MaxBackoff     time.Duration `env:"QUEUE_RETRY_MAX_BACKOFF" envDefault:"5s"`
	DedupTTL       time.Duration `env:"QUEUE_DEDUP_TTL" envDefault:"24h"`

	// memory driver
	MemoryVisibilityTimeout time.Duration `env:"MEMORY_QUEUE_VISIBILITY_TIMEOUT" envDefault:"30s"`
	MemoryPollInterval      time.Duration `env:"MEMORY_QUEUE_POLL_INTERVAL" envDefault:"200ms"`
	MemoryMaxReceives       int           `env:"MEMORY_QUEUE_MAX_RECEIVES" envDefault:"5"`

	// sqs driver
	AWSRegion          string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	SQSEndpoint        string        `env:"SQS_ENDPOINT"`
	SQSQueueURL        string        `env:"SQS_QUEUE_URL"`
	SQSDLQURL          string        `env:"SQS_DLQ_URL"`
	SQSWaitTime        time.Duration `env:"SQS_WAIT_TIME" envDefault:"20s"`
	SQSVisibility      time.Duration `env:"SQS_VISIBILITY_TIMEOUT" envDefault:"60s"`
	SQSMaxMessages     int32         `env:"SQS_MAX_MESSAGES" envDefault:"10"`

	// kafka driver
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic         string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"webhooks.notifications"`
	KafkaDLQTopic      string   `env:"KAFKA_NOTIFICATIONS_DLQ_TOPIC" envDefault:"webhooks.notifications.dlq"`
	KafkaConsumerGroup string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"sellerops-notifications"`
}

// IngestConfig configures the standalone webhook gateway.
type IngestConfig struct {
	Port      int    `env:"PORT" envDefault:"3001"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	RedisURL  string `env:"REDIS_URL"`
	Queue     QueueConfig
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func NewIngestConfig() (IngestConfig, error) {
	c, err := env.ParseAs[IngestConfig]()
	if err != nil {
		return IngestConfig{}, err
	}
	if c.Queue.Driver == QueueDriverMemory {
		return IngestConfig{}, fmt.Errorf("ingest gateway needs an out-of-process queue, got QUEUE_DRIVER=%q", c.Queue.Driver)
	}
	if err := c.Queue.Validate(); err != nil {
		return IngestConfig{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.WebhookMode {
	case WebhookModeSync:
	case WebhookModeQueue:
		if err := c.Queue.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown WEBHOOK_MODE %q", c.WebhookMode)
	}
	if c.SyncConcurrency < 1 {
		return fmt.Errorf("SYNC_CONCURRENCY must be positive, got %d", c.SyncConcurrency)
	}
	return nil
}

func (q QueueConfig) Validate() error {
	switch q.Driver {
	case QueueDriverMemory:
	case QueueDriverSQS:
		if q.SQSQueueURL == "" {
			return fmt.Errorf("SQS_QUEUE_URL is required for the sqs queue driver")
		}
	case QueueDriverKafka:
		if len(q.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required for the kafka queue driver")
		}
	default:
		return fmt.Errorf("unknown QUEUE_DRIVER %q", q.Driver)
	}
	if q.Workers < 1 {
		return fmt.Errorf("QUEUE_WORKERS must be positive, got %d", q.Workers)
	}
	return nil
}
