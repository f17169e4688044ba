//go:build integration

// Package testinfra starts the containers integration tests run against.
package testinfra

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type TestSuite struct {
	Postgres *PostgresContainer
	Redis    *RedisContainer
	Kafka    *KafkaContainer
}

type SuiteOptions struct {
	WithPostgres bool
	WithRedis    bool
	WithKafka    bool
}

// NewTestSuite starts the requested containers in parallel.
func NewTestSuite(ctx context.Context, opts SuiteOptions) (*TestSuite, error) {
	suite := &TestSuite{}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	if opts.WithPostgres {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pg, err := NewPostgres(ctx)
			if err != nil {
				fail(fmt.Errorf("postgres: %w", err))
				return
			}
			suite.Postgres = pg
		}()
	}
	if opts.WithRedis {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := NewRedis(ctx)
			if err != nil {
				fail(fmt.Errorf("redis: %w", err))
				return
			}
			suite.Redis = r
		}()
	}
	if opts.WithKafka {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := NewKafka(ctx)
			if err != nil {
				fail(fmt.Errorf("kafka: %w", err))
				return
			}
			suite.Kafka = k
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		suite.Cleanup(ctx)
		return nil, fmt.Errorf("failed to start containers: %w", errors.Join(errs...))
	}
	return suite, nil
}

func (s *TestSuite) Cleanup(ctx context.Context) {
	if s.Kafka != nil {
		s.Kafka.Cleanup(ctx)
	}
	if s.Redis != nil {
		s.Redis.Cleanup(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Cleanup(ctx)
	}
}
