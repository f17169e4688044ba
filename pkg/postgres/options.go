package postgres

import "time"

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(c *Postgres) {
		if size > 0 {
			c.maxPoolSize = size
		}
	}
}

func ConnAttempts(attempts int) Option {
	return func(c *Postgres) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *Postgres) {
		c.connTimeout = timeout
	}
}
