package health

import (
	"context"
	"time"
)

// DefaultTimeout is the default timeout for readiness checks.
const DefaultTimeout = 5 * time.Second

// Status represents the health status of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of a single health check.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Down builds a failed result from err.
func Down(err error) Result {
	return Result{Status: StatusDown, Message: err.Error()}
}

// Checker is implemented by every dependency the readiness probe looks at.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}

// PingFunc adapts a "ping" style call into a Checker.
type PingFunc struct {
	name string
	ping func(ctx context.Context) error
}

// NewPingChecker returns a Checker that is up whenever ping returns nil.
func NewPingChecker(name string, ping func(ctx context.Context) error) *PingFunc {
	return &PingFunc{name: name, ping: ping}
}

func (p *PingFunc) Name() string { return p.name }

func (p *PingFunc) Check(ctx context.Context) Result {
	if err := p.ping(ctx); err != nil {
		return Down(err)
	}
	return Result{Status: StatusUp}
}
