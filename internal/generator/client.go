package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultMaxTries   = 2
	defaultRetryDelay = 500 * time.Millisecond
)

// Client wraps a Backend with a per-attempt timeout and a bounded retry
type Client struct {
	backend    Backend
	provider   string
	timeout    time.Duration
	retryDelay time.Duration
	maxTries   uint
}

// New creates a new generator client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Backend == nil {
		return nil, ErrNilBackend
	}

	c := &Client{
		backend:    cfg.Backend,
		provider:   cfg.Provider,
		timeout:    cfg.Timeout,
		retryDelay: cfg.RetryDelay,
		maxTries:   cfg.MaxTries,
	}
	if c.provider == "" {
		c.provider = "generator"
	}
	if c.retryDelay <= 0 {
		c.retryDelay = defaultRetryDelay
	}
	if c.maxTries == 0 {
		c.maxTries = defaultMaxTries
	}
	return c, nil
}

// Generate implements Generator
func (c *Client) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	attempts := 0
	op := func() (string, error) {
		attempts++
		text, err := c.attempt(ctx, input)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		if !isTransient(err) {
			return "", backoff.Permanent(err)
		}
		log.Printf("%s: attempt %d failed, retrying: %v", c.provider, attempts, err)
		return "", err
	}

	text, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: generation failed after %d attempt(s): %w", c.provider, attempts, err)
	}

	return &GenerateOutput{
		Text:     text,
		Attempts: attempts,
	}, nil
}

func (c *Client) attempt(ctx context.Context, input *GenerateInput) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.backend.Complete(ctx, input)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// isTransient reports whether an attempt failure is worth retrying:
// timeouts, rate limits and server errors.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
