// Package probe implements the readiness wait loop the entrypoint runs
// before handing the process over to its role command.
package probe

import (
	"context"
	"fmt"
	"time"

	"siaugesmat-entrypoint/config"
	"siaugesmat-entrypoint/utils"
)

// RetryPolicy drives a readiness wait. The zero values of MaxAttempts and
// Deadline mean "retry forever": misconfiguration fails fast, but a
// dependency that is merely slow to start is waited out and the orchestrator
// owns the overall startup timeout.
type RetryPolicy struct {
	Interval       time.Duration
	ConnectTimeout time.Duration // per-attempt bound; 0 = unbounded attempt
	MaxAttempts    int           // 0 = no cap
	Deadline       time.Duration // 0 = no overall bound
}

// PolicyFromConfig builds the retry policy the deployment configured.
func PolicyFromConfig(cfg *config.Config) RetryPolicy {
	return RetryPolicy{
		Interval:       cfg.ProbeInterval,
		ConnectTimeout: cfg.ProbeTimeout,
		MaxAttempts:    cfg.ProbeMaxAttempts,
		Deadline:       cfg.ProbeDeadline,
	}
}

// Prober checks a single dependency once.
type Prober interface {
	// Name identifies the dependency in progress output.
	Name() string
	// Target is the endpoint being probed, for progress output only.
	Target() string
	// Probe returns nil once the dependency accepts connections.
	Probe(ctx context.Context) error
}

// WaitUntilReady polls p under the given policy until it succeeds, the
// policy is exhausted, or ctx is cancelled. Each failed attempt emits one
// progress line and sleeps the fixed interval; there is no backoff.
func WaitUntilReady(ctx context.Context, p Prober, policy RetryPolicy) error {
	var deadline time.Time
	if policy.Deadline > 0 {
		deadline = time.Now().Add(policy.Deadline)
	}

	for attempt := 1; ; attempt++ {
		err := probeOnce(ctx, p, policy.ConnectTimeout)
		if err == nil {
			utils.LogInfo(fmt.Sprintf("%s is ready at %s (attempt %d)", p.Name(), p.Target(), attempt))
			return nil
		}

		utils.LogInfo(fmt.Sprintf("waiting for %s at %s (attempt %d): %v", p.Name(), p.Target(), attempt, err))

		if policy.MaxAttempts > 0 && attempt >= policy.MaxAttempts {
			return fmt.Errorf("%s at %s not ready after %d attempts: %w", p.Name(), p.Target(), attempt, err)
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return fmt.Errorf("%s at %s not ready within %v: %w", p.Name(), p.Target(), policy.Deadline, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(policy.Interval):
		}
	}
}

func probeOnce(ctx context.Context, p Prober, timeout time.Duration) error {
	if timeout <= 0 {
		return p.Probe(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Probe(attemptCtx)
}
