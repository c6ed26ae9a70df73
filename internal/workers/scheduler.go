// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
)

var (
	ErrSchedulerStopped = errors.New("scheduler is stopped")
	ErrInvalidWork      = errors.New("invalid work request")
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 30 * time.Second
	maxBackoff         = 10 * time.Minute
	defaultNetworkPoll = 15 * time.Second
)

// Policy decides what Enqueue does when a work with the same name is still
// pending.
type Policy int

const (
	// Keep leaves the pending work alone and drops the new request.
	Keep Policy = iota
	// Replace cancels the pending work and schedules the new request.
	Replace
)

// State is the lifecycle state of a unique work.
type State string

const (
	StateEnqueued  State = "enqueued"
	StateRunning   State = "running"
	StateRetrying  State = "retrying"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Finished reports whether s is terminal.
func (s State) Finished() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

// Job is the body of a work. A returned error counts as a failed attempt
// unless it is wrapped with [Permanent].
type Job func(ctx context.Context) error

// Request describes a unique work.
type Request struct {
	Name   string
	Job    Job
	Policy Policy

	// Delay postpones the first attempt of a one-shot work.
	Delay time.Duration

	// RequiresNetwork holds every attempt until the scheduler's
	// Connectivity reports online. Waiting does not consume an attempt.
	RequiresNetwork bool

	// Period makes the work periodic. Each run lands at a random point of
	// the last Flex of its period.
	Period time.Duration
	Flex   time.Duration
}

// WorkInfo is a snapshot of a unique work.
type WorkInfo struct {
	Name      string
	State     State
	Periodic  bool
	Attempts  int
	Runs      int
	LastError string
	NextRun   time.Time
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying: the attempt fails the work at
// once.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with [Permanent].
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type work struct {
	req    Request
	cancel context.CancelFunc
	done   chan struct{}

	mu   sync.Mutex
	info WorkInfo
}

func (w *work) snapshot() WorkInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.info
}

func (w *work) update(fn func(info *WorkInfo)) {
	w.mu.Lock()
	fn(&w.info)
	w.mu.Unlock()
}

// Scheduler runs unique named work: one-shot or periodic, with a bounded
// number of attempts, exponential backoff and an optional network
// precondition. It is the background job queue of the client.
type Scheduler struct {
	maxAttempts int
	backoff     time.Duration
	networkPoll time.Duration

	conn   Connectivity
	logger *logger.Logger

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu      sync.Mutex
	works   map[string]*work
	stopped bool
}

// NewScheduler builds a scheduler with the retry settings of cfg. conn may be
// nil, in which case the network is always considered available.
func NewScheduler(cfg config.ClientWorkers, conn Connectivity, log *logger.Logger) *Scheduler {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}

	ctx, stop := context.WithCancel(context.Background())

	return &Scheduler{
		maxAttempts: maxAttempts,
		backoff:     backoff,
		networkPoll: defaultNetworkPoll,
		conn:        conn,
		logger:      log,
		ctx:         ctx,
		stop:        stop,
		works:       make(map[string]*work),
	}
}

// Run implements [Worker]. It blocks until ctx is cancelled, then cancels
// every pending work and waits for running jobs to return.
func (s *Scheduler) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-s.ctx.Done():
	}
	s.Shutdown()
	return nil
}

// Shutdown cancels everything and refuses new work.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.CancelAll()
	s.stop()
	s.wg.Wait()
}

// Enqueue schedules req under its unique name following req.Policy. It
// reports whether req was scheduled; a Keep request that finds pending work
// returns false.
func (s *Scheduler) Enqueue(req Request) (bool, error) {
	if req.Name == "" || req.Job == nil {
		return false, fmt.Errorf("%w: name and job are required", ErrInvalidWork)
	}
	if req.Period < 0 || req.Flex < 0 || req.Delay < 0 {
		return false, fmt.Errorf("%w: negative duration", ErrInvalidWork)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false, ErrSchedulerStopped
	}

	log := s.logger.With().Str("work", req.Name).Logger()

	if existing, ok := s.works[req.Name]; ok && !existing.snapshot().State.Finished() {
		if req.Policy == Keep {
			log.Debug().Str("func", "Scheduler.Enqueue").Msg("work is pending, keeping it")
			return false, nil
		}
		existing.cancel()
		log.Debug().Str("func", "Scheduler.Enqueue").Msg("replacing pending work")
	}

	ctx, cancel := context.WithCancel(s.ctx)
	w := &work{
		req:    req,
		cancel: cancel,
		done:   make(chan struct{}),
		info: WorkInfo{
			Name:     req.Name,
			State:    StateEnqueued,
			Periodic: req.Period > 0,
		},
	}
	s.works[req.Name] = w

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(w.done)
		defer cancel()

		if req.Period > 0 {
			s.runPeriodic(ctx, w)
			return
		}
		s.runOnce(ctx, w, time.Now().Add(req.Delay))
	}()

	log.Debug().Str("func", "Scheduler.Enqueue").Bool("periodic", req.Period > 0).Msg("work enqueued")
	return true, nil
}

// Info returns the latest state of the named work.
func (s *Scheduler) Info(name string) (WorkInfo, bool) {
	s.mu.Lock()
	w, ok := s.works[name]
	s.mu.Unlock()

	if !ok {
		return WorkInfo{}, false
	}
	return w.snapshot(), true
}

// Infos returns every known work sorted by name.
func (s *Scheduler) Infos() []WorkInfo {
	s.mu.Lock()
	infos := make([]WorkInfo, 0, len(s.works))
	for _, w := range s.works {
		infos = append(infos, w.snapshot())
	}
	s.mu.Unlock()

	slices.SortFunc(infos, func(a, b WorkInfo) int { return strings.Compare(a.Name, b.Name) })
	return infos
}

// Await blocks until the named work finishes or ctx is done.
func (s *Scheduler) Await(ctx context.Context, name string) (WorkInfo, error) {
	s.mu.Lock()
	w, ok := s.works[name]
	s.mu.Unlock()

	if !ok {
		return WorkInfo{}, fmt.Errorf("%w: unknown work %q", ErrInvalidWork, name)
	}

	select {
	case <-w.done:
		return w.snapshot(), nil
	case <-ctx.Done():
		return w.snapshot(), ctx.Err()
	}
}

// CancelUnique cancels the named work. It reports whether a pending work was
// found.
func (s *Scheduler) CancelUnique(name string) bool {
	s.mu.Lock()
	w, ok := s.works[name]
	s.mu.Unlock()

	if !ok || w.snapshot().State.Finished() {
		return false
	}
	w.cancel()
	return true
}

// CancelAll cancels every pending work.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	works := make([]*work, 0, len(s.works))
	for _, w := range s.works {
		works = append(works, w)
	}
	s.mu.Unlock()

	for _, w := range works {
		w.cancel()
	}
}

// runOnce runs the attempt cycle of one execution starting at at. It
// returns the terminal state of the execution.
func (s *Scheduler) runOnce(ctx context.Context, w *work, at time.Time) State {
	w.update(func(info *WorkInfo) {
		info.State = StateEnqueued
		info.Attempts = 0
		info.NextRun = at
	})
	if !sleepUntil(ctx, at) {
		return s.finish(w, StateCancelled)
	}

	err := retry.Do(ctx, s.trackRetries(w, s.retryPolicy()), func(ctx context.Context) error {
		// waiting for the network does not consume an attempt
		if w.req.RequiresNetwork && !s.waitOnline(ctx) {
			return ctx.Err()
		}

		w.update(func(info *WorkInfo) {
			info.State = StateRunning
			info.Attempts++
		})

		err := w.req.Job(ctx)
		if err == nil || ctx.Err() != nil {
			return err
		}

		w.update(func(info *WorkInfo) { info.LastError = err.Error() })
		if IsPermanent(err) {
			return err
		}
		return retry.RetryableError(err)
	})

	log := s.logger.With().Str("work", w.req.Name).Logger()
	info := w.snapshot()

	switch {
	case err == nil:
		w.update(func(info *WorkInfo) {
			info.Runs++
			info.LastError = ""
		})
		log.Debug().Str("func", "Scheduler.runOnce").Int("attempt", info.Attempts).Msg("work succeeded")
		return s.finish(w, StateSucceeded)
	case ctx.Err() != nil:
		return s.finish(w, StateCancelled)
	default:
		log.Error().Err(err).
			Str("func", "Scheduler.runOnce").
			Int("attempt", info.Attempts).
			Msg("work failed")
		return s.finish(w, StateFailed)
	}
}

// retryPolicy is the backoff of one execution: maxAttempts attempts in
// total, exponential delays from the configured base capped at maxBackoff.
func (s *Scheduler) retryPolicy() retry.Backoff {
	b := retry.NewExponential(s.backoff)
	b = retry.WithCappedDuration(maxBackoff, b)
	return retry.WithMaxRetries(uint64(s.maxAttempts-1), b)
}

// trackRetries moves w to StateRetrying for every delay next grants.
func (s *Scheduler) trackRetries(w *work, next retry.Backoff) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := next.Next()
		if stop {
			return 0, true
		}

		w.update(func(info *WorkInfo) {
			info.State = StateRetrying
			info.NextRun = time.Now().Add(delay)

			s.logger.Warn().
				Str("func", "Scheduler.runOnce").
				Str("work", info.Name).
				Str("error", info.LastError).
				Int("attempt", info.Attempts).
				Dur("retry_in", delay).
				Msg("work attempt failed, retrying")
		})
		return delay, false
	})
}

// runPeriodic repeats runOnce once per period until cancelled. A failed
// execution does not end the periodic work.
func (s *Scheduler) runPeriodic(ctx context.Context, w *work) {
	periodStart := time.Now()
	for {
		state := s.runOnce(ctx, w, periodStart.Add(s.flexOffset(w.req.Period, w.req.Flex)))
		if state == StateCancelled {
			return
		}

		periodStart = periodStart.Add(w.req.Period)
		// a run that overran whole periods skips them
		for now := time.Now(); !periodStart.Add(w.req.Period).After(now); {
			periodStart = periodStart.Add(w.req.Period)
		}

		w.update(func(info *WorkInfo) { info.State = StateEnqueued })
	}
}

// finish records a terminal state of one execution. Periodic works only
// become terminal when cancelled.
func (s *Scheduler) finish(w *work, state State) State {
	w.update(func(info *WorkInfo) {
		if !info.Periodic || state == StateCancelled {
			info.State = state
		}
		info.NextRun = time.Time{}
	})
	return state
}

// flexOffset picks the run time within a period: a random point of the last
// flex window.
func (s *Scheduler) flexOffset(period, flex time.Duration) time.Duration {
	if flex <= 0 {
		return period
	}
	if flex > period {
		flex = period
	}
	return period - flex + rand.N(flex)
}

// waitOnline blocks until the network is available. It returns false when
// ctx is cancelled first.
func (s *Scheduler) waitOnline(ctx context.Context) bool {
	if s.conn == nil {
		return true
	}

	for !s.conn.Online(ctx) {
		s.logger.Debug().Str("func", "Scheduler.waitOnline").Msg("waiting for network")
		if !sleepUntil(ctx, time.Now().Add(s.networkPoll)) {
			return false
		}
	}
	return ctx.Err() == nil
}

// sleepUntil waits for at. It returns false when ctx is cancelled first.
func sleepUntil(ctx context.Context, at time.Time) bool {
	d := time.Until(at)
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
