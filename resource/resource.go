// Package resource tracks the lifecycle of an asynchronous request keyed by a
// string: idle, pending, then resolved or rejected.
//
// Each call to Request starts a new generation. The fetch runs on its own
// goroutine and its result is handed to the dispatcher, which is expected to
// run it on the owner's execution context (a component's Dispatch). What
// happens to results of superseded generations depends on the Policy.
package resource

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fetcher loads the value for key. It should return promptly once ctx is done.
type Fetcher[T any] func(ctx context.Context, key string) (T, error)

// Option configures a Resource.
type Option func(*options)

type options struct {
	policy   Policy
	dispatch func(func())
	onChange func()
	logger   *zap.Logger
	ctx      context.Context
}

// WithPolicy sets the stale-result policy. The default is SuppressStale.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithDispatcher sets the function completions are handed to. The default
// runs them on the fetching goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(o *options) {
		if dispatch != nil {
			o.dispatch = dispatch
		}
	}
}

// WithOnChange sets a callback run after every state change. Changes made by
// completions run it inside the dispatched task.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext sets the parent context of every request.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// Resource holds the state of the latest request. It is safe for concurrent
// use, but the intended use is from a single execution context.
type Resource[T any] struct {
	fetch Fetcher[T]
	opts  options

	base      context.Context
	cancelAll context.CancelFunc
	wg        sync.WaitGroup

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

// New returns an idle Resource using fetch.
func New[T any](fetch Fetcher[T], opts ...Option) *Resource[T] {
	o := options{
		policy:   SuppressStale,
		dispatch: func(task func()) { task() },
		logger:   zap.NewNop(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Resource[T]{fetch: fetch, opts: o, state: Idle[T]()}
	r.base, r.cancelAll = context.WithCancel(o.ctx)
	return r
}

// State returns the current state.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Generation returns the generation of the latest request.
func (r *Resource[T]) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Policy returns the stale-result policy.
func (r *Resource[T]) Policy() Policy {
	return r.opts.policy
}

// Request starts a new generation for key and returns its number. An empty
// key resets the state to idle without fetching. Otherwise the state becomes
// pending for key and exactly one fetch is started.
func (r *Resource[T]) Request(key string) uint64 {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	r.gen++
	gen := r.gen
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	if key == "" {
		r.state = Idle[T]()
		r.mu.Unlock()
		r.changed()
		return gen
	}

	r.state = Pending[T](key)
	ctx, cancel := context.WithCancel(r.base)
	if r.opts.policy == SuppressStale {
		r.cancel = cancel
	}
	r.mu.Unlock()

	id := uuid.NewString()
	log := r.opts.logger.With(
		zap.String("request_id", id),
		zap.String("key", key),
		zap.Uint64("generation", gen))
	log.Debug("request started")

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		data, err := r.fetch(ctx, key)
		r.opts.dispatch(func() { r.settle(log, gen, key, data, err) })
	}()

	r.changed()
	return gen
}

func (r *Resource[T]) settle(log *zap.Logger, gen uint64, key string, data T, err error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		log.Debug("result dropped, resource closed")
		return
	}
	if r.opts.policy == SuppressStale && gen != r.gen {
		r.mu.Unlock()
		log.Debug("stale result dropped", zap.Uint64("current_generation", r.gen), zap.Error(err))
		return
	}
	if err != nil {
		r.state = Rejected[T](key, err)
	} else {
		r.state = Resolved(key, data)
	}
	if gen == r.gen {
		r.cancel = nil
	}
	r.mu.Unlock()

	switch {
	case err == nil:
		log.Debug("request resolved")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Debug("request rejected", zap.Error(err))
	default:
		log.Info("request rejected", zap.Error(err))
	}
	r.changed()
}

func (r *Resource[T]) changed() {
	if r.opts.onChange != nil {
		r.opts.onChange()
	}
}

// Reset is Request("").
func (r *Resource[T]) Reset() {
	r.Request("")
}

// Close cancels every request in flight. Later results are dropped and
// Request becomes a no-op.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.cancel = nil
	r.mu.Unlock()
	r.cancelAll()
}

// Wait blocks until every fetch goroutine has handed its result to the
// dispatcher.
func (r *Resource[T]) Wait() {
	r.wg.Wait()
}
