// Package dispatch routes actions to the stores that understand them.
package dispatch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rpggio/termstate/internal/action"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/rpggio/termstate/internal/dispatch"

// Reaction is what a handler does with an action beyond its synchronous
// prefix.
type Reaction struct {
	// Run performs the remote work and returns follow-up actions. Nil when
	// the handler finished synchronously. Follow-ups returned together with
	// an error are still submitted; they let a handler react to its own
	// failure, for example by navigating away.
	Run func(ctx context.Context) ([]action.Action, error)
	// Revert undoes an optimistic patch. It is called when any handler of
	// the same action fails.
	Revert func()
}

// Done is a Reaction with nothing left to run.
var Done = Reaction{}

// Then returns a Reaction that only submits follow-up actions.
func Then(next ...action.Action) Reaction {
	return Reaction{Run: func(context.Context) ([]action.Action, error) { return next, nil }}
}

// Handler reacts to the actions it understands. Handle runs synchronously
// inside Dispatch and reports false for actions outside its concern.
type Handler interface {
	Handle(ctx context.Context, a action.Action) (Reaction, bool)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, a action.Action) (Reaction, bool)

func (f HandlerFunc) Handle(ctx context.Context, a action.Action) (Reaction, bool) {
	return f(ctx, a)
}

// FailureHook may turn a failed action into follow-up actions.
type FailureHook func(a action.Action, err error) []action.Action

// Dispatcher is the single entry point for actions.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
	hooks    []FailureHook
	logger   *zap.Logger
	tracer   trace.Tracer
}

// New creates a dispatcher.
func New(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		logger: logger.Named("dispatch"),
		tracer: otel.Tracer(tracerName),
	}
}

// Register adds handlers. Synchronous prefixes run in registration order.
func (d *Dispatcher) Register(handlers ...Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handlers...)
}

// OnFailure adds a hook consulted whenever a handler fails.
func (d *Dispatcher) OnFailure(hook FailureHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks = append(d.hooks, hook)
}

// Submit dispatches a and waits for it to settle.
func (d *Dispatcher) Submit(ctx context.Context, a action.Action) error {
	return d.Dispatch(ctx, a).Wait()
}

// Dispatch offers a to every handler. Synchronous prefixes have run when it
// returns; remote work continues in the background and is awaited through
// the returned Pending.
func (d *Dispatcher) Dispatch(ctx context.Context, a action.Action) *Pending {
	id := uuid.NewString()
	ctx, span := d.tracer.Start(ctx, a.Type(), trace.WithAttributes(
		attribute.String("dispatch.id", id),
	))

	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers...)
	hooks := append([]FailureHook(nil), d.hooks...)
	d.mu.RUnlock()

	var reactions []Reaction
	for _, h := range handlers {
		if r, ok := h.Handle(ctx, a); ok {
			reactions = append(reactions, r)
		}
	}
	if len(reactions) == 0 {
		d.logger.Warn("action has no handler", zap.String("action", a.Type()), zap.String("dispatch_id", id))
	} else {
		d.logger.Debug("action dispatched",
			zap.String("action", a.Type()),
			zap.String("dispatch_id", id),
			zap.Int("handlers", len(reactions)))
	}

	p := &Pending{ID: id, done: make(chan struct{})}
	go func() {
		defer span.End()
		err := d.settle(ctx, a, reactions, hooks)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			d.logger.Debug("action failed",
				zap.String("action", a.Type()),
				zap.String("dispatch_id", id),
				zap.Error(err))
		}
		p.finish(err)
	}()
	return p
}

func (d *Dispatcher) settle(ctx context.Context, a action.Action, reactions []Reaction, hooks []FailureHook) error {
	var (
		g          errgroup.Group
		mu         sync.Mutex
		cascadeErr error
	)
	for _, r := range reactions {
		if r.Run == nil {
			continue
		}
		g.Go(func() error {
			next, err := r.Run(ctx)
			if err != nil {
				if cerr := d.cascade(ctx, next); cerr != nil {
					d.logger.Warn("failure follow-up failed", zap.Error(cerr))
				}
				return err
			}
			if err := d.cascade(ctx, next); err != nil {
				mu.Lock()
				if cascadeErr == nil {
					cascadeErr = err
				}
				mu.Unlock()
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		return cascadeErr
	}

	for _, r := range reactions {
		if r.Revert != nil {
			r.Revert()
		}
	}
	for _, hook := range hooks {
		if follow := hook(a, err); len(follow) > 0 {
			if herr := d.cascade(ctx, follow); herr != nil {
				d.logger.Warn("failure follow-up failed", zap.String("action", a.Type()), zap.Error(herr))
			}
		}
	}
	return err
}

// cascade submits follow-ups in order, each one after the previous settled,
// and returns the first error.
func (d *Dispatcher) cascade(ctx context.Context, next []action.Action) error {
	var first error
	for _, a := range next {
		if err := d.Dispatch(ctx, a).Wait(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Pending is an in-flight dispatch.
type Pending struct {
	ID   string
	done chan struct{}
	err  error
}

func (p *Pending) finish(err error) {
	p.err = err
	close(p.done)
}

// Done is closed once the action and its cascades settled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the action settled and returns the first handler error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}
