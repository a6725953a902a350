package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
	At       time.Time
}

// Sink receives every dispatched event. The database logger and the
// RabbitMQ publisher both implement it.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	done  chan struct{}
	once  sync.Once
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	return NewDispatcherSize(100, sinks...)
}

func NewDispatcherSize(size int, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.Write(ctx, ev); err != nil {
				log.Warn().Err(err).Str("action", ev.Action).Msg("audit sink failed")
			}
			cancel()
		}
	}
}

// Dispatch never blocks: when the queue is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
