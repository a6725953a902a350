package frontend

import (
	"context"

	"github.com/harramos25/GlamBook/internal/logger"
)

type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Loadable tracks one data dependency. A failed load keeps the zero value
// as data and records the error; nothing retries.
type Loadable[T any] struct {
	State LoadState
	Data  T
	Err   error
}

func (l *Loadable[T]) Load(ctx context.Context, name string, fetch func(context.Context) (T, error)) {
	l.State = Loading

	data, err := fetch(ctx)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("resource", name).Msg("fetch failed")
		var zero T
		l.Data = zero
		l.Err = err
		l.State = Failed
		return
	}

	l.Data = data
	l.Err = nil
	l.State = Ready
}

func (l *Loadable[T]) Ready() bool {
	return l.State == Ready
}
