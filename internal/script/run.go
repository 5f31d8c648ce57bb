package script

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/joshuapare/ucell/cell"
	"github.com/joshuapare/ucell/internal/logging"
)

// Event reports one executed step.
type Event struct {
	Index  int      `json:"index"`
	Op     Op       `json:"op"`
	Handle string   `json:"handle"`
	Ref    cell.Ref `json:"ref"`
	Value  float64  `json:"value"`
}

// Observer receives each step after it executes. It may be nil.
type Observer func(Event)

// Result summarizes a run.
type Result struct {
	Name   string     `json:"name"`
	Steps  int        `json:"steps"`
	Events []Event    `json:"events"`
	Stats  cell.Stats `json:"stats"`
}

// Run executes the scenario on a fresh heap. It stops at the first failing
// step and returns the partial result alongside the error. ctx is checked
// between steps.
func (s *Script) Run(ctx context.Context, obs Observer) (Result, error) {
	opts := []cell.Option{cell.WithLogger(logging.Named("script"))}
	if s.Generations {
		opts = append(opts, cell.WithGenerations())
	}
	if s.PageSlots > 0 {
		opts = append(opts, cell.WithPageSlots(s.PageSlots))
	}

	r := runner{
		heap:    cell.NewHeap[float64](opts...),
		handles: make(map[string]cell.Cell[float64]),
	}
	res := Result{Name: s.Name}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Stats = r.heap.Stats()
			return res, err
		}

		ev, err := r.step(st)
		ev.Index = i
		if err != nil {
			res.Stats = r.heap.Stats()
			return res, fmt.Errorf("step %d (%s %s): %w", i, ev.Op, ev.Handle, err)
		}

		res.Steps++
		res.Events = append(res.Events, ev)
		if obs != nil {
			obs(ev)
		}
	}

	res.Stats = r.heap.Stats()
	logging.L.Debug("script done", zap.String("name", s.Name), zap.Int("steps", res.Steps))
	return res, nil
}

type runner struct {
	heap    *cell.Heap[float64]
	handles map[string]cell.Cell[float64]
}

func (r *runner) step(st Step) (Event, error) {
	op, name, err := st.Op()
	ev := Event{Op: op, Handle: name}
	if err != nil {
		return ev, err
	}

	switch op {
	case OpCreate:
		if _, ok := r.handles[name]; ok {
			return ev, ErrDuplicateHandle
		}
		c := r.heap.Alloc(*st.Value)
		r.handles[name] = c
		ev.Ref, ev.Value = c.Ref(), *st.Value

	case OpDup:
		if _, ok := r.handles[name]; ok {
			return ev, ErrDuplicateHandle
		}
		src, ok := r.handles[st.From]
		if !ok {
			return ev, fmt.Errorf("%w: %s", ErrUnknownHandle, st.From)
		}
		c := src.Clone()
		r.handles[name] = c
		ev.Ref = c.Ref()

	case OpWrite:
		c, err := r.lookup(name)
		if err != nil {
			return ev, err
		}
		p, err := c.Lookup()
		if err != nil {
			return ev, err
		}
		*p = *st.Value
		ev.Ref, ev.Value = c.Ref(), *st.Value

	case OpExpect:
		c, err := r.lookup(name)
		if err != nil {
			return ev, err
		}
		got, err := c.Load()
		if err != nil {
			return ev, err
		}
		ev.Ref, ev.Value = c.Ref(), got
		if got != *st.Value {
			return ev, fmt.Errorf("%w: got %v, want %v", ErrMismatch, got, *st.Value)
		}

	case OpFree:
		c, err := r.lookup(name)
		if err != nil {
			return ev, err
		}
		ev.Ref = c.Ref()
		if err := c.Free(); err != nil {
			return ev, err
		}
	}
	return ev, nil
}

func (r *runner) lookup(name string) (cell.Cell[float64], error) {
	c, ok := r.handles[name]
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrUnknownHandle, name)
	}
	return c, nil
}
