package usecase

import (
	"context"
	"log"
)

type compensation struct {
	ref  string
	undo func(ctx context.Context) error
}

// saga records the reverse action of every completed write of a multi-step
// sequence so a failure at step N can undo steps 1..N-1.
type saga struct {
	name  string
	steps []compensation
}

func newSaga(name string) *saga {
	return &saga{name: name}
}

func (s *saga) done(ref string, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{ref: ref, undo: undo})
}

// rollback runs the compensations in reverse order and returns the refs
// whose compensation failed.
func (s *saga) rollback(ctx context.Context) []string {
	var failed []string
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.undo(ctx); err != nil {
			log.Printf("[saga][%s] compensation failed ref=%s err=%v", s.name, step.ref, err)
			failed = append(failed, step.ref)
			continue
		}
		log.Printf("[saga][%s] compensated ref=%s", s.name, step.ref)
	}
	return failed
}
