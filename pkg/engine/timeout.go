package engine

import (
	"fmt"
	"time"
)

// EvalTimeout is the default limit for a single evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	result EvalResult
	err    error
}

// begin starts a new generation and returns its number.
func (e *Engine) begin() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	return e.generation
}

func (e *Engine) current() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// wait blocks for the result of generation gen. A result that arrives after
// a newer Run started is discarded. On timeout the evaluating goroutine is
// abandoned; its late result lands in the buffered channel and is dropped.
func (e *Engine) wait(ch <-chan evalResult, gen uint64) (EvalResult, error) {
	limit := e.Timeout
	if limit <= 0 {
		limit = EvalTimeout
	}
	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case res := <-ch:
		if gen != e.current() {
			return EvalResult{}, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.result, res.err
	case <-timer.C:
		return EvalResult{}, fmt.Errorf("evaluation timed out after %s", limit)
	}
}
