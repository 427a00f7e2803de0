package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
)

type testJob struct {
	id      int
	counter *atomic.Int64
	fail    bool
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(_ context.Context) Result {
	if j.counter != nil {
		j.counter.Add(1)
	}
	if j.fail {
		return &testResult{id: j.id, err: fmt.Errorf("job %d failed", j.id)}
	}
	return &testResult{id: j.id}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter atomic.Int64
	const jobs = 20
	for i := 0; i < jobs; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}

	results := pool.Wait()

	if len(results) != jobs {
		t.Errorf("expected %d results, got %d", jobs, len(results))
	}
	if counter.Load() != jobs {
		t.Errorf("expected %d executions, got %d", jobs, counter.Load())
	}

	seen := make(map[int]bool)
	for _, r := range results {
		tr := r.(*testResult)
		if seen[tr.id] {
			t.Errorf("job %d reported twice", tr.id)
		}
		seen[tr.id] = true
	}
}

func TestPool_PropagatesErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&testJob{id: 0})
	pool.Submit(&testJob{id: 1, fail: true})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	var failures int
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failed result, got %d", failures)
	}
}

func TestPool_ZeroWorkers(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	pool.Submit(&testJob{id: 0})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("expected 1 result with the fallback worker, got %d", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submitting after shutdown must not block or panic
	pool.Submit(&testJob{id: 0})
}
