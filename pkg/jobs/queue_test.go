package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsJobs(t *testing.T) {
	done := make(chan string, 1)
	q := NewQueue("test", func(_ context.Context, job Job) error {
		done <- job.ID
		return nil
	}, QueueConfig{})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	select {
	case id := <-done:
		assert.Equal(t, "job-1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("job not processed")
	}
}

func TestQueueRetriesUntilLimit(t *testing.T) {
	var mu sync.Mutex
	attempts := []int{}
	finished := make(chan struct{})
	q := NewQueue("retry", func(_ context.Context, job Job) error {
		mu.Lock()
		attempts = append(attempts, job.Attempt)
		n := len(attempts)
		mu.Unlock()
		if n == 3 {
			close(finished)
		}
		return errors.New("boom")
	}, QueueConfig{MaxRetries: 2, RetryDelay: 5 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("retries not observed")
	}
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2}, attempts)
}

func TestQueueRecoversPanics(t *testing.T) {
	calls := make(chan int, 4)
	q := NewQueue("panic", func(_ context.Context, job Job) error {
		calls <- job.Attempt
		if job.Attempt == 0 {
			panic("bad job")
		}
		return nil
	}, QueueConfig{MaxRetries: 1, RetryDelay: 5 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	for want := 0; want <= 1; want++ {
		select {
		case got := <-calls:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("job not retried after panic")
		}
	}
}

func TestEnqueueBeforeStartFails(t *testing.T) {
	q := NewQueue("idle", func(context.Context, Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "x"}))
}

func TestEnqueueWhenFull(t *testing.T) {
	block := make(chan struct{})
	q := NewQueue("full", func(context.Context, Job) error {
		<-block
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())
	defer func() {
		close(block)
		q.Stop()
	}()

	require.NoError(t, q.Enqueue(Job{ID: "1"}))
	var err error
	for i := 0; i < 3 && err == nil; i++ {
		err = q.Enqueue(Job{ID: "more"})
	}
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestQueueReportsRetryLostToFullBuffer(t *testing.T) {
	started := make(chan string, 8)
	release := make(chan struct{})
	type dropped struct {
		job Job
		err error
	}
	drops := make(chan dropped, 1)

	q := NewQueue("full-retry", func(_ context.Context, job Job) error {
		started <- job.ID
		if job.ID == "a" {
			return errors.New("boom")
		}
		<-release
		return nil
	}, QueueConfig{
		Workers:    1,
		BufferSize: 1,
		MaxRetries: 3,
		RetryDelay: 200 * time.Millisecond,
		OnDrop:     func(job Job, err error) { drops <- dropped{job, err} },
	})
	q.Start(context.Background())

	wait := func(want string) {
		t.Helper()
		select {
		case got := <-started:
			require.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("job %s not started", want)
		}
	}

	require.NoError(t, q.Enqueue(Job{ID: "a"}))
	wait("a")
	require.NoError(t, q.Enqueue(Job{ID: "b"}))
	wait("b")
	// b holds the only worker and c fills the buffer, so a's retry has nowhere to go
	require.NoError(t, q.Enqueue(Job{ID: "c"}))

	select {
	case d := <-drops:
		assert.Equal(t, "a", d.job.ID)
		assert.Equal(t, 1, d.job.Attempt)
		assert.ErrorIs(t, d.err, ErrQueueFull)
	case <-time.After(2 * time.Second):
		t.Fatal("dropped retry not reported")
	}

	close(release)
	q.Stop()
}

func TestQueueReportsRetryPendingAtStop(t *testing.T) {
	cause := errors.New("boom")
	ran := make(chan struct{}, 1)
	var mu sync.Mutex
	var got []Job
	var gotErr error

	q := NewQueue("stop-retry", func(context.Context, Job) error {
		ran <- struct{}{}
		return cause
	}, QueueConfig{
		MaxRetries: 2,
		RetryDelay: time.Hour,
		OnDrop: func(job Job, err error) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, job)
			gotErr = err
		},
	})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job not processed")
	}
	// Stop waits for the pending retry, which is reported instead of run
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "job-1", got[0].ID)
	assert.Equal(t, 1, got[0].Attempt)
	assert.ErrorIs(t, gotErr, cause)
}

func TestQueueDoesNotReportExhaustedJobs(t *testing.T) {
	ran := make(chan struct{}, 1)
	var drops int
	var mu sync.Mutex
	q := NewQueue("exhausted", func(context.Context, Job) error {
		ran <- struct{}{}
		return errors.New("boom")
	}, QueueConfig{
		MaxRetries: 0,
		OnDrop: func(Job, error) {
			mu.Lock()
			drops++
			mu.Unlock()
		},
	})
	q.Start(context.Background())

	require.NoError(t, q.Enqueue(Job{ID: "job-1"}))
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job not processed")
	}
	q.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, drops)
}
