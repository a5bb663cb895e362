package scheduler

import (
	"context"
	"sync/atomic"
	"testing"

	"inclusive-jobs/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingJob struct {
	calls   atomic.Int32
	release chan struct{}
	started chan struct{}
}

func (j *blockingJob) Run(ctx context.Context) (pipeline.RefreshSummary, error) {
	j.calls.Add(1)
	if j.started != nil {
		close(j.started)
	}
	if j.release != nil {
		<-j.release
	}
	return pipeline.RefreshSummary{}, nil
}

func TestScheduler_EmptySpecDisabled(t *testing.T) {
	s := New("", &blockingJob{}, nil)
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New("every now and then", &blockingJob{}, nil)
	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_TickSkipsOverlap(t *testing.T) {
	job := &blockingJob{release: make(chan struct{}), started: make(chan struct{})}
	s := New("@every 1h", job, nil)

	done := make(chan struct{})
	go func() {
		s.tick(context.Background())
		close(done)
	}()
	<-job.started

	s.tick(context.Background())
	assert.Equal(t, int32(1), job.calls.Load())

	close(job.release)
	<-done
	assert.False(t, s.running.Load())
}
