package reminder

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	calls int
	sent  int
	err   error
}

func (j *stubJob) Execute(ctx context.Context) (int, error) {
	j.calls++
	return j.sent, j.err
}

func TestNewSchedulerRejectsBadSpec(t *testing.T) {
	_, err := NewScheduler("every day", time.UTC, &stubJob{}, zerolog.Nop())
	assert.Error(t, err)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	job := &stubJob{sent: 3}

	s, err := NewScheduler("0 18 * * *", time.UTC, job, zerolog.New(&buf))
	require.NoError(t, err)

	s.Run()
	assert.Equal(t, 1, job.calls)
	assert.Contains(t, buf.String(), `"sent":3`)

	buf.Reset()
	job.err = errors.New("db down")
	s.Run()
	assert.Contains(t, buf.String(), "reminder run failed")
}

func TestNextRunFollowsLocation(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	s, err := NewScheduler("0 18 * * *", chicago, &stubJob{}, zerolog.Nop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	next := s.Next().In(chicago)
	assert.Equal(t, 18, next.Hour())
	assert.Equal(t, 0, next.Minute())
}
