package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRemindHandler struct{ mock.Mock }

func (m *MockRemindHandler) Handle(ctx context.Context, cmd commands.RemindUnshippedOrdersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestUnshippedOrdersReminderJob_Run(t *testing.T) {
	t.Run("passes the configured age", func(t *testing.T) {
		handler := new(MockRemindHandler)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemindUnshippedOrdersCommand) bool {
			return cmd.OlderThan() == 6*time.Hour
		})).Return(2, nil).Once()
		logger, buf := bufferLogger()

		jobs.NewUnshippedOrdersReminderJob(handler, "@every 1h", 6*time.Hour, logger).Run(context.Background())

		handler.AssertExpectations(t)
		assert.Contains(t, buf.String(), "Reminded admins about unshipped orders")
	})

	t.Run("defaults", func(t *testing.T) {
		handler := new(MockRemindHandler)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RemindUnshippedOrdersCommand) bool {
			return cmd.OlderThan() == jobs.DefaultReminderAfter
		})).Return(0, nil).Once()
		logger, buf := bufferLogger()

		jobs.NewUnshippedOrdersReminderJob(handler, "", 0, logger).Run(context.Background())

		handler.AssertExpectations(t)
		assert.NotContains(t, buf.String(), "Reminded admins")
	})

	t.Run("logs failures", func(t *testing.T) {
		handler := new(MockRemindHandler)
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("db down")).Once()
		logger, buf := bufferLogger()

		jobs.NewUnshippedOrdersReminderJob(handler, "", time.Hour, logger).Run(context.Background())

		assert.Contains(t, buf.String(), "Unshipped orders reminder failed")
		assert.Contains(t, buf.String(), "db down")
	})
}

func TestUnshippedOrdersReminderJob_StartStop(t *testing.T) {
	logger, _ := bufferLogger()

	job := jobs.NewUnshippedOrdersReminderJob(new(MockRemindHandler), "@hourly", time.Hour, logger)
	require.NoError(t, job.Start())
	job.Stop()

	bad := jobs.NewUnshippedOrdersReminderJob(new(MockRemindHandler), "every tuesday", time.Hour, logger)
	assert.Error(t, bad.Start())
}

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j fakeJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.startErr
}

func (j fakeJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager(t *testing.T) {
	t.Run("stops in reverse order", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(fakeJob{name: "a", events: &events}, fakeJob{name: "b", events: &events})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("failed start stops started jobs", func(t *testing.T) {
		var events []string
		jm := jobs.NewJobManager(
			fakeJob{name: "a", events: &events},
			fakeJob{name: "b", startErr: errors.New("bad schedule"), events: &events},
			fakeJob{name: "c", events: &events},
		)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad schedule")
		assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
	})
}
