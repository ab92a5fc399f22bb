package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToolRent/GoToolRent/pkg/logger"
)

type recordingMetrics struct {
	mu            sync.Mutex
	notifications map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{notifications: map[string]int{}}
}

func (m *recordingMetrics) RecordCheckout(string)                             {}
func (m *recordingMetrics) RecordOrderStatusChange(string)                    {}
func (m *recordingMetrics) RecordUseCaseExecution(string, bool, time.Duration) {}
func (m *recordingMetrics) ObserveHTTPRequestDuration(string, string, string, float64) {}

func (m *recordingMetrics) RecordNotification(channel, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications[channel+"/"+status]++
}

type fakeStore struct {
	claims map[string]bool
	setErr error
}

func newFakeStore() *fakeStore { return &fakeStore{claims: map[string]bool{}} }

func (s *fakeStore) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if s.setErr != nil {
		return false, s.setErr
	}
	if s.claims[key] {
		return false, nil
	}
	s.claims[key] = true
	return true, nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	delete(s.claims, key)
	return nil
}

func TestWrapExponentialBackoff_RetriesUntilSuccess(t *testing.T) {
	attempts := 0
	handler := WrapExponentialBackoff(logger.NewNop(), newRecordingMetrics(), "sms", 3, time.Millisecond,
		func(context.Context, []byte, map[string]interface{}) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		})

	err := handler(context.Background(), []byte("msg"), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWrapExponentialBackoff_GivesUpAfterMaxRetries(t *testing.T) {
	m := newRecordingMetrics()
	attempts := 0
	handler := WrapExponentialBackoff(logger.NewNop(), m, "sms", 2, time.Millisecond,
		func(context.Context, []byte, map[string]interface{}) error {
			attempts++
			return errors.New("permanent")
		})

	err := handler(context.Background(), []byte("msg"), nil)

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 1, m.notifications["sms/final_failure"])
}

func TestWrapIdempotency_DropsDuplicates(t *testing.T) {
	store := newFakeStore()
	delivered := 0
	handler := WrapIdempotency(logger.NewNop(), store, "sms", time.Hour,
		func(context.Context, []byte, map[string]interface{}) error {
			delivered++
			return nil
		})
	headers := map[string]interface{}{"x-event-id": "evt-1"}

	require.NoError(t, handler(context.Background(), []byte("msg"), headers))
	require.NoError(t, handler(context.Background(), []byte("msg"), headers))

	assert.Equal(t, 1, delivered)
}

func TestWrapIdempotency_ReleasesClaimOnFailure(t *testing.T) {
	store := newFakeStore()
	attempts := 0
	handler := WrapIdempotency(logger.NewNop(), store, "sms", time.Hour,
		func(context.Context, []byte, map[string]interface{}) error {
			attempts++
			if attempts == 1 {
				return errors.New("boom")
			}
			return nil
		})
	headers := map[string]interface{}{"x-event-id": "evt-2"}

	require.Error(t, handler(context.Background(), []byte("msg"), headers))
	require.NoError(t, handler(context.Background(), []byte("msg"), headers))

	assert.Equal(t, 2, attempts)
}

func TestWrapIdempotency_FailsClosedWhenStoreDown(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("redis down")
	handler := WrapIdempotency(logger.NewNop(), store, "sms", time.Hour,
		func(context.Context, []byte, map[string]interface{}) error {
			t.Fatal("handler must not run")
			return nil
		})

	err := handler(context.Background(), []byte("msg"), nil)

	assert.Error(t, err)
}

func TestWrapIdempotency_HashFallbackWithoutEventID(t *testing.T) {
	store := newFakeStore()
	delivered := 0
	handler := WrapIdempotency(logger.NewNop(), store, "sms", time.Hour,
		func(context.Context, []byte, map[string]interface{}) error {
			delivered++
			return nil
		})

	require.NoError(t, handler(context.Background(), []byte("same payload"), nil))
	require.NoError(t, handler(context.Background(), []byte("same payload"), nil))
	require.NoError(t, handler(context.Background(), []byte("other payload"), nil))

	assert.Equal(t, 2, delivered)
}

func TestWrapResilient_RecordsOutcome(t *testing.T) {
	m := newRecordingMetrics()
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{Name: "test"})
	handler := WrapResilient(m, "sms", time.Second, cb,
		func(context.Context, []byte, map[string]interface{}) error { return nil })

	require.NoError(t, handler(context.Background(), []byte("msg"), nil))

	assert.Equal(t, 1, m.notifications["sms/delivered"])
}

func TestWrapResilient_OpenCircuitShortCircuits(t *testing.T) {
	m := newRecordingMetrics()
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
	})
	calls := 0
	handler := WrapResilient(m, "sms", time.Second, cb,
		func(context.Context, []byte, map[string]interface{}) error {
			calls++
			return errors.New("gateway error")
		})

	require.Error(t, handler(context.Background(), []byte("msg"), nil))
	err := handler(context.Background(), []byte("msg"), nil)

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.notifications["sms/failed"])
	assert.Equal(t, 1, m.notifications["sms/circuit_open"])
}
