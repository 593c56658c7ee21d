package observability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/login", "POST", 200, 12*time.Millisecond)
	m.RecordRequest("/login", "POST", 401, 8*time.Millisecond)

	require.Equal(t, int64(2), m.RequestCount("/login", "POST", 200))
	require.Equal(t, int64(1), m.RequestCount("/login", "POST", 401))
	require.Equal(t, int64(0), m.RequestCount("/register", "POST", 200))
}

func TestMetrics_ConcurrentRecording(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest("/register", "POST", 201, time.Millisecond)
			m.RecordError("/register", "POST", "CONFLICT")
		}()
	}
	wg.Wait()

	require.Equal(t, int64(50), m.RequestCount("/register", "POST", 201))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/login", "POST", 200, time.Millisecond)
	m.RecordError("/login", "POST", "X")
	require.Equal(t, int64(0), m.RequestCount("/login", "POST", 200))
}
