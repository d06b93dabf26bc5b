package toast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_ShowDefaults(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	msg := q.Show("saved", Success, 0, "")
	assert.Equal(t, DefaultDuration, msg.Duration)
	assert.Equal(t, TopRight, msg.Position)
	assert.NotEmpty(t, msg.ID)

	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, msg.ID, active[0].ID)
}

func TestQueue_IndependentTimers(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	a := q.Show("a", Info, time.Hour, "")
	b := q.Show("b", Info, time.Hour, "")

	q.Dismiss(a.ID)

	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID, "dismissing A must leave B active")
}

func TestQueue_DismissIdempotent(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	msg := q.Show("a", Warning, time.Hour, "")
	q.Dismiss(msg.ID)
	assert.NotPanics(t, func() {
		q.Dismiss(msg.ID)
		q.Dismiss("no-such-id")
	})
	assert.Empty(t, q.Active())
}

func TestQueue_AutoDismissAfterGrace(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var mu sync.Mutex
	dismissed := make(map[string]bool)
	q.OnDismiss = func(m Message) {
		mu.Lock()
		dismissed[m.ID] = true
		mu.Unlock()
	}

	short := q.Show("short", Info, 20*time.Millisecond, "")
	long := q.Show("long", Info, time.Hour, "")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return dismissed[short.ID]
	}, 2*time.Second, 10*time.Millisecond, "short toast should auto-dismiss after duration + grace")

	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, long.ID, active[0].ID)
}

func TestQueue_HelperKinds(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	assert.Equal(t, Success, q.ShowSuccess("s").Kind)
	assert.Equal(t, Error, q.ShowError("e").Kind)
	assert.Equal(t, Warning, q.ShowWarning("w").Kind)
	assert.Equal(t, Info, q.ShowInfo("i").Kind)

	assert.Len(t, q.Active(), 4)
}

func TestQueue_StackOrder(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	a := q.Show("a", Info, time.Hour, "")
	b := q.Show("b", Info, time.Hour, "")
	c := q.Show("c", Info, time.Hour, "")
	q.Dismiss(b.ID)

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)
}

func TestQueue_OnShowHook(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var shown []string
	q.OnShow = func(m Message) { shown = append(shown, m.Text) }

	q.ShowInfo("hello")
	require.Equal(t, []string{"hello"}, shown)
}
