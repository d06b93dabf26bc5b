package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/cli/internal/logger"
)

func TestFeed_UnreadCountsAppends(t *testing.T) {
	s := newTestStore(t)
	f := NewFeed(s)
	defer f.Close()

	assert.Equal(t, 0, f.UnreadCount())

	for i := 0; i < 5; i++ {
		f.LogActivity(ProductAdded, map[string]string{"name": "p"}, "")
	}
	assert.Equal(t, 5, f.UnreadCount())

	f.MarkAsRead()
	assert.Equal(t, 0, f.UnreadCount())

	f.LogActivity(ProductAdded, map[string]string{"name": "p"}, "")
	assert.Equal(t, 1, f.UnreadCount())
}

func TestFeed_ClearResetsUnread(t *testing.T) {
	s := newTestStore(t)
	f := NewFeed(s)
	defer f.Close()

	f.LogActivity(ProductAdded, map[string]string{"name": "p"}, "")
	f.LogActivity(SupplierAdded, map[string]string{"name": "s"}, "")
	require.Equal(t, 2, f.UnreadCount())

	s.Clear()
	assert.Equal(t, 0, f.UnreadCount())
	assert.Empty(t, f.All())
}

func TestFeed_ViewsTrackStore(t *testing.T) {
	s := newTestStore(t)
	f := NewFeed(s)
	defer f.Close()

	assert.Empty(t, f.All())

	f.LogActivity(ProductAdded, map[string]string{"name": "Widget"}, "u1")

	all := f.All()
	require.Len(t, all, 1)
	assert.Equal(t, `Added product "Widget"`, all[0].Message)
	assert.Len(t, f.Recent(), 1)
	assert.Len(t, f.Today(), 1)
	assert.Equal(t, 1, f.Stats().Total)
}

func TestFeed_FailedAppendDoesNotBumpUnread(t *testing.T) {
	// Store with an unwritable path: Append returns nil and emits nothing.
	s := NewStore(t.TempDir(), logger.Nop()) // path is a directory, writes fail
	f := NewFeed(s)
	defer f.Close()

	rec := f.LogActivity(ProductAdded, map[string]string{"name": "p"}, "")
	assert.Nil(t, rec)
	assert.Equal(t, 0, f.UnreadCount())
}

func TestFeed_CloseUnsubscribes(t *testing.T) {
	s := newTestStore(t)
	f := NewFeed(s)
	f.Close()

	s.Append(ProductAdded, map[string]string{"name": "p"}, "")
	assert.Equal(t, 0, f.UnreadCount(), "closed feed must not react to appends")
	assert.Empty(t, f.All(), "closed feed keeps its last views")
}
