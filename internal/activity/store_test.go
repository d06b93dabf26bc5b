package activity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangku/cli/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), FileName), logger.Nop())
}

func TestStore_AppendDerivesRecord(t *testing.T) {
	s := newTestStore(t)

	rec := s.Append(ProductAdded, map[string]string{"name": "Widget"}, "u1")
	require.NotNil(t, rec)

	assert.Equal(t, `Added product "Widget"`, rec.Message)
	assert.Equal(t, "📦", rec.Icon)
	assert.Equal(t, "u1", rec.UserID)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.Date)
	assert.NotEmpty(t, rec.Time)

	got := s.Recent(1)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, `Added product "Widget"`, got[0].Message)
}

func TestStore_CapInvariant(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < MaxRecords+20; i++ {
		rec := s.Append(ProductAdded, map[string]string{"name": fmt.Sprintf("p%03d", i)}, "")
		require.NotNil(t, rec)
	}

	all := s.All()
	require.Len(t, all, MaxRecords)

	// The survivors are the most recent appends, newest-first.
	assert.Equal(t, fmt.Sprintf("p%03d", MaxRecords+19), all[0].Data["name"])
	assert.Equal(t, fmt.Sprintf("p%03d", 20), all[MaxRecords-1].Data["name"])
}

func TestStore_NewestFirstOrdering(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 10; i++ {
		s.Append(SupplierAdded, map[string]string{"name": fmt.Sprintf("s%d", i)}, "")
	}

	all := s.All()
	require.Len(t, all, 10)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.After(all[i-1].Timestamp),
			"records must be in non-increasing timestamp order")
	}
	assert.Equal(t, "s9", all[0].Data["name"])
	assert.Equal(t, "s0", all[9].Data["name"])
}

func TestStore_CorruptStorageReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s := NewStore(path, logger.Nop())
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Stats().Total)

	// Appending over corrupt storage starts a fresh log.
	rec := s.Append(CategoryAdded, map[string]string{"name": "Snacks"}, "")
	require.NotNil(t, rec)
	assert.Len(t, s.All(), 1)
}

func TestStore_MissingFileReadsAsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.All())
	assert.Empty(t, s.Recent(5))
	assert.Empty(t, s.Today())
}

func TestStore_PersistFailureReturnsNil(t *testing.T) {
	// A path whose parent is a regular file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	s := NewStore(filepath.Join(blocker, FileName), logger.Nop())
	rec := s.Append(ProductAdded, map[string]string{"name": "Widget"}, "")
	assert.Nil(t, rec, "persist failure is swallowed, caller gets nil")
}

func TestStore_Filters(t *testing.T) {
	s := newTestStore(t)
	s.Append(ProductAdded, map[string]string{"name": "a"}, "")
	s.Append(SupplierAdded, map[string]string{"name": "b"}, "")
	s.Append(ProductAdded, map[string]string{"name": "c"}, "")

	byType := s.ByType(ProductAdded)
	require.Len(t, byType, 2)
	assert.Equal(t, "c", byType[0].Data["name"])

	// Everything was appended just now, so today catches it all.
	assert.Len(t, s.Today(), 3)

	stats := s.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Today)
	assert.Equal(t, 2, stats.ByType[ProductAdded])
	assert.Equal(t, 1, stats.ByType[SupplierAdded])
}

func TestStore_ClearNotifies(t *testing.T) {
	s := newTestStore(t)
	s.Append(ProductAdded, map[string]string{"name": "a"}, "")

	cleared := false
	unsub := s.OnClear(func() { cleared = true })
	defer unsub()

	s.Clear()
	assert.True(t, cleared)
	assert.Empty(t, s.All())
}

func TestStore_AppendNotifiesSubscribers(t *testing.T) {
	s := newTestStore(t)

	var seen []Record
	unsub := s.OnAppend(func(rec Record) { seen = append(seen, rec) })

	s.Append(ProductAdded, map[string]string{"name": "a"}, "")
	require.Len(t, seen, 1)
	assert.Equal(t, `Added product "a"`, seen[0].Message)

	unsub()
	s.Append(ProductAdded, map[string]string{"name": "b"}, "")
	assert.Len(t, seen, 1, "unsubscribed listener must not fire")
}

func TestStore_PersistedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s := NewStore(path, logger.Nop())
	s.Append(UserLogin, map[string]string{"name": "alice"}, "u1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "user_login", records[0]["type"])
	assert.Equal(t, `Signed in as "alice"`, records[0]["message"])
}
