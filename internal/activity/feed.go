package activity

import "sync"

// RecentLimit is how many records the feed keeps in its recent view.
const RecentLimit = 10

// Feed is the reactive wrapper around a Store: it caches the derived
// views, tracks an unread counter, and stays subscribed to the store's
// change notifications for its lifetime. One feed is created per process
// run; Close releases its subscriptions.
//
// Unread semantics: the counter increments on every committed append and
// resets only on MarkAsRead or a store clear. "Read" means the activity
// panel was opened, not that any particular record was seen.
type Feed struct {
	store *Store

	mu     sync.Mutex
	all    []Record
	recent []Record
	today  []Record
	stats  Stats
	unread int

	unsubAppend func()
	unsubClear  func()
}

// NewFeed loads the initial views and subscribes to the store.
func NewFeed(store *Store) *Feed {
	f := &Feed{store: store}
	f.reload()
	f.unsubAppend = store.OnAppend(func(Record) {
		f.mu.Lock()
		f.unread++
		f.mu.Unlock()
		f.reload()
	})
	f.unsubClear = store.OnClear(func() {
		f.mu.Lock()
		f.unread = 0
		f.mu.Unlock()
		f.reload()
	})
	return f
}

// LogActivity appends through the store; the feed's own subscription
// handles the reload and unread bump synchronously.
func (f *Feed) LogActivity(t Type, data map[string]string, userID string) *Record {
	return f.store.Append(t, data, userID)
}

// All returns the cached full view.
func (f *Feed) All() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all
}

// Recent returns the cached recent view.
func (f *Feed) Recent() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recent
}

// Today returns the cached today view.
func (f *Feed) Today() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.today
}

// Stats returns the cached aggregate counts.
func (f *Feed) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// UnreadCount returns the number of appends since the last MarkAsRead.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

// MarkAsRead resets the unread counter without reloading anything.
func (f *Feed) MarkAsRead() {
	f.mu.Lock()
	f.unread = 0
	f.mu.Unlock()
}

// Refresh reloads all views from the store.
func (f *Feed) Refresh() {
	f.reload()
}

// Close unsubscribes the feed from the store.
func (f *Feed) Close() {
	if f.unsubAppend != nil {
		f.unsubAppend()
		f.unsubAppend = nil
	}
	if f.unsubClear != nil {
		f.unsubClear()
		f.unsubClear = nil
	}
}

func (f *Feed) reload() {
	all := f.store.All()
	recent := f.store.Recent(RecentLimit)
	today := f.store.Today()
	stats := f.store.Stats()

	f.mu.Lock()
	f.all = all
	f.recent = recent
	f.today = today
	f.stats = stats
	f.mu.Unlock()
}
