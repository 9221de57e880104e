package systems

import (
	"errors"
	"testing"
)

// memStore is the in-memory itemStore used in place of gdata.
type memStore struct {
	items map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) SaveItem(name string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[name] = data
	return nil
}

func (m *memStore) LoadItem(name string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.items[name]
	if !ok {
		return nil, errors.New("no such item")
	}
	return data, nil
}

// withStore swaps in a test store and resets the package state after.
func withStore(t *testing.T, store itemStore) {
	t.Helper()
	prevStore, prevInit, prevBest := scoreStore, storeInitialized, bestScore
	scoreStore, storeInitialized, bestScore = store, store != nil, 0
	t.Cleanup(func() {
		scoreStore, storeInitialized, bestScore = prevStore, prevInit, prevBest
	})
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := newMemStore()
	withStore(t, store)

	syncBestScore(17)
	SaveBestScore()

	bestScore = 0
	if got := LoadBestScore(); got != 17 {
		t.Errorf("LoadBestScore after save = %d, want 17", got)
	}
}

func TestLoadBestScoreMissingItem(t *testing.T) {
	withStore(t, newMemStore())
	if got := LoadBestScore(); got != 0 {
		t.Errorf("LoadBestScore with empty store = %d, want 0", got)
	}
}

func TestLoadBestScoreWithoutStore(t *testing.T) {
	withStore(t, nil)
	if got := LoadBestScore(); got != 0 {
		t.Errorf("LoadBestScore without a store = %d, want 0", got)
	}
	// Saving without a store must be a no-op, not a crash.
	SaveBestScore()
}

func TestLoadBestScoreStoreError(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk unplugged")
	withStore(t, store)

	if got := LoadBestScore(); got != 0 {
		t.Errorf("LoadBestScore with failing store = %d, want 0", got)
	}
}

func TestDecodeBestScore(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"plain", "42", 42},
		{"whitespace", " 7\n", 7},
		{"zero", "0", 0},
		{"garbage", "not a number", 0},
		{"empty", "", 0},
		{"negative", "-3", 0},
		{"float", "3.5", 0},
	}

	for _, tc := range cases {
		if got := decodeBestScore([]byte(tc.data)); got != tc.want {
			t.Errorf("%s: decodeBestScore(%q) = %d, want %d", tc.name, tc.data, got, tc.want)
		}
	}
}

func TestSyncBestScoreOnlyRises(t *testing.T) {
	withStore(t, newMemStore())

	syncBestScore(5)
	syncBestScore(3)
	if bestScore != 5 {
		t.Errorf("bestScore = %d, want 5 after a lower sync", bestScore)
	}
	syncBestScore(9)
	if bestScore != 9 {
		t.Errorf("bestScore = %d, want 9", bestScore)
	}
}
