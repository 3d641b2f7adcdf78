package cache

import (
	"testing"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
)

func testRecord(id string) *domain.LotteryRecord {
	return &domain.LotteryRecord{
		Identifier:     id,
		DisplayName:    domain.DisplayNameFor(id),
		WinningNumbers: []int{4, 8, 15, 16, 23, 42},
	}
}

func TestMemoryStoreGetWithinWindow(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := newMemoryStore(normalizeOptions(Options{TTL: 5 * time.Minute, Clock: clock}))
	rec := testRecord("za-lotto")
	if err := store.Set("za-lotto", rec); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Idempotent within the window: same record both times.
	for i := 0; i < 2; i++ {
		got, ok, err := store.Get("za-lotto")
		if err != nil || !ok {
			t.Fatalf("Get #%d: ok=%v err=%v", i, ok, err)
		}
		if got != rec {
			t.Fatalf("Get #%d returned a different record", i)
		}
	}
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := newMemoryStore(normalizeOptions(Options{TTL: 5 * time.Minute, Clock: clock}))
	if err := store.Set("za-lotto", testRecord("za-lotto")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(5 * time.Minute) // exactly maxAge: expired
	if _, ok, _ := store.Get("za-lotto"); ok {
		t.Fatal("expected entry to be expired at exactly TTL")
	}
}

func TestMemoryStoreSetOverwrites(t *testing.T) {
	store := newMemoryStore(normalizeOptions(Options{TTL: time.Minute}))

	first := testRecord("uk-lotto")
	second := testRecord("uk-lotto")
	second.JackpotAmount = "£9,000,000"

	if err := store.Set("uk-lotto", first); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("uk-lotto", second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Get("uk-lotto")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.JackpotAmount != "£9,000,000" {
		t.Fatalf("expected overwritten record, got %+v", got)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := newMemoryStore(normalizeOptions(Options{}))
	if _, ok, err := store.Get("never-set"); ok || err != nil {
		t.Fatalf("expected absent, got ok=%v err=%v", ok, err)
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.Set("x", testRecord("x")); err != nil {
		t.Fatalf("noop Set: %v", err)
	}
	if _, ok, _ := store.Get("x"); ok {
		t.Fatal("noop store should never hit")
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatal("expected unsupported cache type error")
	}
}
