package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
)

// Package cache provides the time-boxed result store keyed by lottery
// identifier. Expiry is lazy: entries are judged stale on read, no
// background sweep.

// Store is the result cache contract. Get returns ok=false once
// now - storedAt >= TTL; Set unconditionally overwrites and resets the
// stored-at timestamp.
type Store interface {
	Get(id string) (*domain.LotteryRecord, bool, error)
	Set(id string, rec *domain.LotteryRecord) error
	Close() error
}

// Options controls retention characteristics for concrete store
// implementations.
type Options struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	Clock           func() time.Time
}

const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = time.Hour
)

// NewStore creates the configured cache backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "none", "disabled":
		return noopStore{}, nil
	case "", "memory":
		return newMemoryStore(opts), nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt cache requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported cache type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return opts
}

type noopStore struct{}

func (noopStore) Get(string) (*domain.LotteryRecord, bool, error) { return nil, false, nil }
func (noopStore) Set(string, *domain.LotteryRecord) error         { return nil }
func (noopStore) Close() error                                    { return nil }
