package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/cache"
	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
	"github.com/joelapexsolutions/lottery-api-service/pkg/httpclient"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

const fallbackDoc = `<html><body>
<h1>Latest Draw</h1>
<p>7 19 21 40 55 Powerball 3</p>
<p>Drawn on 22 August 2026</p>
</body></html>`

// mockHTTPClient serves canned bodies or errors per URL and counts calls.
type mockHTTPClient struct {
	bodies map[string]string
	errs   map[string]error
	calls  int
}

func (m *mockHTTPClient) GetText(ctx context.Context, url string, headers map[string]string) (string, error) {
	m.calls++
	if err, ok := m.errs[url]; ok {
		return "", err
	}
	if body, ok := m.bodies[url]; ok {
		return body, nil
	}
	return "", &httpclient.TransportError{Err: errors.New("no route")}
}

func testRegistry(t *testing.T) *lotteries.Registry {
	t.Helper()
	reg, err := lotteries.NewRegistry([]lotteries.Lottery{
		{ID: "us-powerball", Name: "US POWERBALL", PrimaryURL: "https://primary.example.com/pb", FallbackURL: "https://fallback.example.com/pb"},
		{ID: "za-lotto", Name: "ZA LOTTO", PrimaryURL: "https://primary.example.com/za"},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func memStore(t *testing.T) cache.Store {
	t.Helper()
	store, err := cache.NewStore("memory", "", cache.Options{TTL: 5 * time.Minute})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestRecordFallsBackOnPrimaryTransportError(t *testing.T) {
	client := &mockHTTPClient{
		errs:   map[string]error{"https://primary.example.com/pb": &httpclient.TransportError{Err: errors.New("reset")}},
		bodies: map[string]string{"https://fallback.example.com/pb": fallbackDoc},
	}
	svc := NewService(testRegistry(t), client, memStore(t))

	rec, err := svc.Record(context.Background(), "us-powerball")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Source != domain.SourceFallback {
		t.Errorf("expected fallback source tag, got %q", rec.Source)
	}
	want := []int{7, 19, 21, 40, 55}
	for i, v := range want {
		if rec.WinningNumbers[i] != v {
			t.Fatalf("winning numbers %v, want %v", rec.WinningNumbers, want)
		}
	}
	if client.calls != 2 {
		t.Errorf("expected 2 fetches (primary then fallback), got %d", client.calls)
	}
}

func TestRecordUnavailableWhenBothSourcesFail(t *testing.T) {
	client := &mockHTTPClient{
		errs: map[string]error{
			"https://primary.example.com/pb":  httpclient.ErrTimeout,
			"https://fallback.example.com/pb": &httpclient.StatusError{Code: 502},
		},
	}
	store := memStore(t)
	svc := NewService(testRegistry(t), client, store)

	_, err := svc.Record(context.Background(), "us-powerball")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	// No cache write on failure.
	if _, hit, _ := store.Get("us-powerball"); hit {
		t.Fatal("unexpected cache entry after total failure")
	}
}

func TestRecordNotSupportedMakesNoNetworkCalls(t *testing.T) {
	client := &mockHTTPClient{}
	svc := NewService(testRegistry(t), client, memStore(t))

	_, err := svc.Record(context.Background(), "mars-lotto")
	if !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("expected zero fetches for unknown identifier, got %d", client.calls)
	}
}

func TestRecordServedFromCacheWithinWindow(t *testing.T) {
	client := &mockHTTPClient{
		bodies: map[string]string{"https://fallback.example.com/pb": fallbackDoc},
		errs:   map[string]error{"https://primary.example.com/pb": &httpclient.TransportError{Err: errors.New("down")}},
	}
	svc := NewService(testRegistry(t), client, memStore(t))

	first, err := svc.Record(context.Background(), "us-powerball")
	if err != nil {
		t.Fatalf("first Record: %v", err)
	}
	callsAfterFirst := client.calls

	second, err := svc.Record(context.Background(), "us-powerball")
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if client.calls != callsAfterFirst {
		t.Errorf("expected cache hit to avoid fetches, calls went %d -> %d", callsAfterFirst, client.calls)
	}
	if first != second {
		t.Error("expected the identical cached record")
	}
}

func TestRecordSkipsMissingFallback(t *testing.T) {
	client := &mockHTTPClient{
		errs: map[string]error{"https://primary.example.com/za": &httpclient.StatusError{Code: 500}},
	}
	svc := NewService(testRegistry(t), client, memStore(t))

	_, err := svc.Record(context.Background(), "za-lotto")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable with no fallback mapped, got %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected a single fetch, got %d", client.calls)
	}
}

func TestCatalogIsPureProjection(t *testing.T) {
	client := &mockHTTPClient{}
	svc := NewService(testRegistry(t), client, memStore(t))

	catalog := svc.Catalog()
	if len(catalog) != 2 {
		t.Fatalf("expected 2 catalog entries, got %d", len(catalog))
	}
	if client.calls != 0 {
		t.Errorf("catalog must not touch the network, got %d calls", client.calls)
	}
}
