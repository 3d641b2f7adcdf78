package lotteries

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `lotteries:
  - id: us-powerball
    name: US POWERBALL
    primary_url: https://primary.example.com/powerball
    fallback_url: https://fallback.example.com/powerball
  - id: za-lotto
    name: ZA LOTTO
    primary_url: https://primary.example.com/za-lotto
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadRegistryYAML(t *testing.T) {
	reg, err := LoadRegistry(writeCatalog(t, "lotteries.yaml", sampleCatalog))
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	all := reg.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 lotteries, got %d", len(all))
	}

	lot, ok := reg.ByID("us-powerball")
	if !ok {
		t.Fatal("expected us-powerball to be present")
	}
	if lot.PrimaryURL != "https://primary.example.com/powerball" {
		t.Errorf("unexpected primary url %q", lot.PrimaryURL)
	}

	if _, ok := reg.ByID("no-such-lottery"); ok {
		t.Error("expected unknown id to be absent")
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	const catalogJSON = `{"lotteries":[{"id":"uk-lotto","name":"UK LOTTO","primary_url":"https://primary.example.com/uk"}]}`

	reg, err := LoadRegistry(writeCatalog(t, "lotteries.json", catalogJSON))
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if _, ok := reg.ByID("uk-lotto"); !ok {
		t.Fatal("expected uk-lotto to be present")
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	const dup = `lotteries:
  - id: uk-lotto
    name: UK LOTTO
    primary_url: https://a.example.com
  - id: uk-lotto
    name: UK LOTTO AGAIN
    primary_url: https://b.example.com
`
	if _, err := LoadRegistry(writeCatalog(t, "lotteries.yaml", dup)); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestNewRegistryRequiresSourceURL(t *testing.T) {
	_, err := NewRegistry([]Lottery{{ID: "x-lotto", Name: "X"}})
	if err == nil {
		t.Fatal("expected lottery with no urls to be rejected")
	}
}

func TestByIDNormalizesIdentifier(t *testing.T) {
	reg, err := NewRegistry([]Lottery{{ID: "UK-Lotto", Name: "UK", PrimaryURL: "https://a.example.com"}})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := reg.ByID("  uk-lotto "); !ok {
		t.Fatal("expected case/space-insensitive lookup to hit")
	}
}
