package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestContentCacheDefault(t *testing.T) {
	c := NewContentCache("", time.Minute)
	p, err := c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Profile.FullName() == "" {
		t.Fatalf("expected the built-in portfolio")
	}
	if len(c.Sources()) != 0 {
		t.Fatalf("built-in content has no sources, got %v", c.Sources())
	}
}

func TestContentCacheTTL(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "profile.yaml", "profile:\n  first_name: Ada\n  last_name: Lovelace\n")

	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	c := NewContentCache(dir, time.Minute)
	c.now = clock.Now

	p, err := c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := p.Profile.FullName(); got != "Ada Lovelace" {
		t.Fatalf("name = %q", got)
	}

	writeContent(t, dir, "profile.yaml", "profile:\n  first_name: Grace\n  last_name: Hopper\n")
	p, _ = c.Get()
	if got := p.Profile.FullName(); got != "Ada Lovelace" {
		t.Fatalf("cached name = %q, want the old copy within the TTL", got)
	}

	clock.Advance(2 * time.Minute)
	p, _ = c.Get()
	if got := p.Profile.FullName(); got != "Grace Hopper" {
		t.Fatalf("name after TTL = %q", got)
	}
}

func TestContentCacheKeepsLastGoodCopy(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "profile.yaml", "profile:\n  first_name: Ada\n  last_name: Lovelace\n")

	c := NewContentCache(dir, time.Minute)
	if err := c.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	writeContent(t, dir, "profile.yaml", "profile: [not, a, map\n")
	if err := c.Reload(); err == nil {
		t.Fatalf("expected a reload error for broken YAML")
	}
	if c.Err() == nil {
		t.Fatalf("Err should report the failed load")
	}
	p, err := c.Get()
	if err != nil {
		t.Fatalf("Get after failed reload: %v", err)
	}
	if got := p.Profile.FullName(); got != "Ada Lovelace" {
		t.Fatalf("name = %q, want the last good copy", got)
	}
}

func TestContentCacheFirstLoadFails(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "bad.yaml", "projects:\n  - description: untitled\n")

	c := NewContentCache(dir, time.Minute)
	if _, err := c.Get(); err == nil {
		t.Fatalf("expected an error when nothing has loaded")
	}
}
