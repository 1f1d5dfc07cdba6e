package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchContentReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "profile.yaml", "profile:\n  first_name: Ada\n  last_name: Lovelace\n")

	app := newTestApp(t, &fakeSender{}, func(c *SiteConfig) {
		c.ContentDir = dir
		c.WatchContent = true
	})
	if p, _ := app.Content.Get(); p.Profile.FullName() != "Ada Lovelace" {
		t.Fatalf("initial name = %q", p.Profile.FullName())
	}

	sub := filepath.Join(dir, "zz")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// let the watcher pick up the new directory before writing into it
	time.Sleep(100 * time.Millisecond)
	writeContent(t, sub, "profile.yaml", "profile:\n  first_name: Grace\n  last_name: Hopper\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if p, _ := app.Content.Get(); p.Profile.FullName() == "Grace Hopper" {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("content was not reloaded after the file changed")
}

func TestIsContentFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a/profile.yaml": true,
		"b.YML":          true,
		"notes.md":       false,
		"profile.yaml~":  false,
	} {
		if got := isContentFile(path); got != want {
			t.Errorf("isContentFile(%q) = %v, want %v", path, got, want)
		}
	}
}
