package content

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Len(t, p.Skills, 8)
	assert.Len(t, p.Experience, 4)
	assert.Len(t, p.Projects, 12)
	assert.Len(t, p.Achievements, 6)
	assert.Equal(t, []string{"AI/ML Engineer", "GenAI Developer", "System Architect", "Tech Innovator"}, p.Profile.Roles)
	assert.Equal(t, "Vansh Bhatnagar", p.Profile.FullName())

	for _, n := range p.Nav {
		assert.True(t, p.HasSection(n.Href), n.Href)
	}
	assert.True(t, p.HasSection("hero"))
	assert.False(t, p.HasSection("blog"))
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a.Projects[0].Title = "changed"
	b := Default()
	assert.NotEqual(t, "changed", b.Projects[0].Title)
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SaleSpeak - A Conversational Agent", "salespeak-a-conversational-agent"},
		{"  AI-Tutor ", "ai-tutor"},
		{"News Webpage Semantic Analysis Tool", "news-webpage-semantic-analysis-tool"},
		{"C++ & Go!", "c-go"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestNormalizeUniqueSlugs(t *testing.T) {
	p := Portfolio{Projects: []Project{{Title: "Same"}, {Title: "Same"}, {Title: "Other", Slug: "custom"}}}
	p.Normalize()
	assert.Equal(t, "same", p.Projects[0].Slug)
	assert.Equal(t, "same-2", p.Projects[1].Slug)
	assert.Equal(t, "custom", p.Projects[2].Slug)
}

func TestProjectLookup(t *testing.T) {
	p := Default()
	pr, err := p.Project("ai-tutor")
	require.NoError(t, err)
	assert.Equal(t, "AI-Tutor", pr.Title)
	assert.Equal(t, "/projects/ai-tutor/", pr.Link())

	_, err = p.Project("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestValidateCollectsErrors(t *testing.T) {
	p := Portfolio{
		Projects: []Project{{Title: "", Slug: "x"}, {Title: "B", Slug: "x"}},
		Nav:      []NavLink{{Name: "Bad", Href: "#about"}},
	}
	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"name is required", "projects[0]: title", "duplicate slug", "nav[0]"} {
		assert.Contains(t, msg, want)
	}
}

func TestTags(t *testing.T) {
	p := Portfolio{Projects: []Project{
		{Tags: []string{"Go", "htmx"}},
		{Tags: []string{"go", " SQLite ", ""}},
	}}
	assert.Equal(t, []string{"go", "htmx", "sqlite"}, p.Tags())
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("profile:\n  first_name: A\nbogus: 1\n"))
	assert.Error(t, err)

	p, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Projects)
}

func TestEncodeDecodeDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))
	p, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	writeFile(t, path, `
profile:
  first_name: Ada
  last_name: Lovelace
  roles: [Analyst]
projects:
  - title: Analytical Engine
    tags: [math]
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Profile.FullName())
	assert.Equal(t, "analytical-engine", p.Projects[0].Slug)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDirMergesOverBase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a-profile.yaml"), "profile:\n  first_name: Ada\n  last_name: Lovelace\n")
	writeFile(t, filepath.Join(dir, "more", "projects.yml"), "projects:\n  - title: Engine\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	p, files, err := LoadDir(dir, Default())
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, "Ada Lovelace", p.Profile.FullName())
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "engine", p.Projects[0].Slug)
	// untouched lists come from the base
	assert.Len(t, p.Skills, 8)
}

func TestLoadDirInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "projects:\n  - description: untitled\n")
	_, _, err := LoadDir(dir, Default())
	assert.Error(t, err)
}
