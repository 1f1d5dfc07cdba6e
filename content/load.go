package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Decode parses one YAML document into a Portfolio. Unknown keys are rejected.
func Decode(r io.Reader) (Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Portfolio{}, err
	}
	return p, nil
}

// Load reads a portfolio from a YAML file.
func Load(path string) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Portfolio{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return Portfolio{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return p, nil
}

// LoadDir reads every *.yaml and *.yml file under dir, in lexical order,
// and merges them on top of base. A file replaces each list it sets and
// leaves the others untouched, so profile.yaml and projects.yaml can live
// side by side.
func LoadDir(dir string, base Portfolio) (Portfolio, []string, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.{yaml,yml}")
	if err != nil {
		return Portfolio{}, nil, fmt.Errorf("glob content: %w", err)
	}
	sort.Strings(matches)
	out := base
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return Portfolio{}, nil, fmt.Errorf("read %s: %w", m, err)
		}
		p, err := Decode(bytes.NewReader(data))
		if err != nil {
			return Portfolio{}, nil, fmt.Errorf("parse %s: %w", m, err)
		}
		out = Merge(out, p)
	}
	out.Normalize()
	if err := out.Validate(); err != nil {
		return Portfolio{}, nil, fmt.Errorf("validate %s: %w", dir, err)
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return out, files, nil
}

// Merge overlays the non-empty parts of top onto base.
func Merge(base, top Portfolio) Portfolio {
	out := base
	if top.Profile.FullName() != "" || top.Profile.Title != "" || len(top.Profile.Roles) > 0 {
		out.Profile = top.Profile
	}
	if len(top.Highlights) > 0 {
		out.Highlights = top.Highlights
	}
	if len(top.Skills) > 0 {
		out.Skills = top.Skills
	}
	if len(top.Experience) > 0 {
		out.Experience = top.Experience
	}
	if len(top.Projects) > 0 {
		out.Projects = top.Projects
	}
	if len(top.Achievements) > 0 {
		out.Achievements = top.Achievements
	}
	if len(top.Contact) > 0 {
		out.Contact = top.Contact
	}
	if len(top.Social) > 0 {
		out.Social = top.Social
	}
	if len(top.Nav) > 0 {
		out.Nav = top.Nav
	}
	return out
}

// Encode writes p as YAML.
func Encode(w io.Writer, p Portfolio) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
