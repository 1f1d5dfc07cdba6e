// Package content holds the portfolio's static records: profile, skills,
// experience, projects, achievements and contact details.
package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("content: not found")

// Profile describes the site owner.
type Profile struct {
	FirstName  string   `yaml:"first_name"`
	LastName   string   `yaml:"last_name"`
	Title      string   `yaml:"title"`   // page <title> suffix
	Tagline    string   `yaml:"tagline"` // hero sub-heading, inline markdown
	Roles      []string `yaml:"roles"`   // typewriter words
	About      []string `yaml:"about"`   // paragraphs, inline markdown
	Summary    string   `yaml:"summary"` // footer blurb and meta description
	Avatar     string   `yaml:"avatar"`
	ResumePath string   `yaml:"resume_path"`
	Email      string   `yaml:"email"`
	Location   string   `yaml:"location"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Highlight is an about-section feature card.
type Highlight struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Title  string   `yaml:"title"`
	Icon   string   `yaml:"icon"`
	Color  string   `yaml:"color"`
	Skills []string `yaml:"skills"`
}

// Experience is one position on the timeline.
type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Period       string   `yaml:"period"`
	Icon         string   `yaml:"icon"`
	Gradient     string   `yaml:"gradient"`
	Achievements []string `yaml:"achievements"`
}

// Project is a portfolio card.
type Project struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Tags        []string `yaml:"tags"`
	GitHub      string   `yaml:"github"`
	Demo        string   `yaml:"demo"`
	Icon        string   `yaml:"icon"`
	Gradient    string   `yaml:"gradient"`
}

// Link returns the project's detail page path.
func (p Project) Link() string {
	return "/projects/" + p.Slug + "/"
}

// Achievement is an award or recognition.
type Achievement struct {
	Title       string   `yaml:"title"`
	Description []string `yaml:"description"`
}

// ContactInfo is a row in the contact section.
type ContactInfo struct {
	Icon     string `yaml:"icon"`
	Label    string `yaml:"label"`
	Value    string `yaml:"value"`
	Href     string `yaml:"href"`
	Gradient string `yaml:"gradient"`
}

// SocialLink points at an external profile.
type SocialLink struct {
	Icon     string `yaml:"icon"`
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	Gradient string `yaml:"gradient"`
}

// External reports whether the link leaves the site.
func (l SocialLink) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

// NavLink is a navbar entry; Href is the section id.
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Portfolio bundles every record list.
type Portfolio struct {
	Profile      Profile         `yaml:"profile"`
	Highlights   []Highlight     `yaml:"highlights"`
	Skills       []SkillCategory `yaml:"skills"`
	Experience   []Experience    `yaml:"experience"`
	Projects     []Project       `yaml:"projects"`
	Achievements []Achievement   `yaml:"achievements"`
	Contact      []ContactInfo   `yaml:"contact"`
	Social       []SocialLink    `yaml:"social"`
	Nav          []NavLink       `yaml:"nav"`
}

// Project returns the project with slug.
func (p *Portfolio) Project(slug string) (Project, error) {
	for _, pr := range p.Projects {
		if pr.Slug == slug {
			return pr, nil
		}
	}
	return Project{}, fmt.Errorf("project %q: %w", slug, ErrNotFound)
}

// HasSection reports whether id names a navigable section.
func (p *Portfolio) HasSection(id string) bool {
	if id == "hero" {
		return true
	}
	for _, n := range p.Nav {
		if n.Href == id {
			return true
		}
	}
	return false
}

// Normalize fills derived fields: missing project slugs are generated from
// titles and made unique.
func (p *Portfolio) Normalize() {
	seen := make(map[string]int)
	for i := range p.Projects {
		slug := p.Projects[i].Slug
		if slug == "" {
			slug = Slugify(p.Projects[i].Title)
		}
		if n := seen[slug]; n > 0 {
			seen[slug] = n + 1
			slug = fmt.Sprintf("%s-%d", slug, n+1)
		}
		seen[slug]++
		p.Projects[i].Slug = slug
	}
}

// Validate reports records that cannot be rendered.
func (p *Portfolio) Validate() error {
	var errs []error
	if p.Profile.FullName() == "" {
		errs = append(errs, errors.New("profile: name is required"))
	}
	slugs := make(map[string]bool)
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if pr.Slug != "" && slugs[pr.Slug] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate slug %q", i, pr.Slug))
		}
		slugs[pr.Slug] = true
	}
	for i, s := range p.Skills {
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: title is required", i))
		}
	}
	for i, e := range p.Experience {
		if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: title and company are required", i))
		}
	}
	for i, n := range p.Nav {
		if n.Href == "" || strings.ContainsAny(n.Href, "#/ ") {
			errs = append(errs, fmt.Errorf("nav[%d]: href must be a bare section id", i))
		}
	}
	return errors.Join(errs...)
}

// Tags returns the sorted set of project tags, lowercased.
func (p *Portfolio) Tags() []string {
	set := make(map[string]struct{})
	var out []string
	for _, pr := range p.Projects {
		for _, t := range pr.Tags {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if _, ok := set[t]; !ok {
				set[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
