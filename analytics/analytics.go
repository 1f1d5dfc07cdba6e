// Package analytics records which portfolio sections visitors actually
// scroll to. The browser posts one beacon the first time a section is
// revealed; visitors are identified only by a salted hash.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// salt holds the per-installation random salt for IP hashing.
var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads or generates a persistent salt for IP hashing.
// Must be called once at startup before any requests are served.
func InitSalt(store *Store) error {
	var initErr error
	salt.once.Do(func() {
		ctx := context.Background()
		s, err := store.GetSetting(ctx, "hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting(ctx, "hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

func hash(parts ...string) string {
	h := sha256.New()
	h.Write([]byte(salt.value))
	h.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// VisitorID derives an anonymous visitor id from IP and User-Agent.
// The day is mixed in so ids cannot be joined across days.
func VisitorID(ip, userAgent string, day time.Time) string {
	return hash(ip, userAgent, day.UTC().Format("2006-01-02"))
}

// Reveal is one section becoming visible for one visitor.
type Reveal struct {
	VisitorID string
	Section   string
	Device    string
	Timestamp time.Time
}

// Day returns the UTC calendar day of the reveal.
func (r Reveal) Day() string {
	return r.Timestamp.UTC().Format("2006-01-02")
}

// SectionStat aggregates reveals of one section.
type SectionStat struct {
	Section  string  `json:"section"`
	Reveals  int     `json:"reveals"`
	Visitors int     `json:"visitors"`
	Reach    float64 `json:"reach"` // percent of all visitors in the period
}

// DimensionStat is a named count.
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyView is the reveal count for one day.
type DailyView struct {
	Date    string `json:"date"`
	Reveals int    `json:"reveals"`
}

// Stats holds aggregated reveal data for a period.
type Stats struct {
	Period         string          `json:"period"`
	TotalReveals   int             `json:"total_reveals"`
	UniqueVisitors int             `json:"unique_visitors"`
	Sections       []SectionStat   `json:"sections"`
	Devices        []DimensionStat `json:"devices"`
	Daily          []DailyView     `json:"daily"`
}

// Device classifies a User-Agent as Desktop, Mobile or Tablet.
func Device(ua string) string {
	ua = strings.ToLower(ua)
	// iPad UAs also contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "Tablet"
	case strings.Contains(ua, "mobile"):
		return "Mobile"
	default:
		return "Desktop"
	}
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"yandex", "baidu", "facebookexternalhit", "headless", "lighthouse",
}

// IsBot reports whether the User-Agent is likely a crawler. An empty
// User-Agent counts as a bot.
func IsBot(ua string) bool {
	if strings.TrimSpace(ua) == "" {
		return true
	}
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
