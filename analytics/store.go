package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	_ "modernc.org/sqlite"
)

// Store persists reveal beacons in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the analytics database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS reveals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			section TEXT NOT NULL,
			device TEXT NOT NULL,
			day TEXT NOT NULL,
			ts INTEGER NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_reveals_once ON reveals(visitor_id, section, day);
		CREATE INDEX IF NOT EXISTS idx_reveals_ts ON reveals(ts);
		CREATE INDEX IF NOT EXISTS idx_reveals_section ON reveals(section);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting returns a setting value, or "" if it is not set.
func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	var val string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return val, err
}

// SetSetting upserts a setting.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// SaveReveal records r. A visitor counts once per section per day; the
// return value reports whether a new row was written.
func (s *Store) SaveReveal(ctx context.Context, r Reveal) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO reveals (visitor_id, section, device, day, ts)
		VALUES (?, ?, ?, ?, ?)`,
		r.VisitorID, r.Section, r.Device, r.Day(), r.Timestamp.UTC().Unix())
	if err != nil {
		return false, fmt.Errorf("insert reveal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Stats aggregates reveals in [from, to). The queries run concurrently.
func (s *Store) Stats(ctx context.Context, from, to time.Time) (*Stats, error) {
	stats := &Stats{
		Period:   from.UTC().Format("2006-01-02") + " to " + to.UTC().Format("2006-01-02"),
		Sections: []SectionStat{},
		Devices:  []DimensionStat{},
		Daily:    []DailyView{},
	}
	lo, hi := from.UTC().Unix(), to.UTC().Unix()

	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error
	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", name, err)
				}
				mu.Unlock()
			}
		}()
	}

	run("totals", func() error {
		var total, visitors int
		err := s.db.QueryRowContext(ctx, `
			SELECT COUNT(*), COUNT(DISTINCT visitor_id) FROM reveals
			WHERE ts >= ? AND ts < ?`, lo, hi).Scan(&total, &visitors)
		if err != nil {
			return err
		}
		mu.Lock()
		stats.TotalReveals, stats.UniqueVisitors = total, visitors
		mu.Unlock()
		return nil
	})

	run("sections", func() error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT section, COUNT(*), COUNT(DISTINCT visitor_id) FROM reveals
			WHERE ts >= ? AND ts < ?
			GROUP BY section ORDER BY 3 DESC, section`, lo, hi)
		if err != nil {
			return err
		}
		defer rows.Close()
		var out []SectionStat
		for rows.Next() {
			var st SectionStat
			if err := rows.Scan(&st.Section, &st.Reveals, &st.Visitors); err != nil {
				return err
			}
			out = append(out, st)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		mu.Lock()
		stats.Sections = append(stats.Sections, out...)
		mu.Unlock()
		return nil
	})

	run("devices", func() error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT device, COUNT(DISTINCT visitor_id) FROM reveals
			WHERE ts >= ? AND ts < ?
			GROUP BY device ORDER BY 2 DESC, device`, lo, hi)
		if err != nil {
			return err
		}
		defer rows.Close()
		var out []DimensionStat
		for rows.Next() {
			var d DimensionStat
			if err := rows.Scan(&d.Name, &d.Count); err != nil {
				return err
			}
			out = append(out, d)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		mu.Lock()
		stats.Devices = append(stats.Devices, out...)
		mu.Unlock()
		return nil
	})

	run("daily", func() error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT day, COUNT(*) FROM reveals
			WHERE ts >= ? AND ts < ?
			GROUP BY day ORDER BY day`, lo, hi)
		if err != nil {
			return err
		}
		defer rows.Close()
		var out []DailyView
		for rows.Next() {
			var d DailyView
			if err := rows.Scan(&d.Date, &d.Reveals); err != nil {
				return err
			}
			out = append(out, d)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		mu.Lock()
		stats.Daily = append(stats.Daily, out...)
		mu.Unlock()
		return nil
	})

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	for i := range stats.Sections {
		if stats.UniqueVisitors > 0 {
			stats.Sections[i].Reach = float64(stats.Sections[i].Visitors) * 100 / float64(stats.UniqueVisitors)
		}
	}
	return stats, nil
}

// Funnel orders section stats by the page order given in sections, filling
// sections nobody reached with zeros. Unknown sections are appended.
func Funnel(stats *Stats, sections []string) []SectionStat {
	bySection := make(map[string]SectionStat, len(stats.Sections))
	for _, st := range stats.Sections {
		bySection[st.Section] = st
	}
	out := make([]SectionStat, 0, len(sections))
	for _, name := range sections {
		st, ok := bySection[name]
		if !ok {
			st = SectionStat{Section: name}
		}
		out = append(out, st)
		delete(bySection, name)
	}
	var rest []SectionStat
	for _, st := range bySection {
		rest = append(rest, st)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Section < rest[j].Section })
	return append(out, rest...)
}

// Cleanup removes reveals older than retentionDays.
func (s *Store) Cleanup(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM reveals WHERE ts < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup reveals: %w", err)
	}
	return res.RowsAffected()
}

// StartCleanupScheduler runs Cleanup every interval until the returned stop
// function is called.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration, logger echo.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				n, err := s.Cleanup(context.Background(), retentionDays)
				if err != nil {
					logger.Errorf("analytics cleanup: %v", err)
				} else if n > 0 {
					logger.Infof("analytics cleanup removed %d reveals", n)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}
