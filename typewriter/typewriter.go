// Package typewriter implements the hero banner's typing effect: each word
// is typed one character at a time, held, erased, and the next word follows.
package typewriter

import (
	"context"
	"time"
)

// Default timings.
const (
	DefaultTypeDelay   = 100 * time.Millisecond
	DefaultDeleteDelay = 50 * time.Millisecond
	DefaultPause       = 2000 * time.Millisecond
)

// Phase is a typewriter state.
type Phase int

const (
	Typing Phase = iota
	Pausing
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Config holds the word list and per-step delays.
type Config struct {
	Words       []string
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	Pause       time.Duration
}

// DefaultConfig returns a Config for words with the default timings.
func DefaultConfig(words ...string) Config {
	return Config{
		Words:       words,
		TypeDelay:   DefaultTypeDelay,
		DeleteDelay: DefaultDeleteDelay,
		Pause:       DefaultPause,
	}
}

func (c *Config) setDefaults() {
	if c.TypeDelay <= 0 {
		c.TypeDelay = DefaultTypeDelay
	}
	if c.DeleteDelay <= 0 {
		c.DeleteDelay = DefaultDeleteDelay
	}
	if c.Pause <= 0 {
		c.Pause = DefaultPause
	}
}

// State is what the typewriter currently shows.
type State struct {
	Text  string
	Word  int
	Char  int
	Phase Phase
}

// Typewriter is the state machine. It is not safe for concurrent use; one
// goroutine (the one calling Run or Tick) owns it.
type Typewriter struct {
	cfg   Config
	words [][]rune
	state State
}

// New returns a Typewriter positioned at the start of the first word.
func New(cfg Config) *Typewriter {
	cfg.setDefaults()
	words := make([][]rune, len(cfg.Words))
	for i, w := range cfg.Words {
		words[i] = []rune(w)
	}
	return &Typewriter{cfg: cfg, words: words}
}

// State returns the current state.
func (t *Typewriter) State() State {
	return t.state
}

// Tick performs one transition and returns the delay before the next one.
// With no words it does nothing and returns 0.
func (t *Typewriter) Tick() time.Duration {
	if len(t.words) == 0 {
		return 0
	}
	word := t.words[t.state.Word]
	switch t.state.Phase {
	case Typing:
		if t.state.Char < len(word) {
			t.state.Char++
		}
		t.state.Text = string(word[:t.state.Char])
		if t.state.Char >= len(word) {
			t.state.Phase = Pausing
			return t.cfg.Pause
		}
		return t.cfg.TypeDelay
	case Pausing:
		t.state.Phase = Deleting
		return t.cfg.DeleteDelay
	case Deleting:
		if t.state.Char > 0 {
			t.state.Char--
		}
		t.state.Text = string(word[:t.state.Char])
		if t.state.Char == 0 {
			t.state.Word = (t.state.Word + 1) % len(t.words)
			t.state.Phase = Typing
			return t.cfg.TypeDelay
		}
		return t.cfg.DeleteDelay
	}
	return 0
}

// Run drives the typewriter until ctx is done, calling emit with every new
// state, starting with the blank initial one. It always returns ctx.Err().
func (t *Typewriter) Run(ctx context.Context, emit func(State)) error {
	emit(t.state)
	if len(t.words) == 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	timer := time.NewTimer(t.cfg.TypeDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			prev := t.state
			wait := t.Tick()
			if t.state.Text != prev.Text || t.state.Word != prev.Word {
				emit(t.state)
			}
			timer.Reset(wait)
		}
	}
}

// Simulate returns the state reached after elapsed time from a fresh start.
func Simulate(cfg Config, elapsed time.Duration) State {
	t := New(cfg)
	if len(t.words) == 0 {
		return t.state
	}
	at := t.cfg.TypeDelay
	for at <= elapsed {
		at += t.Tick()
	}
	return t.state
}
