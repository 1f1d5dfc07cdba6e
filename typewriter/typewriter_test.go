package typewriter

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateTypesFirstWord(t *testing.T) {
	cfg := DefaultConfig("AI/ML Engineer", "GenAI Developer")

	st := Simulate(cfg, 1500*time.Millisecond)
	assert.Equal(t, "AI/ML Engineer", st.Text)
	assert.Equal(t, 14, st.Char)
	assert.Equal(t, Pausing, st.Phase)

	// Fully typed exactly at 1400ms, one character short just before.
	assert.Equal(t, "AI/ML Engineer", Simulate(cfg, 1400*time.Millisecond).Text)
	assert.Equal(t, "AI/ML Enginee", Simulate(cfg, 1399*time.Millisecond).Text)
	assert.Equal(t, "", Simulate(cfg, 99*time.Millisecond).Text)
}

func TestFullCycleGrowsThenShrinksThenAdvances(t *testing.T) {
	words := []string{"Go", "Rust", "Zig"}
	tw := New(DefaultConfig(words...))

	for i := 0; i < len(words)*2; i++ {
		wi := i % len(words)
		word := words[wi]
		require.Equal(t, wi, tw.State().Word)

		// Strictly grows to the full word.
		for n := 1; n <= len(word); n++ {
			tw.Tick()
			require.Equal(t, word[:n], tw.State().Text)
		}
		require.Equal(t, Pausing, tw.State().Phase)

		// The pause tick changes nothing visible.
		wait := tw.Tick()
		require.Equal(t, DefaultDeleteDelay, wait)
		require.Equal(t, word, tw.State().Text)

		// Strictly shrinks to empty.
		for n := len(word) - 1; n >= 0; n-- {
			tw.Tick()
			require.Equal(t, word[:n], tw.State().Text)
		}
		require.Equal(t, (wi+1)%len(words), tw.State().Word)
		require.Equal(t, Typing, tw.State().Phase)
	}
}

func TestTickDelays(t *testing.T) {
	tw := New(DefaultConfig("ab"))
	assert.Equal(t, DefaultTypeDelay, tw.Tick())    // "a"
	assert.Equal(t, DefaultPause, tw.Tick())        // "ab"
	assert.Equal(t, DefaultDeleteDelay, tw.Tick())  // pause over
	assert.Equal(t, DefaultDeleteDelay, tw.Tick())  // "a"
	assert.Equal(t, DefaultTypeDelay, tw.Tick())    // "" -> next word
}

func TestTextIsAlwaysPrefix(t *testing.T) {
	words := []string{"héllo wörld", "日本語", ""}
	tw := New(DefaultConfig(words...))
	for i := 0; i < 200; i++ {
		tw.Tick()
		st := tw.State()
		require.True(t, strings.HasPrefix(words[st.Word], st.Text),
			"%q is not a prefix of %q", st.Text, words[st.Word])
	}
}

func TestEmptyWordListIsNoop(t *testing.T) {
	tw := New(DefaultConfig())
	assert.Equal(t, time.Duration(0), tw.Tick())
	assert.Equal(t, State{}, tw.State())
	assert.Equal(t, State{}, Simulate(DefaultConfig(), time.Hour))
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := Config{
		Words:       []string{"abc"},
		TypeDelay:   time.Millisecond,
		DeleteDelay: time.Millisecond,
		Pause:       5 * time.Millisecond,
	}
	tw := New(cfg)

	var mu sync.Mutex
	var frames []string
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tw.Run(ctx, func(s State) {
			mu.Lock()
			frames = append(frames, s.Text)
			mu.Unlock()
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(frames) >= 4
	}, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "a", "ab", "abc"}, frames[:4])
}

func TestRunEmptyWaitsForCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	var calls int
	err := New(Config{}).Run(ctx, func(State) { calls++ })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}
