package game

import (
	"math/rand"
	"testing"

	"go-concentration/internal/state"
	"go-concentration/internal/theme"
)

func TestNewGame_DealsThemePairs(t *testing.T) {
	th := theme.New("Letters", []string{"a", "b", "c", "d", "e"}, 3, "1")
	g := NewGame(th, state.GameOptions{Rand: rand.New(rand.NewSource(1))})

	cards := g.State.Cards()
	if len(cards) != 6 {
		t.Fatalf("Expected 6 cards, got %d", len(cards))
	}

	pool := map[string]bool{}
	for _, c := range th.Contents() {
		pool[c] = true
	}
	counts := map[string]int{}
	for _, c := range cards {
		if !pool[c.Content] {
			t.Errorf("Content %q is not in the theme pool", c.Content)
		}
		counts[c.Content]++
	}
	if len(counts) != 3 {
		t.Errorf("Expected 3 distinct contents, got %d", len(counts))
	}
	for content, n := range counts {
		if n != 2 {
			t.Errorf("Content %q appears %d times", content, n)
		}
	}
}

func TestNewGame_DrawsDifferentSubsets(t *testing.T) {
	th := theme.New("Digits", []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, 2, "1")
	r := rand.New(rand.NewSource(5))

	subsets := map[string]bool{}
	for i := 0; i < 20; i++ {
		g := NewGame(th, state.GameOptions{Rand: r})
		seen := map[string]bool{}
		for _, c := range g.State.Cards() {
			seen[c.Content] = true
		}
		key := ""
		for _, d := range th.Contents() {
			if seen[d] {
				key += d
			}
		}
		subsets[key] = true
	}
	if len(subsets) < 2 {
		t.Error("Expected the pool shuffle to vary the dealt contents")
	}
}

func TestGame_HandleChoose(t *testing.T) {
	th := theme.New("One", []string{"x"}, 1, "1")
	g := NewGame(th, state.GameOptions{Rand: rand.New(rand.NewSource(1))})

	if delta := g.HandleChoose(0); delta != 0 {
		t.Errorf("Expected delta 0, got %d", delta)
	}
	if delta := g.HandleChoose(1); delta != 2 {
		t.Errorf("Expected delta 2, got %d", delta)
	}
	if !g.State.IsComplete() {
		t.Error("Single pair game should be complete")
	}
}

func TestNewGame_ZeroPairs(t *testing.T) {
	th := theme.New("Empty", []string{"x"}, 0, "1")
	g := NewGame(th, state.GameOptions{})

	if len(g.State.Cards()) != 0 {
		t.Errorf("Expected no cards, got %d", len(g.State.Cards()))
	}
	if delta := g.HandleChoose(0); delta != 0 {
		t.Errorf("Expected no-op, got delta %d", delta)
	}
}
