// Package placement lays crossword answers out on an integer grid.
//
// The engine is greedy and never backtracks. Candidates are sorted longest
// first; the first word sits at the origin across. Each later word is tried
// against exactly one anchor: the first placed word sharing a letter with
// it. If that crossing collides with the grid the word is skipped, even
// when another anchor would have fit.
package placement

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

type Orientation string

const (
	Across Orientation = "across"
	Down   Orientation = "down"
)

// Clue is one candidate before placement.
type Clue struct {
	Clue   string
	Answer string
}

// Word is a placed answer. Row and Col are non-negative after Place returns.
type Word struct {
	Clue        string
	Answer      string
	Row         int
	Col         int
	Orientation Orientation
	SequenceID  int // 1-based, in placement order
}

type SkipReason string

const (
	NoSharedLetter SkipReason = "no shared letter"
	Collision      SkipReason = "collision"
)

// Skip records a candidate that could not be placed.
type Skip struct {
	Clue   string
	Answer string
	Reason SkipReason
	Anchor string // anchor answer tried, empty for NoSharedLetter
}

func (s Skip) String() string {
	if s.Anchor != "" {
		return fmt.Sprintf("could not place clue %q (answer %q): %s with %q", s.Clue, s.Answer, s.Reason, s.Anchor)
	}
	return fmt.Sprintf("could not place clue %q (answer %q): %s", s.Clue, s.Answer, s.Reason)
}

type Layout struct {
	Words   []Word
	Skipped []Skip
}

// Width and Height of the normalized grid.
func (l Layout) Width() int  { return l.extent(Across) }
func (l Layout) Height() int { return l.extent(Down) }

func (l Layout) extent(axis Orientation) int {
	n := 0
	for _, w := range l.Words {
		size := len([]rune(w.Answer))
		var end int
		switch {
		case axis == Across && w.Orientation == Across:
			end = w.Col + size
		case axis == Across:
			end = w.Col + 1
		case w.Orientation == Down:
			end = w.Row + size
		default:
			end = w.Row + 1
		}
		if end > n {
			n = end
		}
	}
	return n
}

// placed keeps coordinates in the unbounded plane; x is the column, y the row.
type placed struct {
	clue   string
	answer string
	fold   []rune // lowercased letters used for matching
	x, y   int
	orient Orientation
}

func (p placed) cell(i int) (x, y int) {
	if p.orient == Across {
		return p.x + i, p.y
	}
	return p.x, p.y + i
}

// letterAt returns the folded letter at (x, y) if p covers that cell.
func (p placed) letterAt(x, y int) (rune, bool) {
	var i int
	if p.orient == Across {
		if y != p.y || x < p.x || x >= p.x+len(p.fold) {
			return 0, false
		}
		i = x - p.x
	} else {
		if x != p.x || y < p.y || y >= p.y+len(p.fold) {
			return 0, false
		}
		i = y - p.y
	}
	return p.fold[i], true
}

// Place runs the engine. Clues with a blank clue or answer are dropped
// before sorting. Output is deterministic for a given input.
func Place(clues []Clue) Layout {
	cands := normalize(clues)
	sort.SliceStable(cands, func(i, j int) bool {
		return len(cands[i].fold) > len(cands[j].fold)
	})

	var (
		grid    []placed
		skipped []Skip
	)
	for i, c := range cands {
		if i == 0 {
			c.orient = Across
			grid = append(grid, c)
			continue
		}
		anchor, pos, ok := firstAnchor(grid, c)
		if !ok {
			skipped = append(skipped, Skip{Clue: c.clue, Answer: c.answer, Reason: NoSharedLetter})
			continue
		}
		if collides(grid, pos) {
			skipped = append(skipped, Skip{Clue: c.clue, Answer: c.answer, Reason: Collision, Anchor: anchor.answer})
			continue
		}
		grid = append(grid, pos)
	}

	return Layout{Words: normalizeCoords(grid), Skipped: skipped}
}

func normalize(clues []Clue) []placed {
	out := make([]placed, 0, len(clues))
	for _, c := range clues {
		clue := strings.TrimSpace(c.Clue)
		answer := stripSpace(c.Answer)
		if clue == "" || answer == "" {
			continue
		}
		fold := []rune(answer)
		for i, r := range fold {
			fold[i] = unicode.ToLower(r)
		}
		out = append(out, placed{clue: clue, answer: answer, fold: fold})
	}
	return out
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// firstAnchor scans placed words in placement order and returns the crossing
// implied by the first shared letter: anchor letters left to right, then
// candidate letters left to right.
func firstAnchor(grid []placed, c placed) (placed, placed, bool) {
	for _, a := range grid {
		for i, al := range a.fold {
			for j, cl := range c.fold {
				if al != cl {
					continue
				}
				pos := c
				if a.orient == Across {
					pos.x, pos.y, pos.orient = a.x+i, a.y-j, Down
				} else {
					pos.x, pos.y, pos.orient = a.x-j, a.y+i, Across
				}
				return a, pos, true
			}
		}
	}
	return placed{}, placed{}, false
}

// collides reports whether any cell of c is already filled with a
// different letter.
func collides(grid []placed, c placed) bool {
	for i, want := range c.fold {
		x, y := c.cell(i)
		for _, p := range grid {
			if got, ok := p.letterAt(x, y); ok && got != want {
				return true
			}
		}
	}
	return false
}

func normalizeCoords(grid []placed) []Word {
	minX, minY := 0, 0
	for _, p := range grid {
		minX = min(minX, p.x)
		minY = min(minY, p.y)
	}
	words := make([]Word, 0, len(grid))
	for i, p := range grid {
		words = append(words, Word{
			Clue:        p.clue,
			Answer:      p.answer,
			Row:         p.y - minY,
			Col:         p.x - minX,
			Orientation: p.orient,
			SequenceID:  i + 1,
		})
	}
	return words
}
