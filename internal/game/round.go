// Package game holds the arcade round machine: one live puzzle instance
// plus the player's selection, advancing to a fresh instance on every
// solve until the round is forfeited or timed out.
package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

type Round struct {
	Kind      puzzle.Kind
	Config    puzzle.Config
	Instance  *puzzle.Instance
	Selection *puzzle.Selection
	Solved    int
	Score     int
	Over      bool
	Revealed  bool
}

func NewRound(kind puzzle.Kind, cfg puzzle.Config, r *rand.Rand) *Round {
	inst := puzzle.Generate(kind, cfg, r)
	return &Round{
		Kind:      kind,
		Config:    cfg,
		Instance:  inst,
		Selection: puzzle.NewSelection(inst),
	}
}

func DecodeRound(buf []byte) (*Round, error) {
	var round Round
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&round)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func (rd Round) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(rd)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Reveal ends the round and swaps the witness in as the visible
// selection. Calling it again changes nothing.
func (rd *Round) Reveal() {
	if rd.Over {
		return
	}
	rd.Over = true
	rd.Revealed = true
	rd.Selection = puzzle.WitnessSelection(rd.Instance)
}

// advance banks the solved instance and installs a freshly generated
// one. Score grows by the instance size, so bigger puzzles pay more.
func (rd *Round) advance(r *rand.Rand) {
	rd.Solved++
	rd.Score += rd.Instance.Size()
	rd.Instance = puzzle.Generate(rd.Kind, rd.Config, r)
	rd.Selection = puzzle.NewSelection(rd.Instance)
}

func (rd *Round) toggleNode(id int) error {
	switch rd.Kind {
	case puzzle.VertexCover, puzzle.IndependentSet, puzzle.Clique:
	default:
		return fmt.Errorf("%w: no nodes to toggle in %s", ErrBadCommand, rd.Kind)
	}
	if id < 0 || id >= rd.Instance.Nodes {
		return fmt.Errorf("%w: no node %d", ErrBadCommand, id)
	}
	if lo.Contains(rd.Selection.Picked, id) {
		rd.Selection.Picked = lo.Reject(rd.Selection.Picked, func(x int, _ int) bool {
			return x == id
		})
	} else {
		rd.Selection.Picked = append(rd.Selection.Picked, id)
	}
	return nil
}

func (rd *Round) appendNode(id int) error {
	switch rd.Kind {
	case puzzle.Hamiltonian, puzzle.TSP:
	default:
		return fmt.Errorf("%w: %s has no tour", ErrBadCommand, rd.Kind)
	}
	if id < 0 || id >= rd.Instance.Nodes {
		return fmt.Errorf("%w: no node %d", ErrBadCommand, id)
	}
	if len(rd.Selection.Path) >= rd.Instance.Nodes {
		return fmt.Errorf("%w: tour is already full", ErrBadCommand)
	}
	rd.Selection.Path = append(rd.Selection.Path, id)
	return nil
}

func (rd *Round) popNode() error {
	switch rd.Kind {
	case puzzle.Hamiltonian, puzzle.TSP:
	default:
		return fmt.Errorf("%w: %s has no tour", ErrBadCommand, rd.Kind)
	}
	if n := len(rd.Selection.Path); n > 0 {
		rd.Selection.Path = rd.Selection.Path[:n-1]
	}
	return nil
}

func (rd *Round) colorNode(id, color int) error {
	if rd.Kind != puzzle.Coloring {
		return fmt.Errorf("%w: %s has no colors", ErrBadCommand, rd.Kind)
	}
	if id < 0 || id >= rd.Instance.Nodes {
		return fmt.Errorf("%w: no node %d", ErrBadCommand, id)
	}
	if color < int(puzzle.NoColor) || color >= puzzle.ColorCount {
		return fmt.Errorf("%w: no color %d", ErrBadCommand, color)
	}
	rd.Selection.Colors[id] = puzzle.Color(color)
	return nil
}

func (rd *Round) toggleItem(idx int) error {
	switch rd.Kind {
	case puzzle.SubsetSum, puzzle.Partition:
	default:
		return fmt.Errorf("%w: %s has no items", ErrBadCommand, rd.Kind)
	}
	if idx < 0 || idx >= len(rd.Instance.Values) {
		return fmt.Errorf("%w: no item %d", ErrBadCommand, idx)
	}
	rd.Selection.Truth[idx] = !rd.Selection.Truth[idx]
	return nil
}

func (rd *Round) toggleVar(v int) error {
	if rd.Kind != puzzle.SAT {
		return fmt.Errorf("%w: %s has no variables", ErrBadCommand, rd.Kind)
	}
	if v < 0 || v >= rd.Instance.VarCount {
		return fmt.Errorf("%w: no variable %d", ErrBadCommand, v)
	}
	rd.Selection.Truth[v] = !rd.Selection.Truth[v]
	return nil
}

func (rd *Round) clearSelection() {
	rd.Selection = puzzle.NewSelection(rd.Instance)
}
