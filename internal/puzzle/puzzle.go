// Package puzzle generates, solves and checks instances of the NP-hard
// problem families behind the arcade's games.
package puzzle

import (
	"fmt"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

type Kind int

const (
	VertexCover Kind = iota
	IndependentSet
	Clique
	Coloring
	Hamiltonian
	TSP
	SAT
	SubsetSum
	Partition
)

var kindNames = map[Kind]string{
	VertexCover:    "vertex-cover",
	IndependentSet: "independent-set",
	Clique:         "clique",
	Coloring:       "coloring",
	Hamiltonian:    "hamiltonian",
	TSP:            "tsp",
	SAT:            "sat",
	SubsetSum:      "subset-sum",
	Partition:      "partition",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown puzzle kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) (err error) {
	*k, err = ParseKind(string(text))
	return
}

// Kinds returns all playable kinds in display order.
func Kinds() []Kind {
	return []Kind{
		VertexCover, IndependentSet, Clique, Coloring,
		Hamiltonian, TSP, SAT, SubsetSum, Partition,
	}
}
