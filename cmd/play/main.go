// Command play runs rounds in the terminal against a local generator,
// tracking personal bests in a sqlite file.
package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ddrozdov/nparcade/internal/config"
	"github.com/ddrozdov/nparcade/internal/game"
	"github.com/ddrozdov/nparcade/internal/puzzle"
	"github.com/ddrozdov/nparcade/internal/storage"
)

var (
	kindFlag = flag.String("kind", "vertex-cover", "puzzle family")
	dbFlag   = flag.String("db", "nparcade.db", "path to the personal bests db")
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func goal(inst *puzzle.Instance) string {
	switch inst.Kind {
	case puzzle.VertexCover:
		return fmt.Sprintf("cover every edge with at most %d nodes", inst.Target)
	case puzzle.IndependentSet:
		return fmt.Sprintf("pick %d nodes, no two adjacent", inst.Target)
	case puzzle.Clique:
		return fmt.Sprintf("pick %d pairwise adjacent nodes", inst.Target)
	case puzzle.Coloring:
		return "give every node a color 0-2, no edge in one color"
	case puzzle.Hamiltonian:
		return "visit every node once and return home"
	case puzzle.TSP:
		return fmt.Sprintf("find a full tour of length %d", inst.Target)
	case puzzle.SAT:
		return "satisfy every clause"
	case puzzle.SubsetSum:
		return fmt.Sprintf("pick values that sum to %d", inst.Target)
	case puzzle.Partition:
		return "split the values into two equal-sum halves"
	}
	return ""
}

func renderInstance(inst *puzzle.Instance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", inst.Kind, goal(inst))
	switch inst.Kind {
	case puzzle.SubsetSum, puzzle.Partition:
		fmt.Fprintf(&b, "values: %v", inst.Values)
	case puzzle.SAT:
		b.WriteString("clauses:")
		for _, c := range inst.Clauses {
			fmt.Fprintf(&b, " (%d %d %d)", c[0], c[1], c[2])
		}
	case puzzle.TSP:
		b.WriteString("edges:")
		for _, e := range inst.Edges {
			fmt.Fprintf(&b, " %d-%d(%d)", e.A, e.B, e.Weight)
		}
	default:
		b.WriteString("edges:")
		for _, e := range inst.Edges {
			fmt.Fprintf(&b, " %d-%d", e.A, e.B)
		}
	}
	return b.String()
}

func renderSelection(rd *game.Round) string {
	sel := rd.Selection
	switch rd.Kind {
	case puzzle.Hamiltonian, puzzle.TSP:
		return fmt.Sprintf("tour: %v", sel.Path)
	case puzzle.Coloring:
		parts := make([]string, len(sel.Colors))
		for i, c := range sel.Colors {
			parts[i] = "-"
			if c != puzzle.NoColor {
				parts[i] = fmt.Sprintf("%d", c)
			}
		}
		return "colors: [" + strings.Join(parts, " ") + "]"
	case puzzle.SAT:
		trues := make([]int, 0, len(sel.Truth))
		for i, v := range sel.Truth {
			if v {
				trues = append(trues, i)
			}
		}
		return fmt.Sprintf("true vars: %v", trues)
	case puzzle.SubsetSum, puzzle.Partition:
		picked := make([]int, 0, len(sel.Truth))
		for i, v := range sel.Truth {
			if v {
				picked = append(picked, i)
			}
		}
		return fmt.Sprintf("picked: %v", picked)
	default:
		return fmt.Sprintf("picked: %v", sel.Picked)
	}
}

func renderStatus(rd *game.Round) string {
	status := renderSelection(rd)
	if c := puzzle.FindConflict(rd.Instance, rd.Selection); c != nil {
		return status + "  problem: " + c.String()
	}
	if puzzle.Feasible(rd.Instance, rd.Selection) {
		return status + "  feasible, not optimal yet"
	}
	return status
}

const help = `commands:
  t <node>          toggle a node pick
  a <node>          append a node to the tour
  p                 pop the tour tail
  c <node> <color>  color a node (-1 unsets)
  i <index>         toggle a value pick
  v <var>           flip a variable (0-based)
  x                 clear the selection
  g                 reprint the puzzle
  r                 give up and reveal the answer
  q                 quit`

func main() {
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	kind, err := puzzle.ParseKind(*kindFlag)
	if err != nil {
		logger.Error("bad -kind flag", slog.Any("error", err))
		os.Exit(1)
	}

	families, err := config.LoadFamilies()
	if err != nil {
		logger.Error("unable to load family config", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := config.FamilyConfig(families, kind)

	db, err := sql.Open("sqlite3", *dbFlag)
	if err != nil {
		logger.Error("unable to open bests db", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	bests, err := storage.NewStore(db, "bests")
	if err != nil {
		logger.Error("unable to open bests store", slog.Any("error", err))
		os.Exit(1)
	}

	rnd := createRand()
	rd := game.NewRound(kind, cfg, rnd)

	fmt.Println(help)
	fmt.Println()
	fmt.Println(renderInstance(rd.Instance))

	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		line := scanner.Text()
		if strings.TrimSpace(line) == "q" {
			break
		}

		solved := rd.Solved
		if err := rd.Apply(line, rnd); err != nil {
			fmt.Println("!", err)
			continue
		}

		switch {
		case rd.Over:
			fmt.Println("the answer was:", renderSelection(rd))
		case rd.Solved > solved:
			fmt.Printf("solved! streak %d, score %d\n\n", rd.Solved, rd.Score)
			fmt.Println(renderInstance(rd.Instance))
		case line == "g" || strings.HasPrefix(line, "g "):
			fmt.Println(renderInstance(rd.Instance))
		default:
			fmt.Println(renderStatus(rd))
		}
		if rd.Over {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("stdin broke", slog.Any("error", err))
	}

	var best int
	err = bests.Get(kind.String(), &best)
	if err != nil && err != storage.ErrNotFound {
		logger.Error("unable to read best score", slog.Any("error", err))
	}
	if rd.Score > best {
		best = rd.Score
		if err := bests.Set(kind.String(), best); err != nil {
			logger.Error("unable to save best score", slog.Any("error", err))
		}
	}
	fmt.Printf("final score %d, personal best %d\n", rd.Score, best)
}
