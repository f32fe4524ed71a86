package game

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

var (
	ErrBadCommand = errors.New("bad command")
	ErrRoundOver  = errors.New("round is over")
)

var commandNargs = map[string]int{
	"t": 1, // toggle node
	"a": 1, // append node to tour
	"p": 0, // pop tour tail
	"c": 2, // color node
	"i": 1, // toggle item
	"v": 1, // toggle variable
	"x": 0, // clear selection
	"g": 0, // refresh, no state change
	"r": 0, // reveal witness, forfeit
	"z": 0, // countdown expired
}

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func atoiArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadCommand, s)
	}
	return n, nil
}

// Apply runs one command line against the round. A solving selection
// advances the round to a freshly generated instance, which is why the
// rand source comes along. Mutating commands on a finished round fail
// with ErrRoundOver; r, z and g always succeed.
func (rd *Round) Apply(line string, r *rand.Rand) error {
	parts := strings.Split(strings.TrimSpace(line), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w %q", ErrBadCommand, parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("%w: %s takes %d argument(s)", ErrBadCommand, parts[0], nargs)
	}

	switch parts[0] {
	case "g":
		return nil
	case "r", "z":
		rd.Reveal()
		return nil
	}

	if rd.Over {
		return ErrRoundOver
	}

	var err error
	switch parts[0] {
	case "t":
		var id int
		if id, err = atoiArg(parts[1]); err == nil {
			err = rd.toggleNode(id)
		}
	case "a":
		var id int
		if id, err = atoiArg(parts[1]); err == nil {
			err = rd.appendNode(id)
		}
	case "p":
		err = rd.popNode()
	case "c":
		var id, color int
		if id, err = atoiArg(parts[1]); err == nil {
			if color, err = atoiArg(parts[2]); err == nil {
				err = rd.colorNode(id, color)
			}
		}
	case "i":
		var idx int
		if idx, err = atoiArg(parts[1]); err == nil {
			err = rd.toggleItem(idx)
		}
	case "v":
		var v int
		if v, err = atoiArg(parts[1]); err == nil {
			err = rd.toggleVar(v)
		}
	case "x":
		rd.clearSelection()
	}
	if err != nil {
		return err
	}

	if puzzle.Win(rd.Instance, rd.Selection) {
		rd.advance(r)
	}
	return nil
}

// ApplyBatch runs newline-separated commands in order, stopping once
// the round ends. The first bad command aborts the batch with its line
// number; callers persist the round only when the whole batch went
// through.
func (rd *Round) ApplyBatch(text string, r *rand.Rand) error {
	for i, line := range iterBySep(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := rd.Apply(line, r); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if rd.Over {
			break
		}
	}
	return nil
}
