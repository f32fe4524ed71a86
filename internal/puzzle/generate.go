package puzzle

import (
	"errors"
	"math/rand/v2"
)

// Generate produces a solvable instance of the given kind. It retries
// construction up to cfg.MaxAttempts and falls back to a deterministic
// known-good instance when every attempt is rejected, so the caller
// always receives a valid instance. Panics [AssertionError] only for a
// kind with no registered family.
func Generate(kind Kind, cfg Config, r *rand.Rand) (inst *Instance) {
	f := familyOf(kind)
	defer func() {
		var ae AssertionError
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				Log.Error("generation assertion failed, using fallback",
					"kind", kind, "error", ae)
				inst = f.fallback()
				return
			}
			panic(rec)
		}
	}()

	cfg = cfg.normalized(kind)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		candidate, err := buildOnce(f, cfg, r)
		if err != nil {
			Log.Debug("instance build failed",
				"kind", kind, "attempt", attempt, "error", err)
			continue
		}
		w := f.solve(candidate)
		if w == nil {
			// construction guarantees a witness, so this is only
			// reachable through a builder bug
			Log.Warn("constructed instance has no witness",
				"kind", kind, "attempt", attempt, "instance", candidate)
			continue
		}
		candidate.Witness = *w
		attachTarget(candidate)
		if reason := trivial(candidate); reason != "" {
			Log.Debug("discarding trivial instance",
				"kind", kind, "attempt", attempt, "reason", reason)
			continue
		}
		return candidate
	}

	Log.Warn("generation attempts exhausted, using fallback", "kind", kind)
	return f.fallback()
}

// buildOnce converts build-time assertion panics into errors so the
// attempt loop can retry instead of unwinding.
func buildOnce(f *family, cfg Config, r *rand.Rand) (inst *Instance, err error) {
	defer func() {
		var ae AssertionError
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				inst, err = nil, ae
				return
			}
			panic(rec)
		}
	}()
	return f.build(cfg, r)
}

func attachTarget(inst *Instance) {
	switch inst.Kind {
	case VertexCover, IndependentSet, Clique:
		inst.Target = len(inst.Witness.Set)
	case Coloring:
		inst.Target = ColorCount
	case Hamiltonian:
		inst.Target = inst.Nodes
	case TSP:
		inst.Target = inst.CycleWeight(inst.Witness.Cycle)
	case SAT:
		inst.Target = len(inst.Clauses)
	}
	// subset sum and partition targets are fixed by the builder
}

// trivial names the reason an instance would let the player win without
// engaging the mechanic, or returns "" when the instance is fine.
func trivial(inst *Instance) string {
	switch inst.Kind {
	case VertexCover:
		if inst.Target == 0 {
			return "empty cover wins"
		}
	case IndependentSet:
		if inst.Target == inst.Nodes {
			return "every node is independent"
		}
	case SAT:
		if satisfiedByAllFalse(inst) {
			return "satisfied by all-false"
		}
	}
	switch inst.Kind {
	case VertexCover, IndependentSet, Clique, Coloring, Hamiltonian, TSP:
		if len(inst.Edges) == 0 {
			return "no edges"
		}
	}
	return ""
}

func satisfiedByAllFalse(inst *Instance) bool {
	allFalse := make([]bool, inst.VarCount)
	for _, c := range inst.Clauses {
		if !c.Satisfied(allFalse) {
			return false
		}
	}
	return true
}

func sizeIn(cfg Config, r *rand.Rand) int {
	if cfg.MaxSize <= cfg.MinSize {
		return cfg.MinSize
	}
	return cfg.MinSize + r.IntN(cfg.MaxSize-cfg.MinSize+1)
}
