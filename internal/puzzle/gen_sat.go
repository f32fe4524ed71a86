package puzzle

import "math/rand/v2"

// buildSAT draws a hidden assignment first and only emits clauses that
// assignment satisfies, so the formula is satisfiable by construction.
// The hidden assignment rides along as the provisional witness.
func buildSAT(cfg Config, r *rand.Rand) (*Instance, error) {
	vars := sizeIn(cfg, r)
	if vars < 3 {
		return nil, AssertionError{"3-sat needs at least 3 variables"}
	}
	hidden := make([]bool, vars)
	for i := range hidden {
		hidden[i] = r.IntN(2) == 0
	}

	count := int(float64(vars)*cfg.ClausesPerVar + 0.5)
	if count < vars {
		count = vars
	}
	inst := &Instance{Kind: SAT, VarCount: vars}
	for len(inst.Clauses) < count {
		c := randomClause(vars, r)
		if !c.Satisfied(hidden) {
			// every literal is false under hidden, so negating any one
			// of them satisfies the clause
			i := r.IntN(3)
			c[i] = -c[i]
		}
		inst.Clauses = append(inst.Clauses, c)
	}
	inst.Witness.Assignment = hidden
	return inst, nil
}

func randomClause(vars int, r *rand.Rand) Clause {
	picks := r.Perm(vars)[:3]
	var c Clause
	for i, v := range picks {
		lit := v + 1
		if r.IntN(2) == 0 {
			lit = -lit
		}
		c[i] = lit
	}
	return c
}
