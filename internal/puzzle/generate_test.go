package puzzle

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"
)

func generatorTrials() int {
	if testing.Short() {
		return 50
	}
	return 1000
}

func TestGeneratedWitnessAlwaysFeasibleAndWinning(t *testing.T) {
	t.Parallel()
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)
			r := rand.New(rand.NewPCG(11, uint64(kind)))
			cfg := DefaultConfig(kind)
			for range generatorTrials() {
				inst := Generate(kind, cfg, r)
				g.Expect(inst).NotTo(BeNil())
				sel := WitnessSelection(inst)
				g.Expect(Feasible(inst, sel)).To(BeTrue(), "witness infeasible for %s", inst)
				g.Expect(Win(inst, sel)).To(BeTrue(), "witness does not win %s", inst)
			}
		})
	}
}

func TestGeneratedInstancesHaveNoTrivialWin(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	trials := generatorTrials()

	r := rand.New(rand.NewPCG(13, 1))
	for range trials {
		inst := Generate(VertexCover, DefaultConfig(VertexCover), r)
		g.Expect(inst.Target).To(BeNumerically(">", 0))
		g.Expect(inst.Edges).NotTo(BeEmpty())
		g.Expect(Feasible(inst, NewSelection(inst))).To(BeFalse(),
			"empty selection covers %s", inst)
	}

	r = rand.New(rand.NewPCG(13, 2))
	for range trials {
		inst := Generate(IndependentSet, DefaultConfig(IndependentSet), r)
		g.Expect(inst.Target).To(BeNumerically("<", inst.Nodes))
		g.Expect(Win(inst, NewSelection(inst))).To(BeFalse(),
			"empty selection wins %s", inst)
	}

	r = rand.New(rand.NewPCG(13, 3))
	for range trials {
		inst := Generate(SAT, DefaultConfig(SAT), r)
		g.Expect(Feasible(inst, NewSelection(inst))).To(BeFalse(),
			"all-false satisfies %s", inst)
	}
}

func TestGeneratedTargetsAreConsistent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	for _, kind := range Kinds() {
		r := rand.New(rand.NewPCG(17, uint64(kind)))
		for range 100 {
			inst := Generate(kind, DefaultConfig(kind), r)
			switch kind {
			case VertexCover, IndependentSet, Clique:
				g.Expect(inst.Witness.Set).To(HaveLen(inst.Target))
			case Hamiltonian:
				g.Expect(inst.Witness.Cycle).To(HaveLen(inst.Nodes))
			case TSP:
				g.Expect(inst.CycleWeight(inst.Witness.Cycle)).To(Equal(inst.Target))
			case SAT:
				g.Expect(inst.Clauses).To(HaveLen(inst.Target))
			case SubsetSum:
				sum := 0
				for _, i := range inst.Witness.Set {
					sum += inst.Values[i]
				}
				g.Expect(sum).To(Equal(inst.Target))
			case Partition:
				total := 0
				for _, v := range inst.Values {
					total += v
				}
				g.Expect(total).To(Equal(2 * inst.Target))
			}
		}
	}
}

func TestGenerateStaysWithinSizeBounds(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	for _, kind := range Kinds() {
		cfg := DefaultConfig(kind)
		r := rand.New(rand.NewPCG(19, uint64(kind)))
		for range 200 {
			inst := Generate(kind, cfg, r)
			g.Expect(inst.Size()).To(BeNumerically("<=", cfg.MaxSize))
			g.Expect(inst.Size()).To(BeNumerically(">=", 2))
		}
	}
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	for _, kind := range Kinds() {
		a := Generate(kind, DefaultConfig(kind), rand.New(rand.NewPCG(5, 6)))
		b := Generate(kind, DefaultConfig(kind), rand.New(rand.NewPCG(5, 6)))
		g.Expect(b).To(Equal(a))
	}
}

func TestGenerateFallsBackWhenAttemptsExhausted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	// a 2-node graph cannot host a cycle, so every attempt is rejected
	// and generation must fall back, not error
	cfg := DefaultConfig(Hamiltonian)
	cfg.MinSize, cfg.MaxSize = 2, 2
	cfg.MaxAttempts = 5
	inst := Generate(Hamiltonian, cfg, rand.New(rand.NewPCG(23, 24)))
	g.Expect(inst).NotTo(BeNil())
	g.Expect(Win(inst, WitnessSelection(inst))).To(BeTrue())
}
