// Command soak hammers the generator and reports instances whose
// witness fails its own checks. Satisfiability instances are also
// cross-checked with an independent SAT solver.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/ddrozdov/nparcade/internal/puzzle"
)

var (
	log = logrus.New()

	rounds  int
	seed    uint64
	logPath string
)

func init() {
	flag.IntVar(&rounds, "n", 1000, "instances to generate per family")
	flag.Uint64Var(&seed, "seed", 0, "rng seed, 0 picks one from the clock")
	flag.StringVar(&logPath, "log", "soak.log", "rotating log file")
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up rotating log file: ", err)
	}
	log.AddHook(hook)
}

func checkSAT(inst *puzzle.Instance) error {
	cnf := make([][]int, len(inst.Clauses))
	for i, c := range inst.Clauses {
		cnf[i] = []int{c[0], c[1], c[2]}
	}
	if status := solver.New(solver.ParseSlice(cnf)).Solve(); status != solver.Sat {
		return fmt.Errorf("external solver says %v", status)
	}
	return nil
}

func checkInstance(inst *puzzle.Instance) error {
	wit := puzzle.WitnessSelection(inst)
	if c := puzzle.FindConflict(inst, wit); c != nil {
		return fmt.Errorf("witness conflict: %s", c)
	}
	if !puzzle.Win(inst, wit) {
		return fmt.Errorf("witness does not win")
	}
	if inst.Kind == puzzle.SAT {
		return checkSAT(inst)
	}
	return nil
}

func main() {
	flag.Parse()
	setupLogging()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed>>1|1))

	log.WithFields(logrus.Fields{
		"rounds": rounds,
		"seed":   seed,
	}).Info("soak starting")

	start := time.Now()
	failures := 0
	for _, kind := range puzzle.Kinds() {
		cfg := puzzle.DefaultConfig(kind)
		kindLog := log.WithField("kind", kind.String())
		for i := 0; i < rounds; i++ {
			inst := puzzle.Generate(kind, cfg, r)
			if err := checkInstance(inst); err != nil {
				failures++
				kindLog.WithFields(logrus.Fields{
					"instance": inst.String(),
					"error":    err.Error(),
				}).Error("bad instance")
			}
		}
		kindLog.Debug("family done")
	}

	summary := log.WithFields(logrus.Fields{
		"failures": failures,
		"elapsed":  time.Since(start).String(),
	})
	if failures > 0 {
		summary.Error("soak found bad instances")
		os.Exit(1)
	}
	summary.Info("soak passed")
}
