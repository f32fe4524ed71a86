package puzzle

// Config tunes one family's generation. Zero fields fall back to the
// family defaults, so partial overrides are fine.
type Config struct {
	MinSize       int     `json:"min_size"`
	MaxSize       int     `json:"max_size"`
	EdgeP         float64 `json:"edge_p"`
	ExtraEdgeP    float64 `json:"extra_edge_p"`
	Neighbors     int     `json:"neighbors"`
	MinValue      int     `json:"min_value"`
	MaxValue      int     `json:"max_value"`
	ClausesPerVar float64 `json:"clauses_per_var"`
	MaxAttempts   int     `json:"max_attempts"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	MinSep        float64 `json:"min_sep"`
}

// Subset enumeration and tour search stay interactive only on small
// instances. Config values are clamped to these no matter what callers
// ask for.
const (
	maxGraphSize = 12
	maxTourNodes = 8
)

func DefaultConfig(kind Kind) Config {
	cfg := Config{
		MaxAttempts: 50,
		MinValue:    1,
		MaxValue:    25,
		Width:       320,
		Height:      240,
		MinSep:      40,
	}
	switch kind {
	case VertexCover:
		cfg.MinSize, cfg.MaxSize = 6, 9
		cfg.Neighbors = 3
	case IndependentSet:
		cfg.MinSize, cfg.MaxSize = 6, 9
		cfg.EdgeP = 0.35
	case Clique:
		cfg.MinSize, cfg.MaxSize = 6, 8
		cfg.EdgeP = 0.6
	case Coloring:
		cfg.MinSize, cfg.MaxSize = 6, 9
		cfg.EdgeP = 0.5
	case Hamiltonian:
		cfg.MinSize, cfg.MaxSize = 6, 8
		cfg.ExtraEdgeP = 0.25
	case TSP:
		cfg.MinSize, cfg.MaxSize = 5, 7
	case SAT:
		cfg.MinSize, cfg.MaxSize = 4, 6
		cfg.ClausesPerVar = 3
	case SubsetSum, Partition:
		cfg.MinSize, cfg.MaxSize = 4, 8
	}
	return cfg
}

func (cfg Config) normalized(kind Kind) Config {
	def := DefaultConfig(kind)
	if cfg.MinSize <= 0 {
		cfg.MinSize = def.MinSize
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = def.MaxSize
	}
	if cfg.EdgeP <= 0 {
		cfg.EdgeP = def.EdgeP
	}
	if cfg.ExtraEdgeP <= 0 {
		cfg.ExtraEdgeP = def.ExtraEdgeP
	}
	if cfg.Neighbors <= 0 {
		cfg.Neighbors = def.Neighbors
	}
	if cfg.MinValue <= 0 {
		cfg.MinValue = def.MinValue
	}
	if cfg.MaxValue < cfg.MinValue {
		cfg.MaxValue = max(def.MaxValue, cfg.MinValue)
	}
	if cfg.ClausesPerVar <= 0 {
		cfg.ClausesPerVar = def.ClausesPerVar
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.MinSep <= 0 {
		cfg.MinSep = def.MinSep
	}

	limit := maxGraphSize
	if kind == TSP {
		limit = maxTourNodes
	}
	if kind == SAT && cfg.MinSize < 3 {
		cfg.MinSize = 3
	}
	cfg.MaxSize = min(cfg.MaxSize, limit)
	cfg.MinSize = min(cfg.MinSize, cfg.MaxSize)
	return cfg
}
