package planner

// Config bundles MultiPathPlanner's scheduling knobs together with the
// defaults a caller threads into every per-agent Request it builds — it is
// the YAML-loadable shape cmd/swarmsim reads a scenario's planner section
// into, and the shape binrouter.Router embeds for both its phases.
type Config struct {
	Rounds               int     `yaml:"rounds"`
	NThreads             int     `yaml:"n_threads"`
	AllowIndefiniteBlock bool    `yaml:"allow_indefinite_block"`
	PriceIncrement       float64 `yaml:"price_increment"`
	Duration             float64 `yaml:"duration"`
}

// MultiPathPlanner builds a MultiPathPlanner from c's scheduling fields.
func (c Config) MultiPathPlanner() *MultiPathPlanner {
	return &MultiPathPlanner{
		Rounds:               c.Rounds,
		NThreads:             c.NThreads,
		AllowIndefiniteBlock: c.AllowIndefiniteBlock,
	}
}
