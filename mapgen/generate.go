package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/swarmsim/auction"
)

// Map is the product of Generate: the graph plus the entities sampled onto
// it.
type Map struct {
	Graph *auction.Graph
	Bins  []*auction.Node
	Bots  []*auction.Node
}

// Generate builds a Cols x Rows grid repeated over Floors floors, wires
// orthogonal (right/down) adjacency on every floor, collapses each
// configured elevator column into one shared Node per floor-spanning shaft,
// and samples NBins + NBots distinct parkable nodes using a Rand seeded
// from cfg.Seed.
func Generate(cfg Config) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := auction.NewGraph()
	elevators := make(map[ColRow]*auction.Node, len(cfg.ElevatorCols))
	for _, cr := range cfg.ElevatorCols {
		n, err := g.InsertNode(auction.Point{X: float64(cr.Col), Y: float64(cr.Row), Z: 0}, auction.StateNoStopping, true)
		if err != nil {
			return nil, err
		}
		elevators[cr] = n
	}

	grid := make([][][]*auction.Node, cfg.Floors)
	for f := 0; f < cfg.Floors; f++ {
		grid[f] = make([][]*auction.Node, cfg.Rows)
		for r := 0; r < cfg.Rows; r++ {
			grid[f][r] = make([]*auction.Node, cfg.Cols)
			for c := 0; c < cfg.Cols; c++ {
				if n, ok := elevators[ColRow{Col: c, Row: r}]; ok {
					grid[f][r][c] = n
					continue
				}
				n, err := g.InsertNode(auction.Point{X: float64(c), Y: float64(r), Z: float64(f)}, auction.StateDefault, false)
				if err != nil {
					return nil, err
				}
				grid[f][r][c] = n
			}
		}
	}

	for f := 0; f < cfg.Floors; f++ {
		for r := 0; r < cfg.Rows; r++ {
			for c := 0; c < cfg.Cols; c++ {
				cur := grid[f][r][c]
				if c+1 < cfg.Cols {
					g.Link(cur, grid[f][r][c+1])
				}
				if r+1 < cfg.Rows {
					g.Link(cur, grid[f][r+1][c])
				}
			}
		}
	}

	m := &Map{Graph: g}
	if cfg.NBins == 0 && cfg.NBots == 0 {
		return m, nil
	}

	candidates := make([]*auction.Node, 0, cfg.Cols*cfg.Rows*cfg.Floors)
	for _, n := range g.Nodes() {
		if n.IsParkable() {
			candidates = append(candidates, n)
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	m.Bins = append(m.Bins, candidates[:cfg.NBins]...)
	m.Bots = append(m.Bots, candidates[cfg.NBins:cfg.NBins+cfg.NBots]...)
	return m, nil
}
