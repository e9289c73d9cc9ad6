package experiments

import (
	"tiles/experiments/metrics"

	"golang.org/x/exp/slices"
)

// Summary aggregates the games one agent played in an experiment.
type Summary struct {
	Agent       int // AgentConfig.ID
	Kind        string
	Games       int
	MeanScore   float64
	MedianScore float64
	BestScore   int
	MeanSteps   float64
	WinRate     float64     // Fraction of games reaching 2048
	MaxTiles    map[int]int // Games per final max tile
}

func summarize(config metrics.AgentConfig, games []metrics.GameMetric) Summary {
	s := Summary{
		Agent:    config.ID,
		Kind:     config.Kind,
		Games:    len(games),
		MaxTiles: make(map[int]int),
	}
	if len(games) == 0 {
		return s
	}

	scores := make([]int, 0, len(games))
	total, steps, wins := 0, 0, 0
	for _, g := range games {
		scores = append(scores, g.FinalScore)
		total += g.FinalScore
		steps += g.Steps
		if g.Reached2048 {
			wins++
		}
		s.MaxTiles[g.MaxTile]++
	}
	slices.Sort(scores)

	n := len(scores)
	s.MeanScore = float64(total) / float64(n)
	s.MeanSteps = float64(steps) / float64(n)
	s.WinRate = float64(wins) / float64(n)
	s.BestScore = scores[n-1]
	if n%2 == 1 {
		s.MedianScore = float64(scores[n/2])
	} else {
		s.MedianScore = float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return s
}

// Tiles lists the max tiles reached in ascending order.
func (s Summary) Tiles() []int {
	tiles := make([]int, 0, len(s.MaxTiles))
	for tile := range s.MaxTiles {
		tiles = append(tiles, tile)
	}
	slices.Sort(tiles)
	return tiles
}
