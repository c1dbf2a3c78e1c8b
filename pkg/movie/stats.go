package movie

import (
	"math"
	"sort"

	"github.com/dustin/go-humanize"
)

// Stats summarizes the ratings of a catalog
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Best   []Movie `json:"best"`
	Worst  []Movie `json:"worst"`
}

// CalculateStats computes mean and median rating and every movie sharing the highest and lowest rating
func CalculateStats(movies []Movie) (Stats, error) {
	if len(movies) == 0 {
		return Stats{}, ErrEmptyCatalog
	}

	ratings := make([]float64, len(movies))
	sum := 0.0
	best, worst := math.Inf(-1), math.Inf(1)
	for i, m := range movies {
		ratings[i] = m.Rating
		sum += m.Rating
		best = math.Max(best, m.Rating)
		worst = math.Min(worst, m.Rating)
	}

	stats := Stats{
		Count:  len(movies),
		Mean:   sum / float64(len(movies)),
		Median: median(ratings),
	}

	for _, m := range movies {
		if m.Rating == best {
			stats.Best = append(stats.Best, m)
		}
		if m.Rating == worst {
			stats.Worst = append(stats.Worst, m)
		}
	}

	return stats, nil
}

// Round formats a statistic to a single decimal place
func Round(v float64) string {
	return humanize.FtoaWithDigits(math.Round(v*10)/10, 1)
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
