package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/cv-scorer/internal/types"
)

// CalculateTotalScore combines category scores as the sum of score*weight/100.
// Categories missing from weights are ignored. The sum is rounded half to even
// and is not clamped; the weight table determines the scale (see WeightTable.MaxTotal).
func CalculateTotalScore(scores types.CategoryScores, weights types.WeightTable) int {
	total := 0.0
	for _, category := range summationOrder(scores) {
		weight, ok := weights[category]
		if !ok {
			continue
		}
		total += float64(scores[category]) * (weight / 100)
	}
	return int(math.RoundToEven(total))
}

// summationOrder fixes the order of floating point additions: known categories first,
// then any other keys sorted by name.
func summationOrder(scores types.CategoryScores) []types.Category {
	order := make([]types.Category, 0, len(scores))
	for _, c := range types.Categories {
		if _, ok := scores[c]; ok {
			order = append(order, c)
		}
	}
	var extra []types.Category
	for c := range scores {
		if !types.IsKnownCategory(c) {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(order, extra...)
}
