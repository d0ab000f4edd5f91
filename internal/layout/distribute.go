package layout

import "math"

// Distribute splits total cells between slots proportionally to weights.
// Slots with a non-positive weight get nothing. Rounding is cumulative so
// the parts always sum to total when at least one weight is positive.
func Distribute(total int, weights []float64) []int {
	parts := make([]int, len(weights))
	if total <= 0 {
		return parts
	}

	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum == 0 {
		return parts
	}

	assigned := 0
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		end := int(math.Round(float64(total) * acc / sum))
		parts[i] = end - assigned
		assigned = end
	}
	return parts
}
