package vectordb

import (
	"math"

	chromem "github.com/philippgille/chromem-go"
)

// maximalMarginalRelevance selects up to k candidates balancing relevance to
// the query against diversity among the already-selected set. Embeddings
// coming out of chromem are normalized, so dot product is cosine similarity.
func maximalMarginalRelevance(queryVec []float32, candidates []chromem.Result, k int, lambda float32) []chromem.Result {
	if k >= len(candidates) {
		return candidates
	}

	selected := make([]chromem.Result, 0, k)
	remaining := make([]chromem.Result, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := 0
		bestScore := float32(math.Inf(-1))

		for i, cand := range remaining {
			relevance := dot(queryVec, cand.Embedding)

			var redundancy float32
			for j, sel := range selected {
				sim := dot(cand.Embedding, sel.Embedding)
				if j == 0 || sim > redundancy {
					redundancy = sim
				}
			}

			score := lambda*relevance - (1-lambda)*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

func dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// normalize scales a vector to unit length so dot products are cosine
// similarities. Returns the input unchanged if it has zero magnitude.
func normalize(vec []float32) []float32 {
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out
}
