package matching

import (
	"math"
	"sort"

	"talent-match/internal/domain/seeker"
)

// CosineSimilarity returns dot(a,b) / (|a|*|b|) in [-1, 1]. A zero-norm,
// nil or length-mismatched vector scores 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankBySimilarity orders candidates by descending cosine similarity to the
// position vector, breaking ties by newest profile first. Callers depend on
// index 0 being the best match. A nil position vector returns the input
// unchanged so positions without a computed embedding keep the post-filter
// order. Candidates without a vector score 0 rather than being excluded.
func RankBySimilarity(candidates []seeker.Seeker, positionVec []float32, seekerVecs map[int64][]float32) []seeker.Seeker {
	if len(positionVec) == 0 || len(candidates) == 0 {
		return candidates
	}

	scores := make(map[int64]float64, len(candidates))
	for _, c := range candidates {
		scores[c.ID] = CosineSimilarity(positionVec, seekerVecs[c.ID])
	}

	ranked := make([]seeker.Seeker, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].ID], scores[ranked[j].ID]
		if si != sj {
			return si > sj
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return ranked
}
