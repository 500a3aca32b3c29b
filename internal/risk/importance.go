package risk

import "sort"

// DefaultTopK is the importance list length when the caller does not ask for
// a specific k.
const DefaultTopK = 10

// rankImportances orders the gain map by score descending, breaking ties by
// the feature's declaration order (stable sort over the declared sequence).
// Features the model never split on carry no gain and are excluded.
func rankImportances(gains map[string]float64, order []string, k int) []FeatureImportance {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]FeatureImportance, 0, len(gains))
	for _, name := range order {
		if gain, ok := gains[name]; ok {
			ranked = append(ranked, FeatureImportance{Feature: name, Gain: gain})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Gain > ranked[j].Gain
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
