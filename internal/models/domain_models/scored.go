package domain_models

// ScoredActivity pairs a candidate with its computed relevance score.
type ScoredActivity struct {
	ActivityCandidate
	Score float64
}
