package services

import (
	"strings"

	"wayfarer/internal/models/domain_models"
	"wayfarer/pkg/utils"
)

// duplicateDistanceKm is the radius inside which two same-named venues are
// assumed to be the same place.
const duplicateDistanceKm = 0.1

// DeduplicateActivities removes near-duplicate candidates while preserving
// the order of first appearance. When a later candidate duplicates an
// earlier one, the one with the strictly higher rating stays, in the
// earlier candidate's position; whenever either rating is missing the
// first-seen candidate wins.
func DeduplicateActivities(candidates []domain_models.ActivityCandidate) []domain_models.ActivityCandidate {
	unique := make([]domain_models.ActivityCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		duplicate := false
		for i, kept := range unique {
			if !isSimilarActivity(kept, candidate) {
				continue
			}
			duplicate = true
			if candidate.Rating != nil && kept.Rating != nil && *candidate.Rating > *kept.Rating {
				unique[i] = candidate
			}
			break
		}
		if !duplicate {
			unique = append(unique, candidate)
		}
	}

	return unique
}

func isSimilarActivity(a, b domain_models.ActivityCandidate) bool {
	nameA := strings.ToLower(strings.TrimSpace(a.Name))
	nameB := strings.ToLower(strings.TrimSpace(b.Name))

	if nameA == nameB {
		return true
	}

	if len(nameA) > 5 && len(nameB) > 5 {
		if strings.Contains(nameA, nameB) || strings.Contains(nameB, nameA) {
			return true
		}
	}

	if a.Location != nil && b.Location != nil {
		distance := utils.DistanceKm(
			a.Location.Latitude, a.Location.Longitude,
			b.Location.Latitude, b.Location.Longitude,
		)
		if distance < duplicateDistanceKm && firstTokenOverlap(nameA, nameB) {
			return true
		}
	}

	return false
}

// firstTokenOverlap reports whether the first word of either name appears
// inside the other, e.g. "Central Park" vs "Central Park Zoo".
func firstTokenOverlap(nameA, nameB string) bool {
	tokenA := firstToken(nameA)
	tokenB := firstToken(nameB)
	if tokenA == "" || tokenB == "" {
		return false
	}
	return strings.Contains(nameB, tokenA) || strings.Contains(nameA, tokenB)
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
