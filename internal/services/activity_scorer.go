package services

import (
	"strings"

	"wayfarer/internal/models/domain_models"
)

// Scoring weights. The total caps out at 100 for a perfectly matched,
// popular activity.
const (
	ratingWeight        = 30.0
	reviewVolumeWeight  = 10.0
	interestMatchWeight = 40.0
	budgetMatchWeight   = 15.0
	popularityBonus     = 5.0

	neutralAffinity = 0.5
)

// budgetAffinity maps (budget level, price tier) to how well the price fits
// the traveler's budget. Free entries always score at least neutral.
var budgetAffinity = map[domain_models.BudgetLevel]map[domain_models.PriceTier]float64{
	domain_models.BudgetLow: {
		domain_models.PriceFree:     1.0,
		domain_models.PriceCheap:    1.0,
		domain_models.PriceModerate: 0.6,
		domain_models.PricePricey:   0.2,
		domain_models.PriceLuxury:   0.2,
	},
	domain_models.BudgetMid: {
		domain_models.PriceFree:     0.8,
		domain_models.PriceCheap:    1.0,
		domain_models.PriceModerate: 1.0,
		domain_models.PricePricey:   0.7,
		domain_models.PriceLuxury:   0.3,
	},
	domain_models.BudgetLuxury: {
		domain_models.PriceFree:     0.5,
		domain_models.PriceCheap:    0.5,
		domain_models.PriceModerate: 0.7,
		domain_models.PricePricey:   1.0,
		domain_models.PriceLuxury:   1.0,
	},
}

// ScoreActivity computes the relevance of one candidate for one preference
// profile. Deterministic: equal inputs always produce equal scores.
func ScoreActivity(candidate domain_models.ActivityCandidate, profile domain_models.PreferenceProfile) float64 {
	score := 0.0

	if candidate.Rating != nil {
		score += (*candidate.Rating / 5.0) * ratingWeight
	}

	if candidate.ReviewCount != nil {
		volume := float64(*candidate.ReviewCount) / 100.0
		if volume > 1.0 {
			volume = 1.0
		}
		score += volume * reviewVolumeWeight
	}

	score += interestMatch(candidate, profile.Interests) * interestMatchWeight
	score += priceAffinity(profile.BudgetLevel, candidate.PriceRange) * budgetMatchWeight

	if candidate.IsPopular {
		score += popularityBonus
	}

	return score
}

func interestMatch(candidate domain_models.ActivityCandidate, interests []string) float64 {
	if len(interests) == 0 {
		return neutralAffinity
	}

	match := 0.0
	category := strings.ToLower(string(candidate.Category))
	for _, interest := range interests {
		if strings.ToLower(interest) == category {
			match += 0.7
			break
		}
	}

	for _, tag := range candidate.Tags {
		loweredTag := strings.ToLower(tag)
		for _, interest := range interests {
			loweredInterest := strings.ToLower(interest)
			if strings.Contains(loweredTag, loweredInterest) || strings.Contains(loweredInterest, loweredTag) {
				match += 0.1
			}
		}
	}

	if match > 1.0 {
		match = 1.0
	}
	return match
}

func priceAffinity(budget domain_models.BudgetLevel, price domain_models.PriceTier) float64 {
	tiers, ok := budgetAffinity[budget]
	if !ok {
		return neutralAffinity
	}
	affinity, ok := tiers[price]
	if !ok {
		return neutralAffinity
	}
	return affinity
}
