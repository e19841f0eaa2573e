package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/domain_models"
)

func TestTimeSlotsFor_SlotCounts(t *testing.T) {
	tests := []struct {
		style domain_models.TravelStyle
		want  int
	}{
		{style: domain_models.StyleRelaxed, want: 3},
		{style: domain_models.StyleModerate, want: 4},
		{style: domain_models.StylePacked, want: 5},
		{style: domain_models.TravelStyle("SOMETHING_ELSE"), want: 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			slots := TimeSlotsFor(tt.style)
			assert.Len(t, slots, tt.want)
			assert.Equal(t, tt.want, ActivitiesPerDay(tt.style))
		})
	}
}

func TestTimeSlotsFor_OrderedAndNonOverlapping(t *testing.T) {
	for _, style := range []domain_models.TravelStyle{
		domain_models.StyleRelaxed,
		domain_models.StyleModerate,
		domain_models.StylePacked,
	} {
		slots := TimeSlotsFor(style)
		for i, slot := range slots {
			assert.Less(t, slot.Start, slot.End, "%s slot %d", style, i)
			if i > 0 {
				assert.LessOrEqual(t, slots[i-1].End, slot.Start, "%s slots %d and %d overlap", style, i-1, i)
			}
		}
	}
}

func TestTimeSlotsFor_PeriodsHavePreferredCategories(t *testing.T) {
	// Granular slot names like late_afternoon must still resolve to a
	// period with a category preference.
	for _, style := range []domain_models.TravelStyle{
		domain_models.StyleRelaxed,
		domain_models.StyleModerate,
		domain_models.StylePacked,
	} {
		for _, slot := range TimeSlotsFor(style) {
			assert.NotEmpty(t, preferredCategories(slot.Period), "%s slot %s has no preferred categories", style, slot.Name)
		}
	}
}

func TestTimeSlotsFor_ReturnsDefensiveCopy(t *testing.T) {
	slots := TimeSlotsFor(domain_models.StyleRelaxed)
	require.NotEmpty(t, slots)
	slots[0].Start = "00:00"

	fresh := TimeSlotsFor(domain_models.StyleRelaxed)
	assert.Equal(t, "10:00", fresh[0].Start)
}
