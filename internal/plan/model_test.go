package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays(t *testing.T) {
	cases := []struct {
		name string
		plan Plan
		want int
	}{
		{"daily", Plan{DurationValue: 10, DurationType: DurationDaily}, 10},
		{"weekly", Plan{DurationValue: 2, DurationType: DurationWeekly}, 14},
		{"monthly", Plan{DurationValue: 3, DurationType: DurationMonthly}, 90},
		{"yearly", Plan{DurationValue: 1, DurationType: DurationYearly}, 365},
		{"lifetime", Plan{DurationValue: 1, DurationType: DurationLifetime}, 0},
		{"unknown falls back to days", Plan{DurationValue: 45, DurationType: "fortnightly"}, 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.plan.DurationDays())
		})
	}
}
