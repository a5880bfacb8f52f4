package get

import (
	"testing"
	"time"
)

func TestMonthsInView(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		futureDays int
		want       []time.Month
	}{
		{
			name: "mid-month stays in one month",
			now:  time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local),
			want: []time.Month{time.January},
		},
		{
			name: "initial window crosses the boundary",
			now:  time.Date(2026, 1, 28, 12, 0, 0, 0, time.Local),
			want: []time.Month{time.January, time.February},
		},
		{
			name:       "extra future days reach two months out",
			now:        time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local),
			futureDays: 60,
			want:       []time.Month{time.January, time.February, time.March},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := monthsInView(tt.now, tt.futureDays)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d months, want %d: %v", len(got), len(tt.want), got)
			}
			for i, m := range tt.want {
				if got[i].Month() != m || got[i].Day() != 1 {
					t.Errorf("month %d = %v, want first of %v", i, got[i], m)
				}
			}
		})
	}
}
