package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlawkins/salescope/internal/model"
)

func TestBuildSlice(t *testing.T) {
	tests := []struct {
		name       string
		start      string
		end        string
		region     string
		wantStart  *time.Time
		wantEnd    *time.Time
		wantRegion string
		wantErr    bool
	}{
		{
			name: "all blanks mean unbounded, all regions",
		},
		{
			name:      "both bounds set",
			start:     "2024-01-01",
			end:       "2024-03-31",
			wantStart: datePtr(2024, 1, 1),
			wantEnd:   datePtr(2024, 3, 31),
		},
		{
			name:  "whitespace-only text is blank",
			start: "  ",
			end:   "\t",
		},
		{
			name:       "region choice kept",
			region:     "EAST",
			wantRegion: "EAST",
		},
		{
			name:   "all-regions sentinel clears the filter",
			region: AllRegions,
		},
		{
			name:    "malformed start date",
			start:   "01/02/2024",
			wantErr: true,
		},
		{
			name:    "malformed end date",
			end:     "2024-13-40",
			wantErr: true,
		},
		{
			name:    "inverted range",
			start:   "2024-06-01",
			end:     "2024-01-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := BuildSlice(tt.start, tt.end, tt.region)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, pred.Start)
			assert.Equal(t, tt.wantEnd, pred.End)
			assert.Equal(t, tt.wantRegion, pred.RegionCode)
		})
	}
}

func TestSlicePredicate_Matches(t *testing.T) {
	pred, err := BuildSlice("2024-01-01", "2024-01-31", "EAST")
	require.NoError(t, err)

	record := func(date string, region string) model.DailySales {
		d, parseErr := time.Parse(model.DateFormat, date)
		require.NoError(t, parseErr)
		return model.DailySales{
			Date:   d,
			Region: model.Region{Code: region},
			Amount: decimal.RequireFromString("10"),
		}
	}

	// Both bounds are inclusive.
	assert.True(t, pred.Matches(record("2024-01-01", "EAST")))
	assert.True(t, pred.Matches(record("2024-01-31", "EAST")))
	assert.True(t, pred.Matches(record("2024-01-15", "EAST")))

	assert.False(t, pred.Matches(record("2023-12-31", "EAST")))
	assert.False(t, pred.Matches(record("2024-02-01", "EAST")))
	assert.False(t, pred.Matches(record("2024-01-15", "WEST")))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
