package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDailySales_Quarter(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		want  int
	}{
		{"january is Q1", time.January, 1},
		{"march is Q1", time.March, 1},
		{"april is Q2", time.April, 2},
		{"june is Q2", time.June, 2},
		{"july is Q3", time.July, 3},
		{"september is Q3", time.September, 3},
		{"october is Q4", time.October, 4},
		{"december is Q4", time.December, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DailySales{Date: time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC)}
			if got := d.Quarter(); got != tt.want {
				t.Errorf("Quarter() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailySales_Validate(t *testing.T) {
	catalog := NewCatalog([]Region{
		{Code: "EAST", Name: "East Coast"},
		{Code: "WEST", Name: "West Coast"},
	})
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  DailySales
		wantErr error
	}{
		{
			name:   "valid record",
			record: DailySales{Amount: decimal.RequireFromString("150.00"), Date: date, Region: Region{Code: "EAST"}},
		},
		{
			name:    "zero amount",
			record:  DailySales{Amount: decimal.Zero, Date: date, Region: Region{Code: "EAST"}},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			record:  DailySales{Amount: decimal.RequireFromString("-1.50"), Date: date, Region: Region{Code: "EAST"}},
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "missing date",
			record:  DailySales{Amount: decimal.RequireFromString("10"), Region: Region{Code: "EAST"}},
			wantErr: ErrMissingDate,
		},
		{
			name:    "region not in catalog",
			record:  DailySales{Amount: decimal.RequireFromString("10"), Date: date, Region: Region{Code: "MOON"}},
			wantErr: ErrUnknownRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate(catalog)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog([]Region{
		{Code: "EAST", Name: "East Coast"},
		{Code: "WEST", Name: "West Coast"},
	})

	if r, ok := catalog.Resolve("east"); !ok || r.Code != "EAST" {
		t.Errorf("Resolve(east) = %v, %v; want EAST, true", r, ok)
	}
	if _, ok := catalog.Resolve("CENTRAL"); ok {
		t.Error("Resolve(CENTRAL) matched, want no match")
	}
	if got := catalog.Codes(); len(got) != 2 || got[0] != "EAST" || got[1] != "WEST" {
		t.Errorf("Codes() = %v, want [EAST WEST]", got)
	}
}
