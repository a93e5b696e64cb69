package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlawkins/salescope/internal/model"
)

func testCatalog() *model.Catalog {
	return model.NewCatalog([]model.Region{
		{Code: "EAST", Name: "East Coast"},
		{Code: "WEST", Name: "West Coast"},
	})
}

func TestParseImportFilename(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name       string
		path       string
		wantValid  bool
		wantRegion string
	}{
		{
			name:       "well-formed name with known region",
			path:       "sales_EAST_2024Q1.csv",
			wantValid:  true,
			wantRegion: "EAST",
		},
		{
			name:       "region token resolves case-insensitively",
			path:       "sales_west_2024Q3.csv",
			wantValid:  true,
			wantRegion: "WEST",
		},
		{
			name:       "directory prefix is ignored",
			path:       "/data/imports/sales_EAST_2025Q2.csv",
			wantValid:  true,
			wantRegion: "EAST",
		},
		{
			name:      "well-formed name with unknown region keeps validity",
			path:      "sales_CENTRAL_2024Q1.csv",
			wantValid: true,
		},
		{
			name: "missing prefix",
			path: "figures_EAST_2024Q1.csv",
		},
		{
			name: "missing quarter token",
			path: "sales_EAST_2024.csv",
		},
		{
			name: "quarter out of range",
			path: "sales_EAST_2024Q5.csv",
		},
		{
			name: "wrong extension",
			path: "sales_EAST_2024Q1.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ParseImportFilename(tt.path, catalog)

			assert.Equal(t, tt.wantValid, f.IsValidName)
			if tt.wantRegion == "" {
				assert.Nil(t, f.Region)
			} else {
				require.NotNil(t, f.Region)
				assert.Equal(t, tt.wantRegion, f.Region.Code)
			}
		})
	}
}

func TestParseImportFilename_RawNameIsBaseName(t *testing.T) {
	f := ParseImportFilename("/tmp/dir/sales_EAST_2024Q1.csv", testCatalog())
	assert.Equal(t, "sales_EAST_2024Q1.csv", f.RawName)
	assert.Equal(t, "/tmp/dir/sales_EAST_2024Q1.csv", f.Path)
}
