// Package importer decides whether a candidate sales file may be imported
// and turns its rows into validated sales records.
package importer

import (
	"path/filepath"
	"regexp"

	"github.com/mlawkins/salescope/internal/model"
)

// ValidFormat describes the naming convention import files must follow.
// It is included verbatim in bad-format rejection messages.
const ValidFormat = "sales_<REGION>_<YYYY>Q<1-4>.csv"

var namePattern = regexp.MustCompile(`^sales_([A-Za-z]+)_(\d{4})Q([1-4])\.csv$`)

// ImportFilename is the parsed descriptor for one candidate file. It is
// derived once per file and immutable afterwards.
//
// IsValidName and Region are distinct failure axes: a well-formed name
// whose region token matches nothing in the catalog has IsValidName true
// and Region nil.
type ImportFilename struct {
	Region      *model.Region
	Path        string
	RawName     string
	IsValidName bool
}

// ParseImportFilename parses a candidate file path against the naming
// convention, resolving the embedded region token against the catalog.
// Pure; no filesystem access.
func ParseImportFilename(path string, catalog *model.Catalog) ImportFilename {
	f := ImportFilename{
		Path:    path,
		RawName: filepath.Base(path),
	}

	m := namePattern.FindStringSubmatch(f.RawName)
	if m == nil {
		return f
	}
	f.IsValidName = true

	if region, ok := catalog.Resolve(m[1]); ok {
		f.Region = &region
	}
	return f
}
