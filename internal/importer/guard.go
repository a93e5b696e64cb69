package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlawkins/salescope/internal/model"
)

// RejectReason identifies why an import was refused.
type RejectReason string

// Rejection reasons, in precedence order.
const (
	RejectBadFormat       RejectReason = "bad_format"
	RejectUnknownRegion   RejectReason = "unknown_region"
	RejectAlreadyImported RejectReason = "already_imported"
)

// ImportRejected is a recoverable, user-facing refusal to import a file.
// It never aborts the session; the caller reports the message and skips
// only this file.
type ImportRejected struct {
	Reason  RejectReason
	Message string
}

func (e *ImportRejected) Error() string {
	return e.Message
}

// Ledger reports whether a file name has already been ingested.
type Ledger interface {
	HasBeenImported(ctx context.Context, name string) (bool, error)
}

// CanImport decides import eligibility. Checks run in a fixed order and the
// first failure wins: bad format, then unknown region, then already
// imported. A badly named file that also happens to be in the ledger is
// rejected for its name, not for the duplicate.
func CanImport(ctx context.Context, f ImportFilename, catalog *model.Catalog, ledger Ledger) error {
	if !f.IsValidName {
		return &ImportRejected{
			Reason: RejectBadFormat,
			Message: fmt.Sprintf("file name %q doesn't follow the expected format of %q",
				f.RawName, ValidFormat),
		}
	}
	if f.Region == nil {
		return &ImportRejected{
			Reason: RejectUnknownRegion,
			Message: fmt.Sprintf("file name %q doesn't include one of the following region codes: %s",
				f.RawName, strings.Join(catalog.Codes(), ", ")),
		}
	}

	imported, err := ledger.HasBeenImported(ctx, f.RawName)
	if err != nil {
		return fmt.Errorf("failed to check import ledger: %w", err)
	}
	if imported {
		return &ImportRejected{
			Reason:  RejectAlreadyImported,
			Message: fmt.Sprintf("file %q has already been imported", f.RawName),
		}
	}

	return nil
}
