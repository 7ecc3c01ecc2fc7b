package security

import (
	"fmt"
	"strings"

	"forgescan/report-importer/internal/model"
)

// ValidateEvent checks the provenance fields every finding is stamped with.
// The report type is not checked here; unknown or empty types are archived
// and then dropped.
func ValidateEvent(ev model.ReportEvent) error {
	required := []struct {
		name  string
		value string
	}{
		{"createdAt", ev.CreatedAt},
		{"source_repository", ev.SourceRepository},
		{"source_branch", ev.SourceBranch},
		{"source_commitid", ev.SourceCommitID},
		{"build_id", ev.BuildID},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", model.ErrInvalidEvent, f.name)
		}
	}
	return nil
}
