package security

import (
	"errors"
	"testing"

	"forgescan/report-importer/internal/model"
)

func validEvent() model.ReportEvent {
	return model.ReportEvent{
		MessageType:      model.MessageTypeCodeScanReport,
		ReportType:       model.ReportZAP,
		CreatedAt:        "2024-03-01T10:00:00Z",
		SourceRepository: "storefront",
		SourceBranch:     "main",
		SourceCommitID:   "abc123",
		BuildID:          "storefront-build:6f1c",
	}
}

func TestValidateEvent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ReportEvent)
		ok     bool
	}{
		{"valid", func(*model.ReportEvent) {}, true},
		{"unknown_report_type_allowed", func(e *model.ReportEvent) { e.ReportType = "Bandit" }, true},
		{"missing_report_type_allowed", func(e *model.ReportEvent) { e.ReportType = "" }, true},
		{"missing_created_at", func(e *model.ReportEvent) { e.CreatedAt = "" }, false},
		{"blank_repository", func(e *model.ReportEvent) { e.SourceRepository = "  " }, false},
		{"missing_branch", func(e *model.ReportEvent) { e.SourceBranch = "" }, false},
		{"missing_commit", func(e *model.ReportEvent) { e.SourceCommitID = "" }, false},
		{"missing_build", func(e *model.ReportEvent) { e.BuildID = "" }, false},
		{"build_with_slash_allowed", func(e *model.ReportEvent) { e.BuildID = "../etc" }, true},
		{"report_type_with_slash_allowed", func(e *model.ReportEvent) { e.ReportType = "a/b" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validEvent()
			tt.mutate(&ev)
			err := ValidateEvent(ev)
			if tt.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, model.ErrInvalidEvent) {
				t.Fatalf("expected ErrInvalidEvent, got %v", err)
			}
		})
	}
}
