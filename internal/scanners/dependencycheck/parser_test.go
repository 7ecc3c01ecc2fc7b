package dependencycheck

import (
	"errors"
	"testing"
	"time"

	"forgescan/report-importer/internal/model"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func event(report string) model.ReportEvent {
	return model.ReportEvent{
		MessageType:      model.MessageTypeCodeScanReport,
		ReportType:       model.ReportDependencyCheck,
		SourceRepository: "shop-api",
		SourceBranch:     "main",
		BuildID:          "b-7",
		Report:           []byte(report),
	}
}

// TestParseSkipsDependenciesWithoutPackages ensures only resolved dependencies are reported
func TestParseSkipsDependenciesWithoutPackages(t *testing.T) {
	report := `{
		"dependencies": [
			{"fileName": "a.jar", "packages": [{"id": "pkg:maven/org.a/a@1.0", "confidence": "HIGHEST", "url": "https://a"}]},
			{"fileName": "b.jar"},
			{"fileName": "c.jar", "packages": [
				{"id": "pkg:maven/org.c/c@2.0", "confidence": "HIGH", "url": "https://c"},
				{"id": "pkg:maven/org.c/ignored@9", "confidence": "HIGHEST", "url": "https://x"}
			]}
		]
	}`

	findings, err := Parse(event(report), fixedNow)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}

	first, second := findings[0], findings[1]
	if first.ID != "0-owasp-dependency-check-b-7" {
		t.Errorf("first id = %s", first.ID)
	}
	if second.ID != "2-owasp-dependency-check-b-7" {
		t.Errorf("second id = %s, index of the dependency should be kept", second.ID)
	}
	if first.Severity != 80 || second.Severity != 50 {
		t.Errorf("severities = %d, %d; want 80, 50", first.Severity, second.Severity)
	}
	if second.Description != "Package: pkg:maven/org.c/c@2.0, Confidence: HIGH, URL: https://c" {
		t.Errorf("description = %q", second.Description)
	}
	if first.Title != Title {
		t.Errorf("title = %q", first.Title)
	}
	if first.GeneratorID != "owasp-dependency-check-shop-api-main" {
		t.Errorf("generator id = %q", first.GeneratorID)
	}
	if first.Type != "OWASP-Dependency-Check code scan" {
		t.Errorf("type = %q", first.Type)
	}
	if !first.CreatedAt.Equal(fixedNow()) {
		t.Errorf("created at = %v", first.CreatedAt)
	}
}

// TestParseEmptyPackagesList treats an empty packages list as unresolved
func TestParseEmptyPackagesList(t *testing.T) {
	findings, err := Parse(event(`{"dependencies": [{"fileName": "a.jar", "packages": []}]}`), fixedNow)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(findings) != 0 {
		t.Fatalf("expected 0 findings, got %d", len(findings))
	}
}

// TestParseRejectsMalformed ensures broken reports fail the whole parse
func TestParseRejectsMalformed(t *testing.T) {
	reports := []string{
		`{{{{`,
		`{}`,
		`{"dependencies": {"a": 1}}`,
		`{"dependencies": [{"packages": [{"id": "p"}]}]}`,
		`{"dependencies": [{"packages": [{"id": "p", "url": "https://p"}]}]}`,
		`{"dependencies": [{"packages": [{"id": "p", "confidence": "HIGH"}]}]}`,
		`{"dependencies": [{"packages": [{"confidence": "HIGH", "url": "https://p"}]}]}`,
	}
	for _, report := range reports {
		_, err := Parse(event(report), fixedNow)
		if !errors.Is(err, model.ErrMalformedReport) {
			t.Errorf("report %s: expected ErrMalformedReport, got %v", report, err)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"HIGHEST", 80},
		{"HIGH", 50},
		{"MEDIUM", 50},
		{"LOW", 50},
		{"highest", 50},
		{"", 50},
	}
	for _, tt := range tests {
		if got := mapSeverity(tt.input); got != tt.expected {
			t.Errorf("mapSeverity(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
