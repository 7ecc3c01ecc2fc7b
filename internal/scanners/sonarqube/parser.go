package sonarqube

import (
	"encoding/json"
	"fmt"
	"time"

	"forgescan/report-importer/internal/model"
)

const Title = "SonarQube StaticCode Analysis"

type issue struct {
	Key       string  `json:"key"`
	Type      *string `json:"type"`
	Message   *string `json:"message"`
	Component *string `json:"component"`
	Severity  *string `json:"severity"`
}

type report struct {
	Total  *int    `json:"total"`
	Issues []issue `json:"issues"`
}

// Parse reads the first total issues of a SonarQube issues search response.
func Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error) {
	var parsed report
	if err := json.Unmarshal(ev.Report, &parsed); err != nil {
		return nil, model.Malformed(ev.ReportType, "invalid json: %v", err)
	}
	if parsed.Total == nil {
		return nil, model.Malformed(ev.ReportType, `missing "total"`)
	}
	total := *parsed.Total
	if total < 0 || total > len(parsed.Issues) {
		return nil, model.Malformed(ev.ReportType, "total %d but %d issues listed", total, len(parsed.Issues))
	}

	findings := make([]model.Finding, 0, total)
	for i, is := range parsed.Issues[:total] {
		if is.Type == nil || is.Message == nil || is.Component == nil || is.Severity == nil {
			return nil, model.Malformed(ev.ReportType, "issue %d needs type, message, component and severity", i)
		}
		desc := fmt.Sprintf("%s-%s-%d, component: %s", *is.Type, *is.Message, i, *is.Component)
		findings = append(findings, model.NewFinding(ev, i, ev.ScopedFindingID(i), Title, desc, mapSeverity(*is.Severity), now()))
	}
	return findings, nil
}

// Unknown labels fall to the low end, unlike the ZAP mapping.
func mapSeverity(s string) int {
	switch s {
	case "BLOCKER", "CRITICAL":
		return 90
	case "MAJOR":
		return 70
	default:
		return 20
	}
}
