package dependencycheck

import (
	"encoding/json"
	"fmt"
	"time"

	"forgescan/report-importer/internal/model"
)

const Title = "OWASP Dependency Check Analysis"

type pkg struct {
	ID         *string `json:"id"`
	Confidence *string `json:"confidence"`
	URL        *string `json:"url"`
}

type report struct {
	Dependencies *[]struct {
		FileName string `json:"fileName"`
		Packages []pkg  `json:"packages"`
	} `json:"dependencies"`
}

// Parse emits one finding per dependency that resolved to a package.
// Only the first package of a dependency is reported.
func Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error) {
	var parsed report
	if err := json.Unmarshal(ev.Report, &parsed); err != nil {
		return nil, model.Malformed(ev.ReportType, "invalid json: %v", err)
	}
	if parsed.Dependencies == nil {
		return nil, model.Malformed(ev.ReportType, `missing "dependencies"`)
	}

	findings := []model.Finding{}
	for i, dep := range *parsed.Dependencies {
		if len(dep.Packages) == 0 {
			continue
		}
		p := dep.Packages[0]
		if p.ID == nil || p.Confidence == nil || p.URL == nil {
			return nil, model.Malformed(ev.ReportType, "dependency %d: package needs id, confidence and url", i)
		}
		desc := fmt.Sprintf("Package: %s, Confidence: %s, URL: %s", *p.ID, *p.Confidence, *p.URL)
		findings = append(findings, model.NewFinding(ev, i, ev.FindingID(i), Title, desc, mapSeverity(*p.Confidence), now()))
	}
	return findings, nil
}

func mapSeverity(confidence string) int {
	switch confidence {
	case "HIGHEST":
		return 80
	default:
		return 50
	}
}
