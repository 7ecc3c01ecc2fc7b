package owaspzap

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"forgescan/report-importer/internal/model"
)

const Title = "OWASP ZAP DynamicCode Analysis"

type alert struct {
	PluginID  string             `json:"pluginid"`
	Alert     *string            `json:"alert"`
	RiskDesc  *string            `json:"riskdesc"`
	Instances *[]json.RawMessage `json:"instances"`
}

type report struct {
	Site []struct {
		Name   string   `json:"@name"`
		Alerts *[]alert `json:"alerts"`
	} `json:"site"`
}

// Parse emits one finding per alert of the first scanned site.
func Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error) {
	var parsed report
	if err := json.Unmarshal(ev.Report, &parsed); err != nil {
		return nil, model.Malformed(ev.ReportType, "invalid json: %v", err)
	}
	if len(parsed.Site) == 0 {
		return nil, model.Malformed(ev.ReportType, `missing "site"`)
	}

	if parsed.Site[0].Alerts == nil {
		return nil, model.Malformed(ev.ReportType, `missing "alerts" of the first site`)
	}
	alerts := *parsed.Site[0].Alerts
	findings := make([]model.Finding, 0, len(alerts))
	for i, a := range alerts {
		if a.Alert == nil || a.RiskDesc == nil || a.Instances == nil {
			return nil, model.Malformed(ev.ReportType, "alert %d needs alert, riskdesc and instances", i)
		}
		desc := fmt.Sprintf("%d-Vulnerability:%s-Total occurrences of this issue:%d", i, *a.Alert, len(*a.Instances))
		findings = append(findings, model.NewFinding(ev, i, ev.FindingID(i), Title, desc, mapSeverity(*a.RiskDesc), now()))
	}
	return findings, nil
}

// mapSeverity keys on the first three letters of descriptors such as
// "High (Medium)". Unrecognized descriptors are treated as the worst case.
func mapSeverity(riskDesc string) int {
	switch {
	case strings.HasPrefix(riskDesc, "Hig"):
		return 70
	case strings.HasPrefix(riskDesc, "Med"):
		return 60
	case strings.HasPrefix(riskDesc, "Low"), strings.HasPrefix(riskDesc, "Inf"):
		return 30
	default:
		return 90
	}
}
