package model

import "time"

const (
	MinSeverity = 0
	MaxSeverity = 100
)

type Remediation struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// DefaultRemediation is attached to every finding regardless of scanner.
var DefaultRemediation = Remediation{
	Text: "For directions on PHP AWS Best practices, please click this link",
	URL:  "https://owasp.org/www-project-top-ten/",
}

type Finding struct {
	Index       int         `json:"index"`
	ID          string      `json:"finding_id"`
	GeneratorID string      `json:"generator_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    int         `json:"normalized_severity"`
	CreatedAt   time.Time   `json:"created_at"`
	SourceURL   string      `json:"source_url"`
	Type        string      `json:"type"`
	Remediation Remediation `json:"remediation"`
}

func ValidSeverity(s int) bool {
	return s >= MinSeverity && s <= MaxSeverity
}

// NewFinding fills the fields shared by every finding of one report.
func NewFinding(e ReportEvent, index int, id, title, description string, severity int, now time.Time) Finding {
	return Finding{
		Index:       index,
		ID:          id,
		GeneratorID: e.GeneratorID(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   now.UTC(),
		Type:        e.FindingType(),
		Remediation: DefaultRemediation,
	}
}
