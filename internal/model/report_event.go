package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MessageTypeCodeScanReport is the only envelope the importer processes.
const MessageTypeCodeScanReport = "CodeScanReport"

type ReportType string

const (
	ReportDependencyCheck ReportType = "OWASP-Dependency-Check"
	ReportPHPStan         ReportType = "PHPStan"
	ReportSonarQube       ReportType = "SONAR-QUBE"
	ReportZAP             ReportType = "OWASP-Zap"
)

type ReportEvent struct {
	MessageType      string          `json:"messageType"`
	ReportType       ReportType      `json:"reportType"`
	CreatedAt        string          `json:"createdAt"`
	SourceRepository string          `json:"source_repository"`
	SourceBranch     string          `json:"source_branch"`
	SourceCommitID   string          `json:"source_commitid"`
	BuildID          string          `json:"build_id"`
	Report           json.RawMessage `json:"report"`

	// Raw is the event exactly as delivered, archived for audit.
	Raw json.RawMessage `json:"-"`
}

func (e *ReportEvent) UnmarshalJSON(b []byte) error {
	type plain ReportEvent
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = ReportEvent(p)
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Payload returns the delivered bytes, or an encoding of the event when it
// was built in code.
func (e ReportEvent) Payload() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(e)
}

func (e ReportEvent) typeKey() string {
	return strings.ToLower(string(e.ReportType))
}

// GeneratorID identifies the pipeline configuration that produced the findings.
func (e ReportEvent) GeneratorID() string {
	return fmt.Sprintf("%s-%s-%s", e.typeKey(), e.SourceRepository, e.SourceBranch)
}

func (e ReportEvent) FindingType() string {
	return fmt.Sprintf("%s code scan", e.ReportType)
}

// FindingID is unique within one report through the sequence index.
func (e ReportEvent) FindingID(index int) string {
	return fmt.Sprintf("%d-%s-%s", index, e.typeKey(), e.BuildID)
}

// ScopedFindingID also carries repository and branch.
func (e ReportEvent) ScopedFindingID(index int) string {
	return fmt.Sprintf("%d-%s-%s-%s-%s", index, e.typeKey(), e.SourceRepository, e.SourceBranch, e.BuildID)
}
