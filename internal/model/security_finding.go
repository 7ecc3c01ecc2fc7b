package model

// SecurityFinding is the finding as the aggregation service ingests it
// (AWS Security Finding Format).
type SecurityFinding struct {
	SchemaVersion string            `json:"SchemaVersion"`
	ID            string            `json:"Id"`
	ProductArn    string            `json:"ProductArn"`
	GeneratorID   string            `json:"GeneratorId"`
	AwsAccountID  string            `json:"AwsAccountId"`
	Types         []string          `json:"Types"`
	CreatedAt     string            `json:"CreatedAt"`
	UpdatedAt     string            `json:"UpdatedAt"`
	Severity      FindingSeverity   `json:"Severity"`
	Title         string            `json:"Title"`
	Description   string            `json:"Description"`
	Remediation   FindingRemedy     `json:"Remediation"`
	SourceURL     string            `json:"SourceUrl"`
	Resources     []FindingResource `json:"Resources"`
}

type FindingSeverity struct {
	Normalized int `json:"Normalized"`
}

type FindingRemedy struct {
	Recommendation Recommendation `json:"Recommendation"`
}

type Recommendation struct {
	Text string `json:"Text"`
	URL  string `json:"Url"`
}

type FindingResource struct {
	ID        string `json:"Id"`
	Type      string `json:"Type"`
	Partition string `json:"Partition"`
	Region    string `json:"Region"`
}
