package model

import (
	"fmt"
	"strings"
)

const DefaultBucketPrefix = "pipeline-artifact-bucket-"

type Identity struct {
	AccountID string
	Region    string
}

type ArchiveObject struct {
	Bucket  string
	Key     string
	Region  string
	Body    []byte
	Encrypt bool
}

func ArchiveBucket(prefix, accountID string) string {
	if prefix == "" {
		prefix = DefaultBucketPrefix
	}
	return prefix + accountID
}

var segmentReplacer = strings.NewReplacer("/", "_", `\`, "_", "..", "_")

// keySegment keeps event values from adding levels to the object key.
func keySegment(s, empty string) string {
	if s = segmentReplacer.Replace(strings.TrimSpace(s)); s == "" {
		return empty
	}
	return s
}

func ArchiveKey(e ReportEvent) string {
	return fmt.Sprintf("reports/%s/%s-%s.json",
		keySegment(string(e.ReportType), "unknown"), keySegment(e.BuildID, ""), keySegment(e.CreatedAt, ""))
}

func NewArchiveObject(prefix string, id Identity, e ReportEvent, body []byte) ArchiveObject {
	return ArchiveObject{
		Bucket:  ArchiveBucket(prefix, id.AccountID),
		Key:     ArchiveKey(e),
		Region:  id.Region,
		Body:    body,
		Encrypt: true,
	}
}
