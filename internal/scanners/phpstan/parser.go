package phpstan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"forgescan/report-importer/internal/model"
)

const Title = "PHPStan StaticCode Analysis"

// flag decodes PHPStan's ignorable marker, which older exporters emit as a string.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flag(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("ignorable: %s is neither bool nor string", b)
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("ignorable: %w", err)
	}
	*f = flag(v)
	return nil
}

type message struct {
	Message   *string `json:"message"`
	Line      *int    `json:"line"`
	Ignorable *flag   `json:"ignorable"`
}

type file struct {
	Errors   int       `json:"errors"`
	Messages []message `json:"messages"`
}

type report struct {
	Totals *struct {
		Errors     int `json:"errors"`
		FileErrors int `json:"file_errors"`
	} `json:"totals"`
	Files json.RawMessage `json:"files"`
}

// files decodes the per-file map. PHP encodes an empty map as [].
func (r report) files() (map[string]file, error) {
	raw := bytes.TrimSpace(r.Files)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if bytes.Equal(raw, []byte("[]")) {
		return map[string]file{}, nil
	}
	var out map[string]file
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Parse walks files in name order. Each file contributes one finding per
// counted error, every one of them built from the file's first message.
func Parse(ev model.ReportEvent, now func() time.Time) ([]model.Finding, error) {
	var parsed report
	if err := json.Unmarshal(ev.Report, &parsed); err != nil {
		return nil, model.Malformed(ev.ReportType, "invalid json: %v", err)
	}
	if parsed.Totals == nil {
		return nil, model.Malformed(ev.ReportType, `missing "totals"`)
	}
	files, err := parsed.files()
	if err != nil {
		return nil, model.Malformed(ev.ReportType, "invalid files: %v", err)
	}
	if files == nil && parsed.Totals.FileErrors > 0 {
		return nil, model.Malformed(ev.ReportType, `missing "files"`)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	findings := []model.Finding{}
	seq := 0
	for _, name := range names {
		f := files[name]
		if f.Errors <= 0 {
			continue
		}
		if len(f.Messages) == 0 {
			return nil, model.Malformed(ev.ReportType, "file %s reports %d errors but no messages", name, f.Errors)
		}
		// The first message is repeated for every counted error, matching
		// findings already imported by earlier runs.
		m := f.Messages[0]
		if m.Message == nil || m.Line == nil || m.Ignorable == nil {
			return nil, model.Malformed(ev.ReportType, "file %s: message needs message, line and ignorable", name)
		}
		for n := 0; n < f.Errors; n++ {
			desc := fmt.Sprintf("Message: %s, file: %s, line: %d", *m.Message, name, *m.Line)
			findings = append(findings, model.NewFinding(ev, seq, ev.FindingID(seq), Title, desc, mapSeverity(bool(*m.Ignorable)), now()))
			seq++
		}
	}
	return findings, nil
}

func mapSeverity(ignorable bool) int {
	if ignorable {
		return 30
	}
	return 60
}
