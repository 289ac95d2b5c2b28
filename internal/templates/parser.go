// Package templates parses `dotnet new list` output into template
// descriptors and memoizes listings per search term.
package templates

import (
	"strings"

	e "github.com/joaompneves/nx-dotnet/pkg/errors"
)

// Template describes one installed project template.
type Template struct {
	Name       string   `json:"name"`
	ShortNames []string `json:"shortNames"`
	Languages  []string `json:"languages"`
	Tags       []string `json:"tags"`
}

type columnSpan struct {
	start, end int
}

// Parse extracts template descriptors from the toolchain's columnar listing.
// Column boundaries are derived from the dashed separator row, so the parser
// tolerates the varying header spellings across SDK versions.
func Parse(output string) ([]Template, error) {
	lines := strings.Split(output, "\n")

	sep := -1
	for i, line := range lines {
		if isSeparatorLine(line) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, e.New(e.ErrTemplateParse, "No template table found in toolchain output")
	}

	spans := columnSpans(lines[sep])
	if len(spans) < 2 {
		return nil, e.New(e.ErrTemplateParse, "Unrecognized template table layout").
			WithContext("separator", strings.TrimRight(lines[sep], " "))
	}

	var result []Template
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) == "" {
			break
		}
		cols := splitColumns(line, spans)
		t := Template{Name: cols[0]}
		if len(cols) > 1 {
			t.ShortNames = splitList(cols[1], ",")
		}
		if len(cols) > 2 {
			t.Languages = splitList(strings.NewReplacer("[", "", "]", "").Replace(cols[2]), ",")
		}
		if len(cols) > 3 {
			t.Tags = splitList(cols[3], "/")
		}
		if t.Name != "" {
			result = append(result, t)
		}
	}
	return result, nil
}

// isSeparatorLine reports whether a line is the dashed header separator.
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != ' ' {
			return false
		}
	}
	return strings.Contains(trimmed, "-")
}

// columnSpans derives [start,end) byte ranges from the dash runs of the
// separator row. The last column extends to end of line.
func columnSpans(sep string) []columnSpan {
	var spans []columnSpan
	inRun := false
	start := 0
	for i, r := range sep {
		if r == '-' && !inRun {
			inRun = true
			start = i
		} else if r != '-' && inRun {
			inRun = false
			spans = append(spans, columnSpan{start, i})
		}
	}
	if inRun {
		spans = append(spans, columnSpan{start, len(sep)})
	}
	if len(spans) > 0 {
		spans[len(spans)-1].end = -1 // open-ended
	}
	return spans
}

func splitColumns(line string, spans []columnSpan) []string {
	cols := make([]string, len(spans))
	for i, s := range spans {
		if s.start >= len(line) {
			cols[i] = ""
			continue
		}
		end := s.end
		if end < 0 || end > len(line) {
			end = len(line)
		}
		cols[i] = strings.TrimSpace(line[s.start:end])
	}
	return cols
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
