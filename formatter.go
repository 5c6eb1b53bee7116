package sitelens

import (
	"fmt"
	"strings"
)

// FormatProfile formats a profile as aligned "field: value" lines for display.
// Empty fields are shown as "-"; raw content is omitted.
func FormatProfile(p *Profile) string {
	if p == nil {
		return ""
	}

	email := ""
	if p.Email != nil {
		email = *p.Email
	}

	fields := [][2]string{
		{"URL", p.URL},
		{"Name", p.Name},
		{"Title", p.Title},
		{"Description", p.Description},
		{"About", p.About},
		{"Source", p.SourceType},
		{"Industry", p.Industry},
		{"Page type", p.PageContentType},
		{"Contact", p.Contact},
		{"Email", email},
	}
	if p.Language != "" {
		fields = append(fields, [2]string{"Language", p.Language})
	}

	var sb strings.Builder
	for _, f := range fields {
		value := f[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&sb, "%-12s %s\n", f[0]+":", value)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// FormatPromptLogs formats stored answers for display, separated by blank lines.
func FormatPromptLogs(logs []*PromptLog) string {
	if len(logs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(logs))
	for _, l := range logs {
		header := fmt.Sprintf("## %s (%d in / %d out tokens)", l.URL, l.InputTokens, l.OutputTokens)
		parts = append(parts, header+"\nQ: "+l.Prompt+"\nA: "+l.Response)
	}

	return strings.Join(parts, "\n\n")
}
