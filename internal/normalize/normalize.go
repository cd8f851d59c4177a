// Package normalize rewrites speech-to-text transcripts into the canonical
// form each questionnaire field expects. Typed answers never pass through
// here; the rules exist only to undo how people speak structured values
// ("john at example dot com", "python and go").
package normalize

import (
	"strings"

	"github.com/kalambet/voxform/internal/validate"
)

// Transcript canonicalizes a recognized transcript for the given field
// kind. Kinds without a rule are returned unchanged.
func Transcript(kind validate.Kind, text string) string {
	switch kind {
	case validate.Number:
		return digits(text)
	case validate.Email:
		return email(text)
	case validate.List:
		return list(text)
	}
	return text
}

// digits keeps only the digit characters of the transcript. A spoken
// number with no explicit digits ("twenty five") reduces to the empty
// string and is rejected downstream by number validation.
func digits(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// emailReplacements run in order. More specific phrases come before the
// substrings they contain, so "at rate" is consumed before a bare " at "
// can split it.
var emailReplacements = []struct {
	old, new string
}{
	{"the rate", ""},
	{"at rate", "@"},
	{" at ", "@"},
	{" dot ", "."},
	{"dot", "."},
}

func email(text string) string {
	text = strings.ToLower(text)
	for _, r := range emailReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	// Collapse any whitespace the replacements left behind.
	return strings.Join(strings.Fields(text), "")
}

// list converts spoken separators to commas and re-joins the items in the
// canonical ", " form. The output is a fixed point: normalizing it again
// yields the same string.
func list(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " and ", ", ")
	text = strings.ReplaceAll(text, " comma ", ", ")

	items := strings.Split(text, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return strings.Join(items, ", ")
}
