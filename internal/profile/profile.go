// Package profile holds the questionnaire record and the coercion from
// validated answer text to each field's stored shape.
package profile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Apply stores a validated answer into the field's typed slot: list fields
// split into trimmed items, the age field parses to an integer, everything
// else keeps the trimmed text.
func (p *Profile) Apply(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case "name":
		p.Name = value
	case "age":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing age %q: %w", value, err)
		}
		p.Age = n
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "occupation":
		p.Occupation = value
	case "skills":
		items := strings.Split(value, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		p.Skills = items
	case "education":
		p.Education = value
	case "location":
		p.Location = value
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}
	return nil
}

// Complete stamps the creation time. The stamp is set exactly once; later
// calls are no-ops.
func (p *Profile) Complete(clock Clock) {
	if p.CreatedAt != "" {
		return
	}
	p.CreatedAt = clock.Now().Format(time.RFC3339)
}

// summaryFields is the display order for Summary. created_at and the
// session id are bookkeeping, not answers, and stay out of the summary.
var summaryFields = []struct {
	label string
	value func(p *Profile) string
}{
	{"Name", func(p *Profile) string { return p.Name }},
	{"Age", func(p *Profile) string { return strconv.Itoa(p.Age) }},
	{"Email", func(p *Profile) string { return p.Email }},
	{"Phone", func(p *Profile) string { return p.Phone }},
	{"Occupation", func(p *Profile) string { return p.Occupation }},
	{"Skills", func(p *Profile) string { return strings.Join(p.Skills, ", ") }},
	{"Education", func(p *Profile) string { return p.Education }},
	{"Location", func(p *Profile) string { return p.Location }},
}

// Summary renders the answered fields as "Label: value" lines.
func (p *Profile) Summary() string {
	var b strings.Builder
	for _, f := range summaryFields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value(p))
	}
	return b.String()
}
