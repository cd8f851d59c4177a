package wizard

import "github.com/kalambet/voxform/internal/validate"

// Question is one entry of the fixed questionnaire.
type Question struct {
	Field  string
	Prompt string
	Kind   validate.Kind
}

// Questions returns the questionnaire in the order it is asked. The order
// also fixes the key order of the persisted record.
func Questions() []Question {
	return []Question{
		{Field: "name", Prompt: "What is your full name?", Kind: validate.Text},
		{Field: "age", Prompt: "What is your age?", Kind: validate.Number},
		{Field: "email", Prompt: "What is your email address?", Kind: validate.Email},
		{Field: "phone", Prompt: "What is your phone number?", Kind: validate.Phone},
		{Field: "occupation", Prompt: "What is your current occupation?", Kind: validate.Text},
		{Field: "skills", Prompt: "What are your skills? (separate with commas)", Kind: validate.List},
		{Field: "education", Prompt: "What is your highest education level?", Kind: validate.Text},
		{Field: "location", Prompt: "Where are you located?", Kind: validate.Text},
	}
}
