package profile

// Profile is the questionnaire record. Field order here is the order the
// persisted JSON document carries its keys in, so it must match the
// question sequence with created_at after the answers.
type Profile struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Occupation string   `json:"occupation"`
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Location   string   `json:"location"`
	CreatedAt  string   `json:"created_at"`
	SessionID  string   `json:"session_id,omitempty"`
}
