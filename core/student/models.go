package student

// Student is a read-only summary owned by the school backend, consumed to
// populate selection controls and label payment rows.
type Student struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
