package model

// ContactSubmission 联系表单留资
type ContactSubmission struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Message     string  `json:"message"`
	SubmittedAt string  `json:"submitted_at"`
}
