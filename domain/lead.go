package domain

import "time"

// LeadInput is a trial / demo request as submitted from the signup form.
type LeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	CompanySize string `json:"companySize"`
	Message     string `json:"message"`
}

type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Role        string    `json:"role"`
	CompanySize string    `json:"companySize,omitempty"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
