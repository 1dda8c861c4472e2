package response

import (
	"hvac_crm/internal/usecase"
)

// Envelope wraps every successful response.
type Envelope struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

func OK(data any, warnings ...string) Envelope {
	return Envelope{Success: true, Data: data, Warnings: warnings}
}

// FromResult renders the stored entity of a mutation.
func FromResult(r usecase.Result) Envelope {
	return Envelope{Success: true, Data: r.Entity, Warnings: r.Warnings}
}
