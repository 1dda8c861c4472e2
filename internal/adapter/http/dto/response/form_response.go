package response

import "hvac_crm/internal/domain/form"

// FormResponse is what a renderer needs to draw a fresh form.
type FormResponse struct {
	View     form.View   `json:"view"`
	Defaults form.Record `json:"defaults"`
}

// DraftResponse is the state after one change.
type DraftResponse struct {
	Draft form.Record `json:"draft"`
	View  form.View   `json:"view"`
}

type ValidationResponse struct {
	Valid  bool            `json:"valid"`
	Errors form.Violations `json:"errors"`
}

func FromDraft(d form.Descriptor, draft form.Record) DraftResponse {
	return DraftResponse{Draft: draft, View: d.Render(draft)}
}

func FromViolations(v form.Violations) ValidationResponse {
	if v == nil {
		v = form.Violations{}
	}
	return ValidationResponse{Valid: v.Empty(), Errors: v}
}
