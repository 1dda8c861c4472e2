package request

import (
	"errors"
	"strings"
	"time"

	"hvac_crm/internal/domain/form"
)

var ErrUnknownChangeAction = errors.New("unknown change action")

const (
	ActionSet        = "set"
	ActionItemSet    = "item"
	ActionAddItem    = "add_item"
	ActionRemoveItem = "remove_item"
)

// ChangeRequest is one edit applied to a draft held by the client.
//
// action defaults to "set". Item actions address items by index; "item"
// also needs field.
type ChangeRequest struct {
	Draft  form.Record `json:"draft"`
	Action string      `json:"action"`
	Name   string      `json:"name"`
	Value  any         `json:"value"`
	Index  int         `json:"index"`
	Field  string      `json:"field"`
}

func (r ChangeRequest) Apply(d form.Descriptor, now time.Time) (form.Record, error) {
	draft := r.Draft
	if draft == nil {
		draft = form.DefaultsAt(d, now)
	}
	switch strings.TrimSpace(r.Action) {
	case "", ActionSet:
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, ErrUnknownChangeAction
		}
		return d.ApplyChange(draft, name, r.Value), nil
	case ActionItemSet:
		if strings.TrimSpace(r.Field) == "" {
			return nil, ErrUnknownChangeAction
		}
		return d.ApplyItemChange(draft, r.Index, r.Field, r.Value), nil
	case ActionAddItem:
		return d.AddItem(draft, now), nil
	case ActionRemoveItem:
		return d.RemoveItem(draft, r.Index, now), nil
	default:
		return nil, ErrUnknownChangeAction
	}
}
