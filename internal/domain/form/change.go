package form

import "time"

// ApplyChange returns a new draft with name set to value. Every predicate is
// re-evaluated against the result, fields declared HiddenClear that ended up
// hidden are reset, and line-item aggregates are recomputed.
func (d Descriptor) ApplyChange(draft Record, name string, value any) Record {
	next := draft.Clone()
	if f, ok := d.Field(name); ok && f.Type == TypeLineItems {
		value = toLineItems(value)
	}
	next[name] = value
	return d.settle(next)
}

// ApplyItemChange changes one field of one line item.
func (d Descriptor) ApplyItemChange(draft Record, index int, field string, value any) Record {
	next := draft.Clone()
	KeyItems.Set(next, UpdateLineItem(KeyItems.Get(next), index, field, value))
	return d.settle(next)
}

// AddItem appends an empty line item.
func (d Descriptor) AddItem(draft Record, now time.Time) Record {
	next := draft.Clone()
	KeyItems.Set(next, append(KeyItems.Get(next), NewLineItem(now)))
	return d.settle(next)
}

// RemoveItem drops a line item, always keeping one row.
func (d Descriptor) RemoveItem(draft Record, index int, now time.Time) Record {
	next := draft.Clone()
	KeyItems.Set(next, RemoveLineItem(KeyItems.Get(next), index, now))
	return d.settle(next)
}

func (d Descriptor) settle(r Record) Record {
	for _, vf := range d.walk(r) {
		if !vf.Visible && vf.hiddenPolicy() == HiddenClear {
			if _, present := r[vf.Name]; present {
				r[vf.Name] = zeroValue(vf.Type)
			}
		}
	}
	if d.HasLineItems() {
		ApplyTotals(r)
	}
	return r
}

// Payload is the record to submit: display fields are dropped, and so are
// hidden fields unless their policy keeps them.
func (d Descriptor) Payload(draft Record) Record {
	out := Record{}
	known := map[string]struct{}{}
	for _, vf := range d.walk(draft) {
		known[vf.Name] = struct{}{}
		if vf.Type == TypeDisplay {
			continue
		}
		if !vf.Visible && vf.hiddenPolicy() != HiddenKeep {
			continue
		}
		if v, ok := draft[vf.Name]; ok {
			out[vf.Name] = v
		}
	}
	for k, v := range draft {
		if _, ok := known[k]; !ok {
			out[k] = v
		}
	}
	if d.HasLineItems() {
		ApplyTotals(out)
	}
	return out
}

func zeroValue(t FieldType) any {
	switch t {
	case TypeNumber, TypeCurrency:
		return nil
	case TypeLineItems:
		return []LineItem{}
	default:
		return ""
	}
}

// View is the renderer-facing, JSON friendly form of a Descriptor with
// visibility evaluated against a draft.
type View struct {
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle,omitempty"`
	Module      Module        `json:"module"`
	MaxWidth    string        `json:"max_width"`
	SubmitLabel string        `json:"submit_label"`
	Sections    []SectionView `json:"sections"`
}

type SectionView struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Columns     int         `json:"columns"`
	Visible     bool        `json:"visible"`
	Fields      []FieldView `json:"fields"`
}

type FieldView struct {
	Name        string       `json:"name"`
	Label       string       `json:"label"`
	Type        FieldType    `json:"type"`
	Required    bool         `json:"required,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Hint        string       `json:"hint,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Min         *float64     `json:"min,omitempty"`
	Max         *float64     `json:"max,omitempty"`
	Step        *float64     `json:"step,omitempty"`
	Rows        int          `json:"rows,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	Visible     bool         `json:"visible"`
	WhenHidden  HiddenPolicy `json:"when_hidden"`
}

func (d Descriptor) Render(draft Record) View {
	v := View{
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Module:      d.Module,
		MaxWidth:    d.MaxWidth,
		SubmitLabel: d.SubmitLabel,
	}
	for _, s := range d.Sections {
		sectionVisible := s.ShowWhen == nil || s.ShowWhen(draft)
		sv := SectionView{
			Title:       s.Title,
			Description: s.Description,
			Columns:     s.Columns,
			Visible:     sectionVisible,
		}
		for _, f := range s.Fields {
			sv.Fields = append(sv.Fields, FieldView{
				Name:        f.Name,
				Label:       f.Label,
				Type:        f.Type,
				Required:    f.Required,
				Placeholder: f.Placeholder,
				Hint:        f.Hint,
				Options:     f.Options,
				Min:         f.Min,
				Max:         f.Max,
				Step:        f.Step,
				Rows:        f.Rows,
				Currency:    f.Currency,
				Visible:     sectionVisible && (f.ShowWhen == nil || f.ShowWhen(draft)),
				WhenHidden:  f.hiddenPolicy(),
			})
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}
