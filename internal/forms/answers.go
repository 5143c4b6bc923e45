package forms

import (
	"fmt"
	"sort"
)

// Answers holds the accumulated field values for one wizard session.
// Unset fields read as their zero value: empty string, false, or no tags.
// Only fields declared in the schema can be written.
type Answers struct {
	schema *Schema
	text   map[string]string
	flags  map[string]bool
	tags   map[string][]string
}

// NewAnswers creates an empty answer set for the given schema.
func NewAnswers(schema *Schema) *Answers {
	return &Answers{
		schema: schema,
		text:   make(map[string]string),
		flags:  make(map[string]bool),
		tags:   make(map[string][]string),
	}
}

// SetText stores a text or choice value.
func (a *Answers) SetText(name, value string) error {
	f, ok := a.schema.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if f.Type != FieldText && f.Type != FieldChoice {
		return fmt.Errorf("field %q does not hold text", name)
	}
	a.text[name] = value
	return nil
}

// SetFlag stores a boolean value.
func (a *Answers) SetFlag(name string, value bool) error {
	f, ok := a.schema.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if f.Type != FieldFlag {
		return fmt.Errorf("field %q is not a flag", name)
	}
	a.flags[name] = value
	return nil
}

// SetTags replaces the tag set of a multi-select field.
func (a *Answers) SetTags(name string, values []string) error {
	f, ok := a.schema.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if f.Type != FieldTags {
		return fmt.Errorf("field %q is not a tag set", name)
	}
	a.tags[name] = append([]string(nil), values...)
	return nil
}

// ToggleTag adds the tag if absent, removes it if present.
func (a *Answers) ToggleTag(name, tag string) error {
	f, ok := a.schema.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if f.Type != FieldTags {
		return fmt.Errorf("field %q is not a tag set", name)
	}
	current := a.tags[name]
	for i, t := range current {
		if t == tag {
			a.tags[name] = append(current[:i:i], current[i+1:]...)
			return nil
		}
	}
	a.tags[name] = append(current, tag)
	return nil
}

// Text returns the stored text/choice value, or "" when unset.
func (a *Answers) Text(name string) string {
	return a.text[name]
}

// Flag returns the stored boolean, or false when unset.
func (a *Answers) Flag(name string) bool {
	return a.flags[name]
}

// Tags returns a copy of the stored tag set.
func (a *Answers) Tags(name string) []string {
	return append([]string(nil), a.tags[name]...)
}

// Reset clears all values back to their defaults.
func (a *Answers) Reset() {
	a.text = make(map[string]string)
	a.flags = make(map[string]bool)
	a.tags = make(map[string][]string)
}

// Equal reports whether two answer sets hold the same values for the same
// schema. Unset values compare equal to explicitly zeroed ones.
func (a *Answers) Equal(b *Answers) bool {
	if a.schema != b.schema {
		return false
	}
	for _, step := range a.schema.Steps {
		for _, f := range step.Fields {
			switch f.Type {
			case FieldText, FieldChoice:
				if a.text[f.Name] != b.text[f.Name] {
					return false
				}
			case FieldFlag:
				if a.flags[f.Name] != b.flags[f.Name] {
					return false
				}
			case FieldTags:
				at, bt := a.Tags(f.Name), b.Tags(f.Name)
				sort.Strings(at)
				sort.Strings(bt)
				if len(at) != len(bt) {
					return false
				}
				for i := range at {
					if at[i] != bt[i] {
						return false
					}
				}
			}
		}
	}
	return true
}

// Payload flattens the answers into a field-name -> value map suitable for
// serialization. Unset optional fields are omitted; tag sets are always
// present so the server side never sees a null list.
func (a *Answers) Payload() map[string]any {
	payload := make(map[string]any)
	for _, step := range a.schema.Steps {
		for _, f := range step.Fields {
			switch f.Type {
			case FieldText, FieldChoice:
				if v := a.text[f.Name]; v != "" || f.Required {
					payload[f.Name] = v
				}
			case FieldFlag:
				payload[f.Name] = a.flags[f.Name]
			case FieldTags:
				tags := a.Tags(f.Name)
				if tags == nil {
					tags = []string{}
				}
				payload[f.Name] = tags
			}
		}
	}
	return payload
}
