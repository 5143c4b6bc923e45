package forms

// RecordKind identifies which lead-capture form a schema describes.
type RecordKind string

const (
	KindQuote      RecordKind = "quote"
	KindFreelancer RecordKind = "freelancer"
)

// FieldType describes how a field's value is stored and validated.
type FieldType int

const (
	FieldText FieldType = iota
	FieldChoice
	FieldFlag
	FieldTags
)

// Field describes a single answer slot in a wizard schema.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Required bool // text/choice: non-empty after trim; tags: at least one element
	Email    bool
	URL      bool // checked only when the value is non-empty
	Options  []string
}

// Step is an ordered group of fields validated together before the wizard
// may advance past it.
type Step struct {
	Index  int
	Label  string
	Fields []Field
}

// Schema is the full field layout of one wizard. Steps partition the fields:
// no field appears in more than one step.
type Schema struct {
	Kind  RecordKind
	Steps []Step
}

// NumSteps returns the number of steps in the schema.
func (s *Schema) NumSteps() int {
	return len(s.Steps)
}

// Field looks up a field definition by name across all steps.
func (s *Schema) Field(name string) (Field, bool) {
	for _, step := range s.Steps {
		for _, f := range step.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// HasOption reports whether value is one of the field's allowed options.
func (f Field) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt == value {
			return true
		}
	}
	return false
}
