package forms

import "testing"

func contactSchema() *Schema {
	return &Schema{
		Kind: KindQuote,
		Steps: []Step{
			{
				Index: 0,
				Label: "Contact",
				Fields: []Field{
					{Name: "name", Label: "Naam", Type: FieldText, Required: true},
					{Name: "email", Label: "Email", Type: FieldText, Required: true, Email: true},
				},
			},
			{
				Index: 1,
				Label: "Project",
				Fields: []Field{
					{Name: "budget", Label: "Budget", Type: FieldChoice, Required: true, Options: []string{"laag", "hoog"}},
					{Name: "timeline", Label: "Timeline", Type: FieldText, Required: true},
				},
			},
		},
	}
}

func TestValidateStep_RequiredFields(t *testing.T) {
	schema := contactSchema()

	tests := []struct {
		name    string
		values  map[string]string
		missing int
		format  int
	}{
		{"all empty", map[string]string{}, 2, 0},
		{"whitespace only", map[string]string{"name": "   ", "email": "\t"}, 2, 0},
		{"name set", map[string]string{"name": "Acme"}, 1, 0},
		{"bad email", map[string]string{"name": "Acme", "email": "bad-email"}, 0, 1},
		{"valid", map[string]string{"name": "Acme", "email": "info@acme.nl"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnswers(schema)
			for k, v := range tt.values {
				if err := a.SetText(k, v); err != nil {
					t.Fatalf("SetText(%q): %v", k, err)
				}
			}
			result := ValidateStep(schema.Steps[0], a)
			if len(result.MissingFields) != tt.missing {
				t.Errorf("missing = %v, want %d entries", result.MissingFields, tt.missing)
			}
			if len(result.FormatErrors) != tt.format {
				t.Errorf("format = %v, want %d entries", result.FormatErrors, tt.format)
			}
			if result.Ok() != (tt.missing == 0 && tt.format == 0) {
				t.Errorf("Ok() = %v inconsistent with field errors", result.Ok())
			}
		})
	}
}

func TestValidateStep_EmailFormats(t *testing.T) {
	schema := contactSchema()

	tests := []struct {
		email string
		want  bool
	}{
		{"info@acme.nl", true},
		{"jan.de.vries+werk@sub.bedrijf.co.uk", true},
		{"bad-email", false},
		{"missing@tld", false},
		{"spaces in@acme.nl", false},
		{"@acme.nl", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			a := NewAnswers(schema)
			a.SetText("name", "Acme")
			a.SetText("email", tt.email)
			if got := ValidateStep(schema.Steps[0], a).Ok(); got != tt.want {
				t.Errorf("ValidateStep with email %q: ok = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateStep_URLOnlyWhenSet(t *testing.T) {
	schema := &Schema{
		Kind: KindFreelancer,
		Steps: []Step{{
			Index:  0,
			Label:  "Portfolio",
			Fields: []Field{{Name: "portfolio", Label: "Portfolio", Type: FieldText, URL: true}},
		}},
	}

	tests := []struct {
		url  string
		want bool
	}{
		{"", true}, // optional, empty passes
		{"https://portfolio.example", true},
		{"http://portfolio.example", true},
		{"portfolio.example", false},
		{"ftp://portfolio.example", false},
	}

	for _, tt := range tests {
		a := NewAnswers(schema)
		a.SetText("portfolio", tt.url)
		if got := ValidateStep(schema.Steps[0], a).Ok(); got != tt.want {
			t.Errorf("portfolio %q: ok = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestValidateStep_ChoiceMembership(t *testing.T) {
	schema := contactSchema()
	a := NewAnswers(schema)
	a.SetText("budget", "gigantisch")
	a.SetText("timeline", "snel")

	result := ValidateStep(schema.Steps[1], a)
	if result.Ok() {
		t.Fatal("expected format error for unknown budget option")
	}
	if len(result.FormatErrors) != 1 || result.FormatErrors[0] != "budget" {
		t.Errorf("format errors = %v, want [budget]", result.FormatErrors)
	}
}

func TestValidateStep_TagsAtLeastOne(t *testing.T) {
	schema := FreelancerSchema()
	profile := schema.Steps[1]

	a := NewAnswers(schema)
	a.SetText("experience", "2-5 jaar")
	a.SetText("availability", "32-40 uur")
	a.SetText("rate", "€50-€75 per uur")

	result := ValidateStep(profile, a)
	if len(result.MissingFields) != 1 || result.MissingFields[0] != "skills" {
		t.Errorf("missing = %v, want [skills]", result.MissingFields)
	}

	a.ToggleTag("skills", "Frontend")
	if result := ValidateStep(profile, a); !result.Ok() {
		t.Errorf("expected ok after selecting a skill, got %+v", result)
	}

	a.SetTags("skills", []string{"Frontend", "Tuinieren"})
	if result := ValidateStep(profile, a); len(result.FormatErrors) != 1 {
		t.Errorf("expected format error for unknown skill, got %+v", result)
	}
}

func TestValidateStep_Deterministic(t *testing.T) {
	schema := QuoteSchema()
	a := NewAnswers(schema)
	a.SetText("websiteType", "webshop")

	first := ValidateStep(schema.Steps[0], a)
	second := ValidateStep(schema.Steps[0], a)
	if first.Ok() != second.Ok() || len(first.MissingFields) != len(second.MissingFields) {
		t.Error("ValidateStep is not deterministic for identical inputs")
	}
}
