package forms

// Allowed values for the freelancer application form.
var (
	FreelancerSkills = []string{"Frontend", "Backend", "UI/UX", "Mobile", "DevOps"}
	ExperienceRanges = []string{"0-2 jaar", "2-5 jaar", "5-10 jaar", "10+ jaar"}
	AvailabilityHours = []string{"0-8 uur", "8-16 uur", "16-24 uur", "24-32 uur", "32-40 uur"}
	HourlyRates       = []string{"€30-€50 per uur", "€50-€75 per uur", "€75-€100 per uur", "> €100 per uur"}
)

// FreelancerSchema returns the three-step freelancer application wizard.
func FreelancerSchema() *Schema {
	return &Schema{
		Kind: KindFreelancer,
		Steps: []Step{
			{
				Index: 0,
				Label: "Persoonlijk",
				Fields: []Field{
					{Name: "name", Label: "Naam", Type: FieldText, Required: true},
					{Name: "email", Label: "Email", Type: FieldText, Required: true, Email: true},
				},
			},
			{
				Index: 1,
				Label: "Profiel",
				Fields: []Field{
					{Name: "skills", Label: "Skills", Type: FieldTags, Required: true, Options: FreelancerSkills},
					{Name: "experience", Label: "Ervaring", Type: FieldChoice, Required: true, Options: ExperienceRanges},
					{Name: "availability", Label: "Beschikbaarheid", Type: FieldChoice, Required: true, Options: AvailabilityHours},
					{Name: "rate", Label: "Uurtarief", Type: FieldChoice, Required: true, Options: HourlyRates},
				},
			},
			{
				Index: 2,
				Label: "Portfolio",
				Fields: []Field{
					{Name: "portfolio", Label: "Portfolio URL", Type: FieldText, URL: true},
				},
			},
		},
	}
}
