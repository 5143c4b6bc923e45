package forms

// Allowed values for the quote form, mirrored by the server-side checks.
var (
	QuoteWebsiteTypes = []string{"corporate", "webshop", "portfolio", "landing"}
	QuoteFeatures     = []string{"Responsive design", "CMS integratie", "Contact formulieren", "Analytics"}
	QuoteBudgets      = []string{"< €5000", "€5000 - €10000", "€10000 - €20000", "> €20000"}
	QuoteTimelines    = []string{"< 1 maand", "1-2 maanden", "2-3 maanden", "> 3 maanden"}
)

// QuoteSchema returns the four-step quote request wizard.
func QuoteSchema() *Schema {
	return &Schema{
		Kind: KindQuote,
		Steps: []Step{
			{
				Index: 0,
				Label: "Project",
				Fields: []Field{
					{Name: "websiteType", Label: "Type Website", Type: FieldChoice, Required: true, Options: QuoteWebsiteTypes},
					{Name: "features", Label: "Gewenste Features", Type: FieldTags, Options: QuoteFeatures},
				},
			},
			{
				Index: 1,
				Label: "Budget & Planning",
				Fields: []Field{
					{Name: "budget", Label: "Budget", Type: FieldChoice, Required: true, Options: QuoteBudgets},
					{Name: "timeline", Label: "Timeline", Type: FieldChoice, Required: true, Options: QuoteTimelines},
				},
			},
			{
				Index: 2,
				Label: "Contact",
				Fields: []Field{
					{Name: "companyName", Label: "Bedrijfsnaam", Type: FieldText, Required: true},
					{Name: "contactPerson", Label: "Contactpersoon", Type: FieldText, Required: true},
					{Name: "email", Label: "Email", Type: FieldText, Required: true, Email: true},
					{Name: "phone", Label: "Telefoonnummer", Type: FieldText, Required: true},
				},
			},
			{
				Index: 3,
				Label: "Extra",
				Fields: []Field{
					{Name: "additionalInfo", Label: "Aanvullende informatie", Type: FieldText},
				},
			},
		},
	}
}
