package email

// Template names an embedded HTML template under templates/.
type Template string

const (
	// TemplatePersonEvent corresponds to templates/person_event.html
	TemplatePersonEvent Template = "person_event"
)

// PreviewData holds sample values per template for local previews.
var PreviewData = map[Template]map[string]string{
	TemplatePersonEvent: {
		"Event":      "created",
		"PersonID":   "1",
		"PersonName": "Alice",
		"OccurredAt": "2024-01-01T00:00:00Z",
	},
}
