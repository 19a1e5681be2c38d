package models

// Allowed attachment mime types. Anything else is coerced to PDF during
// normalization.
const (
	MimeTypePDF  = "application/pdf"
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Attachment is a downloadable document linked from a project or
// certification.
type Attachment struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
}

// Link is a labeled external link on a project.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
