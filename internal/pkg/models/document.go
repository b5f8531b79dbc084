package models

// Document is a generated file handed to the operator
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypePNG  = "image/png"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
