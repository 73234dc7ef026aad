package models

// AttachmentModel is an uploaded receipt or clinic-note scan belonging to a
// pet. ExtractedText starts as raw OCR output and is replaced with the
// serialized structured extraction once the AI pass has run.
type AttachmentModel struct {
	Base
	PetID         string `json:"pet_id"         gorm:"index"`
	FileName      string `json:"file_name"`
	FileURL       string `json:"file_url"`
	ContentType   string `json:"content_type"`
	ExtractedText string `json:"extracted_text" gorm:"type:longtext"`
}

func (AttachmentModel) TableName() string { return "attachments" }
