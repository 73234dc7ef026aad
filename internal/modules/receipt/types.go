package receipt

// ExtractionRequest carries raw OCR text from a vet receipt or clinic note.
// AttachmentID, when set, names the attachment row to persist the result to.
type ExtractionRequest struct {
	ExtractedText string `json:"extracted_text"`
	AttachmentID  string `json:"attachment_id"`
}

// ExtractionResult is the structured form the model is instructed to return.
// Pointer fields stay null when the receipt does not mention them.
type ExtractionResult struct {
	ClinicName   *string  `json:"clinic_name"`
	VisitDate    *string  `json:"visit_date"` // ISO 8601
	TotalCost    *float64 `json:"total_cost"`
	Medications  []string `json:"medications"`
	Procedures   []string `json:"procedures"`
	NotesSummary string   `json:"notes_summary"`
	Confidence   float64  `json:"confidence"`
}

// extractionResponse is the success body: the result plus whether the
// attachment write went through. Persistence is reported independently of
// extraction so a failed write never masks a successful extraction.
type extractionResponse struct {
	ExtractionResult
	Persisted bool `json:"persisted"`
}
