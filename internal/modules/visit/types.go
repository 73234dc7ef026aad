package visit

// Pet describes the animal the visit belongs to.
type Pet struct {
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Age      float64 `json:"age"`
	WeightKg float64 `json:"weight_kg"`
}

// Visit carries the extracted receipt fields for one clinic visit.
type Visit struct {
	ClinicName  string   `json:"clinic_name"`
	VisitDate   string   `json:"visit_date"`
	TotalCost   float64  `json:"total_cost"`
	Medications []string `json:"medications"`
	Procedures  []string `json:"procedures"`
	Notes       string   `json:"notes"`
}

// SummaryRequest requires both objects; pointers distinguish "absent" from
// "present but empty".
type SummaryRequest struct {
	Pet   *Pet   `json:"pet"`
	Visit *Visit `json:"visit"`
}

// Tags classify the visit for the mobile app.
type Tags struct {
	VisitType   string   `json:"visit_type"` // checkup | vaccine | dental | emergency | other
	Medications []string `json:"medications"`
	NextSteps   []string `json:"next_steps"`
}

// SummaryResult is the owner-facing summary the model is instructed to return.
type SummaryResult struct {
	AISummary            string  `json:"ai_summary"`
	AITags               Tags    `json:"ai_tags"`
	SuggestedReminderISO *string `json:"suggested_reminder_iso"`
}

var visitTypes = map[string]struct{}{
	"checkup":   {},
	"vaccine":   {},
	"dental":    {},
	"emergency": {},
	"other":     {},
}
