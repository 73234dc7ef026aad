package billing

// Event is the typed portion of a provider event we act on. Anything beyond
// Type is carried only inside the raw payload.
type Event struct {
	Type string `json:"type"`
}

// WebhookPayload is the billing provider's event body. Fields not listed
// here are retained verbatim through the raw payload.
type WebhookPayload struct {
	Event          Event  `json:"event"`
	AppUserID      string `json:"app_user_id"`
	ProductID      string `json:"product_id"`
	PurchasedAtMs  int64  `json:"purchased_at_ms"`
	ExpirationAtMs *int64 `json:"expiration_at_ms"`
}

// Provider event types with a dedicated status mapping. Every other type is
// treated as keeping the subscription active (renewals, purchases, billing
// issue recoveries and so on).
const (
	EventCancellation = "CANCELLATION"
	EventExpiration   = "EXPIRATION"
)
