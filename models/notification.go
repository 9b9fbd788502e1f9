package models

// Supported payment provider tags. The provider column is part of the
// uniqueness constraint on provider refund ids.
const (
	ProviderStripe = "stripe"
	ProviderPaypal = "paypal"
)

// WebhookNotificationKind tags the recognised classes of provider webhook
// event. Anything else maps to Unrecognised and is acknowledged without
// mutation.
type WebhookNotificationKind int

const (
	// RefundUpdateNotification carries a single refund object
	RefundUpdateNotification WebhookNotificationKind = iota

	// ChargeRefundedNotification carries a charge with embedded refunds
	ChargeRefundedNotification

	// UnrecognisedNotification is any event type this service does not handle
	UnrecognisedNotification
)

// WebhookNotification is the parsed form of a verified provider webhook
// event. Refunds holds every refund object the event carried; a
// charge.refunded event may carry several for the same charge and each is
// applied independently.
type WebhookNotification struct {
	Kind      WebhookNotificationKind
	EventID   string
	EventType string
	Refunds   []RefundNotification
}

// RefundNotification is one provider-reported refund, normalised from the
// provider's own object. Amount is in minor units; a zero amount means the
// provider did not report one and must never overwrite a known value.
type RefundNotification struct {
	Provider         string
	ProviderRefundID string
	PaymentIntentID  string
	ChargeID         string
	Status           string
	Amount           int64
	Currency         string
	Reason           string
}

// CreateRefundProviderRequest is the outbound create-refund call to a payment
// provider. Amount of zero requests a full refund.
type CreateRefundProviderRequest struct {
	PaymentIntentID string
	ChargeID        string
	Amount          int64
	Currency        string
	Reason          string
}
