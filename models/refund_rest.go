package models

import "time"

// CreateRefundRequest is the operator-facing request to initiate a refund.
// Exactly one of PaymentIntentID and ChargeID must be supplied. Amount is a
// decimal amount in major units; an empty amount refunds the full remaining
// amount of the payment.
type CreateRefundRequest struct {
	Provider        string `json:"provider" validate:"omitempty,oneof=stripe paypal"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required_without=ChargeID,excluded_with=ChargeID"`
	ChargeID        string `json:"charge_id"`
	Amount          string `json:"amount"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

type RefundResourceRest struct {
	ID                      string    `json:"id"`
	Provider                string    `json:"provider"`
	ProviderRefundID        string    `json:"provider_refund_id,omitempty"`
	ProviderPaymentIntentID string    `json:"provider_payment_intent_id,omitempty"`
	ProviderChargeID        string    `json:"provider_charge_id,omitempty"`
	Status                  string    `json:"status"`
	Amount                  int64     `json:"amount"`
	Currency                string    `json:"currency"`
	Reason                  string    `json:"reason,omitempty"`
	Notes                   string    `json:"notes,omitempty"`
	InitiatedBy             string    `json:"initiated_by"`
	Source                  string    `json:"source"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type RefundEventResourceRest struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// RefundDetailsResourceRest is a refund record together with its full event
// log, oldest event first.
type RefundDetailsResourceRest struct {
	Refund RefundResourceRest        `json:"refund"`
	Events []RefundEventResourceRest `json:"events"`
}

type RefundListResourceRest struct {
	Items      []RefundResourceRest `json:"items"`
	TotalCount int                  `json:"total_count"`
}
