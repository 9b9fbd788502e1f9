package models

import "time"

// RefundResourceDB is the persisted form of a refund record. A record is
// created exactly once, mutated in place by later provider notifications and
// never deleted.
type RefundResourceDB struct {
	ID                      string    `bson:"_id"`
	Provider                string    `bson:"provider"`
	ProviderRefundID        string    `bson:"provider_refund_id,omitempty"`
	ProviderPaymentIntentID string    `bson:"provider_payment_intent_id,omitempty"`
	ProviderChargeID        string    `bson:"provider_charge_id,omitempty"`
	Status                  string    `bson:"status"`
	Amount                  int64     `bson:"amount"`
	Currency                string    `bson:"currency"`
	Reason                  string    `bson:"reason,omitempty"`
	Notes                   string    `bson:"notes,omitempty"`
	InitiatedBy             string    `bson:"initiated_by"`
	Source                  string    `bson:"source"`
	CreatedAt               time.Time `bson:"created_at"`
	UpdatedAt               time.Time `bson:"updated_at"`
}
