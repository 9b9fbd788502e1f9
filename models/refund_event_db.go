package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefundEventResourceDB is one entry in the append-only audit log. RefundID
// is empty only for orphan error events that could not be attributed to a
// record. Events are never edited after insertion.
type RefundEventResourceDB struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RefundID  string             `bson:"refund_id,omitempty"`
	Type      string             `bson:"type"`
	Payload   interface{}        `bson:"payload"`
	CreatedAt time.Time          `bson:"created_at"`
}

// OperatorRefundEventPayload is the structured payload stored with an
// operator_created event. Notes are persisted here only, never sent to the
// payment provider.
type OperatorRefundEventPayload struct {
	ProviderRefundID string `bson:"provider_refund_id" json:"provider_refund_id"`
	PaymentIntentID  string `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	ChargeID         string `bson:"charge_id,omitempty" json:"charge_id,omitempty"`
	Amount           int64  `bson:"amount" json:"amount"`
	Currency         string `bson:"currency" json:"currency"`
	Reason           string `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes            string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// ErrorRefundEventPayload is the payload stored with an error event when
// webhook processing fails after signature verification.
type ErrorRefundEventPayload struct {
	Message string      `bson:"message" json:"message"`
	Event   interface{} `bson:"event,omitempty" json:"event,omitempty"`
}
