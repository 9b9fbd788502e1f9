package fixtures

import (
	"time"

	"github.com/nordlead/refunds.api.nordlead.dk/models"
)

var RefundID = "2f3a9f64-8c1e-4a0f-9d2b-6c7e1b5a0d43"
var ProviderRefundID = "re_1NirD82eZvKYlo2CIvbtLWuY"
var PaymentIntentID = "pi_3NirD82eZvKYlo2C0mBqkLvN"
var ChargeID = "ch_3NirD82eZvKYlo2C0RfLqzXx"

func GetCreateRefundRequest(amount string) models.CreateRefundRequest {
	return models.CreateRefundRequest{
		PaymentIntentID: PaymentIntentID,
		Amount:          amount,
		Reason:          "requested_by_customer",
		Notes:           "lead disputed by buyer",
	}
}

func GetRefundResource() models.RefundResourceDB {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return models.RefundResourceDB{
		ID:                      RefundID,
		Provider:                models.ProviderStripe,
		ProviderRefundID:        ProviderRefundID,
		ProviderPaymentIntentID: PaymentIntentID,
		ProviderChargeID:        ChargeID,
		Status:                  "pending",
		Amount:                  1050,
		Currency:                "dkk",
		Reason:                  "requested_by_customer",
		InitiatedBy:             "operator",
		Source:                  "console",
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func GetRefundNotification(status string, amount int64) models.RefundNotification {
	return models.RefundNotification{
		Provider:         models.ProviderStripe,
		ProviderRefundID: ProviderRefundID,
		PaymentIntentID:  PaymentIntentID,
		ChargeID:         ChargeID,
		Status:           status,
		Amount:           amount,
		Currency:         "dkk",
	}
}

func GetRefundEvent(refundID string) models.RefundEventResourceDB {
	return models.RefundEventResourceDB{
		RefundID:  refundID,
		Type:      "webhook_update",
		Payload:   map[string]interface{}{"id": "evt_1NirD82eZvKYlo2C"},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}
