package mappers

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
)

var amountFormat = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)

// ConvertMajorToMinorUnits converts a human-entered decimal amount in major
// currency units to minor units, accepting both dot and comma decimal
// separators. This conversion happens exactly once, at the operator boundary.
func ConvertMajorToMinorUnits(amount string) (int64, error) {
	if !amountFormat.MatchString(amount) {
		return 0, fmt.Errorf("amount [%s] format incorrect", amount)
	}

	normalised := strings.Replace(amount, ",", ".", 1)
	parsed, err := decimal.NewFromString(normalised)
	if err != nil {
		return 0, fmt.Errorf("error parsing amount [%s]: [%v]", amount, err)
	}

	return parsed.Shift(2).Round(0).IntPart(), nil
}

// MapStripeRefund normalises a Stripe refund object into a refund
// notification. Missing status and currency take the Stripe defaults.
func MapStripeRefund(refund *stripe.Refund) models.RefundNotification {
	notification := models.RefundNotification{
		Provider:         models.ProviderStripe,
		ProviderRefundID: refund.ID,
		Status:           string(refund.Status),
		Amount:           refund.Amount,
		Currency:         strings.ToLower(string(refund.Currency)),
		Reason:           string(refund.Reason),
	}

	if notification.Status == "" {
		notification.Status = "pending"
	}
	if notification.Currency == "" {
		notification.Currency = "dkk"
	}
	if refund.PaymentIntent != nil {
		notification.PaymentIntentID = refund.PaymentIntent.ID
	}
	if refund.Charge != nil {
		notification.ChargeID = refund.Charge.ID
	}

	return notification
}

// MapStripeEvent maps a verified Stripe event onto the recognised
// notification variants. Event types this service does not handle map to the
// unrecognised variant so callers can acknowledge them without mutation.
func MapStripeEvent(event *stripe.Event) (*models.WebhookNotification, error) {
	notification := &models.WebhookNotification{
		EventID:   event.ID,
		EventType: string(event.Type),
	}

	switch event.Type {
	case "refund.updated", "charge.refund.updated":
		var refund stripe.Refund
		if err := json.Unmarshal(event.Data.Raw, &refund); err != nil {
			return nil, fmt.Errorf("error parsing refund from event [%s]: [%v]", event.ID, err)
		}
		notification.Kind = models.RefundUpdateNotification
		notification.Refunds = []models.RefundNotification{MapStripeRefund(&refund)}

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("error parsing charge from event [%s]: [%v]", event.ID, err)
		}
		notification.Kind = models.ChargeRefundedNotification
		if charge.Refunds != nil {
			// each embedded refund is applied independently under its own
			// provider refund id
			for _, refund := range charge.Refunds.Data {
				refundNotification := MapStripeRefund(refund)
				if refundNotification.ChargeID == "" {
					refundNotification.ChargeID = charge.ID
				}
				notification.Refunds = append(notification.Refunds, refundNotification)
			}
		}

	default:
		notification.Kind = models.UnrecognisedNotification
	}

	return notification, nil
}

// MapRefundToRest maps a stored refund record to its REST representation.
func MapRefundToRest(refund models.RefundResourceDB) models.RefundResourceRest {
	return models.RefundResourceRest{
		ID:                      refund.ID,
		Provider:                refund.Provider,
		ProviderRefundID:        refund.ProviderRefundID,
		ProviderPaymentIntentID: refund.ProviderPaymentIntentID,
		ProviderChargeID:        refund.ProviderChargeID,
		Status:                  refund.Status,
		Amount:                  refund.Amount,
		Currency:                refund.Currency,
		Reason:                  refund.Reason,
		Notes:                   refund.Notes,
		InitiatedBy:             refund.InitiatedBy,
		Source:                  refund.Source,
		CreatedAt:               refund.CreatedAt,
		UpdatedAt:               refund.UpdatedAt,
	}
}

// MapRefundEventToRest maps a stored audit event to its REST representation.
func MapRefundEventToRest(event models.RefundEventResourceDB) models.RefundEventResourceRest {
	return models.RefundEventResourceRest{
		Type:      event.Type,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	}
}
