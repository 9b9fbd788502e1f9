package service

import (
	"fmt"

	"github.com/nordlead/refunds.api.nordlead.dk/dao"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
)

// RefundResolver maps an incoming provider notification to the refund record
// it belongs to.
type RefundResolver struct {
	DAO dao.DAO
}

// Resolve returns the record a notification belongs to, or nil when no record
// matches and the caller must create one. The provider's own refund id is the
// authoritative identity; the payment-intent/charge correlation keys only
// bridge the gap for operator refunds persisted before the provider id was
// confirmed. When several records share a correlation key the most recently
// created one wins; ties beyond that are not disambiguated.
func (resolver *RefundResolver) Resolve(notification models.RefundNotification) (*models.RefundResourceDB, error) {
	if notification.ProviderRefundID != "" {
		refund, err := resolver.DAO.GetRefundResourceByProviderRefundID(notification.Provider, notification.ProviderRefundID)
		if err != nil {
			return nil, fmt.Errorf("error getting refund by provider refund id: [%v]", err)
		}
		if refund != nil {
			return refund, nil
		}
	}

	if notification.PaymentIntentID == "" && notification.ChargeID == "" {
		return nil, nil
	}

	refund, err := resolver.DAO.GetLatestRefundResourceByCorrelationID(notification.Provider, notification.PaymentIntentID, notification.ChargeID)
	if err != nil {
		return nil, fmt.Errorf("error getting refund by correlation key: [%v]", err)
	}

	return refund, nil
}
