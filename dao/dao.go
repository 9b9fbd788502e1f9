package dao

import "github.com/nordlead/refunds.api.nordlead.dk/models"

// DAO is an interface for accessing refund data from a backend store
type DAO interface {
	CreateRefundResource(refund *models.RefundResourceDB) error
	GetRefundResource(id string) (*models.RefundResourceDB, error)
	GetRefundResourceByProviderRefundID(provider, providerRefundID string) (*models.RefundResourceDB, error)
	GetLatestRefundResourceByCorrelationID(provider, paymentIntentID, chargeID string) (*models.RefundResourceDB, error)
	PatchRefundResource(id string, update *models.RefundResourceDB) error
	ListRefundResources(limit int64) ([]models.RefundResourceDB, error)
	CreateRefundEvent(event *models.RefundEventResourceDB) error
	GetRefundEvents(refundID string) ([]models.RefundEventResourceDB, error)
}
