package service

import (
	"context"

	"github.com/nordlead/refunds.api.nordlead.dk/models"
)

// PaymentProviderService is an Interface for all the requests to external
// payment providers
type PaymentProviderService interface {
	// CreateRefund initiates a refund with the provider. It is not
	// idempotent and must never be retried automatically; an UnknownOutcome
	// response means the refund may exist provider-side and has to be
	// verified manually.
	CreateRefund(ctx context.Context, refundRequest *models.CreateRefundProviderRequest) (*models.RefundNotification, ResponseType, error)

	GetBalance(ctx context.Context) (*models.BalanceResourceRest, error)
	ListPayouts(ctx context.Context, limit int64) (*models.PayoutListResourceRest, error)
	GetPayoutSchedule(ctx context.Context) (*models.PayoutScheduleResourceRest, error)
}
