package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
)

var paypalClient *paypal.Client

// GetPayPalClient returns an authenticated PayPal client for the configured
// environment.
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if paypalClient != nil {
		return paypalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	paypalClient = c
	return paypalClient, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be
// used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	RefundCapture(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error)
}

// PayPalService handles the specific functionality of integrating PayPal into
// the refund ledger. PayPal refunds operate on captures, so the charge id
// correlation key carries the capture id.
type PayPalService struct {
	Client PayPalSDK
	Config config.Config
}

// CreateRefund refunds a PayPal capture. Not idempotent; never retried
// automatically.
func (pp *PayPalService) CreateRefund(ctx context.Context, refundRequest *models.CreateRefundProviderRequest) (*models.RefundNotification, ResponseType, error) {
	if refundRequest.ChargeID == "" {
		return nil, InvalidData, errors.New("paypal refunds require a capture id in charge_id")
	}

	currency := refundRequest.Currency
	if currency == "" {
		currency = "dkk"
	}

	captureRequest := paypal.RefundCaptureRequest{}
	if refundRequest.Amount > 0 {
		captureRequest.Amount = &paypal.Money{
			Currency: strings.ToUpper(currency),
			Value:    decimal.NewFromInt(refundRequest.Amount).Shift(-2).StringFixed(2),
		}
	}

	timeout := time.Duration(pp.Config.ProviderTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	refund, err := pp.Client.RefundCapture(ctx, refundRequest.ChargeID, captureRequest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, UnknownOutcome, fmt.Errorf("refund outcome unknown, check paypal before retrying: [%v]", err)
		}
		return nil, Error, fmt.Errorf("error refunding capture in paypal: [%v]", err)
	}

	notification := &models.RefundNotification{
		Provider:         models.ProviderPaypal,
		ProviderRefundID: refund.ID,
		ChargeID:         refundRequest.ChargeID,
		Status:           strings.ToLower(refund.Status),
		Amount:           refundRequest.Amount,
		Currency:         currency,
		Reason:           refundRequest.Reason,
	}
	if notification.Status == "" {
		notification.Status = "pending"
	}

	return notification, Success, nil
}

// GetBalance is not available through the PayPal integration.
func (pp *PayPalService) GetBalance(ctx context.Context) (*models.BalanceResourceRest, error) {
	return nil, errors.New("balance is not supported for paypal")
}

// ListPayouts is not available through the PayPal integration.
func (pp *PayPalService) ListPayouts(ctx context.Context, limit int64) (*models.PayoutListResourceRest, error) {
	return nil, errors.New("payouts are not supported for paypal")
}

// GetPayoutSchedule is not available through the PayPal integration.
func (pp *PayPalService) GetPayoutSchedule(ctx context.Context) (*models.PayoutScheduleResourceRest, error) {
	return nil, errors.New("payout schedule is not supported for paypal")
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
