package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/mappers"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeService handles the specific functionality of integrating Stripe into
// the refund ledger
type StripeService struct {
	api    *client.API
	Config config.Config
}

// NewStripeService returns a StripeService authenticated with the configured
// secret key. The HTTP client is injectable so tests can intercept provider
// traffic.
func NewStripeService(cfg config.Config, httpClient *http.Client) *StripeService {
	backends := stripe.NewBackends(httpClient)
	return &StripeService{
		api:    client.New(cfg.StripeSecretKey, backends),
		Config: cfg,
	}
}

func (s *StripeService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.Config.ProviderTimeoutSeconds) * time.Second
	return context.WithTimeout(ctx, timeout)
}

// CreateRefund initiates a refund in Stripe. The call is bounded by the
// configured provider timeout; a timed-out or ambiguous outcome is reported
// as UnknownOutcome because the refund may exist in Stripe even though no
// confirmation arrived, and the call must not be repeated until an operator
// has checked.
func (s *StripeService) CreateRefund(ctx context.Context, refundRequest *models.CreateRefundProviderRequest) (*models.RefundNotification, ResponseType, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	params := &stripe.RefundParams{Params: stripe.Params{Context: ctx}}
	if refundRequest.PaymentIntentID != "" {
		params.PaymentIntent = stripe.String(refundRequest.PaymentIntentID)
	}
	if refundRequest.ChargeID != "" {
		params.Charge = stripe.String(refundRequest.ChargeID)
	}
	if refundRequest.Amount > 0 {
		params.Amount = stripe.Int64(refundRequest.Amount)
	}
	if refundRequest.Reason != "" {
		params.Reason = stripe.String(refundRequest.Reason)
	}

	refund, err := s.api.Refunds.New(params)
	if err != nil {
		responseType := classifyStripeError(err)
		if responseType == UnknownOutcome {
			return nil, responseType, fmt.Errorf("refund outcome unknown, check stripe before retrying: [%v]", err)
		}
		return nil, responseType, fmt.Errorf("error creating refund in stripe: [%v]", err)
	}

	notification := mappers.MapStripeRefund(refund)
	return &notification, Success, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header against the raw
// request body and returns the verified event. Nothing may be parsed or
// persisted from a body that fails this check.
func (s *StripeService) VerifyWebhookSignature(rawBody []byte, signatureHeader string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(rawBody, signatureHeader, s.Config.StripeWebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: [%v]", err)
	}
	return &event, nil
}

// GetBalance retrieves the Stripe account balance summed by currency.
func (s *StripeService) GetBalance(ctx context.Context) (*models.BalanceResourceRest, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	balance, err := s.api.Balance.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return nil, fmt.Errorf("error getting balance from stripe: [%v]", err)
	}

	return &models.BalanceResourceRest{
		Available: sumAmountsByCurrency(balance.Available),
		Pending:   sumAmountsByCurrency(balance.Pending),
		Instant:   sumAmountsByCurrency(balance.InstantAvailable),
	}, nil
}

// ListPayouts retrieves recent payouts from Stripe, newest first.
func (s *StripeService) ListPayouts(ctx context.Context, limit int64) (*models.PayoutListResourceRest, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	listParams := &stripe.PayoutListParams{}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(limit)

	payouts := &models.PayoutListResourceRest{Items: []models.PayoutResourceRest{}}

	iter := s.api.Payouts.List(listParams)
	for iter.Next() {
		payout := iter.Payout()
		payouts.Items = append(payouts.Items, models.PayoutResourceRest{
			PayoutID:    payout.ID,
			Amount:      payout.Amount,
			Currency:    strings.ToLower(string(payout.Currency)),
			Status:      string(payout.Status),
			ArrivalDate: payout.ArrivalDate,
			Created:     payout.Created,
			Method:      string(payout.Method),
			Description: payout.Description,
		})
		payouts.TotalAmount += payout.Amount
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error listing payouts from stripe: [%v]", err)
	}

	payouts.TotalCount = len(payouts.Items)
	if len(payouts.Items) > 0 {
		payouts.Currency = payouts.Items[0].Currency
	}

	return payouts, nil
}

// GetPayoutSchedule retrieves the payout schedule of the Stripe account.
func (s *StripeService) GetPayoutSchedule(_ context.Context) (*models.PayoutScheduleResourceRest, error) {
	// the account client does not take params, so the provider timeout on the
	// injected HTTP client is the only bound here
	account, err := s.api.Accounts.Get()
	if err != nil {
		return nil, fmt.Errorf("error getting account from stripe: [%v]", err)
	}

	schedule := &models.PayoutScheduleResourceRest{}
	if account.Settings != nil && account.Settings.Payouts != nil && account.Settings.Payouts.Schedule != nil {
		payoutSchedule := account.Settings.Payouts.Schedule
		schedule.Interval = string(payoutSchedule.Interval)
		schedule.DelayDays = payoutSchedule.DelayDays
		schedule.MonthlyAnchor = payoutSchedule.MonthlyAnchor
		schedule.WeeklyAnchor = string(payoutSchedule.WeeklyAnchor)
	}

	return schedule, nil
}

func sumAmountsByCurrency(amounts []*stripe.Amount) map[string]int64 {
	sums := map[string]int64{}
	for _, amount := range amounts {
		if amount == nil {
			continue
		}
		currency := strings.ToLower(string(amount.Currency))
		if currency == "" {
			currency = "dkk"
		}
		sums[currency] += amount.Value
	}
	return sums
}

func classifyStripeError(err error) ResponseType {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return UnknownOutcome
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
			// Stripe accepted the request but could not confirm the result
			return UnknownOutcome
		case stripeErr.HTTPStatusCode == http.StatusNotFound:
			return NotFound
		case stripeErr.HTTPStatusCode >= http.StatusBadRequest:
			return InvalidData
		}
	}

	return Error
}
