package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/dao"
	"github.com/nordlead/refunds.api.nordlead.dk/mappers"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
)

const (
	// InitiatedByOperator marks records created from a console request
	InitiatedByOperator = "operator"
	// InitiatedByWebhook marks records first seen in a provider notification
	InitiatedByWebhook = "gateway/webhook"

	SourceConsole = "console"
	SourceWebhook = "webhook"

	EventTypeCreated         = "created"
	EventTypeOperatorCreated = "operator_created"
	EventTypeWebhookUpdate   = "webhook_update"
	EventTypeError           = "error"

	RefundStatusPending = "pending"
)

// RefundService reconciles the refund store against operator requests and
// provider notifications.
type RefundService struct {
	Providers map[string]PaymentProviderService
	Resolver  *RefundResolver
	DAO       dao.DAO
	Config    config.Config
}

// CreateRefund initiates a refund with the payment provider and records it.
// The provider call is not retried on failure: a second attempt could refund
// the same payment twice. On any provider-side success the returned error
// always carries the provider refund id so a failed persistence step can be
// reconciled manually.
func (service *RefundService) CreateRefund(req *http.Request, createRefundRequest models.CreateRefundRequest) (*models.RefundResourceRest, ResponseType, error) {
	validate := validator.New()
	err := validate.Struct(createRefundRequest)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid refund request: [%v]", err)
	}

	var amount int64
	if createRefundRequest.Amount != "" {
		amount, err = mappers.ConvertMajorToMinorUnits(createRefundRequest.Amount)
		if err != nil {
			return nil, InvalidData, err
		}
	}

	provider := createRefundRequest.Provider
	if provider == "" {
		provider = models.ProviderStripe
	}
	providerService, ok := service.Providers[provider]
	if !ok {
		return nil, InvalidData, fmt.Errorf("provider [%s] is not configured", provider)
	}

	// Notes stay local; they are never part of the provider request
	notification, responseType, err := providerService.CreateRefund(req.Context(), &models.CreateRefundProviderRequest{
		PaymentIntentID: createRefundRequest.PaymentIntentID,
		ChargeID:        createRefundRequest.ChargeID,
		Amount:          amount,
		Currency:        "dkk",
		Reason:          createRefundRequest.Reason,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating refund with provider: [%v]", err), log.Data{"provider": provider, "service_response_type": responseType.String()})
		return nil, responseType, err
	}

	now := time.Now()
	refund := &models.RefundResourceDB{
		ID:                      uuid.NewString(),
		Provider:                notification.Provider,
		ProviderRefundID:        notification.ProviderRefundID,
		ProviderPaymentIntentID: notification.PaymentIntentID,
		ProviderChargeID:        notification.ChargeID,
		Status:                  notification.Status,
		Amount:                  notification.Amount,
		Currency:                notification.Currency,
		Reason:                  notification.Reason,
		Notes:                   createRefundRequest.Notes,
		InitiatedBy:             InitiatedByOperator,
		Source:                  SourceConsole,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	// The provider's echoed identifiers are authoritative; the operator's
	// input only fills gaps the provider left
	if refund.ProviderPaymentIntentID == "" {
		refund.ProviderPaymentIntentID = createRefundRequest.PaymentIntentID
	}
	if refund.ProviderChargeID == "" {
		refund.ProviderChargeID = createRefundRequest.ChargeID
	}
	if refund.Amount == 0 {
		refund.Amount = amount
	}
	if refund.Reason == "" {
		refund.Reason = createRefundRequest.Reason
	}

	logData := log.Data{
		"provider_refund_id": refund.ProviderRefundID,
		"amount":             refund.Amount,
		"currency":           refund.Currency,
		"payment_intent_id":  refund.ProviderPaymentIntentID,
		"charge_id":          refund.ProviderChargeID,
	}

	err = service.DAO.CreateRefundResource(refund)
	if err != nil {
		// The provider refund exists; losing this write silently would lose
		// track of moved money
		log.ErrorR(req, fmt.Errorf("error saving refund record after provider refund was created: [%v]", err), logData)
		return nil, Error, fmt.Errorf("refund [%s] was created with the provider but could not be saved, reconcile manually: [%v]", refund.ProviderRefundID, err)
	}

	err = service.DAO.CreateRefundEvent(&models.RefundEventResourceDB{
		RefundID: refund.ID,
		Type:     EventTypeOperatorCreated,
		Payload: models.OperatorRefundEventPayload{
			ProviderRefundID: refund.ProviderRefundID,
			PaymentIntentID:  refund.ProviderPaymentIntentID,
			ChargeID:         refund.ProviderChargeID,
			Amount:           refund.Amount,
			Currency:         refund.Currency,
			Reason:           createRefundRequest.Reason,
			Notes:            createRefundRequest.Notes,
		},
		CreatedAt: now,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error appending operator_created event: [%v]", err), logData)
		return nil, Error, fmt.Errorf("refund [%s] was saved but its audit event was not, reconcile manually: [%v]", refund.ProviderRefundID, err)
	}

	refundResource := mappers.MapRefundToRest(*refund)
	return &refundResource, Success, nil
}

// ApplyNotification applies one provider-reported refund to the store:
// update the matching record, attach to a correlation-key match, or insert a
// new record. Exactly one audit event is appended for the mutation. Applying
// the same notification twice converges on the same end state.
func (service *RefundService) ApplyNotification(req *http.Request, notification models.RefundNotification, eventPayload interface{}) (*models.RefundResourceDB, ResponseType, error) {
	refund, err := service.Resolver.Resolve(notification)
	if err != nil {
		return nil, Error, err
	}

	if refund != nil {
		return service.applyUpdate(req, refund, notification, eventPayload)
	}

	now := time.Now()
	refund = &models.RefundResourceDB{
		ID:                      uuid.NewString(),
		Provider:                notification.Provider,
		ProviderRefundID:        notification.ProviderRefundID,
		ProviderPaymentIntentID: notification.PaymentIntentID,
		ProviderChargeID:        notification.ChargeID,
		Status:                  notification.Status,
		Amount:                  notification.Amount,
		Currency:                notification.Currency,
		Reason:                  notification.Reason,
		InitiatedBy:             InitiatedByWebhook,
		Source:                  SourceWebhook,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if refund.Status == "" {
		refund.Status = RefundStatusPending
	}
	if refund.Currency == "" {
		refund.Currency = "dkk"
	}

	err = service.DAO.CreateRefundResource(refund)
	if err != nil {
		if dao.IsDuplicateKey(err) {
			// a concurrent delivery of the same refund won the insert;
			// re-resolve and update that record instead
			existing, resolveErr := service.Resolver.Resolve(notification)
			if resolveErr != nil {
				return nil, Error, resolveErr
			}
			if existing == nil {
				return nil, Conflict, fmt.Errorf("refund [%s] conflicted on insert but cannot be re-resolved", notification.ProviderRefundID)
			}
			return service.applyUpdate(req, existing, notification, eventPayload)
		}
		return nil, Error, fmt.Errorf("error saving refund record from notification: [%v]", err)
	}

	err = service.DAO.CreateRefundEvent(&models.RefundEventResourceDB{
		RefundID:  refund.ID,
		Type:      EventTypeCreated,
		Payload:   eventPayload,
		CreatedAt: now,
	})
	if err != nil {
		return nil, Error, fmt.Errorf("error appending created event for refund [%s]: [%v]", refund.ID, err)
	}

	log.InfoR(req, "created refund record from provider notification", log.Data{
		"refund_id":          refund.ID,
		"provider_refund_id": refund.ProviderRefundID,
		"status":             refund.Status,
	})

	return refund, Success, nil
}

// applyUpdate patches a resolved record with the notification and appends a
// webhook_update event. The provider ids are filled in only when previously
// unknown, never overwritten; a zero amount never replaces a known one (the
// store enforces this on the patch).
func (service *RefundService) applyUpdate(req *http.Request, refund *models.RefundResourceDB, notification models.RefundNotification, eventPayload interface{}) (*models.RefundResourceDB, ResponseType, error) {
	update := &models.RefundResourceDB{
		Status:   notification.Status,
		Amount:   notification.Amount,
		Currency: notification.Currency,
	}
	if refund.ProviderRefundID == "" {
		update.ProviderRefundID = notification.ProviderRefundID
	}
	if refund.ProviderPaymentIntentID == "" {
		update.ProviderPaymentIntentID = notification.PaymentIntentID
	}
	if refund.ProviderChargeID == "" {
		update.ProviderChargeID = notification.ChargeID
	}

	err := service.DAO.PatchRefundResource(refund.ID, update)
	if err != nil {
		if dao.IsDuplicateKey(err) && update.ProviderRefundID != "" {
			// another record already carries this provider refund id; it is
			// the canonical one, so land the update there
			canonical, resolveErr := service.DAO.GetRefundResourceByProviderRefundID(notification.Provider, notification.ProviderRefundID)
			if resolveErr != nil {
				return nil, Error, fmt.Errorf("error re-resolving refund after conflict: [%v]", resolveErr)
			}
			if canonical == nil {
				return nil, Conflict, fmt.Errorf("refund [%s] conflicted on update but cannot be re-resolved", notification.ProviderRefundID)
			}
			return service.applyUpdate(req, canonical, notification, eventPayload)
		}
		return nil, Error, fmt.Errorf("error patching refund [%s] from notification: [%v]", refund.ID, err)
	}

	err = service.DAO.CreateRefundEvent(&models.RefundEventResourceDB{
		RefundID:  refund.ID,
		Type:      EventTypeWebhookUpdate,
		Payload:   eventPayload,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, Error, fmt.Errorf("error appending webhook_update event for refund [%s]: [%v]", refund.ID, err)
	}

	// Fold the patch into the in-memory record so callers see current state
	if update.Status != "" {
		refund.Status = update.Status
	}
	if update.Amount > 0 {
		refund.Amount = update.Amount
	}
	if update.Currency != "" {
		refund.Currency = update.Currency
	}
	if update.ProviderRefundID != "" {
		refund.ProviderRefundID = update.ProviderRefundID
	}
	if update.ProviderPaymentIntentID != "" {
		refund.ProviderPaymentIntentID = update.ProviderPaymentIntentID
	}
	if update.ProviderChargeID != "" {
		refund.ProviderChargeID = update.ProviderChargeID
	}
	refund.UpdatedAt = time.Now()

	log.InfoR(req, "applied provider notification to refund record", log.Data{
		"refund_id":          refund.ID,
		"provider_refund_id": refund.ProviderRefundID,
		"status":             refund.Status,
	})

	return refund, Success, nil
}

// RecordProcessingError appends an orphan error event for a verified
// notification that failed internal processing. Failures here are logged and
// swallowed; the webhook response has already been committed to succeed.
func (service *RefundService) RecordProcessingError(req *http.Request, eventPayload interface{}, processingErr error) {
	err := service.DAO.CreateRefundEvent(&models.RefundEventResourceDB{
		Type: EventTypeError,
		Payload: models.ErrorRefundEventPayload{
			Message: processingErr.Error(),
			Event:   eventPayload,
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording orphan error event: [%v]", err))
	}
}

// GetRefund returns a refund record with its full event log.
func (service *RefundService) GetRefund(req *http.Request, id string) (*models.RefundDetailsResourceRest, ResponseType, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, InvalidData, fmt.Errorf("refund id [%s] is not a valid id", id)
	}

	refund, err := service.DAO.GetRefundResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting refund resource: [%v]", err)
	}
	if refund == nil {
		return nil, NotFound, fmt.Errorf("refund [%s] not found", id)
	}

	events, err := service.DAO.GetRefundEvents(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting refund events: [%v]", err)
	}

	details := &models.RefundDetailsResourceRest{
		Refund: mappers.MapRefundToRest(*refund),
		Events: make([]models.RefundEventResourceRest, 0, len(events)),
	}
	for _, event := range events {
		details.Events = append(details.Events, mappers.MapRefundEventToRest(event))
	}

	return details, Success, nil
}

// ListRefunds returns up to limit refund records, newest first.
func (service *RefundService) ListRefunds(req *http.Request, limit int64) (*models.RefundListResourceRest, ResponseType, error) {
	refunds, err := service.DAO.ListRefundResources(limit)
	if err != nil {
		return nil, Error, fmt.Errorf("error listing refund resources: [%v]", err)
	}

	list := &models.RefundListResourceRest{Items: make([]models.RefundResourceRest, 0, len(refunds))}
	for _, refund := range refunds {
		list.Items = append(list.Items, mappers.MapRefundToRest(refund))
	}
	list.TotalCount = len(list.Items)

	return list, Success, nil
}
