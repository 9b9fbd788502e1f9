package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/nordlead/refunds.api.nordlead.dk/mappers"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/nordlead/refunds.api.nordlead.dk/utils"
)

const maxWebhookBodyBytes = 65536

// HandleStripeWebhook ingests refund lifecycle events from stripe. Once the
// signature has been verified the delivery is always acknowledged with a 200,
// failures are recorded against the ledger instead of being surfaced to
// stripe, otherwise the gateway retries events we cannot process.
func HandleStripeWebhook(w http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(w, req.Body, maxWebhookBodyBytes)
	rawBody, err := io.ReadAll(req.Body)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading webhook request body: [%v]", err))
		m := utils.NewMessageResponse("failed to read request body")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	signatureHeader := req.Header.Get("Stripe-Signature")
	if signatureHeader == "" {
		log.ErrorR(req, fmt.Errorf("webhook request missing Stripe-Signature header"))
		m := utils.NewMessageResponse("missing signature")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	event, err := verifyWebhookSignature(rawBody, signatureHeader)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error verifying webhook signature: [%v]", err))
		m := utils.NewMessageResponse("invalid signature")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	notification, err := mappers.MapStripeEvent(event)
	if err != nil {
		// The signature checked out so the delivery must still be
		// acknowledged, record the failure against the ledger instead
		refundService.RecordProcessingError(req, rawEventPayload(rawBody), err)
		writeWebhookAck(w, req)
		return
	}

	if notification.Kind == models.UnrecognisedNotification {
		log.InfoR(req, "ignoring unrecognised webhook event", log.Data{"event_id": notification.EventID, "event_type": notification.EventType})
		writeWebhookAck(w, req)
		return
	}

	eventPayload := rawEventPayload(rawBody)
	for _, refundNotification := range notification.Refunds {
		_, _, err = refundService.ApplyNotification(req, refundNotification, eventPayload)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error applying webhook notification: [%v]", err), log.Data{"event_id": notification.EventID})
			refundService.RecordProcessingError(req, eventPayload, err)
		}
	}

	writeWebhookAck(w, req)
}

// rawEventPayload keeps the delivered event body on the stored event so that
// failed or disputed updates can be replayed by hand
func rawEventPayload(rawBody []byte) interface{} {
	var payload map[string]interface{}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return string(rawBody)
	}
	return payload
}

func writeWebhookAck(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, map[string]bool{"received": true}, http.StatusOK)
}
