package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/nordlead/refunds.api.nordlead.dk/service"
	"github.com/nordlead/refunds.api.nordlead.dk/utils"
)

const defaultListLimit = 50
const maxListLimit = 200

// handleRefundMessage allows us to mock the producing of kafka messages for unit tests
var handleRefundMessage = produceRefundMessage

// HandleCreateRefund accepts an operator instruction to refund a payment and
// forwards it to the payment provider
func HandleCreateRefund(w http.ResponseWriter, req *http.Request) {
	var createRefundRequest models.CreateRefundRequest
	err := json.NewDecoder(req.Body).Decode(&createRefundRequest)
	if err != nil {
		log.ErrorR(req, err)
		m := utils.NewMessageResponse("failed to read request body")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.CreateRefund(req, createRefundRequest)
	if err != nil {
		log.ErrorR(req, err)
	}

	switch responseType {
	case service.InvalidData:
		m := utils.NewMessageResponse("invalid refund request")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	case service.NotFound:
		m := utils.NewMessageResponse("payment not found with the provider")
		utils.WriteJSONWithStatus(w, req, m, http.StatusNotFound)
		return
	case service.UnknownOutcome:
		m := utils.NewMessageResponse("refund outcome unknown, check the provider before retrying")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		return
	case service.Error:
		w.WriteHeader(http.StatusInternalServerError)
		return
	case service.Success:
		err = handleRefundMessage(refund.ID)
		if err != nil {
			// The refund has been created so the request has succeeded, a
			// failed notification only loses the downstream signal
			log.ErrorR(req, err, log.Data{"refund_id": refund.ID})
		}

		utils.WriteJSONWithStatus(w, req, refund, http.StatusCreated)
		log.InfoR(req, "successfully created refund", log.Data{"refund_id": refund.ID, "status": http.StatusCreated})
		return
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// HandleGetRefund retrieves a refund together with its event history
func HandleGetRefund(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["refund_id"]

	details, responseType, err := refundService.GetRefund(req, id)
	if err != nil {
		log.ErrorR(req, err)
	}

	switch responseType {
	case service.InvalidData:
		m := utils.NewMessageResponse("invalid refund id")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
		return
	case service.NotFound:
		m := utils.NewMessageResponse("refund not found")
		utils.WriteJSONWithStatus(w, req, m, http.StatusNotFound)
		return
	case service.Error:
		w.WriteHeader(http.StatusInternalServerError)
		return
	case service.Success:
		utils.WriteJSONWithStatus(w, req, details, http.StatusOK)
		return
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// HandleListRefunds returns the most recently updated refunds
func HandleListRefunds(w http.ResponseWriter, req *http.Request) {
	limit := int64(defaultListLimit)
	if l := req.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.ParseInt(l, 10, 64)
		if err != nil || parsed < 1 {
			m := utils.NewMessageResponse("invalid limit")
			utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	list, responseType, err := refundService.ListRefunds(req, limit)
	if err != nil {
		log.ErrorR(req, err)
	}

	if responseType != service.Success {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, list, http.StatusOK)
}
