package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/dao"
	"github.com/nordlead/refunds.api.nordlead.dk/fixtures"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/nordlead/refunds.api.nordlead.dk/service"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/companieshouse/chs.go/avro"
	"github.com/gorilla/mux"
)

func setUpRefundService(mockDao *dao.MockDAO, mockProvider *service.MockPaymentProviderService) {
	cfg, _ := config.Get()
	refundService = &service.RefundService{
		Providers: map[string]service.PaymentProviderService{models.ProviderStripe: mockProvider},
		Resolver:  &service.RefundResolver{DAO: mockDao},
		DAO:       mockDao,
		Config:    *cfg,
	}
}

func TestUnitHandleCreateRefund(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	mockProvider := service.NewMockPaymentProviderService(mockCtrl)
	setUpRefundService(mockDao, mockProvider)

	handleRefundMessage = func(refundID string) error { return nil }
	defer func() { handleRefundMessage = produceRefundMessage }()

	Convey("Request body empty", t, func() {
		req := httptest.NewRequest("POST", "/refunds", nil)
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invalid refund request", t, func() {
		body, _ := json.Marshal(models.CreateRefundRequest{Amount: "10.50"})
		req := httptest.NewRequest("POST", "/refunds", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unknown outcome from the provider returns bad gateway", t, func() {
		mockProvider.EXPECT().
			CreateRefund(gomock.Any(), gomock.Any()).
			Return(nil, service.UnknownOutcome, fmt.Errorf("request timed out"))

		body, _ := json.Marshal(fixtures.GetCreateRefundRequest("10.50"))
		req := httptest.NewRequest("POST", "/refunds", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadGateway)
	})

	Convey("Error saving the refund record returns internal server error", t, func() {
		notification := fixtures.GetRefundNotification("pending", 1050)
		mockProvider.EXPECT().
			CreateRefund(gomock.Any(), gomock.Any()).
			Return(&notification, service.Success, nil)
		mockDao.EXPECT().
			CreateRefundResource(gomock.Any()).
			Return(fmt.Errorf("connection reset"))

		body, _ := json.Marshal(fixtures.GetCreateRefundRequest("10.50"))
		req := httptest.NewRequest("POST", "/refunds", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Successful request", t, func() {
		notification := fixtures.GetRefundNotification("pending", 1050)
		mockProvider.EXPECT().
			CreateRefund(gomock.Any(), gomock.Any()).
			Return(&notification, service.Success, nil)
		mockDao.EXPECT().CreateRefundResource(gomock.Any()).Return(nil)
		mockDao.EXPECT().CreateRefundEvent(gomock.Any()).Return(nil)

		body, _ := json.Marshal(fixtures.GetCreateRefundRequest("10.50"))
		req := httptest.NewRequest("POST", "/refunds", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)

		So(w.Code, ShouldEqual, http.StatusCreated)
		var returned models.RefundResourceRest
		So(json.Unmarshal(w.Body.Bytes(), &returned), ShouldBeNil)
		So(returned.ProviderRefundID, ShouldEqual, notification.ProviderRefundID)
	})

	Convey("Kafka failure after a created refund still returns created", t, func() {
		handleRefundMessage = func(refundID string) error { return fmt.Errorf("broker unavailable") }
		defer func() { handleRefundMessage = func(refundID string) error { return nil } }()

		notification := fixtures.GetRefundNotification("pending", 1050)
		mockProvider.EXPECT().
			CreateRefund(gomock.Any(), gomock.Any()).
			Return(&notification, service.Success, nil)
		mockDao.EXPECT().CreateRefundResource(gomock.Any()).Return(nil)
		mockDao.EXPECT().CreateRefundEvent(gomock.Any()).Return(nil)

		body, _ := json.Marshal(fixtures.GetCreateRefundRequest("10.50"))
		req := httptest.NewRequest("POST", "/refunds", strings.NewReader(string(body)))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusCreated)
	})
}

func TestUnitHandleGetRefund(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	mockProvider := service.NewMockPaymentProviderService(mockCtrl)
	setUpRefundService(mockDao, mockProvider)

	Convey("Invalid refund id", t, func() {
		req := httptest.NewRequest("GET", "/refunds/not-a-uuid", nil)
		req = mux.SetURLVars(req, map[string]string{"refund_id": "not-a-uuid"})
		w := httptest.NewRecorder()
		HandleGetRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Refund not found", t, func() {
		mockDao.EXPECT().GetRefundResource(fixtures.RefundID).Return(nil, nil)

		req := httptest.NewRequest("GET", "/refunds/"+fixtures.RefundID, nil)
		req = mux.SetURLVars(req, map[string]string{"refund_id": fixtures.RefundID})
		w := httptest.NewRecorder()
		HandleGetRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Successful request returns the refund with its events", t, func() {
		existing := fixtures.GetRefundResource()
		mockDao.EXPECT().GetRefundResource(fixtures.RefundID).Return(&existing, nil)
		mockDao.EXPECT().GetRefundEvents(fixtures.RefundID).Return([]models.RefundEventResourceDB{fixtures.GetRefundEvent(fixtures.RefundID)}, nil)

		req := httptest.NewRequest("GET", "/refunds/"+fixtures.RefundID, nil)
		req = mux.SetURLVars(req, map[string]string{"refund_id": fixtures.RefundID})
		w := httptest.NewRecorder()
		HandleGetRefund(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		var details models.RefundDetailsResourceRest
		So(json.Unmarshal(w.Body.Bytes(), &details), ShouldBeNil)
		So(details.Refund.ID, ShouldEqual, existing.ID)
		So(len(details.Events), ShouldEqual, 1)
	})
}

func TestUnitHandleListRefunds(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	mockProvider := service.NewMockPaymentProviderService(mockCtrl)
	setUpRefundService(mockDao, mockProvider)

	Convey("Invalid limit", t, func() {
		req := httptest.NewRequest("GET", "/refunds?limit=nope", nil)
		w := httptest.NewRecorder()
		HandleListRefunds(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Limit above the maximum is capped", t, func() {
		mockDao.EXPECT().ListRefundResources(int64(maxListLimit)).Return([]models.RefundResourceDB{}, nil)

		req := httptest.NewRequest("GET", "/refunds?limit=5000", nil)
		w := httptest.NewRecorder()
		HandleListRefunds(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Successful request", t, func() {
		existing := fixtures.GetRefundResource()
		mockDao.EXPECT().ListRefundResources(int64(defaultListLimit)).Return([]models.RefundResourceDB{existing}, nil)

		req := httptest.NewRequest("GET", "/refunds", nil)
		w := httptest.NewRecorder()
		HandleListRefunds(w, req)

		So(w.Code, ShouldEqual, http.StatusOK)
		var list models.RefundListResourceRest
		So(json.Unmarshal(w.Body.Bytes(), &list), ShouldBeNil)
		So(list.TotalCount, ShouldEqual, 1)
	})
}

func TestUnitPrepareKafkaMessage(t *testing.T) {
	Convey("Successful message preparation with prepareKafkaMessage", t, func() {
		refundID := "12345"

		// This is the schema that is used by the producer
		schema := `{
			"type": "record",
			"name": "refund_processed",
			"namespace": "refunds",
			"fields": [
			{
				"name": "refund_id",
				"type": "string"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, pkmError := prepareKafkaMessage(refundID, *producerSchema)
		unmarshalledRefundProcessed := refundProcessed{}
		psError := producerSchema.Unmarshal(message.Value, &unmarshalledRefundProcessed)

		So(pkmError, ShouldEqual, nil)
		So(psError, ShouldEqual, nil)
		So(unmarshalledRefundProcessed.RefundID, ShouldEqual, "12345")
	})

	Convey("Unsuccessful message preparation with prepareKafkaMessage", t, func() {
		refundID := "12345"

		// The field type is wrong so marshalling should error
		schema := `{
			"type": "record",
			"name": "refund_processed",
			"namespace": "refunds",
			"fields": [
			{
				"name": "refund_id",
				"type": "int"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		_, err := prepareKafkaMessage(refundID, *producerSchema)
		So(err, ShouldNotBeEmpty)
	})
}
