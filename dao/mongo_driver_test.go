package dao

import (
	"testing"
	"time"

	"github.com/nordlead/refunds.api.nordlead.dk/models"

	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func setDriverUp() (MongoService, mtest.CommandError, *mtest.Options, models.RefundResourceDB, models.RefundEventResourceDB) {
	client = &mongo.Client{}
	mongoService := MongoService{
		RefundsCollection: "refunds",
		EventsCollection:  "refund_events",
	}

	commandError := mtest.CommandError{
		Code:    1,
		Message: "Message",
		Name:    "Name",
		Labels:  []string{"label1"},
	}

	refundResource := models.RefundResourceDB{
		ID:                      "c94b091b-4e42-4cbb-81a3-b1712d502d39",
		Provider:                "stripe",
		ProviderRefundID:        "re_123",
		ProviderPaymentIntentID: "pi_123",
		ProviderChargeID:        "ch_123",
		Status:                  "pending",
		Amount:                  1050,
		Currency:                "dkk",
		InitiatedBy:             "operator",
		Source:                  "console",
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	refundEvent := models.RefundEventResourceDB{
		RefundID:  refundResource.ID,
		Type:      "webhook_update",
		Payload:   bson.M{"id": "evt_123"},
		CreatedAt: time.Now(),
	}

	opts := mtest.NewOptions().DatabaseName("refunds").ClientType(mtest.Mock)

	return mongoService, commandError, opts, refundResource, refundEvent
}

func refundCursorResponse(refund models.RefundResourceDB) bson.D {
	return bson.D{
		{"_id", refund.ID},
		{"provider", refund.Provider},
		{"provider_refund_id", refund.ProviderRefundID},
		{"provider_payment_intent_id", refund.ProviderPaymentIntentID},
		{"provider_charge_id", refund.ProviderChargeID},
		{"status", refund.Status},
		{"amount", refund.Amount},
		{"currency", refund.Currency},
	}
}

func TestUnitCreateRefundResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("CreateRefundResource runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateRefundResource(&refundResource)

		assert.Nil(t, err)
	})

	mt.Run("CreateRefundResource runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.CreateRefundResource(&refundResource)

		assert.NotNil(t, err)
	})

	mt.Run("CreateRefundResource surfaces duplicate key violations", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		mongoService.db = mt.DB

		err := mongoService.CreateRefundResource(&refundResource)

		assert.NotNil(t, err)
		assert.True(t, IsDuplicateKey(err))
	})
}

func TestUnitGetRefundResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetRefundResource successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "refunds.refunds", mtest.FirstBatch,
			refundCursorResponse(refundResource)))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResource(refundResource.ID)
		assert.Nil(t, err)
		assert.NotNil(t, resource)
		assert.Equal(t, refundResource.ID, resource.ID)
		assert.Equal(t, "re_123", resource.ProviderRefundID)
		assert.Equal(t, int64(1050), resource.Amount)
	})

	mt.Run("GetRefundResource returns nil when refund is missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "refunds.refunds", mtest.FirstBatch))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResource("missing")
		assert.Nil(t, err)
		assert.Nil(t, resource)
	})

	mt.Run("GetRefundResource with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResource(refundResource.ID)

		assert.NotNil(t, err)
		assert.Nil(t, resource)
	})
}

func TestUnitGetRefundResourceByProviderRefundIDDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetRefundResourceByProviderRefundID successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "refunds.refunds", mtest.FirstBatch,
			refundCursorResponse(refundResource)))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResourceByProviderRefundID("stripe", "re_123")
		assert.Nil(t, err)
		assert.NotNil(t, resource)
		assert.Equal(t, refundResource.ID, resource.ID)
	})

	mt.Run("GetRefundResourceByProviderRefundID returns nil when refund is missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "refunds.refunds", mtest.FirstBatch))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResourceByProviderRefundID("stripe", "re_missing")
		assert.Nil(t, err)
		assert.Nil(t, resource)
	})

	mt.Run("GetRefundResourceByProviderRefundID with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		resource, err := mongoService.GetRefundResourceByProviderRefundID("stripe", "re_123")

		assert.NotNil(t, err)
		assert.Nil(t, resource)
	})
}

func TestUnitGetLatestRefundResourceByCorrelationIDDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetLatestRefundResourceByCorrelationID successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "refunds.refunds", mtest.FirstBatch,
			refundCursorResponse(refundResource)))

		mongoService.db = mt.DB

		resource, err := mongoService.GetLatestRefundResourceByCorrelationID("stripe", "pi_123", "")
		assert.Nil(t, err)
		assert.NotNil(t, resource)
		assert.Equal(t, refundResource.ID, resource.ID)
	})

	mt.Run("GetLatestRefundResourceByCorrelationID without correlation keys", func(mt *mtest.T) {
		// No mock response registered; the method must not hit the DB at all
		mongoService.db = mt.DB

		resource, err := mongoService.GetLatestRefundResourceByCorrelationID("stripe", "", "")
		assert.Nil(t, err)
		assert.Nil(t, resource)
	})

	mt.Run("GetLatestRefundResourceByCorrelationID with error findone", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		resource, err := mongoService.GetLatestRefundResourceByCorrelationID("stripe", "", "ch_123")

		assert.NotNil(t, err)
		assert.Nil(t, resource)
	})
}

func TestUnitPatchRefundResourceDriver(t *testing.T) {
	t.Parallel()

	mongoService, _, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("PatchRefundResource runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.PatchRefundResource(refundResource.ID, &refundResource)

		assert.Nil(t, err)
	})

	mt.Run("PatchRefundResource runs with error", func(mt *mtest.T) {
		mongoService.db = mt.DB

		err := mongoService.PatchRefundResource(refundResource.ID, &refundResource)

		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), "no responses remaining")
	})
}

func TestUnitListRefundResourcesDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, refundResource, _ := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("ListRefundResources successfully", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "refunds.refunds", mtest.FirstBatch,
			refundCursorResponse(refundResource))
		killCursors := mtest.CreateCursorResponse(0, "refunds.refunds", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		mongoService.db = mt.DB

		refunds, err := mongoService.ListRefundResources(20)
		assert.Nil(t, err)
		assert.Len(t, refunds, 1)
		assert.Equal(t, refundResource.ID, refunds[0].ID)
	})

	mt.Run("ListRefundResources runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		refunds, err := mongoService.ListRefundResources(20)

		assert.NotNil(t, err)
		assert.Nil(t, refunds)
	})
}

func TestUnitCreateRefundEventDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, _, refundEvent := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("CreateRefundEvent runs successfully", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		err := mongoService.CreateRefundEvent(&refundEvent)

		assert.Nil(t, err)
	})

	mt.Run("CreateRefundEvent sets created_at when missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		mongoService.db = mt.DB

		event := models.RefundEventResourceDB{RefundID: "id", Type: "created"}
		err := mongoService.CreateRefundEvent(&event)

		assert.Nil(t, err)
		assert.False(t, event.CreatedAt.IsZero())
	})

	mt.Run("CreateRefundEvent runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		err := mongoService.CreateRefundEvent(&refundEvent)

		assert.NotNil(t, err)
	})
}

func TestUnitGetRefundEventsDriver(t *testing.T) {
	t.Parallel()

	mongoService, commandError, opts, _, refundEvent := setDriverUp()

	mt := mtest.New(t, opts)
	defer mt.Close()

	mt.Run("GetRefundEvents successfully", func(mt *mtest.T) {
		first := mtest.CreateCursorResponse(1, "refunds.refund_events", mtest.FirstBatch, bson.D{
			{"refund_id", refundEvent.RefundID},
			{"type", refundEvent.Type},
			{"created_at", refundEvent.CreatedAt},
		})
		killCursors := mtest.CreateCursorResponse(0, "refunds.refund_events", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		mongoService.db = mt.DB

		events, err := mongoService.GetRefundEvents(refundEvent.RefundID)
		assert.Nil(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, "webhook_update", events[0].Type)
	})

	mt.Run("GetRefundEvents runs with error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(commandError))

		mongoService.db = mt.DB

		events, err := mongoService.GetRefundEvents(refundEvent.RefundID)

		assert.NotNil(t, err)
		assert.Nil(t, events)
	})
}
