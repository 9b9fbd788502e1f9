package dao

import (
	"context"
	"errors"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection so the service must crash here as it cannot
	// continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure here should crash
	// the service for the same reason as above.
	pingContext, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver.
type MongoService struct {
	db                MongoDatabaseInterface
	RefundsCollection string
	EventsCollection  string
}

// NewMongoService returns a MongoService backed by the configured database.
func NewMongoService(mongoDBURL, databaseName, refundsCollection, eventsCollection string) *MongoService {
	return &MongoService{
		db:                getMongoDatabase(mongoDBURL, databaseName),
		RefundsCollection: refundsCollection,
		EventsCollection:  eventsCollection,
	}
}

// EnsureIndexes creates the unique index on (provider, provider_refund_id)
// that closes the resolve-then-insert race between concurrent webhook
// deliveries for the same refund. The partial filter keeps records without a
// provider refund id out of the uniqueness check.
func (m *MongoService) EnsureIndexes() error {
	collection := m.db.Collection(m.RefundsCollection)
	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "provider", Value: 1}, {Key: "provider_refund_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"provider_refund_id": bson.M{"$exists": true}}),
	})
	return err
}

// IsDuplicateKey reports whether an error from a write was a unique index
// violation.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// CreateRefundResource writes a new refund record to the DB
func (m *MongoService) CreateRefundResource(refund *models.RefundResourceDB) error {
	collection := m.db.Collection(m.RefundsCollection)
	_, err := collection.InsertOne(context.Background(), refund)

	return err
}

// GetRefundResource gets a refund record from the DB
// If the refund is not found in the DB, return nil
func (m *MongoService) GetRefundResource(id string) (*models.RefundResourceDB, error) {
	var resource models.RefundResourceDB

	collection := m.db.Collection(m.RefundsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetRefundResourceByProviderRefundID gets the refund record carrying the
// provider's own refund identifier, or nil if none exists.
func (m *MongoService) GetRefundResourceByProviderRefundID(provider, providerRefundID string) (*models.RefundResourceDB, error) {
	var resource models.RefundResourceDB

	collection := m.db.Collection(m.RefundsCollection)
	dbResource := collection.FindOne(context.Background(), bson.M{
		"provider":           provider,
		"provider_refund_id": providerRefundID,
	})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// GetLatestRefundResourceByCorrelationID gets the most recently created
// refund record whose payment intent or charge id matches one of the supplied
// correlation keys. Ties on matching records are resolved by created_at
// descending only.
func (m *MongoService) GetLatestRefundResourceByCorrelationID(provider, paymentIntentID, chargeID string) (*models.RefundResourceDB, error) {
	correlationKeys := []bson.M{}
	if paymentIntentID != "" {
		correlationKeys = append(correlationKeys, bson.M{"provider_payment_intent_id": paymentIntentID})
	}
	if chargeID != "" {
		correlationKeys = append(correlationKeys, bson.M{"provider_charge_id": chargeID})
	}
	if len(correlationKeys) == 0 {
		return nil, nil
	}

	var resource models.RefundResourceDB

	collection := m.db.Collection(m.RefundsCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	dbResource := collection.FindOne(context.Background(), bson.M{
		"provider": provider,
		"$or":      correlationKeys,
	}, opts)

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// PatchRefundResource patches a refund record in the DB. Only non-empty
// fields of the update are written; amount is written only when strictly
// positive so a provider notification without an amount never wipes a known
// one. updated_at is always bumped.
func (m *MongoService) PatchRefundResource(id string, update *models.RefundResourceDB) error {
	collection := m.db.Collection(m.RefundsCollection)

	patchUpdate := make(bson.M)

	// Patch only these fields
	if update.Status != "" {
		patchUpdate["status"] = update.Status
	}
	if update.Amount > 0 {
		patchUpdate["amount"] = update.Amount
	}
	if update.Currency != "" {
		patchUpdate["currency"] = update.Currency
	}
	if update.ProviderRefundID != "" {
		patchUpdate["provider_refund_id"] = update.ProviderRefundID
	}
	if update.ProviderPaymentIntentID != "" {
		patchUpdate["provider_payment_intent_id"] = update.ProviderPaymentIntentID
	}
	if update.ProviderChargeID != "" {
		patchUpdate["provider_charge_id"] = update.ProviderChargeID
	}
	patchUpdate["updated_at"] = time.Now()

	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": patchUpdate})

	return err
}

// ListRefundResources returns up to limit refund records, newest first.
func (m *MongoService) ListRefundResources(limit int64) ([]models.RefundResourceDB, error) {
	refunds := []models.RefundResourceDB{}

	collection := m.db.Collection(m.RefundsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	err = cursor.All(context.Background(), &refunds)
	if err != nil {
		return nil, err
	}

	return refunds, nil
}

// CreateRefundEvent appends an event to the refund audit log. Events are
// never updated or removed once written.
func (m *MongoService) CreateRefundEvent(event *models.RefundEventResourceDB) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	collection := m.db.Collection(m.EventsCollection)
	_, err := collection.InsertOne(context.Background(), event)

	return err
}

// GetRefundEvents returns the event log for a refund, oldest first. Ties on
// created_at are broken by insertion order.
func (m *MongoService) GetRefundEvents(refundID string) ([]models.RefundEventResourceDB, error) {
	events := []models.RefundEventResourceDB{}

	collection := m.db.Collection(m.EventsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := collection.Find(context.Background(), bson.M{"refund_id": refundID}, opts)
	if err != nil {
		return nil, err
	}

	err = cursor.All(context.Background(), &events)
	if err != nil {
		return nil, err
	}

	return events, nil
}
