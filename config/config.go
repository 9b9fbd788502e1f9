// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr               string   `env:"BIND_ADDR"                        flag:"bind-addr"                        flagDesc:"Bind address"`
	MongoDBURL             string   `env:"MONGODB_URL"                      flag:"mongodb-url"                      flagDesc:"MongoDB server URL"`
	Database               string   `env:"MONGODB_DATABASE"                 flag:"mongodb-database"                 flagDesc:"MongoDB database for refund data"`
	RefundsCollection      string   `env:"MONGODB_REFUNDS_COLLECTION"       flag:"mongodb-refunds-collection"       flagDesc:"MongoDB collection for refund records"`
	RefundEventsCollection string   `env:"MONGODB_REFUND_EVENTS_COLLECTION" flag:"mongodb-refund-events-collection" flagDesc:"MongoDB collection for the refund event log"`
	StripeSecretKey        string   `env:"STRIPE_SECRET_KEY"                flag:"stripe-secret-key"                flagDesc:"Secret key used to authenticate API calls with Stripe"`
	StripeWebhookSecret    string   `env:"STRIPE_WEBHOOK_SECRET"            flag:"stripe-webhook-secret"            flagDesc:"Signing secret for incoming Stripe webhooks"`
	OperatorAPIKey         string   `env:"OPERATOR_API_KEY"                 flag:"operator-api-key"                 flagDesc:"Shared secret expected in the X-Operator-Key header"`
	PaypalEnv              string   `env:"PAYPAL_ENV"                       flag:"paypal-env"                       flagDesc:"PayPal environment, live or test"`
	PaypalClientID         string   `env:"PAYPAL_CLIENT_ID"                 flag:"paypal-client-id"                 flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret           string   `env:"PAYPAL_SECRET"                    flag:"paypal-secret"                    flagDesc:"Secret used to authenticate API calls with PayPal"`
	ProviderTimeoutSeconds int      `env:"PROVIDER_TIMEOUT_SECONDS"         flag:"provider-timeout-seconds"         flagDesc:"Timeout in seconds for outbound payment provider calls"`
	BrokerAddr             []string `env:"KAFKA_BROKER_ADDR"                flag:"broker-addr"                      flagDesc:"Kafka broker address"`
	SchemaRegistryURL      string   `env:"SCHEMA_REGISTRY_URL"              flag:"schema-registry-url"              flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:               "refunds",
		RefundsCollection:      "refunds",
		RefundEventsCollection: "refund_events",
		ProviderTimeoutSeconds: 15,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
