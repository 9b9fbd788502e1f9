package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/nordlead/refunds.api.nordlead.dk/config"
	"github.com/nordlead/refunds.api.nordlead.dk/dao"
	"github.com/nordlead/refunds.api.nordlead.dk/interceptors"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/nordlead/refunds.api.nordlead.dk/service"
	"github.com/stripe/stripe-go/v76"
)

var refundService *service.RefundService
var financeService service.PaymentProviderService

// verifyWebhookSignature allows us to mock signature verification for unit tests
var verifyWebhookSignature func(rawBody []byte, signatureHeader string) (*stripe.Event, error)

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(cfg.MongoDBURL, cfg.Database, cfg.RefundsCollection, cfg.RefundEventsCollection)

	// The unique index closes the resolve-then-insert race between
	// concurrent webhook deliveries; refusing to start without it would be
	// running with the race open.
	if err := m.EnsureIndexes(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	stripeService := service.NewStripeService(cfg, http.DefaultClient)

	providers := map[string]service.PaymentProviderService{
		models.ProviderStripe: stripeService,
	}
	if cfg.PaypalClientID != "" {
		paypalClient, err := service.GetPayPalClient(cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		providers[models.ProviderPaypal] = &service.PayPalService{Client: paypalClient, Config: cfg}
	}

	refundService = &service.RefundService{
		Providers: providers,
		Resolver:  &service.RefundResolver{DAO: m},
		DAO:       m,
		Config:    cfg,
	}
	financeService = stripeService
	verifyWebhookSignature = stripeService.VerifyWebhookSignature

	oa := &interceptors.OperatorAuthenticationInterceptor{Config: cfg}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Operator endpoints need the operator key interceptor
	refundsRouter := mainRouter.PathPrefix("/refunds").Subrouter()
	refundsRouter.HandleFunc("", HandleCreateRefund).Methods("POST").Name("create-refund")
	refundsRouter.HandleFunc("", HandleListRefunds).Methods("GET").Name("list-refunds")
	refundsRouter.HandleFunc("/{refund_id}", HandleGetRefund).Methods("GET").Name("get-refund")

	financeRouter := mainRouter.PathPrefix("/finance").Subrouter()
	financeRouter.HandleFunc("/balance", HandleGetBalance).Methods("GET").Name("get-balance")
	financeRouter.HandleFunc("/payouts", HandleListPayouts).Methods("GET").Name("list-payouts")
	financeRouter.HandleFunc("/payout-schedule", HandleGetPayoutSchedule).Methods("GET").Name("get-payout-schedule")
	financeRouter.HandleFunc("/summary", HandleGetFinanceSummary).Methods("GET").Name("get-finance-summary")

	// Webhook ingress is authenticated by signature verification, not by the
	// operator key, so it needs its own subrouter
	webhookRouter := mainRouter.PathPrefix("/webhooks").Subrouter()
	webhookRouter.HandleFunc("/stripe", HandleStripeWebhook).Methods("POST").Name("handle-stripe-webhook")

	// Set middleware for subrouters
	refundsRouter.Use(log.Handler, oa.OperatorAuthenticationIntercept)
	financeRouter.Use(log.Handler, oa.OperatorAuthenticationIntercept)
	webhookRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
