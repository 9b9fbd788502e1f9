package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/nordlead/refunds.api.nordlead.dk/models"
	"github.com/nordlead/refunds.api.nordlead.dk/utils"
	"golang.org/x/sync/errgroup"
)

const defaultPayoutLimit = 10

// HandleGetBalance returns the provider account balance grouped by currency
func HandleGetBalance(w http.ResponseWriter, req *http.Request) {
	balance, err := financeService.GetBalance(req.Context())
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting balance: [%v]", err))
		m := utils.NewMessageResponse("error getting balance from provider")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		return
	}

	utils.WriteJSONWithStatus(w, req, balance, http.StatusOK)
}

// HandleListPayouts returns the most recent payouts from the provider
func HandleListPayouts(w http.ResponseWriter, req *http.Request) {
	limit := int64(defaultPayoutLimit)
	if l := req.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.ParseInt(l, 10, 64)
		if err != nil || parsed < 1 {
			m := utils.NewMessageResponse("invalid limit")
			utils.WriteJSONWithStatus(w, req, m, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	payouts, err := financeService.ListPayouts(req.Context(), limit)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing payouts: [%v]", err))
		m := utils.NewMessageResponse("error getting payouts from provider")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		return
	}

	utils.WriteJSONWithStatus(w, req, payouts, http.StatusOK)
}

// HandleGetPayoutSchedule returns the payout schedule on the provider account
func HandleGetPayoutSchedule(w http.ResponseWriter, req *http.Request) {
	schedule, err := financeService.GetPayoutSchedule(req.Context())
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payout schedule: [%v]", err))
		m := utils.NewMessageResponse("error getting payout schedule from provider")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		return
	}

	utils.WriteJSONWithStatus(w, req, schedule, http.StatusOK)
}

// HandleGetFinanceSummary combines balance, payouts and payout schedule into
// a single response for the operator console dashboard
func HandleGetFinanceSummary(w http.ResponseWriter, req *http.Request) {
	summary := models.FinanceSummaryResourceRest{}

	eg, ctx := errgroup.WithContext(req.Context())
	eg.Go(func() error {
		balance, err := financeService.GetBalance(ctx)
		summary.Balance = balance
		return err
	})
	eg.Go(func() error {
		payouts, err := financeService.ListPayouts(ctx, defaultPayoutLimit)
		summary.Payouts = payouts
		return err
	})
	eg.Go(func() error {
		schedule, err := financeService.GetPayoutSchedule(ctx)
		summary.PayoutSchedule = schedule
		return err
	})

	if err := eg.Wait(); err != nil {
		log.ErrorR(req, fmt.Errorf("error getting finance summary: [%v]", err))
		m := utils.NewMessageResponse("error getting finance summary from provider")
		utils.WriteJSONWithStatus(w, req, m, http.StatusBadGateway)
		return
	}

	utils.WriteJSONWithStatus(w, req, summary, http.StatusOK)
}
