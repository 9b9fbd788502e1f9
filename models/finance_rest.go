package models

// BalanceResourceRest sums the provider balance by currency, in minor units.
type BalanceResourceRest struct {
	Available map[string]int64 `json:"available"`
	Pending   map[string]int64 `json:"pending"`
	Instant   map[string]int64 `json:"instant"`
}

type PayoutResourceRest struct {
	PayoutID    string `json:"payout_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	ArrivalDate int64  `json:"arrival_date"`
	Created     int64  `json:"created"`
	Method      string `json:"method,omitempty"`
	Description string `json:"description,omitempty"`
}

type PayoutListResourceRest struct {
	Items       []PayoutResourceRest `json:"items"`
	TotalAmount int64                `json:"total_amount"`
	Currency    string               `json:"currency,omitempty"`
	TotalCount  int                  `json:"total_count"`
}

type PayoutScheduleResourceRest struct {
	Interval      string `json:"interval"`
	DelayDays     int64  `json:"delay_days"`
	MonthlyAnchor int64  `json:"monthly_anchor,omitempty"`
	WeeklyAnchor  string `json:"weekly_anchor,omitempty"`
}

type FinanceSummaryResourceRest struct {
	Balance        *BalanceResourceRest        `json:"balance"`
	Payouts        *PayoutListResourceRest     `json:"payouts"`
	PayoutSchedule *PayoutScheduleResourceRest `json:"payout_schedule"`
}
