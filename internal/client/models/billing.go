package models

// Bill statuses as sent on the wire.
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Bill is a read-only billing record; amounts are in yuan.
type Bill struct {
	ID            int64   `json:"id"`
	BillNumber    string  `json:"bill_number"`
	FeeType       string  `json:"fee_type"`
	Amount        float64 `json:"amount"`
	LateFee       float64 `json:"late_fee"`
	TotalAmount   float64 `json:"total_amount"`
	BillingPeriod string  `json:"billing_period"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
