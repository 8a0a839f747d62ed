package payments

import "context"

type Charge struct {
	Amount      float64
	Description string
	PayerEmail  string
}

type Result struct {
	Reference string
	Approved  bool
}

// Charger collects a payment for an appointment's treatment total.
type Charger interface {
	Charge(ctx context.Context, ch Charge) (*Result, error)
}
