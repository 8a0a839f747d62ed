package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

type MercadoPago struct {
	client payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPago{client: payment.NewClient(cfg)}, nil
}

func (m *MercadoPago) Charge(ctx context.Context, ch Charge) (*Result, error) {
	req := payment.Request{
		TransactionAmount: ch.Amount,
		Description:       ch.Description,
		PaymentMethodID:   "pix",
		Payer: &payment.PayerRequest{
			Email: ch.PayerEmail,
		},
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Result{
		Reference: fmt.Sprintf("%d", res.ID),
		Approved:  res.Status == "approved" || res.Status == "pending",
	}, nil
}
