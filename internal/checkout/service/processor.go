package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/domain"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/pkg/latency"
)

// paymentFailureMessage is the fixed user-facing error of the simulated
// gateway, kept verbatim from the storefront copy.
const paymentFailureMessage = "Erro no processamento do pagamento. Tente novamente."

// Processor simulates the AbacatePay checkout integration. It holds no
// state: each call is a single shot that fully succeeds or fully fails.
type Processor struct {
	checkoutDelay latency.Latency
	statusDelay   latency.Latency
	ids           OrderIDs
	status        StatusSource
	now           func() time.Time
}

func NewProcessor(checkoutDelay, statusDelay latency.Latency, ids OrderIDs, status StatusSource) *Processor {
	return &Processor{
		checkoutDelay: checkoutDelay,
		statusDelay:   statusDelay,
		ids:           ids,
		status:        status,
		now:           time.Now,
	}
}

// Process fabricates a payment outcome after the simulated gateway delay.
// The sole failure trigger is a customer email containing "error"; there is
// no retry and no partial state.
func (p *Processor) Process(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if err := p.checkoutDelay.Wait(ctx); err != nil {
		return nil, err
	}

	if strings.Contains(req.Customer.Email, "error") {
		return &domain.CheckoutResponse{
			Success: false,
			Error:   paymentFailureMessage,
		}, nil
	}

	orderID := p.ids.New()
	resp := &domain.CheckoutResponse{
		Success: true,
		OrderID: orderID,
	}

	switch req.PaymentMethod {
	case domain.PaymentCreditCard:
		resp.PaymentURL = fmt.Sprintf("https://payment.abacatepay.com/card/%s", orderID)
	case domain.PaymentPix:
		resp.PixCode = pixCode(orderID, req.Total)
	case domain.PaymentBoleto:
		resp.BoletoURL = fmt.Sprintf("https://payment.abacatepay.com/boleto/%s", orderID)
	}

	log.Printf("checkout processed: order=%s method=%s total=%.2f", orderID, req.PaymentMethod, req.Total)
	return resp, nil
}

// pixCode renders the fixed-grammar BR Code payload. The template is a
// deterministic stand-in, not a valid EMV payload.
func pixCode(orderID string, total float64) string {
	return fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX0136%s520400005303986540%.2f5802BR5925ElegantShop6009SAO PAULO62070503***6304",
		orderID, total,
	)
}

// OrderStatus simulates a status poll. Each call draws a fresh status from
// the source; see StatusSource for why this is not monotonic.
func (p *Processor) OrderStatus(ctx context.Context, orderID string) (*domain.OrderStatusResponse, error) {
	if err := p.statusDelay.Wait(ctx); err != nil {
		return nil, err
	}

	status, trackingCode := p.status.Next()
	return &domain.OrderStatusResponse{
		OrderID:      orderID,
		Status:       status,
		UpdatedAt:    p.now(),
		TrackingCode: trackingCode,
	}, nil
}
