package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Ihsas01/SR-SHOPPING/config"
	"github.com/Ihsas01/SR-SHOPPING/internal/dto"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/mail"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/message-queue/kafka"
	"github.com/Ihsas01/SR-SHOPPING/internal/infrastructure/metrics"
	"github.com/Ihsas01/SR-SHOPPING/internal/state"
	"github.com/Ihsas01/SR-SHOPPING/pkg/errs"
	"github.com/rs/zerolog/log"
)

const EventOrderHandoff = "order_handoff"

// uriComponentEscaper turns url.QueryEscape output into what a browser's
// encodeURIComponent produces.
var uriComponentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentEscaper.Replace(url.QueryEscape(s))
}

func OrderMessage(customer, phone, product string, quantity int) string {
	return fmt.Sprintf("Hello SR SHOPPING, I would like to order:\n- Customer: %s\n- WhatsApp: %s\n- Product: %s\n- Quantity: %d",
		customer, phone, product, quantity)
}

func WhatsAppURL(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encodeURIComponent(message))
}

type CheckoutServiceImpl struct {
	store     *state.Store
	config    config.Config
	publisher kafka.Publisher
	notifier  mail.Notifier
	metrics   *metrics.CatalogMetrics
}

// CreateNewCheckoutService wires the checkout handoff. notifier and metrics
// may be nil.
func CreateNewCheckoutService(store *state.Store, config config.Config, publisher kafka.Publisher, notifier mail.Notifier, metrics *metrics.CatalogMetrics) CheckoutService {
	return &CheckoutServiceImpl{store: store, config: config, publisher: publisher, notifier: notifier, metrics: metrics}
}

func (s *CheckoutServiceImpl) Checkout(ctx context.Context, payload dto.CheckoutRequest) (resp dto.CheckoutResponse, err error) {
	product, ok := s.store.Snapshot().Product(payload.ProductID)
	if !ok {
		return resp, errs.ErrNotFound
	}
	if !product.InStock() {
		return resp, errs.ErrOutOfStock
	}

	customer := strings.TrimSpace(payload.Customer)
	phone := strings.TrimSpace(payload.Phone)
	quantity, blank, err := parseQuantity(payload.Quantity)
	if blank {
		quantity = 1
	}
	if err != nil || customer == "" || phone == "" || quantity < 1 {
		return resp, errs.ErrInvalidOrder
	}

	resp.Message = OrderMessage(customer, phone, product.Name, quantity)
	resp.URL = WhatsAppURL(s.config.WhatsAppNumber, resp.Message)

	s.publisher.Publish(ctx, EventOrderHandoff, dto.OrderEvent{
		ProductID:   product.ID,
		ProductName: product.Name,
		Customer:    customer,
		Phone:       phone,
		Quantity:    quantity,
	})
	s.metrics.CountEvent(EventOrderHandoff)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, "New order: "+product.Name, resp.Message); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "Checkout").Msg("order notification failed")
		}
	}

	return resp, nil
}
