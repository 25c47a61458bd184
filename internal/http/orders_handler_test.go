package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	checkoutdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/domain"
	ordersdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/orders/domain"
	sessiondomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

type orderReaderMock struct {
	orders []ordersdomain.Order
}

func (m orderReaderMock) ListByEmail(email string) []ordersdomain.Order {
	out := []ordersdomain.Order{}
	for _, o := range m.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out
}

func (m orderReaderMock) ListAll() []ordersdomain.Order {
	return m.orders
}

func (m orderReaderMock) Stats() ordersdomain.Stats {
	stats := ordersdomain.Stats{TotalOrders: len(m.orders)}
	for _, o := range m.orders {
		stats.Revenue += o.Total
	}
	return stats
}

func TestOrderStatus_Success(t *testing.T) {
	processor := &processorMock{
		status: &checkoutdomain.OrderStatusResponse{
			OrderID:      "ORD-1700000000000-abc123def",
			Status:       checkoutdomain.StatusShipped,
			TrackingCode: "BR000012345",
		},
	}
	handler := NewOrdersHandler(processor, orderReaderMock{}, sessionReaderMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withClientID(httptest.NewRequest("GET", "/ORD-1700000000000-abc123def/status", nil), "client-1")

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("order_id", "ORD-1700000000000-abc123def")
	request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))

	handler.OrderStatus(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response checkoutdomain.OrderStatusResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != checkoutdomain.StatusShipped {
		t.Errorf("Expected status 'shipped', got '%s'", response.Status)
	}
	if response.TrackingCode == "" {
		t.Error("Expected a tracking code on a shipped order")
	}
}

func TestOrderStatus_MissingID(t *testing.T) {
	handler := NewOrdersHandler(&processorMock{}, orderReaderMock{}, sessionReaderMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withClientID(httptest.NewRequest("GET", "//status", nil), "client-1")

	rctx := chi.NewRouteContext()
	request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, rctx))

	handler.OrderStatus(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestListOrders_RequiresSession(t *testing.T) {
	handler := NewOrdersHandler(&processorMock{}, orderReaderMock{}, sessionReaderMock{user: nil}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withClientID(httptest.NewRequest("GET", "/", nil), "client-1")

	handler.ListOrders(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "unauthenticated" {
		t.Errorf("Expected error code 'unauthenticated', got '%s'", response.Code)
	}
}

func TestListOrders_FiltersByEmail(t *testing.T) {
	orders := orderReaderMock{orders: []ordersdomain.Order{
		{ID: "ORD-1-a", CustomerEmail: "teste@teste.com", Total: 100, CreatedAt: time.Now()},
		{ID: "ORD-2-b", CustomerEmail: "outro@example.com", Total: 200, CreatedAt: time.Now()},
		{ID: "ORD-3-c", CustomerEmail: "teste@teste.com", Total: 300, CreatedAt: time.Now()},
	}}
	sessions := sessionReaderMock{
		user: &sessiondomain.User{ID: "1", Email: "teste@teste.com", Name: "Cliente Teste", Role: sessiondomain.RoleCustomer},
	}
	handler := NewOrdersHandler(&processorMock{}, orders, sessions, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withClientID(httptest.NewRequest("GET", "/", nil), "client-1")

	handler.ListOrders(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response []ordersdomain.Order
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 orders for the logged-in customer, got %d", len(response))
	}
	for _, o := range response {
		if o.CustomerEmail != "teste@teste.com" {
			t.Errorf("Expected only the customer's own orders, got '%s'", o.CustomerEmail)
		}
	}
}

func TestAdminStats(t *testing.T) {
	orders := orderReaderMock{orders: []ordersdomain.Order{
		{ID: "ORD-1-a", CustomerEmail: "teste@teste.com", Total: 1299.99},
		{ID: "ORD-2-b", CustomerEmail: "outro@example.com", Total: 599.99},
	}}
	handler := NewAdminHandler(orders, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withClientID(httptest.NewRequest("GET", "/stats", nil), "client-1")

	handler.Stats(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response ordersdomain.Stats
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.TotalOrders != 2 {
		t.Errorf("Expected 2 total orders, got %d", response.TotalOrders)
	}
	want := 1299.99 + 599.99
	if response.Revenue != want {
		t.Errorf("Expected revenue %f, got %f", want, response.Revenue)
	}
}
