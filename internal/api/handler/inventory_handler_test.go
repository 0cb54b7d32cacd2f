package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stockdesk/inventory-system/internal/core/domain"
	"github.com/stockdesk/inventory-system/internal/core/ports"
)

type stubInventoryService struct {
	listFn   func(ctx context.Context) ([]domain.Item, error)
	createFn func(ctx context.Context, input ports.ItemInput) (*domain.Item, error)
	updateFn func(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubInventoryService) List(ctx context.Context) ([]domain.Item, error) {
	return s.listFn(ctx)
}

func (s *stubInventoryService) Create(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
	return s.createFn(ctx, input)
}

func (s *stubInventoryService) Update(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubInventoryService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestInventoryHandler_List(t *testing.T) {
	stub := &stubInventoryService{
		listFn: func(ctx context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{ID: 2, Name: "Gadget", SKU: "G-1", Quantity: 5, Price: 9.99},
				{ID: 1, Name: "Widget", SKU: "W-1", Quantity: 10, Price: 2.5},
			}, nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || len(resp.Items) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Items[0].ID != 2 || resp.Items[1].SKU != "W-1" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestInventoryHandler_Create(t *testing.T) {
	stub := &stubInventoryService{
		createFn: func(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
			if input.Name != "Widget" || input.SKU != "W-1" || input.Quantity != 10 || input.Price != 2.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Item{ID: 7, Name: input.Name, SKU: input.SKU, Quantity: input.Quantity, Price: input.Price}, nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(`{"name":"Widget","sku":"W-1","quantity":10,"price":2.50}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Item.ID != 7 || resp.Item.Quantity != 10 || resp.Item.Price != 2.5 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInventoryHandler_Create_MalformedNumbers(t *testing.T) {
	stub := &stubInventoryService{
		createFn: func(ctx context.Context, input ports.ItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory", strings.NewReader(`{"name":"Widget","sku":"W-1","quantity":"lots","price":2.50}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	err := h.Create(e.NewContext(req, rec))

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestInventoryHandler_Update(t *testing.T) {
	stub := &stubInventoryService{
		updateFn: func(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
			if id != 7 || input.Name != "Widget v2" {
				t.Fatalf("unexpected args: %d %+v", id, input)
			}
			return &domain.Item{ID: id, Name: input.Name, SKU: input.SKU}, nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/inventory/7", strings.NewReader(`{"name":"Widget v2","sku":"W-2","quantity":3,"price":4.75}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "Item updated successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInventoryHandler_Update_NonNumericID(t *testing.T) {
	stub := &stubInventoryService{
		updateFn: func(ctx context.Context, id int64, input ports.ItemInput) (*domain.Item, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/inventory/abc", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryHandler_Delete(t *testing.T) {
	var deleted int64
	stub := &stubInventoryService{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/inventory/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != 7 {
		t.Fatalf("expected delete of 7, got %d", deleted)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "Item deleted successfully" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestInventoryHandler_Delete_NotFoundPropagates(t *testing.T) {
	stub := &stubInventoryService{
		deleteFn: func(ctx context.Context, id int64) error {
			return domain.ErrItemNotFound
		},
	}
	h := NewInventoryHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/inventory/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Delete(c); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
