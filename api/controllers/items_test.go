package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/catalogbase/catalog-api/internal/items"
	pkgerrors "github.com/catalogbase/catalog-api/pkg/errors"
	"github.com/catalogbase/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type stubItemService struct {
	createFn func(context.Context, items.CreateItemDTO) (*items.ItemDTO, error)
	getFn    func(context.Context, uint) (*items.ItemDTO, error)
	listFn   func(context.Context) ([]items.ItemDTO, error)
	updateFn func(context.Context, uint, items.UpdateItemDTO) (*items.ItemDTO, error)
	deleteFn func(context.Context, uint) (*items.ItemDTO, error)
}

func (s *stubItemService) Create(ctx context.Context, dto items.CreateItemDTO) (*items.ItemDTO, error) {
	return s.createFn(ctx, dto)
}

func (s *stubItemService) Get(ctx context.Context, id uint) (*items.ItemDTO, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) List(ctx context.Context) ([]items.ItemDTO, error) {
	return s.listFn(ctx)
}

func (s *stubItemService) Update(ctx context.Context, id uint, dto items.UpdateItemDTO) (*items.ItemDTO, error) {
	return s.updateFn(ctx, id, dto)
}

func (s *stubItemService) Delete(ctx context.Context, id uint) (*items.ItemDTO, error) {
	return s.deleteFn(ctx, id)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "controllers-test", Output: io.Discard})
}

func itemsRouter(svc ItemService) http.Handler {
	ctrl := NewItemsController(svc, testLogger())
	r := chi.NewRouter()
	r.Post("/items/", ctrl.Create)
	r.Get("/items/", ctrl.List)
	r.Get("/items/{id}", ctrl.Get)
	r.Put("/items/{id}", ctrl.Update)
	r.Delete("/items/{id}", ctrl.Delete)
	return r
}

func sampleItem() *items.ItemDTO {
	return &items.ItemDTO{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10}
}

func TestCreateItemReturns201(t *testing.T) {
	svc := &stubItemService{
		createFn: func(_ context.Context, dto items.CreateItemDTO) (*items.ItemDTO, error) {
			if dto.Name != "Laptop" {
				t.Fatalf("unexpected dto %+v", dto)
			}
			return sampleItem(), nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/items/", strings.NewReader(`{"name":"Laptop","price":999.99,"stock":10}`))
	itemsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got items.ItemDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 1 || got.Name != "Laptop" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestCreateItemRejectsInvalidPayload(t *testing.T) {
	svc := &stubItemService{
		createFn: func(context.Context, items.CreateItemDTO) (*items.ItemDTO, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"price":10}`},
		{"zero price", `{"name":"Laptop","price":0}`},
		{"negative price", `{"name":"Laptop","price":-5}`},
		{"negative stock", `{"name":"Laptop","price":10,"stock":-1}`},
		{"malformed json", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/items/", strings.NewReader(tc.body))
			itemsRouter(svc).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetItemReturnsRecord(t *testing.T) {
	svc := &stubItemService{
		getFn: func(_ context.Context, id uint) (*items.ItemDTO, error) {
			if id != 1 {
				t.Fatalf("unexpected id %d", id)
			}
			return sampleItem(), nil
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/items/1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGetMissingItemIs404(t *testing.T) {
	svc := &stubItemService{
		getFn: func(context.Context, uint) (*items.ItemDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/items/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetItemNonNumericIDIs422(t *testing.T) {
	svc := &stubItemService{
		getFn: func(context.Context, uint) (*items.ItemDTO, error) {
			t.Fatal("service must not be called for a bad id")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/items/abc", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestListItemsReturnsArray(t *testing.T) {
	svc := &stubItemService{
		listFn: func(context.Context) ([]items.ItemDTO, error) {
			return []items.ItemDTO{*sampleItem()}, nil
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/items/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []items.ItemDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
}

func TestListEmptyCatalogIsJSONArray(t *testing.T) {
	svc := &stubItemService{
		listFn: func(context.Context) ([]items.ItemDTO, error) {
			return []items.ItemDTO{}, nil
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/items/", nil))

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected [], got %q", body)
	}
}

func TestUpdateItemReturnsUpdatedRecord(t *testing.T) {
	svc := &stubItemService{
		updateFn: func(_ context.Context, id uint, dto items.UpdateItemDTO) (*items.ItemDTO, error) {
			return &items.ItemDTO{ID: id, Name: dto.Name, Price: dto.Price, Stock: dto.Stock}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/items/1", strings.NewReader(`{"name":"Laptop Pro","price":1299.99,"stock":5}`))
	itemsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got items.ItemDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Name != "Laptop Pro" {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestUpdateMissingItemIs404(t *testing.T) {
	svc := &stubItemService{
		updateFn: func(context.Context, uint, items.UpdateItemDTO) (*items.ItemDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/items/42", strings.NewReader(`{"name":"Ghost","price":1}`))
	itemsRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteItemReturns204(t *testing.T) {
	svc := &stubItemService{
		deleteFn: func(_ context.Context, id uint) (*items.ItemDTO, error) {
			return sampleItem(), nil
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("DELETE", "/items/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestDeleteMissingItemIs404(t *testing.T) {
	svc := &stubItemService{
		deleteFn: func(context.Context, uint) (*items.ItemDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		},
	}

	rec := httptest.NewRecorder()
	itemsRouter(svc).ServeHTTP(rec, httptest.NewRequest("DELETE", "/items/42", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
