package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/photocatalog/internal/app"
	"github.com/polkiloo/photocatalog/internal/config"
	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/metrics"
	"github.com/polkiloo/photocatalog/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/photocatalog/internal/test"
	"github.com/polkiloo/photocatalog/internal/usecase"
)

func newEngine(facade handlers.ShopFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger, metrics.NewShopMetrics(), &config.Config{APIVersion: "v1"})
}

func serve(engine *gin.Engine, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	var queries []string
	facade := testhelpers.ShopFacadeStub{
		CatalogFacadeStub: testhelpers.CatalogFacadeStub{QueryFn: func(_ context.Context, size, token string) (*model.Page, error) {
			queries = append(queries, size+"/"+token)
			return &model.Page{Results: []model.CatalogItem{}}, nil
		}},
	}
	engine := newEngine(facade)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        []byte
		status      int
	}{
		{name: "root", method: http.MethodGet, path: "/", status: http.StatusOK},
		{name: "ping", method: http.MethodGet, path: "/ping", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "catalog", method: http.MethodGet, path: "/v1/catalog?page_size=5", status: http.StatusOK},
		{name: "catalog trailing slash", method: http.MethodGet, path: "/v1/catalog/?last_token=5", status: http.StatusOK},
		{name: "print sizes", method: http.MethodGet, path: "/v1/checkout/print-sizes", status: http.StatusOK},
		{name: "checkout json", method: http.MethodPost, path: "/v1/checkout", contentType: "application/json", body: []byte(`{"first_name":"John"}`), status: http.StatusCreated},
		{name: "checkout form", method: http.MethodPost, path: "/v1/checkout", contentType: "application/x-www-form-urlencoded", body: []byte("first_name=John"), status: http.StatusCreated},
		{name: "checkout text", method: http.MethodPost, path: "/v1/checkout", contentType: "text/plain", body: []byte("John"), status: http.StatusUnsupportedMediaType},
		{name: "unknown version", method: http.MethodGet, path: "/v2/catalog", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(engine, tt.method, tt.path, tt.contentType, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}

	if len(queries) != 2 || queries[0] != "5/" || queries[1] != "/5" {
		t.Fatalf("unexpected catalog queries %v", queries)
	}
}

func TestSetupExposesRequestMetrics(t *testing.T) {
	engine := newEngine(testhelpers.ShopFacadeStub{})
	serve(engine, http.MethodGet, "/v1/catalog", "", nil)

	resp := serve(engine, http.MethodGet, "/metrics", "", nil)
	if !strings.Contains(resp.Body.String(), `photocatalog_http_requests_total{method="GET",route="/v1/catalog",status="200"}`) {
		t.Fatalf("expected request counter in exposition")
	}
}

func TestSetupPingReportsUnavailableStore(t *testing.T) {
	engine := newEngine(testhelpers.ShopFacadeStub{HealthCheckerStub: testhelpers.HealthCheckerStub{Err: context.DeadlineExceeded}})
	if resp := serve(engine, http.MethodGet, "/ping", "", nil); resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

type shopFixture struct {
	engine *gin.Engine
	orders *testhelpers.OrderRepositoryStub
}

func newShopFixture() *shopFixture {
	catalog := &testhelpers.CatalogRepositoryStub{Items: testhelpers.NewCatalog(100)}
	prints := &testhelpers.PrintOptionRepositoryStub{Options: []model.PrintOption{
		{ID: 1, Size: model.PrintSizeSmall, PrintCost: decimal.RequireFromString("10.00"), ShippingCost: decimal.RequireFromString("4.99")},
		{ID: 2, Size: model.PrintSizeMedium, PrintCost: decimal.RequireFromString("15.00"), ShippingCost: decimal.RequireFromString("5.99")},
		{ID: 3, Size: model.PrintSizeLarge, PrintCost: decimal.RequireFromString("20.00"), ShippingCost: decimal.RequireFromString("7.99")},
	}}
	orders := &testhelpers.OrderRepositoryStub{}
	facade := app.NewShopFacade(
		usecase.NewCatalogUseCase(catalog),
		usecase.NewCheckoutUseCase(catalog, prints, orders, &testhelpers.CheckoutRecorderStub{}),
		testhelpers.HealthCheckerStub{},
	)
	return &shopFixture{engine: newEngine(facade), orders: orders}
}

func orderJSON(mutate func(map[string]any)) []byte {
	order := map[string]any{
		"first_name":       "John",
		"last_name":        "Smith",
		"email":            "john.smith@domain.com",
		"primary_phone":    "555-555-5555",
		"address_line_one": "P Sherman",
		"address_line_two": "42 Wallaby Way",
		"city":             "Sydney",
		"state_or_region":  "New South Wales",
		"postal_code":      2000,
		"country":          "AUS",
		"print_id":         1,
		"photo_id":         10,
	}
	if mutate != nil {
		mutate(order)
	}
	body, _ := json.Marshal(order)
	return body
}

func gzipped(t *testing.T, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(body); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("compress body: %v", err)
	}
	return buf.Bytes()
}

func TestSetupServesCatalogPages(t *testing.T) {
	f := newShopFixture()

	var page struct {
		Count     int    `json:"count"`
		LastToken *int64 `json:"last_token"`
		Results   []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}

	resp := serve(f.engine, http.MethodGet, "/v1/catalog?page_size=20", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Count != 20 || len(page.Results) != 20 || page.LastToken == nil || *page.LastToken != 20 {
		t.Fatalf("unexpected first page: count=%d results=%d last_token=%v", page.Count, len(page.Results), page.LastToken)
	}

	resp = serve(f.engine, http.MethodGet, "/v1/catalog?last_token=20&page_size=10", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	page.Results = nil
	if err := json.Unmarshal(resp.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Count != 10 || page.LastToken == nil || *page.LastToken != 30 {
		t.Fatalf("unexpected second page: count=%d last_token=%v", page.Count, page.LastToken)
	}
	if page.Results[0].ID != 21 || page.Results[9].ID != 30 {
		t.Fatalf("unexpected second page ids %d..%d", page.Results[0].ID, page.Results[9].ID)
	}

	if resp := serve(f.engine, http.MethodGet, "/v1/catalog?page_size=x", "", nil); resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed page size, got %d", resp.Code)
	}
}

func TestSetupPlacesOrders(t *testing.T) {
	f := newShopFixture()

	resp := serve(f.engine, http.MethodPost, "/v1/checkout", "application/json", orderJSON(nil))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var details struct {
		Status         string `json:"status"`
		BillingSummary struct {
			OrderTotal    float64 `json:"order_total"`
			ShippingTotal float64 `json:"shipping_total"`
			ItemTotal     float64 `json:"item_total"`
		} `json:"billing_summary"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &details); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	billing := details.BillingSummary
	if billing.OrderTotal != 14.99 || billing.ShippingTotal != 4.99 || billing.ItemTotal != 10 {
		t.Fatalf("unexpected billing summary %+v", billing)
	}
	if f.orders.Count() != 1 {
		t.Fatalf("expected one stored order, got %d", f.orders.Count())
	}

	resp = serve(f.engine, http.MethodPost, "/v1/checkout", "application/json", orderJSON(func(order map[string]any) {
		delete(order, "email")
	}))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	var fields map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode errors: %v", err)
	}
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected email error, got %v", fields)
	}
	if f.orders.Count() != 1 {
		t.Fatalf("rejected order must not be stored, got %d orders", f.orders.Count())
	}
}

func TestSetupDecompressesGzipRequests(t *testing.T) {
	f := newShopFixture()

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewReader(gzipped(t, orderJSON(nil))))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	f.engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for gzip body, got %d: %s", resp.Code, resp.Body.String())
	}
	if f.orders.Count() != 1 {
		t.Fatalf("expected one stored order, got %d", f.orders.Count())
	}
}

func TestSetupRejectsCorruptGzipRequests(t *testing.T) {
	f := newShopFixture()

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	f.engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt gzip body, got %d", resp.Code)
	}
	if f.orders.Count() != 0 {
		t.Fatalf("expected no stored orders, got %d", f.orders.Count())
	}
}

var _ handlers.ShopFacade = testhelpers.ShopFacadeStub{}
