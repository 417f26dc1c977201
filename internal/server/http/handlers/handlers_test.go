package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/server/http/dto"
	"github.com/maropko/parceltrack/internal/server/http/middleware"
	testhelpers "github.com/maropko/parceltrack/internal/test"
	"github.com/maropko/parceltrack/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// routePattern converts a concrete request path into the gin route pattern the
// production router registers for it, so c.Param sees the same bindings under
// test: /track uses :trackingNumber, every other two-segment path uses :id.
func routePattern(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) != 2 {
		return path
	}
	if segments[0] == "track" {
		return "/" + segments[0] + "/:trackingNumber"
	}
	return "/" + segments[0] + "/:id"
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, routePattern(path), func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func validCreateBody() []byte {
	body, _ := json.Marshal(dto.OrderCreateRequest{
		ProductName:      "Laptop",
		Weight:           2.5,
		ShippingMethod:   "Standard",
		RecipientName:    "Juan Dela Cruz",
		RecipientPhone:   "+63 912 345 6789",
		RecipientAddress: "Quezon City, Metro Manila",
		SenderName:       "TechStore Inc",
		SenderPhone:      "+63 998 765 4321",
		SenderAddress:    "Makati City, Metro Manila",
	})
	return body
}

func TestCurrentAdminID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentAdminID(c); got != "" {
		t.Fatalf("expected empty id when not set, got %q", got)
	}

	c.Set(middleware.AdminIDContextKey, "admin-42")
	if got := CurrentAdminID(c); got != "admin-42" {
		t.Fatalf("expected admin-42, got %q", got)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "password123"})
	handler := NewAuthHandler(testhelpers.AdminFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}

	var payload dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.Token != "token" || payload.Admin.Email != "admin@example.com" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestAuthHandlerLoginRejections(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AdminFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (*model.AdminUser, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		},
	}, dto.NewValidator())

	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, []byte("{bad"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", resp.Code)
	}

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "wrong-pass"})
	resp = performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginForwardsCredentials(t *testing.T) {
	email := testhelpers.RandomASCIIString(7, 14) + "@example.com"
	password := testhelpers.RandomASCIIString(12, 24)

	var gotEmail, gotPassword string
	handler := NewAuthHandler(testhelpers.AdminFacadeStub{
		AuthenticateFn: func(_ context.Context, e, p string) (*model.AdminUser, string, error) {
			gotEmail, gotPassword = e, p
			return &model.AdminUser{ID: "admin-1", Email: e, Role: model.RoleAdmin}, "token", nil
		},
	}, dto.NewValidator())

	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotEmail != email || gotPassword != password {
		t.Fatalf("credentials did not reach the facade: %q / %q", gotEmail, gotPassword)
	}
}

func TestTrackHandlerLookup(t *testing.T) {
	handler := NewTrackHandler(testhelpers.TrackingFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/track/LBC12345678", handler.Lookup, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload dto.TrackResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.Order.TrackingNumber != "LBC12345678" || len(payload.History) != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestTrackHandlerLookupNotFound(t *testing.T) {
	handler := NewTrackHandler(testhelpers.TrackingFacadeStub{
		TrackFn: func(context.Context, string) (*model.Order, []model.TrackingEvent, error) {
			return nil, nil, domainErrors.ErrNotFound
		},
	})
	resp := performRequest(t, http.MethodGet, "/track/LBC12345678", handler.Lookup, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestTrackHandlerLookupUnresolvedNumbers(t *testing.T) {
	// Short, malformed and well-formed-but-unknown numbers all surface the
	// same 404, so visitors cannot distinguish format errors from misses.
	for _, number := range []string{"LBC123", "NOTANUMBER", "LBC99999999"} {
		var asked string
		handler := NewTrackHandler(testhelpers.TrackingFacadeStub{
			TrackFn: func(_ context.Context, n string) (*model.Order, []model.TrackingEvent, error) {
				asked = n
				return nil, nil, domainErrors.ErrNotFound
			},
		})
		resp := performRequest(t, http.MethodGet, "/track/"+number, handler.Lookup, nil, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", number, resp.Code)
		}
		if asked != number {
			t.Fatalf("%s: facade asked for %q", number, asked)
		}
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodPost, "/orders", handler.Create, nil, validCreateBody(), jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.TrackingNumber == "" {
		t.Fatal("expected tracking number in response")
	}
}

func TestOrderHandlerCreateValidation(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		CreateFn: func(context.Context, model.Order) (*model.Order, error) {
			t.Fatal("facade should not be called for invalid payload")
			return nil, nil
		},
	}, dto.NewValidator())

	body, _ := json.Marshal(dto.OrderCreateRequest{ProductName: "Laptop"})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateDuplicate(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		CreateFn: func(context.Context, model.Order) (*model.Order, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}, dto.NewValidator())
	resp := performRequest(t, http.MethodPost, "/orders", handler.Create, nil, validCreateBody(), jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodGet, "/orders/order-1", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload dto.OrderDetailResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.Order.ID != "order-1" || len(payload.History) != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		GetFn: func(context.Context, string) (*model.Order, []model.TrackingEvent, error) {
			return nil, nil, domainErrors.ErrNotFound
		},
	}, dto.NewValidator())
	resp := performRequest(t, http.MethodGet, "/orders/missing", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodGet, "/orders", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected one order, got %d", len(payload))
	}
}

func TestOrderHandlerUpdate(t *testing.T) {
	var gotNote usecase.StatusNote
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		UpdateFn: func(_ context.Context, id string, patch model.OrderPatch, note usecase.StatusNote) (*model.Order, error) {
			gotNote = note
			order := model.Order{ID: id, Status: *patch.Status}
			return &order, nil
		},
	}, dto.NewValidator())

	status := "In Transit"
	body, _ := json.Marshal(dto.OrderUpdateRequest{Status: &status, Location: "Manila Hub", StatusDescription: "Sorted"})
	resp := performRequest(t, http.MethodPut, "/orders/order-1", handler.Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotNote.Location != "Manila Hub" || gotNote.Description != "Sorted" {
		t.Fatalf("expected note to reach facade, got %+v", gotNote)
	}
}

func TestOrderHandlerUpdateClosed(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		UpdateFn: func(context.Context, string, model.OrderPatch, usecase.StatusNote) (*model.Order, error) {
			return nil, domainErrors.ErrOrderClosed
		},
	}, dto.NewValidator())

	status := "In Transit"
	body, _ := json.Marshal(dto.OrderUpdateRequest{Status: &status})
	resp := performRequest(t, http.MethodPut, "/orders/order-1", handler.Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for closed order, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodDelete, "/orders/order-1", handler.Delete, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	handler = NewOrderHandler(testhelpers.OrderFacadeStub{
		DeleteFn: func(context.Context, string) error { return domainErrors.ErrNotFound },
	}, dto.NewValidator())
	resp = performRequest(t, http.MethodDelete, "/orders/missing", handler.Delete, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerStats(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		StatsFn: func(context.Context) (*model.OrderStats, error) {
			return &model.OrderStats{
				TotalOrders: 3,
				Delivered:   1,
				Revenue:     4200,
				ByStatus:    map[model.Status]int{model.StatusPending: 2, model.StatusDelivered: 1},
			}, nil
		},
	}, dto.NewValidator())
	resp := performRequest(t, http.MethodGet, "/stats", handler.Stats, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload dto.StatsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.TotalOrders != 3 || payload.Delivered != 1 || payload.Revenue != 4200 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.ByStatus["Pending"] != 2 {
		t.Fatalf("expected status breakdown, got %+v", payload.ByStatus)
	}
}

func TestAdminHandlerCreate(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{}, dto.NewValidator())
	body, _ := json.Marshal(dto.AdminCreateRequest{Email: "ops@example.com", Password: "secret123", Name: "Ops"})
	resp := performRequest(t, http.MethodPost, "/users", handler.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var payload dto.AdminResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.Email != "ops@example.com" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("password")) {
		t.Fatal("response must not leak credentials")
	}
}

func TestAdminHandlerCreateRejections(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{
		CreateFn: func(context.Context, string, string, string, model.Role) (*model.AdminUser, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}, dto.NewValidator())

	body, _ := json.Marshal(dto.AdminCreateRequest{Email: "not-an-email", Password: "secret123", Name: "Ops"})
	resp := performRequest(t, http.MethodPost, "/users", handler.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", resp.Code)
	}

	body, _ = json.Marshal(dto.AdminCreateRequest{Email: "ops@example.com", Password: "secret123", Name: "Ops"})
	resp = performRequest(t, http.MethodPost, "/users", handler.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", resp.Code)
	}
}

func TestAdminHandlerListAndGet(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodGet, "/users", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/users/admin-1", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	handler = NewAdminHandler(testhelpers.AdminFacadeStub{
		GetFn: func(context.Context, string) (*model.AdminUser, error) { return nil, domainErrors.ErrNotFound },
	}, dto.NewValidator())
	resp = performRequest(t, http.MethodGet, "/users/missing", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestAdminHandlerUpdate(t *testing.T) {
	var gotPassword string
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{
		UpdateFn: func(_ context.Context, id string, patch model.AdminPatch, password string) (*model.AdminUser, error) {
			gotPassword = password
			admin := model.AdminUser{ID: id, Email: "ops@example.com", Role: model.RoleAdmin}
			if patch.Name != nil {
				admin.Name = *patch.Name
			}
			return &admin, nil
		},
	}, dto.NewValidator())

	name := "Ops Two"
	password := "rotated1"
	body, _ := json.Marshal(dto.AdminUpdateRequest{Name: &name, Password: &password})
	resp := performRequest(t, http.MethodPut, "/users/admin-1", handler.Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotPassword != "rotated1" {
		t.Fatalf("expected password to reach facade, got %q", gotPassword)
	}
}

func TestAdminHandlerDelete(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{}, dto.NewValidator())
	resp := performRequest(t, http.MethodDelete, "/users/admin-2", handler.Delete, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAdminHandlerDeleteSelf(t *testing.T) {
	handler := NewAdminHandler(testhelpers.AdminFacadeStub{
		DeleteFn: func(context.Context, string) error {
			t.Fatal("facade should not be called for self-delete")
			return nil
		},
	}, dto.NewValidator())

	setup := func(c *gin.Context) { c.Set(middleware.AdminIDContextKey, "admin-1") }
	resp := performRequest(t, http.MethodDelete, "/users/admin-1", handler.Delete, setup, nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for self-delete, got %d", resp.Code)
	}
}

func TestTrackingHandlerAdd(t *testing.T) {
	handler := NewTrackingHandler(testhelpers.TrackingFacadeStub{}, dto.NewValidator())
	body, _ := json.Marshal(dto.TrackingUpdateRequest{OrderID: "order-1", Status: "In Transit", Location: "Cebu Hub"})
	resp := performRequest(t, http.MethodPost, "/tracking", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var payload dto.TrackingEventResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.OrderID != "order-1" || payload.Status != "In Transit" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestTrackingHandlerAddRejections(t *testing.T) {
	handler := NewTrackingHandler(testhelpers.TrackingFacadeStub{
		AddFn: func(context.Context, model.TrackingEvent) (*model.TrackingEvent, error) {
			return nil, domainErrors.ErrOrderClosed
		},
	}, dto.NewValidator())

	body, _ := json.Marshal(dto.TrackingUpdateRequest{OrderID: "order-1", Status: "Nowhere"})
	resp := performRequest(t, http.MethodPost, "/tracking", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", resp.Code)
	}

	body, _ = json.Marshal(dto.TrackingUpdateRequest{OrderID: "order-1", Status: "In Transit"})
	resp = performRequest(t, http.MethodPost, "/tracking", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for closed order, got %d", resp.Code)
	}

	handler = NewTrackingHandler(testhelpers.TrackingFacadeStub{
		AddFn: func(context.Context, model.TrackingEvent) (*model.TrackingEvent, error) {
			return nil, domainErrors.ErrNotFound
		},
	}, dto.NewValidator())
	resp = performRequest(t, http.MethodPost, "/tracking", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", resp.Code)
	}
}
