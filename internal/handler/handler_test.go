package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"property-service/internal/assess"
	"property-service/internal/auth"
	"property-service/internal/middleware"
	"property-service/internal/model"
	"property-service/internal/store"
	"property-service/pkg/config"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingAssessor simulates an unreachable assessment service.
type failingAssessor struct{}

func (failingAssessor) ClassifyMaintenance(context.Context, string) (*assess.TicketAssessment, error) {
	return nil, errors.New("service unreachable")
}

func (failingAssessor) SummarizeLease(context.Context, string) (string, error) {
	return "", errors.New("service unreachable")
}

// countingAssessor records how often it is consulted.
type countingAssessor struct {
	calls *int
}

func (a countingAssessor) ClassifyMaintenance(context.Context, string) (*assess.TicketAssessment, error) {
	*a.calls++
	return assess.DefaultAssessment(), nil
}

func (a countingAssessor) SummarizeLease(context.Context, string) (string, error) {
	*a.calls++
	return "summary", nil
}

func TestMain(m *testing.M) {
	cfg, _ := config.Load()
	cfg.Metrics.Prefix = "property_test"
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

// newTestServer resets the seeded in-memory store and builds the API routes
// the way main does.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Store.Backend = "memory"
	require.NoError(t, store.Init(cfg, zap.NewNop()))

	SetDeps(auth.EmailAuthenticator{}, failingAssessor{})

	e := echo.New()
	e.POST("/auth/login", Login)
	e.POST("/auth/register", Register)

	api := e.Group("/api")
	api.Use(middleware.SessionMiddleware)
	api.GET("/properties", ListProperties)
	api.POST("/tickets", CreateTicket)
	api.PUT("/applications/:id/decision", DecideApplication, middleware.RequireStaff)
	api.POST("/payments/:id/settle", SettlePayment)
	api.POST("/agreements/summarize", SummarizeLease)
	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"`+email+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginUnknownEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", "", `{"name":"Dup","email":"chiamaka@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPropertiesAreRoleScoped(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "chiamaka@example.com")
	rec := doJSON(e, http.MethodGet, "/api/properties", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var props []model.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &props))
	require.Len(t, props, 1)
	assert.Equal(t, "prop-1", props[0].ID)
}

func TestPropertiesRequireSession(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/properties", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTicketSurvivesAssessorFailure(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "chiamaka@example.com")
	rec := doJSON(e, http.MethodPost, "/api/tickets", token, `{"issue":"Bathroom ceiling is leaking"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ticket model.MaintenanceTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ticket))
	assert.Equal(t, model.PriorityMedium, ticket.Priority)
	assert.Equal(t, assess.FallbackAssessment, ticket.AIAssessment)
	assert.Equal(t, model.TicketOpen, ticket.Status)
}

func TestCreateTicketIneligibleCallerSkipsAssessor(t *testing.T) {
	e := newTestServer(t)
	calls := 0
	SetDeps(nil, countingAssessor{calls: &calls})

	// an agent cannot file tickets, and no assessment call is spent on it
	token := login(t, e, "femi.agent@propertyservice.dev")
	rec := doJSON(e, http.MethodPost, "/api/tickets", token, `{"issue":"Lobby light flickers"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// an unassigned tenant is rejected the same way
	token = login(t, e, "tunde@example.com")
	rec = doJSON(e, http.MethodPost, "/api/tickets", token, `{"issue":"anything"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Zero(t, calls, "ineligible callers must not reach the assessment service")
}

func TestDecisionRouteRejectsTenants(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "tunde@example.com")
	rec := doJSON(e, http.MethodPut, "/api/applications/app-1/decision", token, `{"status":"APPROVED"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDecisionRouteForAgent(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "femi.agent@propertyservice.dev")
	rec := doJSON(e, http.MethodPut, "/api/applications/app-1/decision", token, `{"status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var app model.TenantApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &app))
	assert.Equal(t, model.ApplicationApproved, app.Status)
}

func TestSettlePaymentEndpoint(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "chiamaka@example.com")
	rec := doJSON(e, http.MethodPost, "/api/payments/pay-2/settle", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payment model.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, model.PaymentPaid, payment.Status)
	assert.Equal(t, float64(2400000), payment.Amount)

	// settling twice is a conflict
	rec = doJSON(e, http.MethodPost, "/api/payments/pay-2/settle", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSummarizeLeaseFallsBack(t *testing.T) {
	e := newTestServer(t)

	token := login(t, e, "chiamaka@example.com")
	rec := doJSON(e, http.MethodPost, "/api/agreements/summarize", token, `{"lease_text":"THIS LEASE AGREEMENT..."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, assess.FallbackSummary, resp.Summary)
}
