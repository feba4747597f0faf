package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TWO-MIX/mind-space/internal/shared/config"
	"github.com/TWO-MIX/mind-space/internal/shared/middleware"
	"github.com/TWO-MIX/mind-space/internal/shared/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.RegisterCustomValidators()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Port:       "8080",
		GinMode:    gin.TestMode,
		APIVersion: "v1",
		APIPrefix:  "/api",
		Catalog:    config.CatalogConfig{RandSeed: 42},
		PayForward: config.PayForwardConfig{SeedPoolCredits: 67},
		Session: config.SessionConfig{
			DefaultIsMember: true,
		},
	}
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	router, err := NewRouter(testConfig())
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	engine := gin.New()
	router.SetupRoutes(engine)
	return engine
}

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, sessionID string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 && json.Valid(w.Body.Bytes()) {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal response envelope: %v", err)
		}
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("unmarshal response data: %v", err)
	}
}

// createSession opens a session and returns its ID.
func createSession(t *testing.T, engine *gin.Engine, body map[string]any) string {
	t.Helper()

	w, env := doRequest(t, engine, http.MethodPost, "/api/v1/sessions", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d, body %s", w.Code, w.Body.String())
	}

	var data struct {
		SessionID string `json:"session_id"`
	}
	decodeData(t, env, &data)
	if data.SessionID == "" {
		t.Fatal("create session returned an empty session ID")
	}
	return data.SessionID
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/health", "/ping", "/status"} {
		w, _ := doRequest(t, engine, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status %d, want 200", path, w.Code)
		}
	}
}

func TestListCafes(t *testing.T) {
	engine := newTestEngine(t)

	w, env := doRequest(t, engine, http.MethodGet, "/api/v1/cafes", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var data struct {
		Count int `json:"count"`
	}
	decodeData(t, env, &data)
	if data.Count != 6 {
		t.Errorf("count = %d, want 6", data.Count)
	}
}

func TestListCafesFiltered(t *testing.T) {
	engine := newTestEngine(t)

	w, env := doRequest(t, engine, http.MethodGet, "/api/v1/cafes?quietness=very-quiet", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var data struct {
		Count int `json:"count"`
	}
	decodeData(t, env, &data)
	if data.Count != 2 {
		t.Errorf("very-quiet count = %d, want 2", data.Count)
	}
}

func TestListCafesRejectsUnknownLevel(t *testing.T) {
	engine := newTestEngine(t)

	w, _ := doRequest(t, engine, http.MethodGet, "/api/v1/cafes?quietness=silent", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400 for unknown quietness level", w.Code)
	}
}

func TestGetCafeNotFound(t *testing.T) {
	engine := newTestEngine(t)

	w, _ := doRequest(t, engine, http.MethodGet, "/api/v1/cafes/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", w.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	engine := newTestEngine(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/payforward"},
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/users/me/bookings"},
		{http.MethodPost, "/api/v1/bookings"},
	}
	for _, p := range paths {
		w, _ := doRequest(t, engine, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session: status %d, want 401", p.method, p.path, w.Code)
		}
	}
}

func TestPayForwardFlow(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{
		"name":                "Donor",
		"is_qualified_member": true,
	})

	// Seeded pool.
	_, env := doRequest(t, engine, http.MethodGet, "/api/v1/payforward", sessionID, nil)
	var status struct {
		TotalCredits int  `json:"total_credits"`
		UserCredits  int  `json:"user_credits"`
		HasDonated   bool `json:"has_donated"`
	}
	decodeData(t, env, &status)
	if status.TotalCredits != 67 {
		t.Fatalf("seeded pool = %d, want 67", status.TotalCredits)
	}

	// Donation grows the pool.
	w, env := doRequest(t, engine, http.MethodPost, "/api/v1/payforward/donate", sessionID, map[string]any{"amount": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("donate: status %d, body %s", w.Code, w.Body.String())
	}
	decodeData(t, env, &status)
	if status.TotalCredits != 72 || !status.HasDonated {
		t.Errorf("after donation: pool = %d, has_donated = %v, want 72/true", status.TotalCredits, status.HasDonated)
	}

	// Qualified claim moves one credit.
	w, env = doRequest(t, engine, http.MethodPost, "/api/v1/payforward/claim", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("claim: status %d", w.Code)
	}
	var claim struct {
		Claimed bool `json:"claimed"`
		Status  struct {
			TotalCredits int `json:"total_credits"`
			UserCredits  int `json:"user_credits"`
		} `json:"status"`
	}
	decodeData(t, env, &claim)
	if !claim.Claimed || claim.Status.TotalCredits != 71 || claim.Status.UserCredits != 1 {
		t.Errorf("claim = %+v, want claimed with pool 71 and 1 user credit", claim)
	}
}

func TestPayForwardClaimUnqualifiedIsNoOp(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{"name": "Visitor"})

	w, env := doRequest(t, engine, http.MethodPost, "/api/v1/payforward/claim", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("claim: status %d, want 200 even for an unqualified claim", w.Code)
	}

	var claim struct {
		Claimed bool `json:"claimed"`
		Status  struct {
			TotalCredits int `json:"total_credits"`
		} `json:"status"`
	}
	decodeData(t, env, &claim)
	if claim.Claimed {
		t.Error("unqualified claim must not succeed")
	}
	if claim.Status.TotalCredits != 67 {
		t.Errorf("pool = %d after no-op claim, want 67", claim.Status.TotalCredits)
	}
}

func TestDonateRejectsNonPositiveAmount(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{"name": "Donor"})

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/payforward/donate", sessionID, map[string]any{"amount": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400 for zero donation", w.Code)
	}
}

// firstUpcomingSlot picks a bookable slot from the public slot listing.
func firstUpcomingSlot(t *testing.T, engine *gin.Engine, cafeID string) string {
	t.Helper()

	w, env := doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/cafes/%s/slots", cafeID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("slots: status %d", w.Code)
	}

	var data struct {
		Slots []struct {
			ID string `json:"id"`
		} `json:"slots"`
	}
	decodeData(t, env, &data)
	if len(data.Slots) == 0 {
		t.Fatal("no upcoming slots to book")
	}
	return data.Slots[0].ID
}

func TestBookingFlowWithCard(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{"name": "Member"})
	slotID := firstUpcomingSlot(t, engine, "1")

	w, env := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "1",
		"slot_id":        slotID,
		"seats":          1,
		"payment_method": "card",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: status %d, body %s", w.Code, w.Body.String())
	}

	var booking struct {
		ID        string  `json:"id"`
		Status    string  `json:"status"`
		TotalCost float64 `json:"total_cost"`
	}
	decodeData(t, env, &booking)
	if booking.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}
	if booking.TotalCost != 16 { // 8/hour x 1 seat x 2 hours
		t.Errorf("total cost = %v, want 16", booking.TotalCost)
	}

	// The booking shows up in the user's history.
	_, env = doRequest(t, engine, http.MethodGet, "/api/v1/users/me/bookings", sessionID, nil)
	var history struct {
		Count       int `json:"count"`
		ActiveCount int `json:"active_count"`
	}
	decodeData(t, env, &history)
	if history.Count != 1 || history.ActiveCount != 1 {
		t.Errorf("history = %+v, want one active booking", history)
	}

	// Cancel releases the seats and flips the status.
	w, env = doRequest(t, engine, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/cancel", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d", w.Code)
	}
	decodeData(t, env, &booking)
	if booking.Status != "cancelled" {
		t.Errorf("status after cancel = %s, want cancelled", booking.Status)
	}

	// A second cancel conflicts.
	w, _ = doRequest(t, engine, http.MethodPost, "/api/v1/bookings/"+booking.ID+"/cancel", sessionID, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("double cancel: status %d, want 409", w.Code)
	}
}

func TestBookingFlowWithCredits(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{
		"name":         "Member",
		"seat_credits": 10,
	})
	slotID := firstUpcomingSlot(t, engine, "1")

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "1",
		"slot_id":        slotID,
		"seats":          1,
		"payment_method": "credits",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: status %d, body %s", w.Code, w.Body.String())
	}

	// 1 seat x 2 hours costs 2 credits.
	_, env := doRequest(t, engine, http.MethodGet, "/api/v1/users/me", sessionID, nil)
	var me struct {
		SeatCredits float64 `json:"seat_credits"`
	}
	decodeData(t, env, &me)
	if me.SeatCredits != 8 {
		t.Errorf("seat credits = %v after booking, want 8", me.SeatCredits)
	}
}

func TestBookingRejectsNonMember(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{
		"name":      "Visitor",
		"is_member": false,
	})
	slotID := firstUpcomingSlot(t, engine, "1")

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "1",
		"slot_id":        slotID,
		"seats":          1,
		"payment_method": "card",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("status %d, want 403 for a non-member", w.Code)
	}
}

func TestBookingRejectsInsufficientCredits(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{
		"name":         "Member",
		"seat_credits": 1,
	})
	slotID := firstUpcomingSlot(t, engine, "1")

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "1",
		"slot_id":        slotID,
		"seats":          1,
		"payment_method": "credits",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("status %d, want 409 for insufficient credits", w.Code)
	}

	// The rejected settlement must not touch the balance.
	_, env := doRequest(t, engine, http.MethodGet, "/api/v1/users/me", sessionID, nil)
	var me struct {
		SeatCredits float64 `json:"seat_credits"`
	}
	decodeData(t, env, &me)
	if me.SeatCredits != 1 {
		t.Errorf("seat credits = %v after rejected booking, want 1", me.SeatCredits)
	}
}

func TestBookingUnknownCafe(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{"name": "Member"})

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "999",
		"slot_id":        "whatever",
		"seats":          1,
		"payment_method": "card",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404 for unknown cafe", w.Code)
	}
}

func TestBookingRejectsInvalidPaymentMethod(t *testing.T) {
	engine := newTestEngine(t)
	sessionID := createSession(t, engine, map[string]any{"name": "Member"})

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/bookings", sessionID, map[string]any{
		"cafe_id":        "1",
		"slot_id":        "whatever",
		"seats":          1,
		"payment_method": "cash",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400 for invalid payment method", w.Code)
	}
}
