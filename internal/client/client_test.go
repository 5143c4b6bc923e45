package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadportaal/internal/forms"
)

func quotePayload(email string) map[string]any {
	return map[string]any{
		"websiteType":   "webshop",
		"features":      []string{"Analytics"},
		"budget":        "€5000 - €10000",
		"timeline":      "1-2 maanden",
		"companyName":   "Bakkerij Jansen",
		"contactPerson": "Piet Jansen",
		"email":         email,
		"phone":         "0612345678",
	}
}

func TestClient_SubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/quotes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"abc-123"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.Submit(context.Background(), forms.KindQuote, quotePayload("piet@jansen.nl"))
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id != "abc-123" {
		t.Errorf("Submit() id = %q, want %q", id, "abc-123")
	}
}

func TestClient_SubmitDuplicate(t *testing.T) {
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if seen["piet@jansen.nl"] {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":false,"error":{"code":"CONFLICT","message":"Dit emailadres is al geregistreerd"}}`))
			return
		}
		seen["piet@jansen.nl"] = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"first"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Submit(context.Background(), forms.KindQuote, quotePayload("piet@jansen.nl")); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	_, err := c.Submit(context.Background(), forms.KindQuote, quotePayload("piet@jansen.nl"))
	if !errors.Is(err, forms.ErrDuplicate) {
		t.Errorf("second Submit() error = %v, want ErrDuplicate", err)
	}
}

func TestClient_SubmitBackendMisconfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"error":{"code":"SERVICE_UNAVAILABLE","message":"database schema not initialized"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), forms.KindFreelancer, map[string]any{"name": "Jan"})
	if !errors.Is(err, forms.ErrBackendMisconfigured) {
		t.Errorf("Submit() error = %v, want ErrBackendMisconfigured", err)
	}
}

func TestClient_SubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), forms.KindQuote, quotePayload("piet@jansen.nl"))
	if !errors.Is(err, forms.ErrTransport) {
		t.Errorf("Submit() error = %v, want ErrTransport", err)
	}
}

func TestClient_SubmitServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"boom"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Submit(context.Background(), forms.KindQuote, quotePayload("piet@jansen.nl"))
	if !errors.Is(err, forms.ErrTransport) {
		t.Errorf("Submit() error = %v, want ErrTransport", err)
	}
	if err != nil && err.Error() == "" {
		t.Error("error message empty")
	}
}

func TestClient_WizardIntegration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"wiz-1"}}`))
	}))
	defer srv.Close()

	schema := forms.QuoteSchema()
	w := forms.NewWizard(schema, New(srv.URL))
	ans := w.Answers()
	ans.SetText("websiteType", "corporate")
	ans.SetText("budget", "< €5000")
	ans.SetText("timeline", "< 1 maand")
	ans.SetText("companyName", "Test BV")
	ans.SetText("contactPerson", "Kees")
	ans.SetText("email", "kees@test.nl")
	ans.SetText("phone", "0611111111")

	ctx := context.Background()
	for i := 0; i < schema.NumSteps(); i++ {
		if _, err := w.Next(ctx); err != nil {
			t.Fatalf("Next() step %d error = %v", i, err)
		}
	}
	if w.Status() != forms.StatusSuccess {
		t.Errorf("status = %v, want success", w.Status())
	}
	if w.RecordID() != "wiz-1" {
		t.Errorf("record id = %q, want %q", w.RecordID(), "wiz-1")
	}
}
