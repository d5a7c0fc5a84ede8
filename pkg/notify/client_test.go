package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestEmailClientUnconfiguredLogsAndSucceeds(t *testing.T) {
	c := NewEmailClient(EmailConfig{}, nil)
	if err := c.Send(context.Background(), "subject", "<p>hi</p>", "hi"); err != nil {
		t.Fatalf("unconfigured client must not fail: %v", err)
	}
}

func TestEmailClientMissingRecipient(t *testing.T) {
	c := NewEmailClient(EmailConfig{APIKey: "key"}, nil)
	if err := c.Send(context.Background(), "subject", "html", "text"); err == nil {
		t.Fatalf("expected error without recipient")
	}
}

func TestEmailClientSend(t *testing.T) {
	var gotAuth string
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	c := NewEmailClient(EmailConfig{
		APIKey:  "test-key",
		From:    "noreply@logicton.com",
		To:      "admin@logicton.com",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, srv.Client())

	if err := c.Send(context.Background(), "Pricing", "<p>hi</p>", "hi"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotReq["subject"] != "Pricing" || gotReq["from"] != "noreply@logicton.com" {
		t.Fatalf("unexpected payload: %+v", gotReq)
	}
}

func TestEmailClientProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	c := NewEmailClient(EmailConfig{APIKey: "k", To: "a@b.com", BaseURL: srv.URL}, srv.Client())
	err := c.Send(context.Background(), "s", "h", "t")
	if err == nil || !strings.Contains(err.Error(), "422") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestLineClientUnconfiguredLogsAndSucceeds(t *testing.T) {
	c := NewLineClient(LineConfig{}, nil)
	if err := c.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("unconfigured client must not fail: %v", err)
	}
}

func TestLineClientSend(t *testing.T) {
	var gotMessage, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotMessage = r.PostFormValue("message")
		_, _ = w.Write([]byte(`{"status":200,"message":"ok"}`))
	}))
	defer srv.Close()

	c := NewLineClient(LineConfig{Token: "line-token", Endpoint: srv.URL}, srv.Client())
	if err := c.Send(context.Background(), "ข้อความใหม่"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotAuth != "Bearer line-token" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotMessage != "ข้อความใหม่" {
		t.Fatalf("unexpected message %q", gotMessage)
	}
}

func TestLineClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":401,"message":"invalid access token"}`))
	}))
	defer srv.Close()

	c := NewLineClient(LineConfig{Token: "bad", Endpoint: srv.URL}, srv.Client())
	err := c.Send(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestDispatcherSendsBoth(t *testing.T) {
	emailHits := make(chan struct{}, 1)
	lineHits := make(chan struct{}, 1)

	emailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		emailHits <- struct{}{}
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer emailSrv.Close()
	lineSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lineHits <- struct{}{}
		_, _ = w.Write([]byte(`{"status":200}`))
	}))
	defer lineSrv.Close()

	d := NewDispatcher(
		NewEmailClient(EmailConfig{APIKey: "k", To: "a@b.com", BaseURL: emailSrv.URL}, emailSrv.Client()),
		NewLineClient(LineConfig{Token: "t", Endpoint: lineSrv.URL}, lineSrv.Client()),
	)

	d.Dispatch(context.Background(), sampleInquiry("th"))

	select {
	case <-emailHits:
	default:
		t.Fatalf("email provider not called")
	}
	select {
	case <-lineHits:
	default:
		t.Fatalf("line provider not called")
	}
}

func TestDispatcherSurvivesProviderFailure(t *testing.T) {
	emailSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer emailSrv.Close()

	d := NewDispatcher(
		NewEmailClient(EmailConfig{APIKey: "k", To: "a@b.com", BaseURL: emailSrv.URL}, emailSrv.Client()),
		NewLineClient(LineConfig{}, nil),
	)

	// must not panic or block; failures are logged only
	d.Dispatch(context.Background(), sampleInquiry("en"))
}
