package services_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/strawhutmedia/onboarding/internal/config"
	"github.com/strawhutmedia/onboarding/internal/services"
)

func TestNotifierSendsFormEncodedPayload(t *testing.T) {
	db := setupTestDB(t)
	sub := submitSession(t, db, "Acme Media", "The Acme Hour")

	var captured url.Values
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		captured, _ = url.ParseQuery(string(body))
		w.Write([]byte(`{"success":"true"}`))
	}))
	defer srv.Close()

	n := &services.Notifier{
		Endpoint: srv.URL + "/onboarding@strawhutmedia.com",
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
	if err := n.Send(sub, false); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if contentType != "application/x-www-form-urlencoded" {
		t.Errorf("Expected form-encoded content type, got %q", contentType)
	}
	if got := captured.Get("_subject"); got != "Onboarding: Acme Media — The Acme Hour" {
		t.Errorf("Unexpected subject %q", got)
	}
	if captured.Get("_template") != "box" {
		t.Errorf("Expected box template, got %q", captured.Get("_template"))
	}
	if captured.Get("Company") != "Acme Media" {
		t.Errorf("Expected company field, got %q", captured.Get("Company"))
	}
	if captured.Get("Contact") != "Ada Lovelace" {
		t.Errorf("Expected contact name, got %q", captured.Get("Contact"))
	}

	message := captured.Get("message")
	if !strings.Contains(message, "--- CONTACT INFORMATION ---") {
		t.Error("Expected section headers in message body")
	}
	if !strings.Contains(message, "Podcast Name: The Acme Hour") {
		t.Error("Expected podcast name line in message body")
	}
	if !strings.Contains(message, "Genre: Not provided") {
		t.Error("Expected placeholder for absent fields")
	}
}

func TestNotifierMarksResends(t *testing.T) {
	db := setupTestDB(t)
	sub := submitSession(t, db, "Acme Media", "The Acme Hour")

	var captured url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := &services.Notifier{Endpoint: srv.URL, Client: srv.Client()}
	if err := n.Send(sub, true); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if !strings.HasPrefix(captured.Get("_subject"), "Onboarding (Resent): ") {
		t.Errorf("Expected resent subject, got %q", captured.Get("_subject"))
	}
	if !strings.Contains(captured.Get("message"), "Resent from Admin") {
		t.Error("Expected resend marker in message body")
	}
}

func TestNotifierReportsRelayErrors(t *testing.T) {
	db := setupTestDB(t)
	sub := submitSession(t, db, "Acme Media", "The Acme Hour")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := &services.Notifier{Endpoint: srv.URL, Client: srv.Client()}
	if err := n.Send(sub, false); err == nil {
		t.Fatal("Expected error on non-2xx relay response")
	}
}

func TestAuthServiceLoginAndVerify(t *testing.T) {
	auth := services.NewAuthService(&config.Config{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		SessionSecret: "test-secret",
	})

	token, err := auth.Login("admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	username, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if username != "admin" {
		t.Errorf("Expected username admin, got %q", username)
	}

	if _, err := auth.Login("admin", "wrong"); err == nil {
		t.Error("Expected wrong password to fail")
	}
	if _, err := auth.Login("other", "hunter2"); err == nil {
		t.Error("Expected wrong username to fail")
	}
	if _, err := auth.Verify("not-a-token"); err == nil {
		t.Error("Expected malformed token to fail verification")
	}
	if _, err := auth.Verify(""); err == nil {
		t.Error("Expected empty token to fail verification")
	}
}
