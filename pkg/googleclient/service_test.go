package googleclient

import (
	"net/url"
	"strings"
	"testing"
)

func TestAuthURL(t *testing.T) {
	svc := NewService("client-id", "client-secret", "http://localhost:5001/api/google/callback")

	raw := svc.AuthURL()
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("auth URL does not parse: %v", err)
	}

	q := parsed.Query()
	if q.Get("client_id") != "client-id" {
		t.Errorf("client_id missing, got %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "http://localhost:5001/api/google/callback" {
		t.Errorf("redirect_uri missing, got %q", q.Get("redirect_uri"))
	}
	if q.Get("access_type") != "offline" {
		t.Errorf("offline access not requested, got %q", q.Get("access_type"))
	}
	if q.Get("prompt") != "consent" {
		t.Errorf("consent not forced, got %q", q.Get("prompt"))
	}
	if q.Get("response_type") != "code" {
		t.Errorf("expected code response type, got %q", q.Get("response_type"))
	}

	scope := q.Get("scope")
	for _, s := range Scopes {
		if !strings.Contains(scope, s) {
			t.Errorf("scope %q not requested in %q", s, scope)
		}
	}
}

func TestAuthURL_Deterministic(t *testing.T) {
	svc := NewService("client-id", "client-secret", "http://localhost:5001/api/google/callback")
	if svc.AuthURL() != svc.AuthURL() {
		t.Error("auth URL must be deterministic for fixed configuration")
	}
}
