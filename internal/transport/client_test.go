package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetSetsAcceptHeader(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New()
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	defer resp.Body.Close()

	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept header = %q, want GitHub v3 media type", gotAccept)
	}
}

func TestGetInvalidURL(t *testing.T) {
	client := New()
	_, err := client.Get(context.Background(), "http://bad host/")
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
}

func TestNewWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	client := NewWithHTTPClient(custom)
	if client.http != custom {
		t.Error("NewWithHTTPClient did not use the provided client")
	}

	if NewWithHTTPClient(nil).http == nil {
		t.Error("NewWithHTTPClient(nil) should fall back to a default client")
	}
}
