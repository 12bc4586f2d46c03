package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseTranslateResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["Hello","Привіт",null,null,10]],null,"uk"]`,
			want: "Hello",
		},
		{
			name: "multiple segments concatenate",
			body: `[[["Hello, ","Привіт, ",null,null,10],["world","світе",null,null,10]],null,"uk"]`,
			want: "Hello, world",
		},
		{
			name:    "not json",
			body:    `<html>rate limited</html>`,
			wantErr: true,
		},
		{
			name:    "empty payload",
			body:    `[]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslateResponse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parsed %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "en" {
			t.Errorf("tl = %q, want en", got)
		}
		if got := r.URL.Query().Get("sl"); got != "auto" {
			t.Errorf("sl = %q, want auto", got)
		}
		w.Write([]byte(`[[["Hello","Привіт",null,null,10]],null,"uk"]`))
	}))
	defer server.Close()

	client := NewTranslateClient("en")
	client.endpoint = server.URL

	got, err := client.Translate(context.Background(), "Привіт")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello" {
		t.Errorf("Translate = %q, want %q", got, "Hello")
	}
}

func TestTranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewTranslateClient("en")
	client.endpoint = server.URL

	if _, err := client.Translate(context.Background(), "text"); err == nil {
		t.Fatal("expected an error on non-200 response")
	}
}
