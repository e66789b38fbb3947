package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func parserFor(t *testing.T, contentType, body string) *RequestBodyParser {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return p
}

func TestRequestBodyParser_Form(t *testing.T) {
	p := parserFor(t, "application/x-www-form-urlencoded",
		"category=personal&description=Coffee+beans&amount=12.50&type=expense")

	if p.IsJSON() {
		t.Error("IsJSON() = true for form body")
	}
	if got := p.Get("description"); got != "Coffee beans" {
		t.Errorf("Get(description) = %q, want %q", got, "Coffee beans")
	}
	if got := p.Get("amount"); got != "12.50" {
		t.Errorf("Get(amount) = %q, want %q", got, "12.50")
	}
	if got := p.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
}

func TestRequestBodyParser_JSON(t *testing.T) {
	p := parserFor(t, "application/json",
		`{"category":"business","description":"  Sales  ","amount":1000.5,"confirmed":true,"id":42}`)

	if !p.IsJSON() {
		t.Error("IsJSON() = false for JSON body")
	}
	if got := p.Get("description"); got != "Sales" {
		t.Errorf("Get(description) = %q, want trimmed %q", got, "Sales")
	}
	if got := p.Get("amount"); got != "1000.5" {
		t.Errorf("Get(amount) = %q, want %q", got, "1000.5")
	}
	if !p.GetBool("confirmed") {
		t.Error("GetBool(confirmed) = false, want true")
	}
	id, err := p.GetInt64("id")
	if err != nil || id != 42 {
		t.Errorf("GetInt64(id) = (%d, %v), want (42, nil)", id, err)
	}
}

func TestRequestBodyParser_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"broken`))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err == nil {
		t.Error("Parse() = nil for malformed JSON")
	}
}

func TestRequestBodyParser_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(""))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := p.Get("category"); got != "" {
		t.Errorf("Get(category) = %q, want empty", got)
	}
	if p.GetBool("confirmed") {
		t.Error("GetBool(confirmed) = true for empty body")
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{"with\x00null", "withnull"},
		{"keep\ttabs", "keep\ttabs"},
		{"line\nbreaks", "line\nbreaks"},
		{"bell\x07char", "bellchar"},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
