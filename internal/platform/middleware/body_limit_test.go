package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 1 << 20},
		{"512K", 512 << 10},
		{"1M", 1 << 20},
		{"2MB", 2 << 20},
		{"1G", 1 << 30},
		{"100", 100},
		{"abc", 1 << 20},
	}
	for _, tt := range tests {
		if got := parseLimit(tt.in); got != tt.want {
			t.Errorf("parseLimit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBodyLimit_RejectsByContentLength(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/medicos", strings.NewReader(strings.Repeat("a", 200)))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := BodyLimit("100")(okHandler)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

func TestBodyLimit_RejectsWhileReading(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/medicos", strings.NewReader(strings.Repeat("a", 200)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var readErr error
	h := BodyLimit("100")(func(c echo.Context) error {
		_, readErr = io.ReadAll(c.Request().Body)
		return nil
	})
	h(c)

	if readErr == nil {
		t.Fatal("expected read error for oversized body")
	}
}

func TestBodyLimit_AllowsSmallBody(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/medicos", strings.NewReader(`{"crm":"1234"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var body []byte
	h := BodyLimit("1K")(func(c echo.Context) error {
		var err error
		body, err = io.ReadAll(c.Request().Body)
		return err
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"crm":"1234"}` {
		t.Errorf("unexpected body %q", body)
	}
}
