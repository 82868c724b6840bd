package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/apperr"
)

type sampleRequest struct {
	NomeCompleto *string `json:"nomeCompleto" validate:"omitempty,min=3" mensagem:"Nome completo deve ter no mínimo 3 caracteres"`
	Email        string  `json:"email" validate:"required,email"`
	Descricao    string  `json:"descricao" validate:"notblank"`
}

func strPtr(s string) *string { return &s }

func TestValidate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{NomeCompleto: strPtr("Ana Souza"), Email: "ana@x.com", Descricao: "ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_OmittedPointerIsSkipped(t *testing.T) {
	v := New()
	if err := v.Validate(&sampleRequest{Email: "ana@x.com", Descricao: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ErrorsKeyedByJSONName(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{NomeCompleto: strPtr("Al"), Email: "not-an-email", Descricao: "   "})

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T", err)
	}
	if got := verrs["nomeCompleto"]; got != "Nome completo deve ter no mínimo 3 caracteres" {
		t.Errorf("unexpected nomeCompleto message %q", got)
	}
	if got := verrs["email"]; got != "E-mail inválido" {
		t.Errorf("unexpected email message %q", got)
	}
	if got := verrs["descricao"]; got != "Campo obrigatório" {
		t.Errorf("unexpected descricao message %q", got)
	}
}

func TestBind_MalformedBody(t *testing.T) {
	e := echo.New()
	e.Validator = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var dst sampleRequest
	err := Bind(c, &dst)
	if apperr.KindOf(err) != apperr.KindInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestBind_ValidatesAfterDecode(t *testing.T) {
	e := echo.New()
	e.Validator = New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	var dst sampleRequest
	err := Bind(c, &dst)
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if _, ok := verrs["email"]; !ok {
		t.Error("expected email violation")
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("not-a-uuid")
	if _, err := PathID(c, "id"); apperr.KindOf(err) != apperr.KindInvalidArgument {
		t.Errorf("expected invalid argument, got %v", err)
	}

	c.SetParamValues("6f1c5b0e-7d7b-4b8e-9a55-3f3c1f0c2a11")
	id, err := PathID(c, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "6f1c5b0e-7d7b-4b8e-9a55-3f3c1f0c2a11" {
		t.Errorf("unexpected id %s", id)
	}
}

func TestValidate_EmailOrBlank(t *testing.T) {
	type update struct {
		Email *string `json:"email" validate:"omitempty,emailorblank"`
	}
	v := New()
	for _, ok := range []string{"   ", "ana@x.com"} {
		if err := v.Validate(&update{Email: strPtr(ok)}); err != nil {
			t.Errorf("%q: unexpected error %v", ok, err)
		}
	}
	err := v.Validate(&update{Email: strPtr("nope")})
	var verrs Errors
	if !errors.As(err, &verrs) || verrs["email"] != "E-mail inválido" {
		t.Errorf("expected email violation, got %v", err)
	}
}
