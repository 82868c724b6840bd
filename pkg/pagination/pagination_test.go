package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(target string) Params {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return FromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor("/")

	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected default offset 0, got %d", p.Offset)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := paramsFor("/?limit=50&offset=10")

	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset)
	}
}

func TestFromContext_PageParams(t *testing.T) {
	p := paramsFor("/?pagina=2&tamanho=15")

	if p.Limit != 15 {
		t.Errorf("expected limit 15, got %d", p.Limit)
	}
	if p.Offset != 30 {
		t.Errorf("expected offset 30, got %d", p.Offset)
	}
}

func TestFromContext_MaxLimit(t *testing.T) {
	p := paramsFor("/?limit=500")

	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeOffset(t *testing.T) {
	p := paramsFor("/?offset=-5")

	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 5, Params{Limit: 2, Offset: 2})
	if !page.TemMais {
		t.Error("expected more results")
	}

	page = NewPage([]string{"e"}, 5, Params{Limit: 2, Offset: 4})
	if page.TemMais {
		t.Error("expected last page")
	}
}
