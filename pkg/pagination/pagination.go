package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds pagination parameters extracted from a request.
type Params struct {
	Limit  int
	Offset int
}

// FromContext reads limit/offset, or the page-based pagina/tamanho pair
// (pagina starts at 0). limit/offset win when both are present.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit, _ = strconv.Atoi(c.QueryParam("tamanho"))
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || c.QueryParam("offset") == "" {
		page, _ := strconv.Atoi(c.QueryParam("pagina"))
		if page > 0 {
			offset = page * limit
		}
	}
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Page is the dados payload of list endpoints.
type Page struct {
	Itens   interface{} `json:"itens"`
	Total   int         `json:"total"`
	Limite  int         `json:"limite"`
	Offset  int         `json:"offset"`
	TemMais bool        `json:"temMais"`
}

func NewPage(items interface{}, total int, p Params) *Page {
	return &Page{
		Itens:   items,
		Total:   total,
		Limite:  p.Limit,
		Offset:  p.Offset,
		TemMais: p.HasNext(total),
	}
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}
