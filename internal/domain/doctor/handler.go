package doctor

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/export"
	"github.com/clientehm/api/internal/platform/validation"
	"github.com/clientehm/api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the doctor endpoints on g (/api/medicos).
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusCreated, "Médico cadastrado com sucesso.", dto)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	f := filterFromQuery(c)
	f.Limit, f.Offset = p.Limit, p.Offset
	page, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Médicos recuperados com sucesso.", page)
}

func (h *Handler) Export(c echo.Context) error {
	data, err := h.svc.Export(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="medicos.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, data)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Médico encontrado.", dto)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Médico atualizado com sucesso.", dto)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Médico excluído com sucesso.", nil)
}

func filterFromQuery(c echo.Context) ListFilter {
	incl, _ := strconv.ParseBool(c.QueryParam("incluirExcluidos"))
	return ListFilter{
		IncludeDeleted: incl,
		Nome:           c.QueryParam("nome"),
		Especialidade:  c.QueryParam("especialidade"),
	}
}
