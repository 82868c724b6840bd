package patient

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/validation"
	"github.com/clientehm/api/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient endpoints on g (/api/pacientes).
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/prontuario", h.GetPatientRecord)
}

// RegisterRecordRoutes mounts read access to prontuários on g
// (/api/prontuarios).
func (h *Handler) RegisterRecordRoutes(g *echo.Group) {
	g.GET("/:id", h.GetRecord)
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
	return envelope.Success(c, http.StatusCreated, "Paciente cadastrado com sucesso.", dto)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	incl, _ := strconv.ParseBool(c.QueryParam("incluirExcluidos"))
	page, err := h.svc.List(c.Request().Context(), ListFilter{
		IncludeDeleted: incl,
		Nome:           c.QueryParam("nome"),
		CPF:            c.QueryParam("cpf"),
		Limit:          p.Limit,
		Offset:         p.Offset,
	})
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Pacientes recuperados com sucesso.", page)
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
	return envelope.Success(c, http.StatusOK, "Paciente encontrado.", dto)
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
	return envelope.Success(c, http.StatusOK, "Paciente atualizado com sucesso.", dto)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Paciente excluído com sucesso.", nil)
}

func (h *Handler) GetPatientRecord(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.PatientRecord(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Prontuário encontrado.", dto)
}

func (h *Handler) GetRecord(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.RecordDetails(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Prontuário encontrado.", dto)
}
