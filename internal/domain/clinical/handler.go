package clinical

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/auth"
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

// RegisterRoutes mounts the clinical endpoints on api (/api).
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/prontuarios/:id/export", h.ExportRecord)

	api.POST("/prontuarios/:id/consultas", h.CreateConsultation)
	api.GET("/prontuarios/:id/consultas", h.ListConsultations)
	api.GET("/consultas/:id", h.GetConsultation)
	api.PUT("/consultas/:id", h.UpdateConsultation)
	api.DELETE("/consultas/:id", h.DeleteConsultation)

	api.POST("/prontuarios/:id/procedimentos", h.CreateProcedure)
	api.GET("/prontuarios/:id/procedimentos", h.ListProcedures)
	api.GET("/procedimentos/:id", h.GetProcedure)
	api.PUT("/procedimentos/:id", h.UpdateProcedure)
	api.DELETE("/procedimentos/:id", h.DeleteProcedure)

	api.POST("/prontuarios/:id/exames", h.CreateExam)
	api.GET("/prontuarios/:id/exames", h.ListExams)
	api.GET("/exames/:id", h.GetExam)
	api.PUT("/exames/:id", h.UpdateExam)
	api.DELETE("/exames/:id", h.DeleteExam)
}

func (h *Handler) ExportRecord(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	data, name, err := h.svc.ExportRecord(c.Request().Context(), id)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, export.ContentType, data)
}

// -- Consultations --

func (h *Handler) CreateConsultation(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req CreateConsultationRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	var actor uuid.UUID
	if p, ok := auth.PrincipalFromContext(c.Request().Context()); ok {
		actor = p.ID
	}
	dto, err := h.svc.CreateConsultation(c.Request().Context(), recordID, actor, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusCreated, "Consulta registrada com sucesso.", dto)
}

func (h *Handler) ListConsultations(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	page, err := h.svc.ListConsultations(c.Request().Context(), recordID, pagination.FromContext(c))
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Consultas recuperadas com sucesso.", page)
}

func (h *Handler) GetConsultation(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.GetConsultation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Consulta encontrada.", dto)
}

func (h *Handler) UpdateConsultation(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateConsultationRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.UpdateConsultation(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Consulta atualizada com sucesso.", dto)
}

func (h *Handler) DeleteConsultation(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteConsultation(c.Request().Context(), id); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Consulta excluída com sucesso.", nil)
}

// -- Procedures --

func (h *Handler) CreateProcedure(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req CreateProcedureRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.CreateProcedure(c.Request().Context(), recordID, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusCreated, "Procedimento registrado com sucesso.", dto)
}

func (h *Handler) ListProcedures(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	page, err := h.svc.ListProcedures(c.Request().Context(), recordID, pagination.FromContext(c))
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Procedimentos recuperados com sucesso.", page)
}

func (h *Handler) GetProcedure(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.GetProcedure(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Procedimento encontrado.", dto)
}

func (h *Handler) UpdateProcedure(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateProcedureRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.UpdateProcedure(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Procedimento atualizado com sucesso.", dto)
}

func (h *Handler) DeleteProcedure(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteProcedure(c.Request().Context(), id); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Procedimento excluído com sucesso.", nil)
}

// -- Exams --

func (h *Handler) CreateExam(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req CreateExamRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.CreateExam(c.Request().Context(), recordID, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusCreated, "Exame registrado com sucesso.", dto)
}

func (h *Handler) ListExams(c echo.Context) error {
	recordID, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	page, err := h.svc.ListExams(c.Request().Context(), recordID, pagination.FromContext(c))
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Exames recuperados com sucesso.", page)
}

func (h *Handler) GetExam(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.svc.GetExam(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Exame encontrado.", dto)
}

func (h *Handler) UpdateExam(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateExamRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	dto, err := h.svc.UpdateExam(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Exame atualizado com sucesso.", dto)
}

func (h *Handler) DeleteExam(c echo.Context) error {
	id, err := validation.PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteExam(c.Request().Context(), id); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Exame excluído com sucesso.", nil)
}
