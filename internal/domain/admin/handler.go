package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/auth"
	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/validation"
)

const MsgNoPrincipal = "Nenhum administrador autenticado encontrado."

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the administrator endpoints on g
// (/api/administradores). limit guards the credential endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group, limit echo.MiddlewareFunc) {
	if limit == nil {
		limit = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	g.POST("/login", h.Login, limit)
	g.POST("/registrar", h.Register, limit)
	g.POST("/verificar-palavra-chave", h.VerifyKeyword, limit)
	g.PUT("/redefinir-senha", h.ResetPassword, limit)
	g.GET("/me", h.Me)
	g.PUT("/profile/verified-update", h.VerifiedUpdate)
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	resp, err := h.svc.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	data, err := h.svc.Register(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return envelope.Success(c, http.StatusCreated, "Administrador registrado com sucesso", data)
}

func (h *Handler) VerifyKeyword(c echo.Context) error {
	var req VerifyKeywordRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.VerifyKeyword(c.Request().Context(), &req); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Palavra-chave correta.", nil)
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.ResetPassword(c.Request().Context(), &req); err != nil {
		return err
	}
	return envelope.Success(c, http.StatusOK, "Senha alterada com sucesso.", nil)
}

func (h *Handler) Me(c echo.Context) error {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return envelope.Error(c, http.StatusUnauthorized, MsgNoPrincipal)
	}
	data, err := h.svc.Profile(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return envelope.Admin(c, http.StatusOK, "Dados do administrador recuperados com sucesso", data)
}

func (h *Handler) VerifiedUpdate(c echo.Context) error {
	p, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return envelope.Error(c, http.StatusUnauthorized, MsgNoPrincipal)
	}
	var req VerifiedProfileUpdateRequest
	if err := validation.Bind(c, &req); err != nil {
		return err
	}
	data, err := h.svc.UpdateVerifiedProfile(c.Request().Context(), p.ID, &req)
	if err != nil {
		return err
	}
	return envelope.Admin(c, http.StatusOK, "Dados atualizados com sucesso.", data)
}
