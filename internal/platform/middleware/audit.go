package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/auth"
	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/events"
)

// AuditEntry describes one access to patient data.
type AuditEntry struct {
	AdminID    string
	AdminEmail string
	Resource   string
	ResourceID string
	Action     string // read, list, create, update, delete, export
	IPAddress  string
	UserAgent  string
	Path       string
	Method     string
	Timestamp  time.Time
	RequestID  string
	StatusCode int
}

// AuditRecorder persists audit entries in addition to the structured log.
type AuditRecorder interface {
	RecordAccess(ctx context.Context, entry AuditEntry) error
}

type AuditRecorderFunc func(ctx context.Context, entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(ctx context.Context, entry AuditEntry) error {
	return f(ctx, entry)
}

// EventAccessRecorded is published for every audited request.
const EventAccessRecorded = "acesso.registrado"

// accessEvent is the payload of EventAccessRecorded.
type accessEvent struct {
	AdministradorID    string    `json:"administradorId,omitempty"`
	AdministradorEmail string    `json:"administradorEmail,omitempty"`
	Recurso            string    `json:"recurso"`
	RecursoID          string    `json:"recursoId,omitempty"`
	Acao               string    `json:"acao"`
	Metodo             string    `json:"metodo"`
	Caminho            string    `json:"caminho"`
	Status             int       `json:"status"`
	IP                 string    `json:"ip"`
	RequestID          string    `json:"requestId,omitempty"`
	OcorridoEm         time.Time `json:"ocorridoEm"`
}

// EventRecorder publishes each audit entry as an acesso.registrado event.
// The aggregate is the accessed resource, or uuid.Nil for collection
// requests.
func EventRecorder(emitter events.Emitter) AuditRecorder {
	return AuditRecorderFunc(func(ctx context.Context, entry AuditEntry) error {
		aggregate, err := uuid.Parse(entry.ResourceID)
		if err != nil {
			aggregate = uuid.Nil
		}
		emitter.Emit(ctx, EventAccessRecorded, aggregate, accessEvent{
			AdministradorID:    entry.AdminID,
			AdministradorEmail: entry.AdminEmail,
			Recurso:            entry.Resource,
			RecursoID:          entry.ResourceID,
			Acao:               entry.Action,
			Metodo:             entry.Method,
			Caminho:            entry.Path,
			Status:             entry.StatusCode,
			IP:                 entry.IPAddress,
			RequestID:          entry.RequestID,
			OcorridoEm:         entry.Timestamp,
		})
		return nil
	})
}

// auditedResources are the /api collections that hold patient data.
var auditedResources = map[string]bool{
	"pacientes":     true,
	"prontuarios":   true,
	"consultas":     true,
	"procedimentos": true,
	"exames":        true,
}

// Audit logs every request that touches patient data with the
// authenticated administrator and the outcome.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			resource, id, sub := splitResourcePath(req.URL.Path)
			if !auditedResources[resource] {
				return next(c)
			}

			err := next(c)

			entry := AuditEntry{
				Timestamp:  time.Now().UTC(),
				Path:       req.URL.Path,
				Method:     req.Method,
				IPAddress:  c.RealIP(),
				UserAgent:  req.UserAgent(),
				Resource:   resource,
				ResourceID: id,
				Action:     actionFor(req.Method, id, sub),
				StatusCode: statusOf(c, err),
			}
			if p, ok := auth.PrincipalFromContext(req.Context()); ok {
				entry.AdminID = p.ID.String()
				entry.AdminEmail = p.Email
			}
			if rid, ok := c.Get("request_id").(string); ok {
				entry.RequestID = rid
			}

			for _, r := range recorders {
				if r == nil {
					continue
				}
				if recErr := r.RecordAccess(req.Context(), entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			logger.Info().
				Str("type", "audit").
				Str("request_id", entry.RequestID).
				Str("admin_id", entry.AdminID).
				Str("admin_email", entry.AdminEmail).
				Str("resource", entry.Resource).
				Str("resource_id", entry.ResourceID).
				Str("action", entry.Action).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Str("remote_ip", entry.IPAddress).
				Int("status", entry.StatusCode).
				Msg("patient_data_access")

			return err
		}
	}
}

// splitResourcePath breaks /api/<resource>[/<id>[/<sub>]] apart. id is
// empty when the second segment is not a UUID.
func splitResourcePath(path string) (resource, id, sub string) {
	if !strings.HasPrefix(path, "/api/") {
		return "", "", ""
	}
	segments := strings.Split(strings.Trim(strings.TrimPrefix(path, "/api/"), "/"), "/")
	resource = segments[0]
	if len(segments) > 1 && isUUIDLike(segments[1]) {
		id = segments[1]
	}
	if len(segments) > 2 {
		sub = segments[2]
	}
	return resource, id, sub
}

func actionFor(method, id, sub string) string {
	if sub == "export" {
		return "export"
	}
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	}
	if id == "" || (sub != "" && sub != "prontuario") {
		return "list"
	}
	return "read"
}

// statusOf reports the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return envelope.StatusFor(apperr.KindOf(err))
}

func isUUIDLike(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
