package doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"github.com/clientehm/api/internal/platform/envelope"
	"github.com/clientehm/api/internal/platform/export"
	"github.com/clientehm/api/internal/platform/validation"
)

func newTestEcho() *echo.Echo {
	svc, _, _ := newTestService()
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = envelope.ErrorHandler(zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api/medicos"))
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func createViaAPI(t *testing.T, e *echo.Echo, nome, crm string) string {
	t.Helper()
	rec, body := doJSON(t, e, http.MethodPost, "/api/medicos",
		`{"nomeCompleto":"`+nome+`","crm":"`+crm+`","especialidade":"Cardiologia"}`)
	require.Equal(t, http.StatusCreated, rec.Code, body)
	return body["dados"].(map[string]interface{})["id"].(string)
}

func TestHandler_Create(t *testing.T) {
	e := newTestEcho()
	rec, body := doJSON(t, e, http.MethodPost, "/api/medicos",
		`{"nomeCompleto":"Dra. Helena","crm":"12345/SP","especialidade":"Cardiologia","rqe":"77"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(201), body["codigo"])
	dados := body["dados"].(map[string]interface{})
	assert.Equal(t, "12345/SP", dados["crm"])
	assert.Equal(t, "77", dados["rqe"])
}

func TestHandler_Create_Validation(t *testing.T) {
	e := newTestEcho()
	rec, body := doJSON(t, e, http.MethodPost, "/api/medicos",
		`{"nomeCompleto":"Jo","crm":"12","especialidade":"Cardiologia"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, envelope.MsgValidation, body["mensagem"])
	erros := body["erros"].(map[string]interface{})
	assert.Equal(t, "Nome completo deve ter no mínimo 3 caracteres", erros["nomeCompleto"])
	assert.Equal(t, "CRM inválido", erros["crm"])
	assert.NotContains(t, body, "dados")
}

func TestHandler_Create_DuplicateCRM(t *testing.T) {
	e := newTestEcho()
	createViaAPI(t, e, "Dra. Helena", "12345/SP")

	rec, body := doJSON(t, e, http.MethodPost, "/api/medicos",
		`{"nomeCompleto":"Dr. Outro","crm":"12345/sp","especialidade":"Pediatria"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, MsgCRMTaken, body["mensagem"])
}

func TestHandler_GetUpdateDelete(t *testing.T) {
	e := newTestEcho()
	id := createViaAPI(t, e, "Dra. Helena", "12345/SP")

	rec, body := doJSON(t, e, http.MethodGet, "/api/medicos/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dra. Helena", body["dados"].(map[string]interface{})["nomeCompleto"])

	rec, body = doJSON(t, e, http.MethodPut, "/api/medicos/"+id,
		`{"nomeCompleto":"   ","especialidade":"Arritmologia"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	dados := body["dados"].(map[string]interface{})
	assert.Equal(t, "Dra. Helena", dados["nomeCompleto"])
	assert.Equal(t, "Arritmologia", dados["especialidade"])

	rec, _ = doJSON(t, e, http.MethodDelete, "/api/medicos/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, e, http.MethodGet, "/api/medicos", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["dados"].(map[string]interface{})["total"])

	rec, body = doJSON(t, e, http.MethodGet, "/api/medicos?incluirExcluidos=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["dados"].(map[string]interface{})["total"])
}

func TestHandler_BadAndUnknownID(t *testing.T) {
	e := newTestEcho()

	rec, body := doJSON(t, e, http.MethodGet, "/api/medicos/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, float64(400), body["codigo"])

	rec, body = doJSON(t, e, http.MethodGet, "/api/medicos/6f1c5b0e-7d7b-4b8e-9a55-3f3c1f0c2a11", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, MsgNotFound, body["mensagem"])
}

func TestHandler_Export(t *testing.T) {
	e := newTestEcho()
	createViaAPI(t, e, "Dra. Helena", "12345/SP")
	createViaAPI(t, e, "Dr. Bruno", "54321/RJ")

	req := httptest.NewRequest(http.MethodGet, "/api/medicos/export", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "medicos.xlsx")

	f, err := xlsx.OpenBinary(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	sheet := f.Sheets[0]
	assert.Equal(t, "Médicos", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Nome completo", sheet.Rows[0].Cells[1].Value)
	assert.Equal(t, "Dr. Bruno", sheet.Rows[1].Cells[1].Value)
	assert.Equal(t, "Dra. Helena", sheet.Rows[2].Cells[1].Value)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()

	want := map[string]bool{
		"POST /api/medicos":       false,
		"GET /api/medicos":        false,
		"GET /api/medicos/export": false,
		"GET /api/medicos/:id":    false,
		"PUT /api/medicos/:id":    false,
		"DELETE /api/medicos/:id": false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "route %s not registered", route)
	}
}
