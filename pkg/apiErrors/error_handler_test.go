package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_envelopeComSuccessFalse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrDatabaseOperation, "Erro ao consultar dados do relatório", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, false, body["success"])
	assert.Equal(t, "SRV_002", body["code"])
	assert.Equal(t, "Erro ao consultar dados do relatório", body["error"])
	assert.NotContains(t, body, "details")
}

func TestWriteError_statusPorCodigo(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrSessionExpired, http.StatusUnauthorized},
		{ErrTenantAccessDenied, http.StatusForbidden},
		{ErrInvalidFilters, http.StatusBadRequest},
		{ErrInvalidDateSpan, http.StatusBadRequest},
		{ErrInternalServer, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, tc.code, "mensagem", nil)
		assert.Equal(t, tc.status, rec.Code, "código %s", tc.code)
	}
}

func TestWriteError_codigoDesconhecidoVira500(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "XXX_999", "mensagem", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteError_detailsPreservados(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidFilters, "Filtros de relatório inválidos", []string{"Empresa é obrigatória"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, false, body["success"])
	assert.Equal(t, []any{"Empresa é obrigatória"}, body["details"])
}
