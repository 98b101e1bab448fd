package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autenticação e autorização (AUTH)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrSessionRequired    = "AUTH_002" // Cookie de sessão ausente ou inválido
	ErrSessionExpired     = "AUTH_003" // Sessão expirada
	ErrTenantAccessDenied = "AUTH_004" // Usuário sem acesso aos dados da empresa
	ErrUserDisabled       = "AUTH_005" // Usuário desativado

	// Erros de validação (VAL)
	ErrInvalidRequest  = "VAL_001" // Requisição inválida
	ErrInvalidFilters  = "VAL_002" // Filtros de relatório inválidos
	ErrNoValidFields   = "VAL_003" // Nenhum campo selecionado é permitido
	ErrInvalidDateSpan = "VAL_004" // Data inicial posterior à final

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrSessionRequired:    http.StatusUnauthorized,
	ErrSessionExpired:     http.StatusUnauthorized,
	ErrTenantAccessDenied: http.StatusForbidden,
	ErrUserDisabled:       http.StatusForbidden,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrInvalidFilters:     http.StatusBadRequest,
	ErrNoValidFields:      http.StatusBadRequest,
	ErrInvalidDateSpan:    http.StatusBadRequest,
	ErrInternalServer:     http.StatusInternalServerError,
	ErrDatabaseOperation:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado. Success é sempre false;
// o dashboard decide pelo campo `success` se a resposta é erro ou dado.
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Success: false,
		Code:    code,
		Error:   message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
