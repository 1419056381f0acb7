package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Tipos de erro da API
var (
	ErrCredenciaisInvalidas     = errors.New("email ou senha incorretos")
	ErrTokenInvalido            = errors.New("não foi possível validar as credenciais")
	ErrProibido                 = errors.New("acesso negado")
	ErrNaoEncontrado            = errors.New("recurso não encontrado")
	ErrEmpresaNaoEncontrada     = errors.New("empresa não encontrada")
	ErrFuncionarioNaoEncontrado = errors.New("funcionário não encontrado")
	ErrChaveDuplicada           = errors.New("registro duplicado")
	ErrEmpresaComDependentes    = errors.New("empresa possui registros vinculados")
	ErrAutoExclusao             = errors.New("não é possível excluir o próprio usuário")
	ErrValidacao                = errors.New("dados inválidos")
)

// APIError representa um erro da API com status HTTP e mensagem ao cliente
type APIError struct {
	Code        int
	Message     string
	Kind        error
	OriginalErr error
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is e errors.As
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// Is compara pelo tipo do erro
func (e *APIError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// New cria um APIError do tipo informado
func New(kind error, message string, err error) *APIError {
	if message == "" {
		message = kind.Error()
	}
	return &APIError{
		Code:        statusDoTipo(kind),
		Message:     message,
		Kind:        kind,
		OriginalErr: err,
	}
}

// NotFound cria um erro 404
func NotFound(message string) *APIError {
	return New(ErrNaoEncontrado, message, nil)
}

// Forbidden cria um erro 403
func Forbidden(message string) *APIError {
	return New(ErrProibido, message, nil)
}

// BadRequest cria um erro de validação
func BadRequest(message string, err error) *APIError {
	return New(ErrValidacao, message, err)
}

// Duplicado cria um erro 400 para violação de unicidade
func Duplicado(message string, err error) *APIError {
	return New(ErrChaveDuplicada, message, err)
}

// Unauthorized cria um erro 401 de token
func Unauthorized(message string, err error) *APIError {
	return New(ErrTokenInvalido, message, err)
}

func statusDoTipo(kind error) int {
	switch kind {
	case ErrCredenciaisInvalidas, ErrTokenInvalido:
		return http.StatusUnauthorized
	case ErrProibido:
		return http.StatusForbidden
	case ErrNaoEncontrado, ErrEmpresaNaoEncontrada, ErrFuncionarioNaoEncontrado:
		return http.StatusNotFound
	case ErrChaveDuplicada, ErrEmpresaComDependentes, ErrAutoExclusao, ErrValidacao:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var tipos = []error{
	ErrCredenciaisInvalidas, ErrTokenInvalido, ErrProibido,
	ErrNaoEncontrado, ErrEmpresaNaoEncontrada, ErrFuncionarioNaoEncontrado,
	ErrChaveDuplicada, ErrEmpresaComDependentes, ErrAutoExclusao, ErrValidacao,
}

// Status retorna o status HTTP correspondente ao erro
func Status(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	for _, kind := range tipos {
		if errors.Is(err, kind) {
			return statusDoTipo(kind)
		}
	}
	return http.StatusInternalServerError
}

// Mensagem retorna o texto exposto ao cliente
func Mensagem(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	for _, kind := range tipos {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "erro interno do servidor"
}

// Responder escreve o erro como {"detail": "..."}
func Responder(w http.ResponseWriter, log *zap.Logger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error("erro inesperado", zap.Error(err))
	} else {
		log.Debug("requisição recusada", zap.Int("status", status), zap.Error(err))
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": Mensagem(err)})
}
