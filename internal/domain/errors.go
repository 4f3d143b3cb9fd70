package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrInvalidEntity          = errors.New("tipo de entidad inválido")
	ErrInvalidTransactionType = errors.New("tipo de transacción incompatible con la entidad")
	ErrInvalidQuantity        = errors.New("la cantidad debe ser un entero positivo")
	ErrInsufficientStock      = errors.New("stock insuficiente")
)
