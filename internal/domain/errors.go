package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidCredentials cubre usuario inexistente y password incorrecto
	// con el mismo valor: el caller no puede distinguir ambos casos.
	ErrInvalidCredentials = errors.New("nombre de usuario o contraseña incorrectos")

	ErrNotAuthenticated = errors.New("sesión requerida")
	ErrForbidden        = errors.New("privilegios insuficientes")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNoSelection      = errors.New("ningún producto seleccionado")
)
