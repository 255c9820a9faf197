package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// Errores del bootstrap de tenant. Cada paso de la secuencia falla con su
// propio error para que el caller sepa exactamente dónde se cortó; el
// mensaje del almacén subyacente viaja envuelto (errors.Is sigue funcionando).
var (
	ErrSlugTaken      = errors.New("el slug del negocio ya está en uso")
	ErrTenantCreate   = errors.New("no se pudo crear el tenant")
	ErrRoleCreate     = errors.New("no se pudo crear el rol administrador")
	ErrLocationCreate = errors.New("no se pudo crear la sucursal principal")
	ErrUserLink       = errors.New("no se pudo vincular el usuario al tenant")
	ErrUserLocation   = errors.New("no se pudo asignar la sucursal al usuario")
)
