package models

import "errors"

// Сентинельные ошибки доменного слоя. Хендлеры сопоставляют их
// с HTTP-кодами через errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidPolygon = errors.New("invalid polygon")
	ErrUnauthorized   = errors.New("unauthorized")
)
