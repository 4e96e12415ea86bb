package perfume

import (
	"errors"
	"fmt"
)

// ErrNoPerfumes is returned when the whole catalog is empty.
var ErrNoPerfumes = errors.New("NO PERFUMES HAVE BEEN FOUND")

// ResourceNotFoundError reports a targeted lookup that matched nothing.
type ResourceNotFoundError struct {
	Resource string
	Field    string
	Value    string
}

func NotFound(field, value string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: "Perfume", Field: field, Value: value}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%s'", e.Resource, e.Field, e.Value)
}

func (e *ResourceNotFoundError) Details() map[string]any {
	return map[string]any{
		"resource": e.Resource,
		"field":    e.Field,
		"value":    e.Value,
	}
}
