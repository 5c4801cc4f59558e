package shop

import (
	"errors"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/pkg/schema"
)

// ErrBind is returned when a validated value cannot be bound to the requested Go type.
var ErrBind = errors.New("shop: cannot bind validated value")

// Registry returns the process-wide storefront schema registry. It is built on
// first use and never modified afterwards.
var Registry = sync.OnceValue(buildRegistry)

// Names returns every registered schema name.
func Names() []string {
	return Registry().Names()
}

// Validate validates raw against the named schema and returns the normalized value.
// An unknown name panics; failed validation returns validator.ValidationErrors.
func Validate(name string, raw any, opts ...schema.Option) (any, error) {
	return Registry().Validate(name, raw, opts...)
}

// ValidateJSON decodes data and validates it against the named schema.
func ValidateJSON(name string, data []byte, opts ...schema.Option) (any, error) {
	return schema.ValidateJSON(Registry().MustLookup(name), data, opts...)
}

// Parse validates raw against the named schema and binds the normalized value into T.
//
//	product, err := shop.Parse[shop.ProductInput](shop.SchemaProductInput, form)
func Parse[T any](name string, raw any, opts ...schema.Option) (T, error) {
	var out T
	v, err := Validate(name, raw, opts...)
	if err != nil {
		return out, err
	}
	if err := bind(v, &out); err != nil {
		return out, err
	}
	return out, nil
}

// bind copies a normalized value into a typed struct through its JSON form.
func bind(v any, dst any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrBind, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Join(ErrBind, err)
	}
	return nil
}

// NewClientID returns a fresh client-side identifier for a cart line.
func NewClientID() string {
	return uuid.NewString()
}
