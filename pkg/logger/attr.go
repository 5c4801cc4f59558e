package logger

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Collection records a seed collection name under the key "collection".
func Collection(name string) slog.Attr {
	return slog.String("collection", name)
}

// Index records a record position under the key "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// ValidationErrors groups field errors under "violations", one key per path
// holding that path's messages joined by "; ". Errors at the root are keyed "_".
// An empty list returns an empty Attr.
func ValidationErrors(errs validator.ValidationErrors) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	var keys []string
	messages := make(map[string][]string, len(errs))
	for _, e := range errs {
		key := e.Field
		if key == "" {
			key = "_"
		}
		if _, ok := messages[key]; !ok {
			keys = append(keys, key)
		}
		messages[key] = append(messages[key], e.Message)
	}
	as := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		as = append(as, slog.String(key, strings.Join(messages[key], "; ")))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}
