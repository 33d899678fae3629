package text

import (
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// builtinFamilies are the Go fonts shipped with golang.org/x/image. They are
// available to every measurer without registration.
var builtinFamilies = map[string][]byte{
	"go":        goregular.TTF,
	"go bold":   gobold.TTF,
	"go italic": goitalic.TTF,
	"go medium": gomedium.TTF,
	"go mono":   gomono.TTF,
}

// genericFamilies map CSS generic names onto the builtin fonts so that
// styles authored for the browser measure sensibly.
var genericFamilies = map[string]string{
	"sans-serif": "go",
	"serif":      "go",
	"system-ui":  "go",
	"monospace":  "go mono",
}

// familyKey normalises a family name for lookups. A CSS font stack
// ("Inter, sans-serif") is reduced to its first entry.
func familyKey(name string) string {
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = name[:i]
	}
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	name = strings.ToLower(name)
	if alias, ok := genericFamilies[name]; ok {
		return alias
	}
	return name
}

// fontRegistry resolves family names to raw font data. Registered families
// shadow the builtin ones.
type fontRegistry struct {
	custom   map[string][]byte
	fallback string
}

func newFontRegistry(fallback string) fontRegistry {
	if fallback == "" {
		fallback = DefaultFamily
	}
	return fontRegistry{custom: make(map[string][]byte), fallback: familyKey(fallback)}
}

func (r *fontRegistry) register(name string, data []byte) (string, error) {
	key := familyKey(name)
	if key == "" {
		return "", ErrEmptyFamily
	}
	if len(data) == 0 {
		return "", ErrEmptyFontData
	}
	r.custom[key] = append([]byte(nil), data...)
	return key, nil
}

// lookup returns the resolved key and data for name. found is false when the
// fallback family was substituted.
func (r *fontRegistry) lookup(name string) (key string, data []byte, found bool) {
	key = familyKey(name)
	if d, ok := r.custom[key]; ok {
		return key, d, true
	}
	if d, ok := builtinFamilies[key]; ok {
		return key, d, true
	}
	if d, ok := r.custom[r.fallback]; ok {
		return r.fallback, d, false
	}
	if d, ok := builtinFamilies[r.fallback]; ok {
		return r.fallback, d, false
	}
	return "go", goregular.TTF, false
}
