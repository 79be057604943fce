package codegen

import (
	"strings"

	"github.com/minz/wasm2luau/pkg/codegen/luau"
	"github.com/minz/wasm2luau/pkg/wasmir"
)

// LuauBackend adapts a luau.Transpiler to a Name/Generate/
// GetFileExtension/SupportsFeature method set. This package declares no
// Backend interface; LuauBackend is a concrete type whose Generate takes a
// decoded wasm module handed in by an external decoder, and it is looked
// up through its own registry below.
type LuauBackend struct {
	options *BackendOptions
}

// NewLuauBackend creates a new Luau backend.
func NewLuauBackend(options *BackendOptions) *LuauBackend {
	return &LuauBackend{options: options}
}

// Name returns the name of this backend.
func (b *LuauBackend) Name() string {
	return "wasm2luau"
}

// Generate transpiles mod to Luau source text.
func (b *LuauBackend) Generate(mod *wasmir.Module) (string, error) {
	var buf strings.Builder
	if err := luau.New(mod).Transpile(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Runtime returns the fixed runtime library text every Generate output
// requires at load time via require(script.Runtime).
func (b *LuauBackend) Runtime() (string, error) {
	var buf strings.Builder
	if err := luau.New(nil).Runtime(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GetFileExtension returns the file extension for generated code.
func (b *LuauBackend) GetFileExtension() string {
	return ".lua"
}

// SupportsFeature checks if this backend supports a specific feature.
func (b *LuauBackend) SupportsFeature(feature string) bool {
	switch feature {
	case FeatureFloatingPoint:
		return true
	case Feature32BitPointers:
		return true
	case FeatureIndirectCalls:
		return true
	default:
		return false
	}
}

// LuauBackendFactory creates a LuauBackend instance.
type LuauBackendFactory func(options *BackendOptions) *LuauBackend

var luauBackends = make(map[string]LuauBackendFactory)

// RegisterLuauBackend registers a wasmir-domain backend under name.
func RegisterLuauBackend(name string, factory LuauBackendFactory) {
	luauBackends[name] = factory
}

// GetLuauBackend returns a registered wasmir-domain backend by name, or
// nil if none is registered under that name.
func GetLuauBackend(name string, options *BackendOptions) *LuauBackend {
	if factory, ok := luauBackends[name]; ok {
		return factory(options)
	}
	return nil
}

// ListLuauBackends returns the names of every registered wasmir-domain
// backend.
func ListLuauBackends() []string {
	names := make([]string, 0, len(luauBackends))
	for name := range luauBackends {
		names = append(names, name)
	}
	return names
}

func init() {
	RegisterLuauBackend("luau", func(options *BackendOptions) *LuauBackend {
		return NewLuauBackend(options)
	})
}
