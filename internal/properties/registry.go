package properties

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/apstndb/ociprops/enums"
)

// VersionDetector reports the version of the Oracle client library.
type VersionDetector interface {
	ClientVersion() Version
}

// NativeSetter applies a property inside the native client library.
// The registry passes the coerced value and treats any error as a failed write.
type NativeSetter interface {
	SetNativeProperty(name Name, value any) error
}

// Client is the part of the native client library the registry depends on.
type Client interface {
	VersionDetector
	NativeSetter
}

// Info describes a property.
type Info struct {
	Name        Name
	Description string
	Default     any
	Native      bool
	Supported   bool
	MinVersion  *Version
}

// Registry gates all reads and writes of the global settings.
type Registry struct {
	mu      sync.RWMutex
	values  map[Name]any
	props   map[Name]*property
	native  NativeSetter
	version Version
}

// New creates a registry populated with defaults.
// client.ClientVersion is called exactly once; properties the client does not
// support hold nil and reject every write for the lifetime of the registry.
func New(client Client) *Registry {
	r := &Registry{
		values:  make(map[Name]any, len(schema)),
		props:   make(map[Name]*property, len(schema)),
		native:  client,
		version: client.ClientVersion(),
	}

	for _, p := range schema {
		r.props[p.name] = p
		if p.supportedBy(r.version) {
			r.values[p.name] = p.def
		} else {
			r.values[p.name] = nil
		}
	}

	return r
}

func (r *Registry) lookup(name Name) (*property, error) {
	p, ok := r.props[name.normalize()]
	if !ok {
		return nil, &ErrUnknownProperty{Name: name}
	}
	return p, nil
}

// Get returns the current value of a property.
// It returns nil for a property the client does not support.
func (r *Registry) Get(name Name) (any, error) {
	p, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[p.name], nil
}

// Set validates value, forwards native properties to the client library, and stores the result.
// On any error the stored value is left unchanged.
func (r *Registry) Set(name Name, value any) error {
	p, err := r.lookup(name)
	if err != nil {
		return err
	}

	if !p.supportedBy(r.version) {
		return &ErrUnsupportedFeature{Name: p.name, ClientVersion: r.version, Required: *p.minVersion}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	coerced, err := p.validate(value)
	if err != nil {
		return invalidValue(p.name, value, err)
	}

	if p.native {
		if err := r.native.SetNativeProperty(p.name, coerced); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}

	r.values[p.name] = coerced
	slog.Debug("property updated", "name", p.name, "value", coerced)
	return nil
}

// Names returns all property names in schema order.
func (r *Registry) Names() []Name {
	names := make([]Name, 0, len(schema))
	for _, p := range schema {
		names = append(names, p.name)
	}
	return names
}

// All returns a consistent snapshot of every property in schema order.
func (r *Registry) All() iter.Seq2[Name, any] {
	r.mu.RLock()
	snapshot := make([]any, len(schema))
	for i, p := range schema {
		snapshot[i] = r.values[p.name]
	}
	r.mu.RUnlock()

	return func(yield func(Name, any) bool) {
		for i, p := range schema {
			if !yield(p.name, snapshot[i]) {
				return
			}
		}
	}
}

// Describe returns the schema information of a property.
func (r *Registry) Describe(name Name) (Info, error) {
	p, err := r.lookup(name)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Name:        p.name,
		Description: p.description,
		Default:     p.def,
		Native:      p.native,
		Supported:   p.supportedBy(r.version),
		MinVersion:  p.minVersion,
	}, nil
}

// ClientVersion returns the client version read when the registry was created.
func (r *Registry) ClientVersion() Version {
	return r.version
}

// LengthSemantics returns the current length_semantics.
func (r *Registry) LengthSemantics() enums.LengthSemantics {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[LengthSemantics].(enums.LengthSemantics)
}

// BindStringAsNChar returns the current bind_string_as_nchar.
func (r *Registry) BindStringAsNChar() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[BindStringAsNChar].(bool)
}

// FloatConversionType returns the current float_conversion_type.
// ok is false when the native library accepted a value that is not an
// enums.FloatConversionType; Get returns that value as stored, and v is the default.
func (r *Registry) FloatConversionType() (v enums.FloatConversionType, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok = r.values[FloatConversionType].(enums.FloatConversionType); ok {
		return v, true
	}
	return enums.FloatConversionTypeGo, false
}

// StatementCacheSize returns the current statement_cache_size.
// ok is false when the client does not support statement caching.
func (r *Registry) StatementCacheSize() (size int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	size, ok = r.values[StatementCacheSize].(int)
	return size, ok
}
