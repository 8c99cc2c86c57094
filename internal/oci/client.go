// Package oci adapts the Oracle client library to the properties registry.
package oci

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/apstndb/ociprops/enums"
	"github.com/apstndb/ociprops/internal/properties"
)

var (
	ErrNoNativeProperty   = errors.New("not a native property")
	ErrInvalidNativeValue = errors.New("invalid native property value")
)

// StaticClient reports a fixed client version and keeps the native settings in process.
type StaticClient struct {
	version properties.Version
	logger  *zap.Logger

	mu              sync.Mutex
	floatConversion enums.FloatConversionType
}

// Option configures a StaticClient.
type Option func(*StaticClient)

// WithLogger traces native calls to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *StaticClient) {
		c.logger = l
	}
}

// NewStaticClient creates a client that reports version.
func NewStaticClient(version properties.Version, opts ...Option) *StaticClient {
	c := &StaticClient{
		version:         version,
		logger:          zap.NewNop(),
		floatConversion: enums.FloatConversionTypeGo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientVersion implements properties.VersionDetector.
func (c *StaticClient) ClientVersion() properties.Version {
	c.logger.Debug("client version", zap.Stringer("version", c.version))
	return c.version
}

// SetNativeProperty implements properties.NativeSetter.
func (c *StaticClient) SetNativeProperty(name properties.Name, value any) error {
	logger := c.logger.With(zap.Stringer("name", name), zap.Any("value", value))

	switch name {
	case properties.FloatConversionType:
		v, ok := value.(enums.FloatConversionType)
		if !ok || !v.IsAFloatConversionType() {
			logger.Debug("native property rejected")
			return fmt.Errorf("%w: %v (%T), must be one of %v", ErrInvalidNativeValue, value, value, enums.FloatConversionTypeValues())
		}

		c.mu.Lock()
		c.floatConversion = v
		c.mu.Unlock()

		logger.Debug("native property set")
		return nil
	default:
		logger.Debug("native property rejected")
		return fmt.Errorf("%w: %s", ErrNoNativeProperty, name)
	}
}

// FloatConversionType returns the conversion currently applied by the native library.
func (c *StaticClient) FloatConversionType() enums.FloatConversionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.floatConversion
}
