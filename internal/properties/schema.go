package properties

import (
	"github.com/apstndb/ociprops/enums"
	"github.com/apstndb/ociprops/internal/parser"
)

// property is a schema entry. The schema is fixed; see schema below.
type property struct {
	name        Name
	description string
	def         any

	// native properties are forwarded to NativeSetter before they are stored.
	native bool

	// minVersion gates the property on the Oracle client version. nil means always available.
	minVersion *Version

	// validate coerces value to the storage type or reports why it is invalid.
	validate func(value any) (any, error)
}

var (
	lengthSemanticsParser     = parser.NewEnumParserFromValues(enums.LengthSemanticsValues())
	floatConversionTypeParser = parser.NewEnumParserFromValues(enums.FloatConversionTypeValues())
	bindStringAsNCharParser   = parser.NewTruthParser()
	statementCacheSizeParser  = parser.NewIntParser().WithMin(0)
)

var schema = []*property{
	{
		name:        LengthSemantics,
		description: "BYTE when Oracle character length is counted by the number of bytes, CHAR when it is counted by the number of characters.",
		def:         enums.LengthSemanticsByte,
		validate:    coerceWith(lengthSemanticsParser),
	},
	{
		name:        BindStringAsNChar,
		description: "TRUE when string bind variables are bound as NCHAR, otherwise FALSE.",
		def:         false,
		validate:    coerceWith(bindStringAsNCharParser),
	},
	{
		name:        FloatConversionType,
		description: "GO when Oracle NUMBER values are converted to float64 from their decimal text, ORACLE when they are converted by the Oracle client library.",
		def:         enums.FloatConversionTypeGo,
		native:      true,
		// The native library decides what it accepts; only recognized tokens are normalized here.
		validate: func(value any) (any, error) {
			if v, err := floatConversionTypeParser.Parse(value); err == nil {
				return v, nil
			}
			return value, nil
		},
	},
	{
		name:        StatementCacheSize,
		description: "The statement cache size per session. 0 means no statement cache. Available on Oracle client 9.2 or later.",
		def:         0,
		minVersion:  &StatementCacheMinVersion,
		validate:    coerceWith(statementCacheSizeParser),
	},
}

func coerceWith[T any](p parser.Parser[T]) func(any) (any, error) {
	return func(value any) (any, error) {
		v, err := p.ParseAndValidate(value)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// supportedBy reports whether the property is available on the given client version.
func (p *property) supportedBy(v Version) bool {
	return p.minVersion == nil || !v.Less(*p.minVersion)
}
