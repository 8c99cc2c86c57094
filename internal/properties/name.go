package properties

import "strings"

// Name identifies a property. Lookups are case-insensitive.
type Name string

const (
	LengthSemantics     Name = "length_semantics"
	BindStringAsNChar   Name = "bind_string_as_nchar"
	FloatConversionType Name = "float_conversion_type"
	StatementCacheSize  Name = "statement_cache_size"
)

func (n Name) String() string {
	return string(n)
}

func (n Name) normalize() Name {
	return Name(strings.ToLower(strings.TrimSpace(string(n))))
}
