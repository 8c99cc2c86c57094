// Package properties implements the global settings of the Oracle client binding.
//
// A Registry holds a fixed set of named properties. Every write goes through
// the property's validator, which coerces the value to its storage type and
// may reject it. Some properties forward the coerced value to the native
// client library before it is stored, and some are only available on recent
// Oracle clients; the client version is read once when the registry is created.
//
// # Properties
//
//   - length_semantics: BYTE (default) or CHAR. Whether Oracle character
//     lengths count bytes or characters. BYTE is the default because CHAR
//     behaves unexpectedly on Oracle 9i.
//   - bind_string_as_nchar: whether string bind variables are bound as NCHAR.
//     Any value is accepted. Only nil, false and nil pointers, maps, slices,
//     funcs and channels store false; everything else, 0 and "" included,
//     stores true. Default false.
//   - float_conversion_type: GO (default) converts Oracle NUMBER values to
//     float64 from their decimal text; ORACLE lets the client library compute
//     them. The native library validates and applies the setting.
//   - statement_cache_size: statement cache size per session. Default 0,
//     meaning no cache. Requires Oracle client 9.2 or later; on older clients
//     the value is nil and every write fails with ErrUnsupportedFeature.
//
// # Usage
//
//	reg := properties.New(client)
//	if err := reg.Set(properties.BindStringAsNChar, true); err != nil {
//	    return err
//	}
//	v, err := reg.Get(properties.StatementCacheSize)
package properties
