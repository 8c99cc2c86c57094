// Package parser provides generic coercion infrastructure for ociprops.
//
// Property values arrive as arbitrary Go values: typed values from callers of
// the registry, and literals read from command line flags or config files.
// The parsers in this package convert such input into the canonical storage
// type of a property and validate the result.
//
// # Design Philosophy
//
// The package emphasizes type safety and composability through generics.
// Rather than providing numerous concrete implementations, it offers building
// blocks that can be composed to create specific parsers.
//
// # Core Interfaces
//
//   - Parser[T]: coerces any input into T and validates it
//   - Validator[T]: a composable validation function
//   - Concrete parsers for truthiness, integers and enum tokens
//
// # Textual Input
//
// ParseLiteral reads a string as a GoogleSQL-style literal so that
// "TRUE", "20", 'CHAR' and NULL reach the registry as bool, int64,
// string and nil respectively.
package parser
