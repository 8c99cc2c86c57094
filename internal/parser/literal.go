package parser

import (
	"strconv"
	"strings"

	"github.com/cloudspannerecosystem/memefish"
	"github.com/cloudspannerecosystem/memefish/ast"
)

// ParseLiteral reads s as a GoogleSQL literal and returns its Go value.
//
//   - TRUE / FALSE            -> bool
//   - integer literals        -> int64
//   - floating point literals -> float64
//   - NULL                    -> nil
//   - 'quoted' / "quoted"     -> string
//   - bare identifiers        -> string
//
// Anything else, including input memefish cannot parse, is returned as the
// trimmed original string.
func ParseLiteral(s string) (result any) {
	s = strings.TrimSpace(s)

	// memefish panics on some unterminated literals instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			result = s
		}
	}()

	expr, err := memefish.ParseExpr("", s)
	if err != nil {
		return s
	}

	if v, ok := literalValue(expr); ok {
		return v
	}
	return s
}

func literalValue(expr ast.Expr) (any, bool) {
	switch lit := expr.(type) {
	case *ast.NullLiteral:
		return nil, true
	case *ast.BoolLiteral:
		return lit.Value, true
	case *ast.StringLiteral:
		return lit.Value, true
	case *ast.Ident:
		return lit.Name, true
	case *ast.IntLiteral:
		i, err := parseIntLiteral(lit)
		if err != nil {
			return nil, false
		}
		return i, true
	case *ast.FloatLiteral:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case *ast.ParenExpr:
		return literalValue(lit.Expr)
	case *ast.UnaryExpr:
		v, ok := literalValue(lit.Expr)
		if !ok {
			return nil, false
		}
		switch lit.Op {
		case ast.OpPlus:
		case ast.OpMinus:
		default:
			return nil, false
		}
		switch v := v.(type) {
		case int64:
			if lit.Op == ast.OpMinus {
				return -v, true
			}
			return v, true
		case float64:
			if lit.Op == ast.OpMinus {
				return -v, true
			}
			return v, true
		default:
			return nil, false
		}
	default:
		return nil, false
	}
}

func parseIntLiteral(lit *ast.IntLiteral) (int64, error) {
	if lit.Base == 16 {
		v := strings.TrimPrefix(strings.TrimPrefix(lit.Value, "0x"), "0X")
		return strconv.ParseInt(v, 16, 64)
	}
	return strconv.ParseInt(lit.Value, 10, 64)
}
