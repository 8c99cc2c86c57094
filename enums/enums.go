package enums

import (
	"fmt"
	"strings"
)

// LengthSemantics selects how Oracle character lengths are counted.
type LengthSemantics int

const (
	LengthSemanticsByte LengthSemantics = iota
	LengthSemanticsChar
)

var lengthSemanticsNames = []string{"BYTE", "CHAR"}

func (i LengthSemantics) String() string {
	if i < 0 || int(i) >= len(lengthSemanticsNames) {
		return fmt.Sprintf("LengthSemantics(%d)", int(i))
	}
	return lengthSemanticsNames[i]
}

// IsALengthSemantics reports whether i is a declared LengthSemantics.
func (i LengthSemantics) IsALengthSemantics() bool {
	return i >= 0 && int(i) < len(lengthSemanticsNames)
}

// LengthSemanticsValues returns all LengthSemantics values.
func LengthSemanticsValues() []LengthSemantics {
	return []LengthSemantics{LengthSemanticsByte, LengthSemanticsChar}
}

// LengthSemanticsString retrieves a LengthSemantics from its name, ignoring case.
func LengthSemanticsString(s string) (LengthSemantics, error) {
	for i, name := range lengthSemanticsNames {
		if strings.EqualFold(name, s) {
			return LengthSemantics(i), nil
		}
	}
	return 0, fmt.Errorf("%s does not belong to LengthSemantics values", s)
}

// FloatConversionType selects who converts Oracle NUMBER values to float64.
//
// FloatConversionTypeGo converts the decimal text with strconv, so a NUMBER of
// 15.7 becomes the float64 whose shortest representation is "15.7".
// FloatConversionTypeOracle lets the Oracle client library compute the value.
type FloatConversionType int

const (
	FloatConversionTypeGo FloatConversionType = iota
	FloatConversionTypeOracle
)

var floatConversionTypeNames = []string{"GO", "ORACLE"}

func (i FloatConversionType) String() string {
	if i < 0 || int(i) >= len(floatConversionTypeNames) {
		return fmt.Sprintf("FloatConversionType(%d)", int(i))
	}
	return floatConversionTypeNames[i]
}

// IsAFloatConversionType reports whether i is a declared FloatConversionType.
func (i FloatConversionType) IsAFloatConversionType() bool {
	return i >= 0 && int(i) < len(floatConversionTypeNames)
}

// FloatConversionTypeValues returns all FloatConversionType values.
func FloatConversionTypeValues() []FloatConversionType {
	return []FloatConversionType{FloatConversionTypeGo, FloatConversionTypeOracle}
}

// FloatConversionTypeString retrieves a FloatConversionType from its name, ignoring case.
func FloatConversionTypeString(s string) (FloatConversionType, error) {
	for i, name := range floatConversionTypeNames {
		if strings.EqualFold(name, s) {
			return FloatConversionType(i), nil
		}
	}
	return 0, fmt.Errorf("%s does not belong to FloatConversionType values", s)
}

// OutputFormat represents the listing format of the CLI.
type OutputFormat int

const (
	OutputFormatTable OutputFormat = iota
	OutputFormatYAML
	OutputFormatJSON
)

var outputFormatNames = []string{"TABLE", "YAML", "JSON"}

func (i OutputFormat) String() string {
	if i < 0 || int(i) >= len(outputFormatNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(i))
	}
	return outputFormatNames[i]
}

// OutputFormatValues returns all OutputFormat values.
func OutputFormatValues() []OutputFormat {
	return []OutputFormat{OutputFormatTable, OutputFormatYAML, OutputFormatJSON}
}

// OutputFormatString retrieves an OutputFormat from its name, ignoring case.
func OutputFormatString(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if strings.EqualFold(name, s) {
			return OutputFormat(i), nil
		}
	}
	return 0, fmt.Errorf("%s does not belong to OutputFormat values", s)
}
