package tomlcli

import (
	"strconv"

	"github.com/kvconf/tomlv04/tomlast"
)

// taggedValue is the JSON-tagged scalar/array form a conformance test
// driver expects: every leaf carries its kind alongside its stringified
// value, so a test harness never has to guess a JSON number's origin type.
type taggedValue struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// conform renders n in the JSON-tagged conformance form. Tables and
// table-arrays render as bare JSON objects/arrays; every other node
// renders as a taggedValue.
func conform(n tomlast.Node) interface{} {
	switch v := n.(type) {
	case *tomlast.Table:
		out := make(map[string]interface{}, v.Len())
		v.Range(func(key string, child tomlast.Node) bool {
			out[key] = conform(child)
			return true
		})
		return out
	case *tomlast.TableArray:
		out := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, _ := v.At(i)
			out = append(out, conform(elem))
		}
		return out
	case *tomlast.Array:
		elems := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, _ := v.At(i)
			elems = append(elems, conform(elem))
		}
		return taggedValue{Type: "array", Value: elems}
	case *tomlast.Scalar:
		return taggedValue{Type: scalarTypeName(v.ScalarKind()), Value: scalarText(v)}
	default:
		return nil
	}
}

func scalarTypeName(k tomlast.ScalarKind) string {
	switch k {
	case tomlast.ScalarString:
		return "string"
	case tomlast.ScalarInt:
		return "integer"
	case tomlast.ScalarFloat:
		return "float"
	case tomlast.ScalarBool:
		return "bool"
	case tomlast.ScalarDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// scalarText stringifies a scalar's value as plain text: strings as-is
// (unquoted, unescaped), integers in decimal, floats in shortest 'g' form
// (so 4.0 becomes "4"), datetimes in RFC 3339 form. The conformance form
// wraps every value in a JSON string regardless of kind.
func scalarText(s *tomlast.Scalar) string {
	switch s.ScalarKind() {
	case tomlast.ScalarString:
		v, _ := s.AsString()
		return v
	case tomlast.ScalarInt:
		v, _ := s.AsInt()
		return strconv.FormatInt(v, 10)
	case tomlast.ScalarFloat:
		v, _ := s.AsFloat()
		return strconv.FormatFloat(v, 'g', -1, 64)
	case tomlast.ScalarBool:
		v, _ := s.AsBool()
		if v {
			return "true"
		}
		return "false"
	case tomlast.ScalarDatetime:
		v, _ := s.AsDatetime()
		return v.String()
	default:
		return ""
	}
}
