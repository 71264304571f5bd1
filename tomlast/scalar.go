package tomlast

// ScalarKind identifies the concrete type carried by a Scalar.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
	ScalarDatetime
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	case ScalarDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Scalar is a single typed leaf value: a string, a signed 64-bit integer,
// a double-precision float, a boolean, or a Datetime.
type Scalar struct {
	kind ScalarKind
	str  string
	i64  int64
	f64  float64
	b    bool
	dt   Datetime
}

func (s *Scalar) Kind() Kind            { return KindScalar }
func (s *Scalar) ScalarKind() ScalarKind { return s.kind }

// NewString, NewInt, NewFloat, NewBool, and NewDatetimeScalar build a
// Scalar of the given concrete kind, for programmatic tree construction.
func NewString(v string) *Scalar          { return &Scalar{kind: ScalarString, str: v} }
func NewInt(v int64) *Scalar              { return &Scalar{kind: ScalarInt, i64: v} }
func NewFloat(v float64) *Scalar          { return &Scalar{kind: ScalarFloat, f64: v} }
func NewBool(v bool) *Scalar              { return &Scalar{kind: ScalarBool, b: v} }
func NewDatetimeScalar(v Datetime) *Scalar { return &Scalar{kind: ScalarDatetime, dt: v} }

// AsString, AsInt, AsFloat, AsBool, and AsDatetime attempt to view the
// Scalar as the named concrete kind. The second return is false, and the
// first zero-valued, when s does not carry that kind.
func (s *Scalar) AsString() (string, bool) {
	if s.kind != ScalarString {
		return "", false
	}
	return s.str, true
}

func (s *Scalar) AsInt() (int64, bool) {
	if s.kind != ScalarInt {
		return 0, false
	}
	return s.i64, true
}

func (s *Scalar) AsFloat() (float64, bool) {
	if s.kind != ScalarFloat {
		return 0, false
	}
	return s.f64, true
}

func (s *Scalar) AsBool() (bool, bool) {
	if s.kind != ScalarBool {
		return false, false
	}
	return s.b, true
}

func (s *Scalar) AsDatetime() (Datetime, bool) {
	if s.kind != ScalarDatetime {
		return Datetime{}, false
	}
	return s.dt, true
}
