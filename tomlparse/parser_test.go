package tomlparse

import (
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kvconf/tomlv04/tomlast"
	"github.com/kvconf/tomlv04/tomlerr"
)

func TestEmptyDocument(t *testing.T) {
	convey.Convey("an empty document parses to an empty root table", t, func() {
		root, err := Parse(strings.NewReader(""))
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Len(), convey.ShouldEqual, 0)
	})
}

func TestScalarAssignments(t *testing.T) {
	convey.Convey("scalar key/value lines", t, func() {
		src := "x = 1\npi = 3.14\nflag = true\nname = \"hi\"\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)

		i, ok := root.GetAsInt("x")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(i, convey.ShouldEqual, int64(1))

		f, ok := root.GetAsFloat("pi")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(f, convey.ShouldEqual, 3.14)

		b, ok := root.GetAsBool("flag")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(b, convey.ShouldBeTrue)

		s, ok := root.GetAsString("name")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, "hi")
	})
}

func TestArrayOfTables(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		src := `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
sku = 284758393
count = 100
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		ta, ok := root.GetTableArray("products")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(ta.Len(), convey.ShouldEqual, 2)
		first, _ := ta.At(0)
		name, _ := first.GetAsString("name")
		convey.So(name, convey.ShouldEqual, "Hammer")
		second, _ := ta.At(1)
		count, _ := second.GetAsInt("count")
		convey.So(count, convey.ShouldEqual, int64(100))
	})
}

func TestInlineTable(t *testing.T) {
	convey.Convey("inline table with a nested datetime", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		owner, ok := root.GetTable("owner")
		convey.So(ok, convey.ShouldBeTrue)
		name, _ := owner.GetAsString("name")
		convey.So(name, convey.ShouldEqual, "Tom")
		dob, ok := owner.GetAsDatetime("dob")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(dob.Year, convey.ShouldEqual, 1979)
	})
}

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multiline basic string joins embedded newlines", t, func() {
		src := "desc = \"\"\"first\nsecond\nthird\"\"\""
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		desc, ok := root.GetAsString("desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(desc, convey.ShouldEqual, "first\nsecond\nthird")
	})
}

func TestMultilineArrayWithComment(t *testing.T) {
	convey.Convey("multiline array tolerates a comment on an interior line", t, func() {
		src := `
ports = [
  8001, # primary
  8002,
]
`
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		arr, ok := root.GetArray("ports")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(arr.Len(), convey.ShouldEqual, 2)
		ints := arr.Ints()
		convey.So(*ints[0], convey.ShouldEqual, int64(8001))
		convey.So(*ints[1], convey.ShouldEqual, int64(8002))
	})
}

func TestNestedHeaders(t *testing.T) {
	convey.Convey("keys under a table header are reachable by qualified get", t, func() {
		src := "[srv]\nhost = \"h\"\nport = 80\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		host, ok := root.GetQualifiedAsString("srv.host")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(host, convey.ShouldEqual, "h")
	})
}

func TestImplicitTableMayBeAdoptedByLaterHeader(t *testing.T) {
	convey.Convey("a purely implicit table is adopted, not redefined", t, func() {
		src := "[a.b]\nx = 1\n[a]\ny = 2\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		y, ok := root.GetQualifiedAsInt("a.y")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(y, convey.ShouldEqual, int64(2))
	})

	convey.Convey("a table with direct entries cannot be reopened", t, func() {
		src := "[a]\nx = 1\n[a]\ny = 2\n"
		_, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldNotBeNil)
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.TableRedefined)
	})
}

func TestDuplicateKeyErrors(t *testing.T) {
	convey.Convey("a = 1\\na = 2 errors key-duplicate", t, func() {
		_, err := Parse(strings.NewReader("a = 1\na = 2\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.KeyDuplicate)
	})
}

func TestEmptyTableName(t *testing.T) {
	convey.Convey("a header with an empty dotted component errors empty-table-name", t, func() {
		_, err := Parse(strings.NewReader("[a..b]\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.EmptyTableName)
	})
}

func TestArrayHeterogeneousErrors(t *testing.T) {
	convey.Convey("arr = [1, \"x\"] errors array-heterogeneous", t, func() {
		_, err := Parse(strings.NewReader(`arr = [1, "x"]` + "\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.ArrayHeterogeneous)
	})

	convey.Convey("arr = [{a=1}] errors array-heterogeneous, not trailing-garbage", t, func() {
		_, err := Parse(strings.NewReader(`arr = [{a=1}]` + "\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.ArrayHeterogeneous)
	})
}

func TestIntegerOverflowErrors(t *testing.T) {
	convey.Convey("an out-of-range integer errors malformed-number", t, func() {
		_, err := Parse(strings.NewReader("x = 9999999999999999999\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.MalformedNumber)
	})
}

func TestUnterminatedStringErrors(t *testing.T) {
	convey.Convey("s = \"abc errors string-unterminated", t, func() {
		_, err := Parse(strings.NewReader(`s = "abc` + "\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.StringUnterminated)
	})
}

func TestTrailingGarbageAfterValue(t *testing.T) {
	convey.Convey("text after a closed value that isn't a comment errors trailing-garbage", t, func() {
		_, err := Parse(strings.NewReader("a = [1, 2] extra\n"))
		pe, ok := err.(*tomlerr.ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Code, convey.ShouldEqual, tomlerr.TrailingGarbage)
	})
}

func TestQuotedAssignmentKeyMayContainADot(t *testing.T) {
	convey.Convey("a quoted assignment key is one key, dot and all — this target version does not split it", t, func() {
		root, err := Parse(strings.NewReader(`"a.b" = 1` + "\n"))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetAsInt("a.b")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, int64(1))
	})
}

func TestDottedGetConsistentWithDirectGet(t *testing.T) {
	convey.Convey("qualified-get matches chained direct-get", t, func() {
		src := "[a]\n[a.b]\nc = 9\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		qualified, err := root.GetQualified("a.b.c")
		convey.So(err, convey.ShouldBeNil)
		a, _ := root.GetTable("a")
		b, _ := a.GetTable("b")
		direct, _ := b.Get("c")
		convey.So(qualified, convey.ShouldEqual, direct)
	})
}

func TestTableArrayHeaderResolvesToLastElement(t *testing.T) {
	convey.Convey("[[a]] then [a.x] resolves into the last element of a", t, func() {
		src := "[[a]]\nn = 1\n[[a]]\nn = 2\n[a.x]\ny = 3\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		ta, ok := root.GetTableArray("a")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(ta.Len(), convey.ShouldEqual, 2)
		last, _ := ta.At(1)
		n, _ := last.GetAsInt("n")
		convey.So(n, convey.ShouldEqual, int64(2))
		x, ok := last.GetTable("x")
		convey.So(ok, convey.ShouldBeTrue)
		y, _ := x.GetAsInt("y")
		convey.So(y, convey.ShouldEqual, int64(3))
	})
}

func TestArrayHomogeneityAcrossNestedArrays(t *testing.T) {
	convey.Convey("an array of arrays accepts differing inner shapes", t, func() {
		src := "a = [[1, 2], [\"x\", \"y\", \"z\"]]\n"
		root, err := Parse(strings.NewReader(src))
		convey.So(err, convey.ShouldBeNil)
		arr, ok := root.GetArray("a")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(arr.Len(), convey.ShouldEqual, 2)
		kind, ok := arr.ElementKind()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(kind, convey.ShouldEqual, tomlast.KindArray)
	})
}
