// Command tomldemo builds a TOML tree programmatically through the
// tomlast construction API and prints it, mirroring the handful of
// inserts build_toml.cpp performs with cpptoml::table/array.
package main

import (
	"fmt"
	"os"

	"github.com/kvconf/tomlv04/tomlast"
	"github.com/kvconf/tomlv04/tomlprint"
)

func mustArray(elems ...tomlast.Node) *tomlast.Array {
	a := tomlast.NewArray()
	for _, e := range elems {
		if err := a.Append(e); err != nil {
			panic(err)
		}
	}
	return a
}

func main() {
	root := tomlast.NewTable()
	root.InsertInt("Integer", 1234)
	root.InsertFloat("Double", 1.234)
	root.InsertString("String", "ABCD")

	table := tomlast.NewTable()
	table.InsertInt("ElementOne", 1)
	table.InsertFloat("ElementTwo", 2.0)
	table.InsertString("ElementThree", "THREE")

	nested := tomlast.NewTable()
	nested.InsertInt("ElementOne", 2)
	nested.InsertFloat("ElementTwo", 3.0)
	nested.InsertString("ElementThree", "FOUR")
	table.Insert("Nested", nested)

	root.Insert("Table", table)

	intArray := mustArray(
		tomlast.NewInt(1), tomlast.NewInt(2), tomlast.NewInt(3), tomlast.NewInt(4), tomlast.NewInt(5),
	)
	root.Insert("IntegerArray", intArray)

	doubleArray := mustArray(
		tomlast.NewFloat(1.1), tomlast.NewFloat(2.2), tomlast.NewFloat(3.3), tomlast.NewFloat(4.4), tomlast.NewFloat(5.5),
	)
	root.Insert("DoubleArray", doubleArray)

	stringArray := mustArray(
		tomlast.NewString("A"), tomlast.NewString("B"), tomlast.NewString("C"), tomlast.NewString("D"), tomlast.NewString("E"),
	)
	root.Insert("StringArray", stringArray)

	tableArray := tomlast.NewTableArray()
	tableArray.Append(table)
	tableArray.Append(table)
	tableArray.Append(table)
	root.Insert("TableArray", tableArray)

	arrayOfArrays := mustArray(intArray, doubleArray, stringArray)
	root.Insert("ArrayOfArrays", arrayOfArrays)

	if err := tomlprint.Fprint(os.Stdout, root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
