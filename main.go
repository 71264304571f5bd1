package main

import "github.com/kvconf/tomlv04/cmd/tomlcli"

func main() {
	tomlcli.Execute()
}
