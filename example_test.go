package toml_test

import (
	"fmt"

	"github.com/kallstrom/toml"
)

func Example() {
	root, err := toml.LoadString(`
title = "TOML Example"

[owner]
name = "Tom"

[[servers]]
ip = "10.0.0.1"

[[servers]]
ip = "10.0.0.2"
`)
	if err != nil {
		fmt.Println(err)
		return
	}

	title, _ := toml.GetString(root, "title")
	fmt.Println(title)

	name, _ := toml.GetString(root, "owner.name")
	fmt.Println(name)

	ip, _ := toml.GetString(root, "servers.ip")
	fmt.Println(ip)

	// Output:
	// TOML Example
	// Tom
	// 10.0.0.2
}

func ExampleDumpJSON() {
	root, _ := toml.LoadString(`answer = 42`)
	out, _ := toml.DumpJSON(root)
	fmt.Println(string(out))
	// Output:
	// {"answer":{"type":"integer","value":"42"}}
}
