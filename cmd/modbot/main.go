// Command modbot launches the draggable box and modular robot demos.
package main

import "github.com/phanxgames/modbot/internal/cli"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.Execute(version)
}
