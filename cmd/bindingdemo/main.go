// Command bindingdemo drives a console screen bound to view models.
package main

import (
	"os"

	"github.com/go-drift/bindings/cmd/bindingdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
