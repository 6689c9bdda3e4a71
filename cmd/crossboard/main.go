// cmd/crossboard/main.go
package main

import (
	cmd "github.com/mwiater/crossboard/internal/cli"
)

// main starts the crossboard CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
