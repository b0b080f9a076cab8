// main.go
//
// Entry point. All CLI handling lives in the Cobra root command in cmd/root.go.

package main

import (
	"github.com/pagepulse/pagepulse/cmd"
)

func main() {
	cmd.Execute()
}
