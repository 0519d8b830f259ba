/*
Copyright © 2025 vipcxj
*/
package main

import (
	"os"

	"github.com/vipcxj/iset/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
