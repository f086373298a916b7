package main

import (
	"os"

	"github.com/KarimHamidou/gdbindgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
