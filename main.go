package main

import (
	"github.com/genolab/pcrmix/cmd"
)

func main() {
	cmd.Execute()
}
