package main

import (
	"github.com/zbiljic/comlint/cmd"
)

func main() {
	cmd.Execute()
}
