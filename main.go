package main

import (
	"github.com/OilCoder/reservoir-simulation-sub001/cmd"
)

func main() {
	cmd.Execute()
}
