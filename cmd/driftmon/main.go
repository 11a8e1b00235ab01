package main

import (
	"github.com/driftmon/driftmon/pkg/cli"
)

func main() {
	cli.Execute()
}
