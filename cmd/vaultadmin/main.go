package main

import (
	"github.com/aduwothevillian/GameVault/internal/cli"
)

func main() {
	cli.Execute()
}
