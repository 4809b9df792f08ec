package main

import (
	"github.com/monstermint/backend/internal/cli"
)

func main() {
	cli.Execute()
}
