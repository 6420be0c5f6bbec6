package main

import (
	"os"

	"github.com/hashicorp-forge/teamwork-proxy/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
