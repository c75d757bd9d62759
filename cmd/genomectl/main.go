package main

import (
	"os"

	"github.com/bomac1193/ophelian-os-sub001/interfaces/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
