package main

import (
	"os"

	"github.com/carlmjohnson/exitcode"
	"github.com/earthboundkid/retheme/retheme"
)

func main() {
	exitcode.Exit(retheme.CLI(os.Args[1:]))
}
