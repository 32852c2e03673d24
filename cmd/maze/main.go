package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/cli"
)

func main() {
	opts, err := cli.ParseOptions("maze", os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := cli.Run(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
