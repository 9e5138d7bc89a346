// Package main is the entry point for m3ugen.
package main

import (
	"github.com/m3ugen/m3ugen/cmd"
	"github.com/m3ugen/m3ugen/config"
	"github.com/m3ugen/m3ugen/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
