// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package regdump dispatches the dcn-regdump sub-commands.
package regdump

import (
	"fmt"
	"sort"

	"github.com/mkopec/dcn-regdump/cmd"
	"github.com/mkopec/dcn-regdump/lang"
)

type Regdump struct {
	NAME    string
	USAGE   string
	APROPOS lang.Alt
	MAN     lang.Alt
	ByName  map[string]cmd.Cmd

	names []string // cache
}

func (g *Regdump) String() string { return g.NAME }

func (g *Regdump) Usage() string {
	usage := g.USAGE
	if len(usage) == 0 {
		usage = `
	` + g.NAME + ` COMMAND [ ARGS ]...
	` + g.NAME + ` COMMAND -[-]HELPER [ ARGS ]...
	` + g.NAME + ` HELPER [ COMMAND ]

	HELPER := { apropos | help | man | usage }`
	}
	return usage
}

func (g *Regdump) Apropos() lang.Alt {
	apropos := g.APROPOS
	if apropos == nil {
		apropos = lang.Alt{
			lang.EnUS: "display core register dump",
		}
	}
	return apropos
}

func (g *Regdump) Names() []string {
	if len(g.names) != len(g.ByName) {
		g.names = make([]string, 0, len(g.ByName))
		for k := range g.ByName {
			g.names = append(g.names, k)
		}
		sort.Strings(g.names)
	}
	return g.names
}

// Main runs the args[0] sub-command with the remaining arguments.
// A "-[-]HELPER" argument anywhere in the first two positions is swapped to
// the front so, e.g. "dump -help" becomes "help dump".
func (g *Regdump) Main(args ...string) error {
	if len(args) == 0 {
		return g.help()
	}
	cmd.Swap(args)
	switch args[0] {
	case "apropos":
		return g.apropos(args[1:]...)
	case "help":
		return g.help(args[1:]...)
	case "man":
		return g.man(args[1:]...)
	case "usage":
		return g.usage(args[1:]...)
	}
	v, found := g.ByName[args[0]]
	if !found {
		return fmt.Errorf("%s: command not found", args[0])
	}
	return v.Main(args[1:]...)
}
