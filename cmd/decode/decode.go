// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package decode

import (
	"fmt"
	"os"
	"strconv"

	"github.com/platinasystems/parms"

	"github.com/mkopec/dcn-regdump/internal/dcn"
	"github.com/mkopec/dcn-regdump/lang"
)

const (
	Name    = "decode"
	Apropos = "decode a raw register value without touching the device"
	Usage   = "decode -version VERSION [-defs DIR] REGISTER VALUE"
	Man     = `
DESCRIPTION
	Decode a raw 32 bit value against the named register's declared
	bit-fields. No device access; useful for values captured elsewhere.`
)

var (
	apropos = lang.Alt{
		lang.EnUS: Apropos,
	}
	man = lang.Alt{
		lang.EnUS: Man,
	}
)

type Command struct{}

func (Command) Apropos() lang.Alt { return apropos }
func (Command) Man() lang.Alt     { return man }
func (Command) String() string    { return Name }
func (Command) Usage() string     { return Usage }

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-defs", "-version")
	if len(args) < 1 {
		return fmt.Errorf("REGISTER: missing")
	}
	if len(args) < 2 {
		return fmt.Errorf("VALUE: missing")
	}
	if len(args) > 2 {
		return fmt.Errorf("%v: unexpected", args[2:])
	}
	if parm.ByName["-defs"] == "" {
		parm.ByName["-defs"] = dcn.DefaultDir
	}
	if parm.ByName["-version"] == "" {
		return fmt.Errorf("-version: missing")
	}

	raw, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("%s: %v", args[1], err)
	}

	src, err := dcn.Locate(parm.ByName["-defs"], parm.ByName["-version"])
	if err != nil {
		return err
	}
	db, err := src.Load()
	if err != nil {
		return err
	}
	db.ResolvePrefix()

	name := args[0]
	if db.Register(name) == nil {
		prefixed := db.Prefix() + name
		if db.Register(prefixed) == nil {
			return fmt.Errorf("%s: unknown register", name)
		}
		name = prefixed
	}
	d := dcn.Dumper{DB: db, W: os.Stdout}
	d.Print(name, uint32(raw))
	return nil
}
