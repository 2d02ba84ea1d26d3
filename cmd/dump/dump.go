// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dump

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/liner"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"

	"github.com/mkopec/dcn-regdump/internal/amdpci"
	"github.com/mkopec/dcn-regdump/internal/assert"
	"github.com/mkopec/dcn-regdump/internal/dcn"
	"github.com/mkopec/dcn-regdump/internal/dcver"
	"github.com/mkopec/dcn-regdump/internal/devmem"
	"github.com/mkopec/dcn-regdump/lang"
)

const (
	Name    = "dump"
	Apropos = "dump display core registers with decoded bit-fields"
	Usage   = "dump [-v] [-defs DIR] [-version VERSION] [-device BUS-ADDR]"
	Man     = `
DESCRIPTION
	Dump the display core registers of the first AMD display device,
	section by section, with each raw value decoded into its declared
	bit-fields.

	The register layout is selected by the display core version the
	amdgpu driver announced in the kernel log. If the log has no
	announcement, the version is prompted for.

	-v		log the selected device and definition source
	-defs DIR	definition source directory
			(default ` + dcn.DefaultDir + `)
	-version V	override version detection
	-device ADDR	use the device at this PCI bus address instead of
			the first AMD display device`
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
	flag, args := flags.New(args, "-v")
	parm, args := parms.New(args, "-defs", "-version", "-device")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	if parm.ByName["-defs"] == "" {
		parm.ByName["-defs"] = dcn.DefaultDir
	}

	if err := assert.Root(); err != nil {
		return err
	}

	dev, err := device(parm.ByName["-device"])
	if err != nil {
		return err
	}

	version, err := version(parm.ByName["-version"])
	if err != nil {
		return err
	}

	src, err := dcn.Locate(parm.ByName["-defs"], version)
	if err != nil {
		return err
	}
	if flag.ByName["-v"] {
		log.Printf("note", "%s at %s, display core v%s, %s definitions",
			dev.Addr, devmem.Path, version, src.Format())
	}
	db, err := src.Load()
	if err != nil {
		return err
	}
	db.ResolvePrefix()

	mem, err := devmem.Map(dev.RegBase, dev.RegSize)
	if err != nil {
		return err
	}
	defer mem.Close()

	d := dcn.Dumper{
		DB:   db,
		Base: dcn.DCNBase,
		Dev:  dev.RegBase,
		Read: mem.Read32,
		W:    os.Stdout,
	}
	return d.Dump(dcn.Sections)
}

func device(addr string) (*amdpci.Device, error) {
	if addr != "" {
		return amdpci.Open(addr)
	}
	return amdpci.Find(amdpci.VendorAMD)
}

// version returns the override if given, then the kernel log announcement,
// then prompts the operator when there is a terminal to prompt on.
func version(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	v, err := dcver.Detect()
	if err != nil {
		log.Printf("note", "%s: %v", dcver.Path, err)
	}
	if v != "" {
		return v, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("display core version unknown; use -version")
	}
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	v, err = line.Prompt("display core version (e.g. 3.2.1): ")
	if err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("display core version unknown")
	}
	return v, nil
}
