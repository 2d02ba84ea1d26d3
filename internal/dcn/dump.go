// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"errors"
	"fmt"
	"io"
)

// Dumper drives read, decode and report for every register of every
// declared section. Read is the external 32 bit MMIO primitive; it sees
// absolute bus addresses. The device is typically owned by another actor,
// so each read is an uncoordinated snapshot and a failed read only skips
// that register.
type Dumper struct {
	DB   *DB
	Base BaseTable
	Dev  uint64
	Read func(uint64) (uint32, error)
	W    io.Writer
}

// Dump reports the sections in declared order, each register in database
// order, each bit-field in declaration order. Undefined and unreadable
// registers get a single skip notice and never abort the run.
func (d *Dumper) Dump(sections []Section) error {
	for _, s := range sections {
		names, err := d.DB.Match(s.Pattern)
		if err != nil {
			return fmt.Errorf("section %s: %v", s.Title, err)
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintln(d.W, s.Title)
		for _, name := range names {
			d.one(name)
		}
	}
	return nil
}

// One reports a single register by name.
func (d *Dumper) One(name string) {
	d.one(name)
}

func (d *Dumper) one(name string) {
	addr, err := d.Base.Resolve(d.Dev, d.DB.Register(name))
	if err != nil {
		if errors.Is(err, ErrUndefined) {
			fmt.Fprintf(d.W, "\t%s: not defined for this generation\n",
				name)
		} else {
			fmt.Fprintf(d.W, "\t%s: %v\n", name, err)
		}
		return
	}
	raw, err := d.Read(addr)
	if err != nil {
		fmt.Fprintf(d.W, "\t%s: unreadable: %v\n", name, err)
		return
	}
	d.Print(name, raw)
}

// Print reports a register and its decoded bit-fields from an already
// obtained raw value.
func (d *Dumper) Print(name string, raw uint32) {
	fmt.Fprintf(d.W, "\t%s: 0x%08x\n", name, raw)
	for _, f := range d.DB.Fields(name, raw) {
		fmt.Fprintf(d.W, "\t\t%s: %d\n", f.Name, f.Val)
	}
}
