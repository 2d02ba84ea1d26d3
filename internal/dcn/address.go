// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import "fmt"

// BaseTable maps a register's base index to the word offset its own offset
// is relative to. The table is generation specific.
type BaseTable []uint32

// DCNBase is the DC instance segment table shared by the DCN families this
// tool covers.
var DCNBase = BaseTable{
	0x00000012,
	0x000000C0,
	0x000034C0,
	0x00009000,
	0x02403C00,
}

// Resolve computes the absolute device address of a register: devBase plus
// four times the sum of the base-table entry and the register offset, the
// factor of four converting 32 bit word addressing to the byte oriented
// aperture base. Registers with an undeclared offset or base index, or a
// base index outside the table, resolve to ErrUndefined.
func (t BaseTable) Resolve(devBase uint64, r *Register) (uint64, error) {
	if r == nil {
		return 0, ErrUndefined
	}
	if !r.Defined() {
		return 0, fmt.Errorf("%s: %w", r.Name, ErrUndefined)
	}
	if r.BaseIdx < 0 || r.BaseIdx >= len(t) {
		return 0, fmt.Errorf("%s: base index %d: %w",
			r.Name, r.BaseIdx, ErrUndefined)
	}
	return devBase + 4*(uint64(t[r.BaseIdx])+uint64(r.Offset)), nil
}
