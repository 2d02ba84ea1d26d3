// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dcn loads AMD display core register definitions and decodes raw
// register values into their declared bit-fields.
package dcn

import "regexp"

// Register is one readable register of the loaded generation. Offset and
// BaseIdx may each be undeclared; a register missing either is valid but not
// present on this generation.
type Register struct {
	Name    string
	Offset  uint32
	BaseIdx int

	hasOffset  bool
	hasBaseIdx bool
}

// Defined reports whether the register resolves to a device address on the
// loaded generation.
func (r *Register) Defined() bool {
	return r != nil && r.hasOffset && r.hasBaseIdx
}

// BitField is one named sub-range of a register's bits, keyed by
// REGISTER__FIELD with the naming-convention prefix stripped. A field is
// only decodable once both its mask and shift have been declared.
type BitField struct {
	Name  string
	Mask  uint32
	Shift uint32

	hasMask  bool
	hasShift bool
}

// DB is the uniform register database both definition source formats load
// into. Registers and bit-fields keep their source declaration order.
type DB struct {
	regs   map[string]*Register
	order  []string
	fields map[string]*BitField
	forder []string
	prefix string
}

func NewDB() *DB {
	return &DB{
		regs:   make(map[string]*Register),
		fields: make(map[string]*BitField),
	}
}

func (db *DB) register(name string) *Register {
	r, found := db.regs[name]
	if !found {
		r = &Register{Name: name}
		db.regs[name] = r
		db.order = append(db.order, name)
	}
	return r
}

func (db *DB) field(name string) *BitField {
	f, found := db.fields[name]
	if !found {
		f = &BitField{Name: name}
		db.fields[name] = f
		db.forder = append(db.forder, name)
	}
	return f
}

func (db *DB) SetOffset(name string, v uint32) {
	r := db.register(name)
	r.Offset = v
	r.hasOffset = true
}

func (db *DB) SetBaseIdx(name string, v int) {
	r := db.register(name)
	r.BaseIdx = v
	r.hasBaseIdx = true
}

func (db *DB) SetMask(name string, v uint32) {
	f := db.field(name)
	f.Mask = v
	f.hasMask = true
}

func (db *DB) SetShift(name string, v uint32) {
	f := db.field(name)
	f.Shift = v
	f.hasShift = true
}

// Register returns the named register, or nil.
func (db *DB) Register(name string) *Register { return db.regs[name] }

// Names returns all register names in declaration order.
func (db *DB) Names() []string { return db.order }

// Match returns the registers whose prefixed name matches the anchored
// extended regular expression, in database order. The resolved
// naming-convention prefix is prepended to the pattern, so section patterns
// are written without it.
func (db *DB) Match(pattern string) ([]string, error) {
	re, err := regexp.Compile("^" + db.prefix + "(?:" + pattern + ")")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, name := range db.order {
		if re.MatchString(name) {
			names = append(names, name)
		}
	}
	return names, nil
}
