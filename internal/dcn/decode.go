// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import "strings"

// Field is one decoded bit-field value.
type Field struct {
	Name string
	Val  uint32
}

// Fields decodes raw into the bit-fields declared for the named register.
// Field ownership is by name prefix: every bit-field whose full name begins
// with the register base name and the "__" separator belongs to the
// register. Fields still missing a mask or shift are skipped. The result
// keeps the declaration order of the bit-field source.
func (db *DB) Fields(regName string, raw uint32) []Field {
	sep := StripPrefix(regName) + "__"
	var fields []Field
	for _, name := range db.forder {
		if !strings.HasPrefix(name, sep) {
			continue
		}
		f := db.fields[name]
		if !f.hasMask || !f.hasShift {
			continue
		}
		fields = append(fields, Field{
			Name: name[len(sep):],
			Val:  (raw & f.Mask) >> f.Shift,
		})
	}
	return fields
}
