// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUndefined marks a register the loaded generation doesn't have; the
// caller should skip it and continue.
var ErrUndefined = errors.New("not defined for this generation")

// DefsNotFoundError means no definition source resolves for the version,
// neither directly nor through the alias table.
type DefsNotFoundError struct {
	Version   string
	Available []string
}

func (e *DefsNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no register definitions for version %q",
			e.Version)
	}
	return fmt.Sprintf("no register definitions for version %q; available: %s",
		e.Version, strings.Join(e.Available, ", "))
}

// IncompletePairError means the counterpart of a located definition source
// is missing.
type IncompletePairError struct {
	Have    string
	Missing string
}

func (e *IncompletePairError) Error() string {
	return fmt.Sprintf("%s: missing counterpart %s", e.Have, e.Missing)
}

// MalformedError identifies an unparseable numeric literal in a definition
// source.
type MalformedError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }
