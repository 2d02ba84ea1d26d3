// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package lang provides text in alternative languages.
//
// The language precedence is the value of the "LANG" environment variable
// followed by a configurable default, then en_US.UTF-8.
//
// Use this build ldflag to configure the default,
//
//	-X github.com/mkopec/dcn-regdump/lang.Default=de_DE.UTF-8
package lang

import "os"

const (
	DeDE = "de_DE.UTF-8"
	EnUS = "en_US.UTF-8"
	FrFR = "fr_FR.UTF-8"
	JaJP = "ja_JP.UTF-8"
	PlPL = "pl_PL.UTF-8"
	ZhCN = "zh_CN.UTF-8"
)

var (
	Default = EnUS

	env string
)

type Alt map[string]string

// If available, this returns text in the preferred language.
func (m Alt) String() string {
	if len(env) == 0 {
		env = os.Getenv("LANG")
	}
	for _, lang := range []string{env, Default, EnUS} {
		if s, found := m[lang]; found {
			return s
		}
	}
	return ""
}
