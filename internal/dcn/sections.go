// Copyright © 2024 Michal Kopec. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dcn

// Section is one logical register group of the report. Pattern is an
// extended regular expression anchored at the start of the prefixed
// register name.
type Section struct {
	Title   string
	Pattern string
}

// Sections define the report, in order. A section without a single matching
// register in the loaded database is omitted from the report entirely.
var Sections = []Section{
	{"DCHUBBUB", "DCHUBBUB_"},
	{"HUBP", "HUBPRE[TQ][0-9]+_|HUBP[0-9]+_"},
	{"DPP", "DPP[0-9]+_|CM[0-9]+_|CNVC_"},
	{"MPC", "MPC_|MPCC[0-9]+_"},
	{"OPP", "OPP_PIPE[0-9]+_|OPP_TOP_|ODM[0-9]+_|FMT[0-9]+_"},
	{"OTG", "OTG[0-9]+_"},
	{"DIG", "DIG[0-9]+_"},
	{"DP", "DP[0-9]+_"},
	{"HDMI", "HDMI[0-9]*_"},
	{"DCCG", "DCCG_|DPPCLK[0-9]*_|DISPCLK_"},
	{"DCIO", "DCIO_|DC_GPIO_"},
	{"AUX", "AUX[0-9]+_|DC_HPD[0-9]*_"},
}
