package runeio

import (
	"fmt"
	"strconv"
)

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// DelCtl is the mnemonic for delete.
var DelCtl = ControlRune{"<DEL>", 0x7F}

// CaretForm computes the ^-escaped printable form of a C0 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}

// Quote formats a rune scanned from a byte stream for a human reader: control
// runes by their mnemonic and caret form, like "<ESC> (^[)", non-ASCII bytes
// hex escaped, like '\xc3', anything else as a quoted Go rune literal.
func Quote(r rune) string {
	switch {
	case 0 <= r && r < 0x20:
		return C0Ctls[r].N + " (" + CaretForm(r) + ")"
	case r == DelCtl.R:
		return DelCtl.N + " (" + CaretForm(r) + ")"
	case r > DelCtl.R && r <= 0xff:
		return fmt.Sprintf(`'\x%02x'`, r)
	}
	return strconv.QuoteRune(r)
}
