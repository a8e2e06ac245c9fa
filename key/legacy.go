// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes
// ABOUTME: Includes the xterm modifier-parameter forms for Shift, Alt, and Ctrl

package key

// legacySequences maps standard CSI and SS3 escape sequences to Key values.
// The ";2", ";3", and ";5" parameter forms carry Shift, Alt, and Ctrl.
var legacySequences = map[string]Key{
	// CSI sequences
	"\x1b[A":  {Type: Up},
	"\x1b[B":  {Type: Down},
	"\x1b[C":  {Type: Right},
	"\x1b[D":  {Type: Left},
	"\x1b[H":  {Type: Home},
	"\x1b[F":  {Type: End},
	"\x1b[5~": {Type: PageUp},
	"\x1b[6~": {Type: PageDown},
	"\x1b[3~": {Type: Delete},
	"\x1b[1~": {Type: Home},
	"\x1b[4~": {Type: End},
	"\x1b[Z":  {Type: BackTab, Shift: true},

	// SS3 variants (application mode)
	"\x1bOA": {Type: Up},
	"\x1bOB": {Type: Down},
	"\x1bOC": {Type: Right},
	"\x1bOD": {Type: Left},
	"\x1bOH": {Type: Home},
	"\x1bOF": {Type: End},

	// Shift-modified
	"\x1b[1;2A": {Type: Up, Shift: true},
	"\x1b[1;2B": {Type: Down, Shift: true},
	"\x1b[1;2C": {Type: Right, Shift: true},
	"\x1b[1;2D": {Type: Left, Shift: true},
	"\x1b[3;2~": {Type: Delete, Shift: true},
	"\x1b[5;2~": {Type: PageUp, Shift: true},
	"\x1b[6;2~": {Type: PageDown, Shift: true},

	// Alt-modified
	"\x1b[1;3A": {Type: Up, Alt: true},
	"\x1b[1;3B": {Type: Down, Alt: true},
	"\x1b[1;3C": {Type: Right, Alt: true},
	"\x1b[1;3D": {Type: Left, Alt: true},
	"\x1b[3;3~": {Type: Delete, Alt: true},

	// Ctrl-modified
	"\x1b[1;5A": {Type: Up, Ctrl: true},
	"\x1b[1;5B": {Type: Down, Ctrl: true},
	"\x1b[1;5C": {Type: Right, Ctrl: true},
	"\x1b[1;5D": {Type: Left, Ctrl: true},
	"\x1b[3;5~": {Type: Delete, Ctrl: true},
	"\x1b[5;5~": {Type: PageUp, Ctrl: true},
	"\x1b[6;5~": {Type: PageDown, Ctrl: true},
}
