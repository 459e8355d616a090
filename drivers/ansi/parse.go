package ansidriver

import (
	"unicode/utf8"

	"github.com/vistaterm/vista"
)

// maxEscTail bounds how many trailing bytes of an unfinished escape
// sequence are carried to the next read. A sequence longer than this is
// not a key or mouse report; flushing it keeps garbage from pinning the
// parser.
const maxEscTail = 32

// parseInput turns raw tty bytes into input events. It handles printable
// runes, C0 control chords, CSI and SS3 key sequences, SGR mouse reports
// and Alt-prefixed keys. A trailing incomplete UTF-8 sequence or escape
// sequence is returned as the remainder so the next read can complete it.
// A lone ESC at the end of the buffer is reported as the escape key,
// matching what a user pressing ESC expects.
func parseInput(data []byte) ([]inputEvent, []byte) {
	full := data
	rest := incompleteUTF8Tail(data)
	if len(rest) > 0 {
		data = data[:len(data)-len(rest)]
	}

	var events []inputEvent
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyEscape}))
				i++
				continue
			}
			switch data[i+1] {
			case '[':
				ev, consumed, incomplete := parseCSI(data[i:])
				if consumed > 0 {
					if ev != nil {
						events = append(events, *ev)
					}
					i += consumed
					continue
				}
				if incomplete && len(full)-i <= maxEscTail {
					return events, full[i:]
				}
				events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyEscape}))
				i++
			case 'O':
				if i+2 >= len(data) {
					if len(full)-i <= maxEscTail {
						return events, full[i:]
					}
					events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyEscape}))
					i++
					continue
				}
				if key := ss3Key(data[i+2]); key != vista.KeyNone {
					events = append(events, keyEvent(vista.KeyEvent{Key: key}))
					i += 3
					continue
				}
				events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyEscape}))
				i++
			default:
				// Alt + printable.
				if data[i+1] >= 0x20 && data[i+1] < 0x7f {
					events = append(events, keyEvent(vista.KeyEvent{
						Key: vista.KeyRune, Rune: rune(data[i+1]), Mod: vista.ModAlt,
					}))
					i += 2
					continue
				}
				events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyEscape}))
				i++
			}
			continue
		}

		if b < 0x20 {
			events = append(events, keyEvent(controlKey(b)))
			i++
			continue
		}
		if b == 0x7f {
			events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyBackspace}))
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		events = append(events, keyEvent(vista.KeyEvent{Key: vista.KeyRune, Rune: r}))
		i += size
	}
	return events, rest
}

func keyEvent(ev vista.KeyEvent) inputEvent {
	return inputEvent{key: ev, isKey: true}
}

// controlKey maps a C0 control byte to a key event. Control chords carry
// the lowercase letter with ModCtrl; the bytes terminals overload for
// editing keys map to those keys instead.
func controlKey(b byte) vista.KeyEvent {
	switch b {
	case 0x08:
		return vista.KeyEvent{Key: vista.KeyBackspace}
	case 0x09:
		return vista.KeyEvent{Key: vista.KeyTab}
	case 0x0d:
		return vista.KeyEvent{Key: vista.KeyEnter}
	case 0x1b:
		return vista.KeyEvent{Key: vista.KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return vista.KeyEvent{Key: vista.KeyRune, Rune: rune('a' + b - 1), Mod: vista.ModCtrl}
	}
	return vista.KeyEvent{Key: vista.KeyNone}
}

// parseCSI parses a CSI sequence starting at data[0] (which must be ESC).
// Returns the event (nil for sequences to swallow) and bytes consumed.
// Zero consumed means no sequence was parsed; incomplete then reports
// whether more bytes could still complete one.
func parseCSI(data []byte) (ev *inputEvent, consumed int, incomplete bool) {
	if data[0] != 0x1b || data[1] != '[' {
		return nil, 0, false
	}
	if len(data) < 3 {
		return nil, 0, true
	}

	// SGR mouse report: CSI < b ; x ; y (M|m)
	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	var params []int
	cur, hasCur := 0, false
	i := 2
	for i < len(data) {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			hasCur = true
			i++
		case b == ';':
			params = append(params, cur)
			cur, hasCur = 0, false
			i++
		case b >= 0x40 && b <= 0x7e:
			if hasCur {
				params = append(params, cur)
			}
			key, mod := csiKey(params, b)
			if key == vista.KeyNone {
				return nil, i + 1, false
			}
			kev := keyEvent(vista.KeyEvent{Key: key, Mod: mod})
			return &kev, i + 1, false
		default:
			return nil, 0, false
		}
	}
	return nil, 0, true
}

func csiKey(params []int, final byte) (vista.Key, vista.Modifier) {
	mod := vista.ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return vista.KeyUp, mod
	case 'B':
		return vista.KeyDown, mod
	case 'C':
		return vista.KeyRight, mod
	case 'D':
		return vista.KeyLeft, mod
	case 'H':
		return vista.KeyHome, mod
	case 'F':
		return vista.KeyEnd, mod
	case 'Z':
		return vista.KeyBacktab, mod
	case 'P':
		return vista.KeyF1, mod
	case 'Q':
		return vista.KeyF2, mod
	case 'R':
		return vista.KeyF3, mod
	case 'S':
		return vista.KeyF4, mod
	case '~':
		if len(params) == 0 {
			return vista.KeyNone, vista.ModNone
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return key, mod
		}
	}
	return vista.KeyNone, vista.ModNone
}

var tildeKeys = map[int]vista.Key{
	1:  vista.KeyHome,
	2:  vista.KeyInsert,
	3:  vista.KeyDelete,
	4:  vista.KeyEnd,
	5:  vista.KeyPageUp,
	6:  vista.KeyPageDown,
	11: vista.KeyF1,
	12: vista.KeyF2,
	13: vista.KeyF3,
	14: vista.KeyF4,
	15: vista.KeyF5,
	17: vista.KeyF6,
	18: vista.KeyF7,
	19: vista.KeyF8,
	20: vista.KeyF9,
	21: vista.KeyF10,
	23: vista.KeyF11,
	24: vista.KeyF12,
}

func ss3Key(b byte) vista.Key {
	switch b {
	case 'P':
		return vista.KeyF1
	case 'Q':
		return vista.KeyF2
	case 'R':
		return vista.KeyF3
	case 'S':
		return vista.KeyF4
	case 'A':
		return vista.KeyUp
	case 'B':
		return vista.KeyDown
	case 'C':
		return vista.KeyRight
	case 'D':
		return vista.KeyLeft
	case 'H':
		return vista.KeyHome
	case 'F':
		return vista.KeyEnd
	}
	return vista.KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) vista.Modifier {
	if param <= 1 {
		return vista.ModNone
	}
	flags := param - 1
	var mod vista.Modifier
	if flags&1 != 0 {
		mod |= vista.ModShift
	}
	if flags&2 != 0 {
		mod |= vista.ModAlt
	}
	if flags&4 != 0 {
		mod |= vista.ModCtrl
	}
	return mod
}

// parseSGRMouse parses CSI < b ; x ; y (M|m). Coordinates arrive 1-based.
func parseSGRMouse(data []byte) (*inputEvent, int, bool) {
	var params [3]int
	pi := 0
	i := 3
	for i < len(data) {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			params[pi] = params[pi]*10 + int(b-'0')
			i++
		case b == ';':
			pi++
			if pi > 2 {
				return nil, 0, false
			}
			i++
		case b == 'M' || b == 'm':
			ev := decodeSGRMouse(params[0], params[1]-1, params[2]-1, b == 'm')
			return &ev, i + 1, false
		default:
			return nil, 0, false
		}
	}
	return nil, 0, true
}

func decodeSGRMouse(btn, x, y int, release bool) inputEvent {
	me := vista.MouseEvent{X: x, Y: y}

	if btn&4 != 0 {
		me.Mod |= vista.ModShift
	}
	if btn&8 != 0 {
		me.Mod |= vista.ModAlt
	}
	if btn&16 != 0 {
		me.Mod |= vista.ModCtrl
	}

	motion := btn&32 != 0
	switch {
	case btn&64 != 0:
		if btn&1 == 0 {
			me.Button = vista.MouseWheelUp
		} else {
			me.Button = vista.MouseWheelDown
		}
		me.Action = vista.MousePress
	default:
		switch btn & 3 {
		case 0:
			me.Button = vista.MouseLeft
		case 1:
			me.Button = vista.MouseMiddle
		case 2:
			me.Button = vista.MouseRight
		case 3:
			me.Button = vista.MouseNone
		}
		switch {
		case me.Button == vista.MouseNone:
			me.Action = vista.MouseMove
		case release:
			me.Action = vista.MouseRelease
		case motion:
			me.Action = vista.MouseDrag
		default:
			me.Action = vista.MousePress
		}
	}
	return inputEvent{mouse: me}
}

// incompleteUTF8Tail returns any incomplete UTF-8 sequence at the end of
// data, so it can be prepended to the next read.
func incompleteUTF8Tail(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			var want int
			switch {
			case b < 0xE0:
				want = 2
			case b < 0xF0:
				want = 3
			default:
				want = 4
			}
			if i < want {
				return data[len(data)-i:]
			}
			return nil
		}
		if b >= 0x80 {
			continue
		}
		return nil
	}
	return nil
}
