package hal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var scriptKeys = map[string]KeyCode{
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"enter":  KeyEnter,
	"esc":    KeyEscape,
	"escape": KeyEscape,
}

// ParseKeyScript turns a comma separated key script into per-frame events.
//
// Tokens:
//
//	right*10        hold Right for 10 frames
//	shift+up*4      hold Shift+Up for 4 frames
//	5, r, q         type a single character
//	wait*30         30 frames without input
func ParseKeyScript(s string) ([][]KeyEvent, error) {
	var frames [][]KeyEvent
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		n := 1
		if i := strings.LastIndexByte(tok, '*'); i > 0 {
			v, err := strconv.Atoi(tok[i+1:])
			if err != nil || v <= 0 {
				return nil, fmt.Errorf("keyscript: bad repeat in %q", tok)
			}
			n = v
			tok = tok[:i]
		}

		name := strings.ToLower(tok)
		shift := false
		if rest, ok := strings.CutPrefix(name, "shift+"); ok {
			shift = true
			name = rest
		}

		switch code, ok := scriptKeys[name]; {
		case name == "wait":
			frames = append(frames, make([][]KeyEvent, n)...)
		case ok:
			var down, up []KeyEvent
			if shift {
				down = append(down, KeyEvent{Code: KeyShift, Press: true})
			}
			down = append(down, KeyEvent{Code: code, Press: true})
			up = append(up, KeyEvent{Code: code, Press: false})
			if shift {
				up = append(up, KeyEvent{Code: KeyShift, Press: false})
			}
			frames = append(frames, down)
			frames = append(frames, make([][]KeyEvent, n-1)...)
			frames = append(frames, up)
		case !shift && utf8.RuneCountInString(tok) == 1:
			r, _ := utf8.DecodeRuneInString(tok)
			for i := 0; i < n; i++ {
				frames = append(frames, []KeyEvent{{Press: true, Rune: r}})
			}
		default:
			return nil, fmt.Errorf("keyscript: unknown key %q", tok)
		}
	}
	return frames, nil
}
