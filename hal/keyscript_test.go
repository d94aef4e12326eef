package hal

import (
	"reflect"
	"testing"
)

func TestParseKeyScript(t *testing.T) {
	testCases := map[string]struct {
		in   string
		want [][]KeyEvent
	}{
		"Empty": {in: " , ", want: nil},
		"Tap": {
			in: "right",
			want: [][]KeyEvent{
				{{Code: KeyRight, Press: true}},
				{{Code: KeyRight, Press: false}},
			},
		},
		"Hold": {
			in: "up*3",
			want: [][]KeyEvent{
				{{Code: KeyUp, Press: true}},
				nil,
				nil,
				{{Code: KeyUp, Press: false}},
			},
		},
		"Shift": {
			in: "shift+left*2",
			want: [][]KeyEvent{
				{{Code: KeyShift, Press: true}, {Code: KeyLeft, Press: true}},
				nil,
				{{Code: KeyLeft, Press: false}, {Code: KeyShift, Press: false}},
			},
		},
		"RunesAndWait": {
			in: "5, wait*2, r",
			want: [][]KeyEvent{
				{{Press: true, Rune: '5'}},
				nil,
				nil,
				{{Press: true, Rune: 'r'}},
			},
		},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKeyScript(tt.in)
			if err != nil {
				t.Fatalf("ParseKeyScript(%q): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseKeyScript(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKeyScriptErrors(t *testing.T) {
	for _, in := range []string{"jump", "up*0", "up*x", "shift+r", "left*-2"} {
		if _, err := ParseKeyScript(in); err == nil {
			t.Fatalf("ParseKeyScript(%q) err = nil, want error", in)
		}
	}
}
