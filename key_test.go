package vista

import (
	"testing"
)

func TestKeyEvent_Is(t *testing.T) {
	type tc struct {
		ev   KeyEvent
		key  Key
		mods []Modifier
		want bool
	}

	tests := map[string]tc{
		"plain key matches": {
			ev:   KeyEvent{Key: KeyEnter},
			key:  KeyEnter,
			want: true,
		},
		"different key": {
			ev:   KeyEvent{Key: KeyEnter},
			key:  KeyEscape,
			want: false,
		},
		"no mods argument ignores modifiers": {
			ev:   KeyEvent{Key: KeyTab, Mod: ModShift},
			key:  KeyTab,
			want: true,
		},
		"modifier must match exactly": {
			ev:   KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl},
			key:  KeyRune,
			mods: []Modifier{ModCtrl},
			want: true,
		},
		"extra modifier fails exact match": {
			ev:   KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl | ModShift},
			key:  KeyRune,
			mods: []Modifier{ModCtrl},
			want: false,
		},
		"combined modifiers": {
			ev:   KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModCtrl | ModAlt},
			key:  KeyRune,
			mods: []Modifier{ModCtrl, ModAlt},
			want: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.ev.Is(tt.key, tt.mods...); got != tt.want {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.key, tt.mods, got, tt.want)
			}
		})
	}
}

func TestKeyEvent_Char(t *testing.T) {
	if got := (KeyEvent{Key: KeyRune, Rune: 'a'}).Char(); got != 'a' {
		t.Errorf("Char() = %q, want 'a'", got)
	}
	if got := (KeyEvent{Key: KeyEnter}).Char(); got != 0 {
		t.Errorf("Char() = %q for a special key, want 0", got)
	}
}

func TestKey_String(t *testing.T) {
	type tc struct {
		key  Key
		want string
	}

	tests := map[string]tc{
		"named key": {key: KeyPageDown, want: "PageDown"},
		"function":  {key: KeyF12, want: "F12"},
		"unknown":   {key: Key(999), want: "Unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModifier_String(t *testing.T) {
	type tc struct {
		mod  Modifier
		want string
	}

	tests := map[string]tc{
		"none":     {mod: ModNone, want: "None"},
		"single":   {mod: ModAlt, want: "Alt"},
		"combined": {mod: ModCtrl | ModShift, want: "Ctrl+Shift"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mod.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
