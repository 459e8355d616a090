package vista

import (
	"reflect"
	"testing"
)

// recordKey appends the view's ID to log when its hook runs, claiming the
// event iff claim is true.
func recordKey(log *[]string, claim bool) func(*View, KeyEvent) bool {
	return func(v *View, ev KeyEvent) bool {
		*log = append(*log, v.ID())
		return claim
	}
}

func TestDispatch_HotKeyPreOrder(t *testing.T) {
	var log []string
	root := NewView(WithID("root"), WithOnHotKey(recordKey(&log, false)))
	a := NewView(WithID("a"), WithOnHotKey(recordKey(&log, false)))
	b := NewView(WithID("b"), WithOnHotKey(recordKey(&log, false)))
	inner := NewView(WithID("inner"), WithOnHotKey(recordKey(&log, false)))
	root.Add(a)
	root.Add(b)
	a.Add(inner)

	if root.ProcessHotKey(KeyEvent{Key: KeyRune, Rune: 'x'}) {
		t.Error("ProcessHotKey() = true with no view claiming")
	}
	want := []string{"root", "a", "inner", "b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hot-key order = %v, want %v", log, want)
	}
}

func TestDispatch_HotKeyStopsAtClaim(t *testing.T) {
	var log []string
	root := NewView(WithID("root"), WithOnHotKey(recordKey(&log, false)))
	a := NewView(WithID("a"), WithOnHotKey(recordKey(&log, true)))
	b := NewView(WithID("b"), WithOnHotKey(recordKey(&log, false)))
	root.Add(a)
	root.Add(b)

	if !root.ProcessHotKey(KeyEvent{Key: KeyRune, Rune: 'x'}) {
		t.Error("ProcessHotKey() = false, want true when a view claims")
	}
	want := []string{"root", "a"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("hot-key order = %v, want %v (traversal must stop at the claim)", log, want)
	}
}

func TestDispatch_KeyFollowsFocusChain(t *testing.T) {
	var log []string
	root := NewView(WithID("root"), WithOnKey(recordKey(&log, false)))
	root.SetFrame(NewRect(0, 0, 80, 24))
	focused := NewView(WithID("focused"), WithCanFocus(true), WithOnKey(recordKey(&log, false)))
	bystander := NewView(WithID("bystander"), WithCanFocus(true), WithOnKey(recordKey(&log, false)))
	root.Add(bystander)
	root.Add(focused)
	root.SetFocus(focused)

	root.ProcessKey(KeyEvent{Key: KeyRune, Rune: 'x'})

	// The focused view sees the event first, then its ancestors. Views off
	// the focus chain never see it.
	want := []string{"focused", "root"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("key order = %v, want %v", log, want)
	}
}

func TestDispatch_KeyClaimStopsBubbling(t *testing.T) {
	var log []string
	root := NewView(WithID("root"), WithOnKey(recordKey(&log, false)))
	root.SetFrame(NewRect(0, 0, 80, 24))
	focused := NewView(WithID("focused"), WithCanFocus(true), WithOnKey(recordKey(&log, true)))
	root.Add(focused)
	root.SetFocus(focused)

	if !root.ProcessKey(KeyEvent{Key: KeyEnter}) {
		t.Error("ProcessKey() = false, want true when the focused view claims")
	}
	want := []string{"focused"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("key order = %v, want %v", log, want)
	}
}

func TestDispatch_ColdKeyPostOrder(t *testing.T) {
	var log []string
	root := NewView(WithID("root"), WithOnColdKey(recordKey(&log, false)))
	a := NewView(WithID("a"), WithOnColdKey(recordKey(&log, false)))
	inner := NewView(WithID("inner"), WithOnColdKey(recordKey(&log, false)))
	root.Add(a)
	a.Add(inner)

	root.ProcessColdKey(KeyEvent{Key: KeyEnter})

	want := []string{"inner", "a", "root"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("cold-key order = %v, want %v", log, want)
	}
}

func TestDispatch_PhaseOrdering(t *testing.T) {
	type tc struct {
		hotClaims  bool
		keyClaims  bool
		wantPhases []string
	}

	tests := map[string]tc{
		"hot claim short-circuits": {
			hotClaims:  true,
			wantPhases: []string{"hot"},
		},
		"normal claim skips cold": {
			keyClaims:  true,
			wantPhases: []string{"hot", "key"},
		},
		"unclaimed reaches cold": {
			wantPhases: []string{"hot", "key", "cold"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			driver := NewMockDriver(80, 24)
			app, err := NewApp(driver)
			if err != nil {
				t.Fatalf("NewApp() error = %v", err)
			}
			var phases []string
			root := NewView(WithID("root"),
				WithCanFocus(true),
				WithOnHotKey(func(v *View, ev KeyEvent) bool {
					phases = append(phases, "hot")
					return tt.hotClaims
				}),
				WithOnKey(func(v *View, ev KeyEvent) bool {
					phases = append(phases, "key")
					return tt.keyClaims
				}),
				WithOnColdKey(func(v *View, ev KeyEvent) bool {
					phases = append(phases, "cold")
					return false
				}))
			app.SetTop(root)

			driver.QueueKey(KeyEvent{Key: KeyEnter})
			app.RunOnce()

			if !reflect.DeepEqual(phases, tt.wantPhases) {
				t.Errorf("phases = %v, want %v", phases, tt.wantPhases)
			}
		})
	}
}
