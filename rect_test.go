package vista

import (
	"testing"
)

func TestRect_Contains(t *testing.T) {
	type tc struct {
		rect Rect
		x, y int
		want bool
	}

	tests := map[string]tc{
		"interior point": {
			rect: NewRect(5, 5, 10, 10),
			x:    7, y: 7,
			want: true,
		},
		"top-left edge is inside": {
			rect: NewRect(5, 5, 10, 10),
			x:    5, y: 5,
			want: true,
		},
		"right edge is outside": {
			rect: NewRect(5, 5, 10, 10),
			x:    15, y: 7,
			want: false,
		},
		"bottom edge is outside": {
			rect: NewRect(5, 5, 10, 10),
			x:    7, y: 15,
			want: false,
		},
		"outside": {
			rect: NewRect(5, 5, 10, 10),
			x:    0, y: 0,
			want: false,
		},
		"empty rect contains nothing": {
			rect: NewRect(5, 5, 0, 0),
			x:    5, y: 5,
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 3, 3),
			want: NewRect(5, 5, 3, 3),
		},
		"disjoint": {
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(10, 10, 5, 5),
			want: Rect{},
		},
		"touching edges": {
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(5, 0, 5, 5),
			want: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(0, 0, 15, 15),
		},
		"disjoint bounding box": {
			a:    NewRect(0, 0, 2, 2),
			b:    NewRect(8, 8, 2, 2),
			want: NewRect(0, 0, 10, 10),
		},
		"empty left operand": {
			a:    Rect{},
			b:    NewRect(3, 3, 4, 4),
			want: NewRect(3, 3, 4, 4),
		},
		"empty right operand": {
			a:    NewRect(3, 3, 4, 4),
			b:    Rect{},
			want: NewRect(3, 3, 4, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Clamp(t *testing.T) {
	type tc struct {
		rect         Rect
		x, y         int
		wantX, wantY int
	}

	tests := map[string]tc{
		"inside unchanged": {
			rect: NewRect(0, 0, 80, 24),
			x:    10, y: 10,
			wantX: 10, wantY: 10,
		},
		"past right and bottom": {
			rect: NewRect(0, 0, 80, 24),
			x:    95, y: 28,
			wantX: 79, wantY: 23,
		},
		"before left and top": {
			rect: NewRect(5, 5, 10, 10),
			x:    0, y: 0,
			wantX: 5, wantY: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gotX, gotY := tt.rect.Clamp(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(5, 5, 10, 10).Translate(-3, 2)
	if want := NewRect(2, 7, 10, 10); r != want {
		t.Errorf("Translate(-3, 2) = %+v, want %+v", r, want)
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)
	if !outer.ContainsRect(NewRect(2, 2, 5, 5)) {
		t.Error("ContainsRect(inner) = false, want true")
	}
	if outer.ContainsRect(NewRect(8, 8, 5, 5)) {
		t.Error("ContainsRect(overhanging) = true, want false")
	}
	if !outer.ContainsRect(Rect{}) {
		t.Error("ContainsRect(empty) = false, want true")
	}
}
