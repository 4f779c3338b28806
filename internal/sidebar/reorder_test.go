package sidebar

import "testing"

func threeTiles() []Bounds {
	// Vertical midpoints 10, 50, 90.
	return []Bounds{
		{Top: 0, Height: 20},
		{Top: 40, Height: 20},
		{Top: 80, Height: 20},
	}
}

func TestInsertBefore(t *testing.T) {
	cases := []struct {
		name     string
		pointerY float64
		wantIdx  int
		wantOK   bool
	}{
		{"above all", 5, 0, true},
		{"between first and second", 45, 1, true},
		{"just above last midpoint", 89, 2, true},
		{"below all", 95, 0, false},
		{"exactly on a midpoint goes past it", 50, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx, ok := InsertBefore(threeTiles(), tc.pointerY)
			if ok != tc.wantOK || (ok && idx != tc.wantIdx) {
				t.Fatalf("InsertBefore(y=%v) = %d, %v; want %d, %v", tc.pointerY, idx, ok, tc.wantIdx, tc.wantOK)
			}
		})
	}
}

func TestInsertBefore_EmptyList(t *testing.T) {
	if _, ok := InsertBefore(nil, 10); ok {
		t.Fatalf("no siblings must mean insert at end")
	}
}
