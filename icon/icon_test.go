package icon

import "testing"

func TestBufferSet(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		wantAddr uint8
		wantRow  uint8
	}{
		{"first segment", 0, 0, 0x01},
		{"last bit of first row", 4, 0, 0x10},
		{"first bit of second row", 5, 1, 0x01},
		{"middle bit", 7, 1, 0x04},
		{"last segment", 79, 15, 0x10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			addr, row, ok := b.Set(tt.index, true)
			if !ok {
				t.Fatalf("Set(%d) not ok", tt.index)
			}
			if addr != tt.wantAddr || row != tt.wantRow {
				t.Errorf("Set(%d) = (%d, %#02x), want (%d, %#02x)",
					tt.index, addr, row, tt.wantAddr, tt.wantRow)
			}
			if !b.Get(tt.index) {
				t.Errorf("Get(%d) = false after Set", tt.index)
			}
		})
	}
}

func TestBufferSetPreservesNeighbours(t *testing.T) {
	var b Buffer

	if _, row, ok := b.Set(5, true); !ok || row != 0x01 {
		t.Fatalf("Set(5) = %#02x, %v", row, ok)
	}
	if _, row, ok := b.Set(7, true); !ok || row != 0x05 {
		t.Fatalf("Set(7) = %#02x, want 0x05 (segment 5 preserved)", row)
	}
	if _, row, ok := b.Set(5, false); !ok || row != 0x04 {
		t.Fatalf("Set(5, false) = %#02x, want 0x04 (segment 7 preserved)", row)
	}
}

func TestBufferOutOfRange(t *testing.T) {
	var b Buffer

	for _, index := range []int{-1, Segments, Segments + 100} {
		if _, _, ok := b.Set(index, true); ok {
			t.Errorf("Set(%d) ok, want not ok", index)
		}
		if b.Get(index) {
			t.Errorf("Get(%d) = true, want false", index)
		}
	}
	for i := range b {
		if b[i] != 0 {
			t.Errorf("row %d = %#02x, want untouched", i, b[i])
		}
	}
}

func TestBufferReset(t *testing.T) {
	var b Buffer

	for _, index := range []int{0, 13, 79} {
		b.Set(index, true)
	}
	b.Reset()
	for _, index := range []int{0, 13, 79} {
		if b.Get(index) {
			t.Errorf("Get(%d) = true after Reset", index)
		}
	}
}
