// Package icon provides a shadow buffer for the ST7032 icon RAM.
//
// The controller addresses icons as 16 rows of 5 segment bits each, giving
// 80 individually switchable segments. Writing one row replaces all five of
// its bits, so the driver keeps this shadow copy to toggle a single segment
// without disturbing its neighbours.
package icon

// Icon RAM geometry.
const (
	// Addresses is the number of icon RAM rows.
	Addresses = 16
	// SegmentsPerAddress is the number of segment bits per row (S1..S5).
	SegmentsPerAddress = 5
	// Segments is the total number of addressable icon segments.
	Segments = Addresses * SegmentsPerAddress
)

// Buffer mirrors the icon RAM contents. Only the low 5 bits of each row are
// meaningful. The zero value is an all-off buffer, matching cleared RAM.
type Buffer [Addresses]uint8

// Set switches segment index on or off and reports the icon RAM address and
// the updated row value to transmit. ok is false when index is out of range,
// in which case the buffer is unchanged.
func (b *Buffer) Set(index int, on bool) (addr, row uint8, ok bool) {
	if index < 0 || index >= Segments {
		return 0, 0, false
	}
	addr = uint8(index / SegmentsPerAddress)
	mask := uint8(1) << (index % SegmentsPerAddress)
	if on {
		b[addr] |= mask
	} else {
		b[addr] &^= mask
	}
	return addr, b[addr], true
}

// Get reports whether segment index is on. Out-of-range indices read as off.
func (b *Buffer) Get(index int) bool {
	if index < 0 || index >= Segments {
		return false
	}
	return b[index/SegmentsPerAddress]&(1<<(index%SegmentsPerAddress)) != 0
}

// Reset switches every segment off.
func (b *Buffer) Reset() {
	for i := range b {
		b[i] = 0
	}
}
