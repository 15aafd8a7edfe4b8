package st7032

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/st7032/icon"
)

// DefaultAddr is the fixed I²C slave address of the ST7032i.
const DefaultAddr uint16 = 0x3E

// DDRAM geometry: row 0 starts at address 0x00 and row 1 at 0x40, each 40
// cells wide. The rows are not contiguous, so sequential writes never spill
// from one row into the next.
const (
	row1Base      = 0x40
	ddramRowCells = 40
)

// Opts is the configuration for the display.
type Opts struct {
	// Rows and Cols describe the wired glass geometry.
	Rows int // 1 or 2 (default: 2)
	Cols int // 1..40 (default: 16)

	// Contrast is the initial contrast value (0..63).
	Contrast uint8

	// Cursor and Blink select the power-up cursor style.
	Cursor bool
	Blink  bool

	// DoubleHeight starts the display in double-height font mode.
	DoubleHeight bool

	// Booster enables the internal voltage booster. Required on 3.3V
	// supplies, where the LCD drive voltage must be generated internally.
	Booster bool

	// Follower enables the internal voltage follower; FollowerGain selects
	// its amplification ratio (0..7).
	Follower     bool
	FollowerGain uint8

	// QuarterBias selects 1/4 LCD bias instead of the default 1/5.
	QuarterBias bool

	// OscFreq selects the internal oscillator frequency (0..7).
	OscFreq uint8

	// IconDisplay enables the icon segments at power-up.
	IconDisplay bool

	// LineWrap makes Write continue on the next row once the current one is
	// full. Without it writes past the last column stay inside the row's
	// DDRAM, off the visible glass.
	LineWrap bool

	// Addr is the I²C slave address (default: DefaultAddr). Ignored for SPI.
	Addr uint16

	// Timings overrides the conservative datasheet delays.
	Timings *Timings

	// Delay overrides the blocking wait implementation.
	Delay Delayer
}

// DefaultOpts matches the common 16x2 modules on a 3.3V supply.
var DefaultOpts = Opts{
	Rows:         2,
	Cols:         16,
	Contrast:     40,
	Booster:      true,
	Follower:     true,
	FollowerGain: 4,
	OscFreq:      4,
	Addr:         DefaultAddr,
}

// Dev is the device handle for the display.
type Dev struct {
	t       Transport
	delay   Delayer
	timings Timings
	opts    Opts

	// Mirror of the controller state. The chip keeps the instruction table
	// selector and the mode flags internally; this is the software copy every
	// operation consults.
	table        InstructionTable
	displayOn    bool
	cursorOn     bool
	blinkOn      bool
	increment    bool
	shift        bool
	doubleHeight bool
	contrast     uint8
	iconOn       bool
	boosterOn    bool
	followerOn   bool
	followerGain uint8
	row, col     int
	icons        icon.Buffer
	halted       bool
}

// NewI2C creates and initializes a display connected via I²C.
//
// opts can be nil to use defaults (16x2, booster and follower on).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := DefaultAddr
	if opts != nil && opts.Addr != 0 {
		addr = opts.Addr
	}
	return New(&i2cTransport{c: &i2c.Dev{Bus: b, Addr: addr}}, opts)
}

// NewSPI creates and initializes a display connected via SPI.
//
// The rs (register select) GPIO pin must be provided and configured as an
// output; it plays the role the control byte plays on I²C.
func NewSPI(p spi.Port, rs gpio.PinOut, opts *Opts) (*Dev, error) {
	t, err := openSPI(p, rs)
	if err != nil {
		return nil, err
	}
	return New(t, opts)
}

// New creates and initializes a display on a caller-supplied Transport.
func New(t Transport, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
		if o.Rows == 0 {
			o.Rows = DefaultOpts.Rows
		}
		if o.Cols == 0 {
			o.Cols = DefaultOpts.Cols
		}
	}
	if o.Rows < 1 || o.Rows > 2 {
		return nil, errors.New("st7032: rows must be 1 or 2")
	}
	if o.Cols < 1 || o.Cols > ddramRowCells {
		return nil, errors.New("st7032: columns must be between 1 and 40")
	}

	timings := DefaultTimings
	if o.Timings != nil {
		timings = *o.Timings
	}
	delay := Delayer(sleepDelayer{})
	if o.Delay != nil {
		delay = o.Delay
	}

	d := &Dev{
		t:       t,
		delay:   delay,
		timings: timings,
		opts:    o,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Clear clears the display and moves the cursor to the origin.
func (d *Dev) Clear() error {
	if d.halted {
		return ErrHalted
	}
	d.row, d.col = 0, 0
	return d.commandAny(opClearDisplay, d.timings.Clear)
}

// Home moves the cursor to the origin and undoes any display shift. DDRAM
// contents are unchanged.
func (d *Dev) Home() error {
	if d.halted {
		return ErrHalted
	}
	d.row, d.col = 0, 0
	return d.commandAny(opReturnHome, d.timings.Clear)
}

// MoveTo moves the cursor to the given position.
func (d *Dev) MoveTo(row, col int) error {
	if d.halted {
		return ErrHalted
	}
	if row < 0 || row >= d.opts.Rows {
		return &OutOfRangeError{What: "row", Value: row, Max: d.opts.Rows - 1}
	}
	if col < 0 || col >= d.opts.Cols {
		return &OutOfRangeError{What: "column", Value: col, Max: d.opts.Cols - 1}
	}
	op, err := encodeDDRAMAddr(ddramAddr(row, col))
	if err != nil {
		return err
	}
	d.row, d.col = row, col
	return d.commandAny(op, d.timings.Command)
}

// Write writes already-encoded character codes at the cursor position. The
// cursor advances per the entry mode; with Opts.LineWrap it continues on the
// next row once the current one fills up. Returns the number of bytes
// delivered to the controller.
func (d *Dev) Write(p []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	for i, b := range p {
		if err := d.send(ctrlData, b, d.timings.Command); err != nil {
			return i, err
		}
		d.advance()
		if d.opts.LineWrap && d.increment && d.col >= d.opts.Cols && d.row+1 < d.opts.Rows {
			if err := d.MoveTo(d.row+1, 0); err != nil {
				return i + 1, err
			}
		}
	}
	return len(p), nil
}

// WriteString writes a string of already-encoded character codes.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// SetEntryMode selects whether the address counter increments or decrements
// after each data access, and whether the whole display shifts instead of
// the cursor.
func (d *Dev) SetEntryMode(increment, shift bool) error {
	if d.halted {
		return ErrHalted
	}
	d.increment = increment
	d.shift = shift
	return d.commandAny(encodeEntryMode(increment, shift), d.timings.Command)
}

// SetDisplay switches the display, the cursor and cursor blinking on or off.
func (d *Dev) SetDisplay(on, cursor, blink bool) error {
	if d.halted {
		return ErrHalted
	}
	d.displayOn = on
	d.cursorOn = cursor
	d.blinkOn = blink
	return d.commandAny(encodeDisplayControl(on, cursor, blink), d.timings.Command)
}

// Shift moves the cursor (display=false) or the whole display (display=true)
// one position left or right without touching DDRAM.
func (d *Dev) Shift(display, right bool) error {
	if d.halted {
		return ErrHalted
	}
	if !display {
		if right {
			if d.col < ddramRowCells {
				d.col++
			}
		} else if d.col > 0 {
			d.col--
		}
	}
	// The shift instruction only exists under the normal table; the same
	// opcode selects the oscillator under the extended one.
	return d.command(Normal, encodeShift(display, right), d.timings.Command)
}

// SetContrast sets the 6-bit contrast value (0..63).
//
// The value travels in two fragments: the high two bits inside the
// power/icon/contrast instruction, the low four in the contrast set
// instruction. Both are always emitted, in that fixed order; sending only
// one, or reversing them, leaves the chip with a torn contrast value. The
// instruction table is left as Extended afterwards.
func (d *Dev) SetContrast(contrast uint8) error {
	if d.halted {
		return ErrHalted
	}
	power, err := encodePowerIconContrast(d.iconOn, d.boosterOn, contrast)
	if err != nil {
		return err
	}
	low, err := encodeContrastSet(contrast)
	if err != nil {
		return err
	}
	d.contrast = contrast
	if err := d.command(Extended, power, d.timings.Command); err != nil {
		return err
	}
	return d.command(Extended, low, d.timings.Command)
}

// SetIconDisplay switches the icon segments on or off globally. Individual
// segments keep their state and reappear when re-enabled.
func (d *Dev) SetIconDisplay(on bool) error {
	if d.halted {
		return ErrHalted
	}
	d.iconOn = on
	power, err := encodePowerIconContrast(on, d.boosterOn, d.contrast)
	if err != nil {
		return err
	}
	low, err := encodeContrastSet(d.contrast)
	if err != nil {
		return err
	}
	// Same fixed pair as SetContrast: the power byte carries contrast bits,
	// so both fragments go out together.
	if err := d.command(Extended, power, d.timings.Command); err != nil {
		return err
	}
	return d.command(Extended, low, d.timings.Command)
}

// SetIcon switches one of the 80 icon segments on or off. Segment index i
// lives at icon RAM address i/5, bit i%5; the other bits of that address are
// preserved through a shadow buffer. The DDRAM address is re-issued
// afterwards so the cursor stays where it was.
func (d *Dev) SetIcon(index int, on bool) error {
	if d.halted {
		return ErrHalted
	}
	addr, row, ok := d.icons.Set(index, on)
	if !ok {
		return &OutOfRangeError{What: "icon segment", Value: index, Max: icon.Segments - 1}
	}
	op, err := encodeIconAddr(addr)
	if err != nil {
		return err
	}
	if err := d.command(Extended, op, d.timings.Command); err != nil {
		return err
	}
	if err := d.send(ctrlData, row, d.timings.Command); err != nil {
		return err
	}
	return d.restoreCursor()
}

// SetGlyph loads a custom 5x8 character bitmap into one of the 8 CGRAM
// slots. The glyph becomes writable as character code slot (0..7). Each
// pattern row uses its low five bits, leftmost pixel in bit 4.
func (d *Dev) SetGlyph(slot int, pattern [8]byte) error {
	if d.halted {
		return ErrHalted
	}
	if slot < 0 || slot > 7 {
		return &OutOfRangeError{What: "glyph slot", Value: slot, Max: 7}
	}
	op, err := encodeCGRAMAddr(uint8(slot) << 3)
	if err != nil {
		return err
	}
	// CGRAM addressing only exists under the normal table; the same opcode
	// selects the icon RAM address under the extended one.
	if err := d.command(Normal, op, d.timings.Command); err != nil {
		return err
	}
	for _, row := range pattern {
		if err := d.send(ctrlData, row&0x1F, d.timings.Command); err != nil {
			return err
		}
	}
	return d.restoreCursor()
}

// SetDoubleHeight switches between single and double-height font. The
// function set instruction is re-issued under whichever table is currently
// active, then the row-height dependent mode instructions are re-emitted.
func (d *Dev) SetDoubleHeight(on bool) error {
	if d.halted {
		return ErrHalted
	}
	d.doubleHeight = on
	if err := d.send(ctrlCommand, encodeFunctionSet(d.table, d.twoLine(), on), d.timings.Command); err != nil {
		return err
	}
	if err := d.commandAny(encodeDisplayControl(d.displayOn, d.cursorOn, d.blinkOn), d.timings.Command); err != nil {
		return err
	}
	return d.commandAny(encodeEntryMode(d.increment, d.shift), d.timings.Command)
}

// Position returns the cached cursor position. It tracks the controller's
// address counter as long as no operation failed mid-sequence; after a
// failure, re-run Init to resynchronize.
func (d *Dev) Position() (row, col int) {
	return d.row, d.col
}

// Rows returns the configured number of rows.
func (d *Dev) Rows() int {
	return d.opts.Rows
}

// Cols returns the configured number of columns.
func (d *Dev) Cols() int {
	return d.opts.Cols
}

// Contrast returns the mirrored contrast value.
func (d *Dev) Contrast() uint8 {
	return d.contrast
}

// Halt clears the display and switches it off. Further operations return
// ErrHalted until Init is re-run.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.Clear(); err != nil {
		return err
	}
	d.displayOn = false
	if err := d.commandAny(encodeDisplayControl(false, d.cursorOn, d.blinkOn), d.timings.Command); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7032.Dev{%dx%d on %s}", d.opts.Cols, d.opts.Rows, d.t)
}

func (d *Dev) twoLine() bool {
	return d.opts.Rows > 1
}

// ddramAddr maps a cursor position to its DDRAM address.
func ddramAddr(row, col int) uint8 {
	a := uint8(col)
	if row == 1 {
		a += row1Base
	}
	return a
}

// advance moves the cached cursor the way the controller's address counter
// moves after a data access.
func (d *Dev) advance() {
	if d.increment {
		if d.col < ddramRowCells {
			d.col++
		}
	} else if d.col > 0 {
		d.col--
	}
}

// restoreCursor re-issues the DDRAM address after icon or CGRAM accesses
// moved the address counter elsewhere.
func (d *Dev) restoreCursor() error {
	op, err := encodeDDRAMAddr(ddramAddr(d.row, d.col))
	if err != nil {
		return err
	}
	return d.commandAny(op, d.timings.Command)
}

// ensureTable switches the controller to the requested instruction table if
// it is not already selected. The switch is a command of its own, with its
// own settle time.
func (d *Dev) ensureTable(t InstructionTable) error {
	if d.table == t {
		return nil
	}
	log.Debugf("st7032: switching to %s instruction table", t)
	d.table = t
	return d.send(ctrlCommand, encodeFunctionSet(t, d.twoLine(), d.doubleHeight), d.timings.Command)
}

// command issues an instruction that belongs to a specific table, inserting
// a table switch first when needed.
func (d *Dev) command(table InstructionTable, op byte, settle time.Duration) error {
	if err := d.ensureTable(table); err != nil {
		return err
	}
	return d.send(ctrlCommand, op, settle)
}

// commandAny issues an instruction that exists identically in both tables.
func (d *Dev) commandAny(op byte, settle time.Duration) error {
	return d.send(ctrlCommand, op, settle)
}

func (d *Dev) send(control, b byte, settle time.Duration) error {
	log.Debugf("st7032: write %#02x %#02x", control, b)
	if err := d.t.Write(control, []byte{b}); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	d.delay.Wait(settle)
	return nil
}

var _ conn.Resource = &Dev{}
