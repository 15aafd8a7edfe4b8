package st7032

// InstructionTable selects which of the two overlapping ST7032 instruction
// tables an opcode is interpreted under. The selector (the IS bit of the
// function set instruction) persists inside the chip until changed, so the
// same opcode byte means different things depending on prior state.
type InstructionTable uint8

const (
	// Normal is the HD44780-compatible instruction table (IS=0).
	Normal InstructionTable = iota
	// Extended holds the ST7032-specific power instructions (IS=1).
	Extended
)

func (t InstructionTable) String() string {
	if t == Extended {
		return "extended"
	}
	return "normal"
}

// Instruction opcode bases. The 0x10..0x70 range is table-dependent: under
// Normal it holds the cursor/display shift instruction, under Extended the
// bias, icon address, power, follower and contrast instructions.
const (
	opClearDisplay   = 0x01
	opReturnHome     = 0x02
	opEntryMode      = 0x04
	opDisplayControl = 0x08
	opShift          = 0x10 // Normal table
	opFunctionSet    = 0x20
	opCGRAMAddr      = 0x40 // Normal table
	opDDRAMAddr      = 0x80

	opBiasOsc           = 0x10 // Extended table
	opIconAddr          = 0x40 // Extended table
	opPowerIconContrast = 0x50 // Extended table
	opFollower          = 0x60 // Extended table
	opContrastSet       = 0x70 // Extended table
)

// Function set bits. DL is always set: both the I²C and SPI variants behave
// as an 8-bit interface.
const (
	fnDataLength8  = 0x10
	fnTwoLine      = 0x08
	fnDoubleHeight = 0x04
	fnExtended     = 0x01
)

// Bit-field limits.
const (
	maxContrast     = 63 // 6 bits, split across two instructions
	maxFollowerGain = 7  // Rab2..Rab0
	maxOscFreq      = 7  // F2..F0
	maxDDRAMAddr    = 0x7F
	maxCGRAMAddr    = 0x3F
	maxIconAddr     = 0x0F
)

// encodeFunctionSet renders the function set instruction selecting the given
// table. Double height is only effective in one-line mode; the bit is encoded
// as requested and the chip ignores it when N is set.
func encodeFunctionSet(table InstructionTable, twoLine, doubleHeight bool) byte {
	b := byte(opFunctionSet | fnDataLength8)
	if twoLine {
		b |= fnTwoLine
	}
	if doubleHeight {
		b |= fnDoubleHeight
	}
	if table == Extended {
		b |= fnExtended
	}
	return b
}

func encodeEntryMode(increment, shift bool) byte {
	b := byte(opEntryMode)
	if increment {
		b |= 0x02
	}
	if shift {
		b |= 0x01
	}
	return b
}

func encodeDisplayControl(display, cursor, blink bool) byte {
	b := byte(opDisplayControl)
	if display {
		b |= 0x04
	}
	if cursor {
		b |= 0x02
	}
	if blink {
		b |= 0x01
	}
	return b
}

// encodeShift renders the cursor/display shift instruction (Normal table).
func encodeShift(display, right bool) byte {
	b := byte(opShift)
	if display {
		b |= 0x08
	}
	if right {
		b |= 0x04
	}
	return b
}

func encodeDDRAMAddr(addr uint8) (byte, error) {
	if addr > maxDDRAMAddr {
		return 0, &EncodingError{Field: "DDRAM address", Value: int(addr), Max: maxDDRAMAddr}
	}
	return opDDRAMAddr | addr, nil
}

func encodeCGRAMAddr(addr uint8) (byte, error) {
	if addr > maxCGRAMAddr {
		return 0, &EncodingError{Field: "CGRAM address", Value: int(addr), Max: maxCGRAMAddr}
	}
	return opCGRAMAddr | addr, nil
}

func encodeIconAddr(addr uint8) (byte, error) {
	if addr > maxIconAddr {
		return 0, &EncodingError{Field: "icon RAM address", Value: int(addr), Max: maxIconAddr}
	}
	return opIconAddr | addr, nil
}

// encodeBiasOsc renders the internal oscillator instruction (Extended table).
// quarterBias selects 1/4 bias instead of the default 1/5.
func encodeBiasOsc(quarterBias bool, freq uint8) (byte, error) {
	if freq > maxOscFreq {
		return 0, &EncodingError{Field: "oscillator frequency", Value: int(freq), Max: maxOscFreq}
	}
	b := byte(opBiasOsc) | freq
	if quarterBias {
		b |= 0x08
	}
	return b, nil
}

// encodePowerIconContrast renders the power/icon/contrast control instruction
// (Extended table). It carries the icon display and booster bits plus the two
// high bits of the 6-bit contrast value; the low four bits travel in the
// contrast set instruction and both must be emitted together, this one first.
func encodePowerIconContrast(icon, booster bool, contrast uint8) (byte, error) {
	if contrast > maxContrast {
		return 0, &EncodingError{Field: "contrast", Value: int(contrast), Max: maxContrast}
	}
	b := byte(opPowerIconContrast) | contrast>>4
	if icon {
		b |= 0x08
	}
	if booster {
		b |= 0x04
	}
	return b, nil
}

// encodeContrastSet renders the low four contrast bits (Extended table).
func encodeContrastSet(contrast uint8) (byte, error) {
	if contrast > maxContrast {
		return 0, &EncodingError{Field: "contrast", Value: int(contrast), Max: maxContrast}
	}
	return opContrastSet | contrast&0x0F, nil
}

// encodeFollower renders the voltage follower instruction (Extended table).
func encodeFollower(on bool, gain uint8) (byte, error) {
	if gain > maxFollowerGain {
		return 0, &EncodingError{Field: "follower gain", Value: int(gain), Max: maxFollowerGain}
	}
	b := byte(opFollower) | gain
	if on {
		b |= 0x08
	}
	return b, nil
}
