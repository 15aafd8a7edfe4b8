// Package st7032 controls ST7032/ST7032i-class dot-matrix character LCD
// controllers via I²C or SPI.
//
// The ST7032 drives the common 8x2 and 16x2 character modules (AQM0802,
// AQM1602, Newhaven NHD-C0216 and friends). Unlike plain HD44780 glass it
// generates its own LCD voltage, so contrast, booster and voltage follower
// are software controlled, and it adds an icon RAM for the dedicated
// segments some modules expose.
//
// # Controller Characteristics
//
//   - Two overlapping instruction tables selected by a persistent mode bit;
//     the driver tracks the selector and inserts table switches automatically
//   - 6-bit software contrast, split across two instructions
//   - Internal booster and voltage follower (3.3V operation)
//   - 80 icon segments addressable independently of the character cells
//   - 8 CGRAM slots for custom 5x8 glyphs
//   - Single or double-height font
//
// # Hardware Connection
//
// For the I²C variant (slave address 0x3E):
//
//	Display Pin → System Pin
//	GND         → GND
//	VDD         → 3.3V
//	SCL         → I²C Clock
//	SDA         → I²C Data
//	RST         → 3.3V (or a GPIO if you want hardware reset)
//
// For the SPI variant, connect SCL/SI to the SPI clock and MOSI lines, CSB
// to chip select, and the RS pin to any free GPIO output.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/st7032"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		dev, err := st7032.NewI2C(bus, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.WriteString("Hello")
//		dev.MoveTo(1, 0)
//		dev.WriteString("world")
//	}
//
// # Timing
//
// Every instruction has a mandatory execution time during which the
// controller accepts no input. The driver blocks for those times through a
// Delayer, which defaults to time.Sleep; supply your own through Opts.Delay
// to adapt to other scheduling environments. The delays themselves are the
// conservative datasheet figures and can be overridden through Opts.Timings
// for compatible parts.
//
// Initialization is dominated by the voltage follower stabilization (200ms);
// expect New/Init to block for roughly a quarter of a second.
//
// # Character Codes
//
// The driver transmits caller-supplied bytes as-is. The controller's ROM
// fonts are close to ASCII in the 0x20..0x7D range; anything beyond that
// depends on the ROM variant, so encoding is the caller's concern. Custom
// glyphs loaded with SetGlyph are written as codes 0x00..0x07.
//
// # Concurrency
//
// The driver is synchronous and not safe for concurrent use. It assumes
// exclusive ownership of its bus address while an operation is in progress;
// serialize access externally if needed. After any failed operation the
// mirrored state may disagree with the chip: re-run Init to resynchronize.
//
// # Datasheet
//
// https://www.newhavendisplay.com/app_notes/ST7032.pdf
package st7032
