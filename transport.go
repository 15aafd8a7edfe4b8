package st7032

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Control bytes prefixing every payload byte on the bus. The continuation
// bit marks that another control byte follows within the same transaction.
const (
	ctrlCommand  byte = 0x00 // RS=0: instruction register
	ctrlData     byte = 0x40 // RS=1: data register
	ctrlContinue byte = 0x80 // Co=1: more control bytes follow
)

// Transport delivers one bus transaction to the controller: a control byte
// followed by one or more payload bytes. Implementations must not retry.
type Transport interface {
	// Write sends the payload bytes under the given control byte framing.
	Write(control byte, payload []byte) error

	String() string
}

// Delayer blocks for at least the requested duration. The controller is not
// ready for the next instruction before the previous one's execution time has
// elapsed, so waits must be monotonic and never shortened.
type Delayer interface {
	Wait(d time.Duration)
}

type sleepDelayer struct{}

func (sleepDelayer) Wait(d time.Duration) { time.Sleep(d) }

// i2cTransport frames transactions for the I²C variant. Each payload byte is
// preceded by its own control byte; all but the last carry the continuation
// bit.
type i2cTransport struct {
	c *i2c.Dev
}

func (t *i2cTransport) Write(control byte, payload []byte) error {
	buf := make([]byte, 0, 2*len(payload))
	for i, b := range payload {
		c := control
		if i < len(payload)-1 {
			c |= ctrlContinue
		}
		buf = append(buf, c, b)
	}
	return t.c.Tx(buf, nil)
}

func (t *i2cTransport) String() string {
	return fmt.Sprintf("I²C %s", t.c)
}

// spiTransport frames transactions for the SPI variant, where the register
// select travels on a dedicated RS pin instead of a control byte.
type spiTransport struct {
	c    conn.Conn
	rs   gpio.PinOut
	port string
}

func openSPI(p spi.Port, rs gpio.PinOut) (*spiTransport, error) {
	// Mode0, conservative 1MHz. The controller samples on the rising edge.
	c, err := p.Connect(1*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &spiTransport{c: c, rs: rs, port: p.String()}, nil
}

func (t *spiTransport) Write(control byte, payload []byte) error {
	if err := t.rs.Out(gpio.Level(control&ctrlData != 0)); err != nil {
		return err
	}
	return t.c.Tx(payload, nil)
}

func (t *spiTransport) String() string {
	return fmt.Sprintf("SPI %s", t.port)
}
