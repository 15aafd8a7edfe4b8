package st7032

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Timings holds the controller execution delays. The defaults are the
// conservative datasheet figures; compatible parts with slightly different
// oscillator trims may override them through Opts.Timings.
type Timings struct {
	// PowerOn is the cold-start settle after the supply stabilizes.
	PowerOn time.Duration

	// Command is the execution time of ordinary instructions and data writes.
	Command time.Duration

	// Clear is the execution time of clear display and return home.
	Clear time.Duration

	// Follower is the stabilization time of the voltage follower amplifier.
	// It dominates initialization and must not be shortened.
	Follower time.Duration
}

// DefaultTimings are the ST7032 datasheet figures.
var DefaultTimings = Timings{
	PowerOn:  40 * time.Millisecond,
	Command:  30 * time.Microsecond,
	Clear:    1080 * time.Microsecond,
	Follower: 200 * time.Millisecond,
}

type initStep struct {
	name   string
	op     byte
	settle time.Duration
}

// initSequence encodes the power-up instruction list. Every byte is rendered
// and validated here, before anything is transmitted.
func (d *Dev) initSequence() ([]initStep, error) {
	o := &d.opts
	twoLine := o.Rows > 1

	bias, err := encodeBiasOsc(o.QuarterBias, o.OscFreq)
	if err != nil {
		return nil, err
	}
	power, err := encodePowerIconContrast(o.IconDisplay, o.Booster, o.Contrast)
	if err != nil {
		return nil, err
	}
	follower, err := encodeFollower(o.Follower, o.FollowerGain)
	if err != nil {
		return nil, err
	}
	low, err := encodeContrastSet(o.Contrast)
	if err != nil {
		return nil, err
	}

	return []initStep{
		{"function set (extended table)", encodeFunctionSet(Extended, twoLine, o.DoubleHeight), d.timings.Command},
		{"bias/oscillator control", bias, d.timings.Command},
		{"power/icon/contrast control", power, d.timings.Command},
		{"follower control", follower, d.timings.Follower},
		{"contrast set", low, d.timings.Command},
		{"function set (normal table)", encodeFunctionSet(Normal, twoLine, o.DoubleHeight), d.timings.Command},
		{"display control", encodeDisplayControl(true, o.Cursor, o.Blink), d.timings.Command},
		{"entry mode set", encodeEntryMode(true, false), d.timings.Command},
		{"clear display", opClearDisplay, d.timings.Clear},
	}, nil
}

// Init runs the power-up sequence and leaves the display on, cleared, with
// the cursor at the origin. It can be re-run at any time to resynchronize
// the mirrored state, for example after a transport failure left the
// controller and the driver disagreeing.
func (d *Dev) Init() error {
	steps, err := d.initSequence()
	if err != nil {
		return err
	}

	d.delay.Wait(d.timings.PowerOn)
	for i, s := range steps {
		log.Debugf("st7032: init %s (%#02x)", s.name, s.op)
		if err := d.t.Write(ctrlCommand, []byte{s.op}); err != nil {
			// Step 1 is the power-on settle above. No rollback: controller
			// RAM is undefined until the last step completes anyway.
			return &InitError{Step: i + 2, Name: s.name, Err: err}
		}
		d.delay.Wait(s.settle)
	}

	o := &d.opts
	d.table = Normal
	d.displayOn = true
	d.cursorOn = o.Cursor
	d.blinkOn = o.Blink
	d.increment = true
	d.shift = false
	d.doubleHeight = o.DoubleHeight
	d.contrast = o.Contrast
	d.iconOn = o.IconDisplay
	d.boosterOn = o.Booster
	d.followerOn = o.Follower
	d.followerGain = o.FollowerGain
	d.row, d.col = 0, 0
	d.icons.Reset()
	d.halted = false

	log.Infof("st7032: initialized %s", d)
	return nil
}
