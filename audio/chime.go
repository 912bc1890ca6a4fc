package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/constant"
)

const sampleRate = beep.SampleRate(constant.ChimeSampleRate)

// Chime plays a short rising blip when the snake eats
// Every method is a no-op until Initialize succeeds
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(constant.ChimeBufferDuration)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences pending notes and closes the speaker
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Play queues one chime
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := NewChimeStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// NewChimeStreamer builds the two-note chime as a finite streamer
func NewChimeStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := note(sr, constant.ChimeLowFreq)
	if err != nil {
		return nil, err
	}
	high, err := note(sr, constant.ChimeHighFreq)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func note(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(constant.ChimeNoteDuration), &Decay{
		Streamer: sine,
		sr:       sr,
		gain:     constant.ChimeGain,
		rate:     constant.ChimeDecay,
	}), nil
}

// Decay applies gain and an exponential fade to a wrapped streamer
type Decay struct {
	Streamer beep.Streamer
	sr       beep.SampleRate
	gain     float64
	rate     float64
	pos      int
}

func (d *Decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := d.gain * math.Exp(-d.rate*t)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *Decay) Err() error {
	return d.Streamer.Err()
}
