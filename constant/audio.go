package constant

import "time"

// Eat Chime
const (
	// ChimeSampleRate is the speaker sample rate in Hz
	ChimeSampleRate = 44100

	// ChimeBufferDuration is the speaker buffer length
	ChimeBufferDuration = 100 * time.Millisecond

	// ChimeNoteDuration is the length of each of the two chime notes
	ChimeNoteDuration = 90 * time.Millisecond

	// ChimeLowFreq and ChimeHighFreq are the rising note pair, A5 then E6
	ChimeLowFreq  = 880.0
	ChimeHighFreq = 1318.5

	// ChimeGain scales the sine output
	ChimeGain = 0.18

	// ChimeDecay is the exponential decay rate per second of each note
	ChimeDecay = 28.0
)
