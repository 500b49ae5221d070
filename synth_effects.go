// synth_effects.go - Saturator, stereo delay, Schroeder reverb and compressor

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █     ▄▄▄▄    ▓█████  ▄▄▄      ▄▄▄█████▓
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█████▄  ▓█   ▀ ▒████▄    ▓  ██▒ ▓▒
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒██▒ ▄██ ▒███   ▒██  ▀█▄  ▒ ▓██░ ▒░
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒██░█▀   ▒▓█  ▄ ░██▄▄▄▄██ ░ ▓██▓ ░
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▓█  ▀█▓ ░▒████▒ ▓█   ▓██▒  ▒██▒ ░
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░▒▓███▀▒ ░░ ▒░ ░ ▒▒   ▓▒█░  ▒ ░░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░   ▒░▒   ░   ░ ░  ░  ▒   ▒▒ ░    ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░     ░    ░     ░     ░   ▒     ░
 ░           ░             ░      ░            ░      ░ ░           ░     ░          ░  ░      ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionBeat
License: GPLv3 or later
*/

package main

import "math"

// Saturator is drive-scaled tanh waveshaping with a dry/wet mix.
type Saturator struct {
	drive float32
	mix   float32
}

func (s *Saturator) SetDrive(d float32) { s.drive = clampf(d, MIN_DRIVE, MAX_DRIVE) }
func (s *Saturator) SetMix(m float32)   { s.mix = clampf(m, 0.0, 1.0) }

func (s *Saturator) Process(input float32) float32 {
	driven := float32(math.Tanh(float64(input * s.drive)))
	return input*(1.0-s.mix) + driven*s.mix
}

// StereoDelay is a feedback delay line pair. The buffers are sized once at
// Prepare for the maximum delay time and never resized afterwards.
type StereoDelay struct {
	sampleRate   float64
	bufferL      []float32
	bufferR      []float32
	bufferSize   int
	writePos     int
	delaySamples int
	feedback     float32
	mix          float32
}

func (d *StereoDelay) Prepare(sampleRate float64) {
	d.sampleRate = sampleRate
	d.bufferSize = int(sampleRate * MAX_DELAY_SECONDS)
	d.bufferL = make([]float32, d.bufferSize)
	d.bufferR = make([]float32, d.bufferSize)
	d.writePos = 0
	d.delaySamples = int(sampleRate * 0.5)
	if d.feedback == 0 {
		d.feedback = 0.3
	}
}

func (d *StereoDelay) SetTime(seconds float32) {
	clamped := clampf(seconds, MIN_DELAY_SECONDS, MAX_DELAY_SECONDS)
	d.delaySamples = int(float64(clamped) * d.sampleRate)
	if d.delaySamples >= d.bufferSize {
		d.delaySamples = d.bufferSize - 1
	}
}

// SetClockSync derives the delay time from the transport using the same
// divider convention as the LFOs: one beat at divider 1.
func (d *StereoDelay) SetClockSync(bpm, divider float32) {
	secondsPerBeat := 60.0 / bpm
	d.SetTime(secondsPerBeat / divider)
}

func (d *StereoDelay) SetFeedback(fb float32) { d.feedback = clampf(fb, 0.0, MAX_DELAY_FEEDBACK) }
func (d *StereoDelay) SetMix(m float32)       { d.mix = clampf(m, 0.0, 1.0) }

func (d *StereoDelay) Process(left, right float32) (float32, float32) {
	readPos := (d.writePos + d.bufferSize - d.delaySamples) % d.bufferSize

	delayedL := d.bufferL[readPos]
	delayedR := d.bufferR[readPos]

	d.bufferL[d.writePos] = left + delayedL*d.feedback
	d.bufferR[d.writePos] = right + delayedR*d.feedback

	outL := left*(1.0-d.mix) + delayedL*d.mix
	outR := right*(1.0-d.mix) + delayedR*d.mix

	d.writePos = (d.writePos + 1) % d.bufferSize
	return outL, outR
}

// Reverb is a Schroeder-style network: four allpass diffusers in series
// feed eight parallel damped comb filters, four per output channel. The wet
// mix uses a 4th-power curve of the linear control so the low end of the
// knob has fine resolution.
type Reverb struct {
	sampleRate float64
	decay      float32
	damping    float32
	mix        float32

	apBuf [NUM_ALLPASS][]float32
	apPos [NUM_ALLPASS]int

	combBuf   [NUM_COMBS][]float32
	combPos   [NUM_COMBS]int
	combState [NUM_COMBS]float32
}

func (r *Reverb) Prepare(sampleRate float64) {
	r.sampleRate = sampleRate
	if r.decay == 0 {
		r.decay = DEFAULT_REVERB_DECAY
	}
	if r.damping == 0 {
		r.damping = DEFAULT_REVERB_DAMPING
	}

	for i := range r.apBuf {
		r.apBuf[i] = make([]float32, int(sampleRate*reverbAllpassTimes[i]))
		r.apPos[i] = 0
	}
	for i := range r.combBuf {
		r.combBuf[i] = make([]float32, int(sampleRate*reverbCombTimes[i]))
		r.combPos[i] = 0
		r.combState[i] = 0
	}
}

func (r *Reverb) SetDecay(d float32)   { r.decay = clampf(d, MIN_REVERB_DECAY, MAX_REVERB_DECAY) }
func (r *Reverb) SetDamping(d float32) { r.damping = clampf(d, 0.0, 1.0) }

func (r *Reverb) SetMix(m float32) {
	linear := clampf(m, 0.0, 1.0)
	r.mix = linear * linear * linear * linear
}

func (r *Reverb) Process(left, right float32) (float32, float32) {
	input := (left + right) * 0.5

	diffused := input
	for i := 0; i < NUM_ALLPASS; i++ {
		diffused = r.processAllpass(i, diffused)
	}

	// Per-comb feedback gain that reaches -60dB after the decay time
	combGain := float32(math.Pow(REVERB_TAIL_TARGET, 1.0/(float64(r.decay)*r.sampleRate)))

	var reverbL, reverbR float32
	for i := 0; i < COMBS_PER_CHANNEL; i++ {
		reverbL += r.processComb(i, diffused, combGain)
	}
	for i := COMBS_PER_CHANNEL; i < NUM_COMBS; i++ {
		reverbR += r.processComb(i, diffused, combGain)
	}

	reverbL *= REVERB_COMB_ATTEN
	reverbR *= REVERB_COMB_ATTEN

	outL := left*(1.0-r.mix) + reverbL*r.mix
	outR := right*(1.0-r.mix) + reverbR*r.mix
	return outL, outR
}

func (r *Reverb) processAllpass(idx int, input float32) float32 {
	buf := r.apBuf[idx]
	pos := r.apPos[idx]
	delayed := buf[pos]
	output := -input + delayed
	buf[pos] = input + delayed*REVERB_ALLPASS_FB
	r.apPos[idx] = (pos + 1) % len(buf)
	return output
}

func (r *Reverb) processComb(idx int, input, gain float32) float32 {
	buf := r.combBuf[idx]
	pos := r.combPos[idx]
	delayed := buf[pos]
	r.combState[idx] = delayed*(1.0-r.damping) + r.combState[idx]*r.damping
	buf[pos] = input + r.combState[idx]*gain
	r.combPos[idx] = (pos + 1) % len(buf)
	return delayed
}

// Compressor is a peak-detecting downward compressor with independent
// attack/release smoothing, threshold/ratio gain computation in dB, makeup
// gain and a dry/wet mix. Mix 0 is a bit-exact bypass.
type Compressor struct {
	sampleRate float64
	threshold  float32
	ratio      float32
	attackMs   float32
	releaseMs  float32
	makeupGain float32
	mix        float32

	attackCoef  float32
	releaseCoef float32
	envelope    float32
}

func (c *Compressor) Prepare(sampleRate float64) {
	c.sampleRate = sampleRate
	if c.ratio == 0 {
		c.threshold = DEFAULT_COMP_THRESHOLD
		c.ratio = DEFAULT_COMP_RATIO
		c.attackMs = DEFAULT_COMP_ATTACK_MS
		c.releaseMs = DEFAULT_COMP_RELEASE_MS
		c.makeupGain = 1.0
		c.mix = 1.0
	}
	c.envelope = 1.0
	c.updateCoefficients()
}

func (c *Compressor) SetThreshold(db float32) { c.threshold = db }
func (c *Compressor) SetRatio(ratio float32) {
	c.ratio = clampf(ratio, MIN_COMP_RATIO, MAX_COMP_RATIO)
}

func (c *Compressor) SetAttack(ms float32) {
	c.attackMs = clampf(ms, MIN_COMP_ATTACK_MS, MAX_COMP_ATTACK_MS)
	c.updateCoefficients()
}

func (c *Compressor) SetRelease(ms float32) {
	c.releaseMs = clampf(ms, MIN_COMP_RELEASE_MS, MAX_COMP_RELEASE_MS)
	c.updateCoefficients()
}

func (c *Compressor) SetMakeupGain(db float32) {
	c.makeupGain = float32(math.Pow(10.0, float64(db)/20.0))
}

func (c *Compressor) SetMix(m float32) { c.mix = clampf(m, 0.0, 1.0) }

func (c *Compressor) Process(left, right float32) (float32, float32) {
	dryL := left
	dryR := right

	inputLevel := float32(math.Max(math.Abs(float64(left)), math.Abs(float64(right))))
	inputDb := 20.0 * float32(math.Log10(float64(inputLevel)+1e-6))

	var gainReduction float32
	if inputDb > c.threshold {
		gainReduction = (inputDb - c.threshold) * (1.0 - 1.0/c.ratio)
	}

	targetGain := float32(math.Pow(10.0, float64(-gainReduction)/20.0))
	if targetGain < c.envelope {
		c.envelope = c.attackCoef*c.envelope + (1.0-c.attackCoef)*targetGain
	} else {
		c.envelope = c.releaseCoef*c.envelope + (1.0-c.releaseCoef)*targetGain
	}

	if c.mix == 0 {
		// Bit-exact bypass; the envelope follower keeps tracking above
		return dryL, dryR
	}

	gain := c.envelope * c.makeupGain
	wetL := left * gain
	wetR := right * gain

	outL := dryL*(1.0-c.mix) + wetL*c.mix
	outR := dryR*(1.0-c.mix) + wetR*c.mix
	return outL, outR
}

func (c *Compressor) updateCoefficients() {
	c.attackCoef = float32(math.Exp(-1.0 / (float64(c.attackMs) * 0.001 * c.sampleRate)))
	c.releaseCoef = float32(math.Exp(-1.0 / (float64(c.releaseMs) * 0.001 * c.sampleRate)))
}
