// synth_filter.go - Four-stage saturating ladder filter

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

// LadderFilter is a four-stage cascade with resonant feedback. Each stage
// passes through a tanh nonlinearity, so the structure stays bounded for any
// resonance in [0, 1]; self-oscillation as resonance approaches 1 is an
// intended capability.
//
// Highpass mode is computed as input minus the lowpass output. That is a
// first-order complement, not a true 4-pole highpass, and is kept exactly
// as-is: substituting a textbook highpass would change the instrument's
// sound.
type LadderFilter struct {
	sampleRate float64
	cutoff     float32
	resonance  float32
	g          float32
	stage      [4]float32
	mode       int
}

func (f *LadderFilter) Prepare(sampleRate float64) {
	f.sampleRate = sampleRate
	if f.cutoff == 0 {
		f.cutoff = DEFAULT_FILTER_CUTOFF
	}
	f.Reset()
	f.updateCoefficients()
}

func (f *LadderFilter) Reset() {
	for i := range f.stage {
		f.stage[i] = 0
	}
}

func (f *LadderFilter) SetCutoff(freq float32) {
	f.cutoff = clampf(freq, MIN_FREQ, MAX_FREQ)
	f.updateCoefficients()
}

func (f *LadderFilter) SetResonance(res float32) {
	f.resonance = clampf(res, 0.0, 1.0)
}

func (f *LadderFilter) SetMode(mode int) {
	if mode < FILTER_LOWPASS {
		mode = FILTER_LOWPASS
	}
	if mode > FILTER_HIGHPASS {
		mode = FILTER_HIGHPASS
	}
	f.mode = mode
}

func (f *LadderFilter) Process(input float32) float32 {
	feedback := f.resonance * 4.0 * (f.stage[3] - 0.5*input)
	x := input - feedback

	for i := 0; i < 4; i++ {
		f.stage[i] += f.g * float32(math.Tanh(float64(x))-math.Tanh(float64(f.stage[i])))
		x = f.stage[i]
	}

	if f.mode == FILTER_HIGHPASS {
		return input - f.stage[3]
	}
	return f.stage[3]
}

func (f *LadderFilter) updateCoefficients() {
	fc := float64(f.cutoff) / f.sampleRate
	t := math.Tan(math.Pi * math.Min(fc, MAX_FILTER_FC))
	f.g = float32(t / (1.0 + t))
}
