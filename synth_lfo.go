// synth_lfo.go - Low-frequency modulation oscillator

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

// LFO is a free-running or tempo-synced modulator over phase [0, 1).
//
// It exposes two access patterns on the same underlying phase: Value peeks
// at the current phase without advancing (used for modulation sampled at
// sequencer-step boundaries), while Process peeks and then advances (used
// for continuous per-sample modulation). One LFO may serve both patterns
// simultaneously.
type LFO struct {
	sampleRate     float64
	phase          float64
	phaseIncrement float64
	rate           float32
	waveform       int
}

func (l *LFO) Prepare(sampleRate float64) {
	l.sampleRate = sampleRate
	l.phase = 0
	if l.rate == 0 {
		l.rate = 1.0
	}
	l.phaseIncrement = float64(l.rate) / l.sampleRate
}

// SetRate selects free-running mode at the given frequency.
func (l *LFO) SetRate(hz float32) {
	l.rate = clampf(hz, MIN_LFO_RATE, MAX_LFO_RATE)
	l.phaseIncrement = float64(l.rate) / l.sampleRate
}

// SetClockSync slaves the rate to the transport: one cycle per beat at
// divider 1, scaled by the clock divider.
func (l *LFO) SetClockSync(bpm, divider float32) {
	beatsPerSecond := bpm / 60.0
	cyclesPerSecond := beatsPerSecond * divider
	l.phaseIncrement = float64(cyclesPerSecond) / l.sampleRate
}

func (l *LFO) SetWaveform(w int) {
	if w < LFO_SINE {
		w = LFO_SINE
	}
	if w > LFO_SQUARE {
		w = LFO_SQUARE
	}
	l.waveform = w
}

// Value returns the output at the current phase without advancing it.
func (l *LFO) Value() float32 {
	return l.computeValue(l.phase)
}

// Process returns the output at the current phase, then advances it.
func (l *LFO) Process() float32 {
	output := l.computeValue(l.phase)
	l.phase += l.phaseIncrement
	if l.phase >= 1.0 {
		l.phase -= 1.0
	}
	return output
}

func (l *LFO) Reset() {
	l.phase = 0
}

func (l *LFO) computeValue(p float64) float32 {
	switch l.waveform {
	case LFO_SINE:
		return float32(math.Sin(2.0 * math.Pi * p))
	case LFO_TRIANGLE:
		return 4.0*float32(math.Abs(p-0.5)) - 1.0
	case LFO_SAW:
		return 2.0*float32(p) - 1.0
	case LFO_SQUARE:
		if p < 0.5 {
			return 1.0
		}
		return -1.0
	}
	return 0
}
