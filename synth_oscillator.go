// synth_oscillator.go - Audio-rate oscillator and white noise source

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

import (
	"math"
	"math/rand/v2"
)

// Oscillator is a single-waveform phase accumulator. No band-limiting is
// applied; aliasing at high fundamentals is part of the instrument's sound.
type Oscillator struct {
	sampleRate     float64
	phase          float64
	phaseIncrement float64
	frequency      float32
	waveform       int
}

func (o *Oscillator) Prepare(sampleRate float64) {
	o.sampleRate = sampleRate
	o.phase = 0
	if o.frequency == 0 {
		o.frequency = 440.0
	}
	o.phaseIncrement = float64(o.frequency) / o.sampleRate
}

func (o *Oscillator) SetFrequency(freq float32) {
	o.frequency = clampf(freq, MIN_FREQ, MAX_FREQ)
	o.phaseIncrement = float64(o.frequency) / o.sampleRate
}

func (o *Oscillator) SetWaveform(w int) {
	if w < WAVE_SAW {
		w = WAVE_SAW
	}
	if w > WAVE_SINE {
		w = WAVE_SINE
	}
	o.waveform = w
}

// ResetPhase zeroes the accumulator so a retrigger starts the waveform at
// its natural zero-reference point.
func (o *Oscillator) ResetPhase() {
	o.phase = 0
}

func (o *Oscillator) Process() float32 {
	var output float32

	switch o.waveform {
	case WAVE_SAW:
		output = 2.0*float32(o.phase) - 1.0
	case WAVE_SQUARE:
		if o.phase < 0.5 {
			output = 1.0
		} else {
			output = -1.0
		}
	case WAVE_TRIANGLE:
		output = 4.0*float32(math.Abs(o.phase-0.5)) - 1.0
	case WAVE_SINE:
		output = float32(math.Sin(2.0 * math.Pi * o.phase))
	}

	o.phase += o.phaseIncrement
	if o.phase >= 1.0 {
		o.phase -= 1.0
	}

	return output
}

// NoiseGenerator produces uniform white noise in [-1, 1]. The generator is
// seeded deterministically so golden renders are reproducible run to run.
type NoiseGenerator struct {
	rng *rand.Rand
}

func NewNoiseGenerator() *NoiseGenerator {
	return &NoiseGenerator{
		rng: rand.New(rand.NewPCG(0x494e5455, 0x42454154)),
	}
}

func (n *NoiseGenerator) Process() float32 {
	return float32(n.rng.Float64()*2.0 - 1.0)
}
