// synth_envelope.go - Exponential attack/decay contour generator

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

// ADEnvelope is a two-stage exponential envelope. The attack recursion
// reaches ~99.8% of target within the configured time and the decay falls
// to ~2% of peak within its configured time; both use the shared shaping
// constant ENV_SHAPE_K. Value is always finite and in [0, 1].
type ADEnvelope struct {
	sampleRate float64
	attackTime float32
	decayTime  float32
	attackCoef float32
	decayCoef  float32
	value      float32
	stage      int
}

func (e *ADEnvelope) Prepare(sampleRate float64) {
	e.sampleRate = sampleRate
	if e.attackTime == 0 {
		e.attackTime = 0.01
	}
	if e.decayTime == 0 {
		e.decayTime = 0.5
	}
	e.updateCoefficients()
}

func (e *ADEnvelope) SetAttack(seconds float32) {
	e.attackTime = seconds
	if e.attackTime < MIN_ENV_TIME {
		e.attackTime = MIN_ENV_TIME
	}
	e.updateCoefficients()
}

func (e *ADEnvelope) SetDecay(seconds float32) {
	e.decayTime = seconds
	if e.decayTime < MIN_ENV_TIME {
		e.decayTime = MIN_ENV_TIME
	}
	e.updateCoefficients()
}

// Trigger forces the Attack stage from any state. The current value is kept
// unless it is already near zero, so retriggering mid-decay continues from
// the present level without a discontinuity.
func (e *ADEnvelope) Trigger() {
	e.stage = ENV_ATTACK
	if e.value < ENV_DECAY_DONE {
		e.value = 0
	}
}

func (e *ADEnvelope) Process() float32 {
	switch e.stage {
	case ENV_ATTACK:
		e.value += e.attackCoef * (1.0 - e.value)
		if e.value >= ENV_ATTACK_DONE {
			e.value = 1.0
			e.stage = ENV_DECAY
		}

	case ENV_DECAY:
		e.value *= e.decayCoef
		if e.value <= ENV_DECAY_DONE {
			e.value = 0
			e.stage = ENV_IDLE
		}
	}
	return e.value
}

func (e *ADEnvelope) IsActive() bool {
	return e.stage != ENV_IDLE
}

func (e *ADEnvelope) Value() float32 {
	return e.value
}

func (e *ADEnvelope) DecayTime() float32 {
	return e.decayTime
}

func (e *ADEnvelope) updateCoefficients() {
	attackSamples := float64(e.attackTime) * e.sampleRate
	e.attackCoef = float32(1.0 - math.Exp(-ENV_SHAPE_K/attackSamples))

	decaySamples := float64(e.decayTime) * e.sampleRate
	e.decayCoef = float32(math.Exp(-ENV_SHAPE_K / decaySamples))
}
