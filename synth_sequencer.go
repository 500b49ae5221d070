// synth_sequencer.go - Eight-step pitch/velocity sequencer

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

// Sequencer holds a fixed table of eight (pitch, velocity) slots plus
// per-slot flags that gate whether the pitch and velocity LFOs contribute
// when a slot is triggered. Out-of-range step indices are no-ops.
type Sequencer struct {
	pitches         [NUM_STEPS]float32
	velocities      [NUM_STEPS]float32
	pitchLfoEnabled [NUM_STEPS]bool
	velLfoEnabled   [NUM_STEPS]bool
	currentStep     int
}

func NewSequencer() *Sequencer {
	s := &Sequencer{}
	for i := range s.velocities {
		s.velocities[i] = 1.0
	}
	return s
}

func (s *Sequencer) Reset() {
	s.currentStep = 0
}

func (s *Sequencer) SetStepPitch(step int, semitones float32) {
	if step >= 0 && step < NUM_STEPS {
		s.pitches[step] = semitones
	}
}

func (s *Sequencer) SetStepVelocity(step int, vel float32) {
	if step >= 0 && step < NUM_STEPS {
		s.velocities[step] = clampf(vel, 0.0, 1.0)
	}
}

func (s *Sequencer) SetStepPitchLfoEnabled(step int, enabled bool) {
	if step >= 0 && step < NUM_STEPS {
		s.pitchLfoEnabled[step] = enabled
	}
}

func (s *Sequencer) SetStepVelocityLfoEnabled(step int, enabled bool) {
	if step >= 0 && step < NUM_STEPS {
		s.velLfoEnabled[step] = enabled
	}
}

func (s *Sequencer) StepPitch(step int) float32 {
	if step >= 0 && step < NUM_STEPS {
		return s.pitches[step]
	}
	return 0
}

func (s *Sequencer) StepVelocity(step int) float32 {
	if step >= 0 && step < NUM_STEPS {
		return s.velocities[step]
	}
	return 1.0
}

func (s *Sequencer) PitchLfoEnabled(step int) bool {
	if step >= 0 && step < NUM_STEPS {
		return s.pitchLfoEnabled[step]
	}
	return false
}

func (s *Sequencer) VelocityLfoEnabled(step int) bool {
	if step >= 0 && step < NUM_STEPS {
		return s.velLfoEnabled[step]
	}
	return false
}

// Advance moves to the next slot (circularly) and returns its values.
func (s *Sequencer) Advance() (pitch, velocity float32) {
	s.currentStep = (s.currentStep + 1) % NUM_STEPS
	return s.pitches[s.currentStep], s.velocities[s.currentStep]
}

func (s *Sequencer) CurrentPitch() float32    { return s.pitches[s.currentStep] }
func (s *Sequencer) CurrentVelocity() float32 { return s.velocities[s.currentStep] }
func (s *Sequencer) CurrentStep() int         { return s.currentStep }

// The two per-step modulation types combine differently, and the asymmetry
// is intentional: pitch modulation is additive-bipolar while velocity
// modulation rescales multiplicatively toward the LFO's unipolar value.

func applyPitchLFO(pitch, lfoValue, amount float32) float32 {
	return pitch + lfoValue*amount
}

func applyVelocityLFO(vel, lfoValue, amount float32) float32 {
	lfoScale := (lfoValue + 1.0) * 0.5
	return clampf(vel*(1.0-amount+lfoScale*amount), 0.0, 1.0)
}
