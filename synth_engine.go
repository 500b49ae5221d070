// synth_engine.go - Transport clock, sequencer drive and effects chain

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

// Engine owns the sample-accurate transport clock, drives the sequencer,
// applies continuous filter modulation, renders the voice and pipes the
// result through the fixed Saturator -> Delay -> Reverb -> Compressor
// chain.
//
// Rendering is single-threaded and pull-based: the audio backend calls
// RenderBlock synchronously and nothing in that path locks, blocks or
// allocates. Parameter setters may be called from a control context at any
// time; they write plain scalar state and their effect lands on the next
// rendered sample (eventual consistency, by contract with the host).
type Engine struct {
	sampleRate float64

	voice     *Voice
	sequencer *Sequencer

	pitchLfo  LFO
	velLfo    LFO
	filterLfo LFO

	pitchLfoAmount   float32
	velLfoAmount     float32
	filterLfoAmount  float32
	filterCutoffBase float32

	saturator  Saturator
	delay      StereoDelay
	reverb     Reverb
	compressor Compressor

	running          bool
	tempo            float32
	clockDivider     float32
	samplesPerStep   float64
	clockAccumulator float64

	masterGain float32

	scratchL [1]float32
	scratchR [1]float32
}

func NewEngine() *Engine {
	return &Engine{
		voice:            NewVoice(),
		sequencer:        NewSequencer(),
		pitchLfoAmount:   DEFAULT_PITCH_LFO_AMT,
		velLfoAmount:     DEFAULT_VEL_LFO_AMT,
		filterCutoffBase: DEFAULT_FILTER_CUTOFF,
		tempo:            DEFAULT_TEMPO,
		clockDivider:     DEFAULT_CLOCK_DIV,
		masterGain:       DEFAULT_MASTER_GAIN,
	}
}

// Prepare sizes every buffer for the given sample rate. Must be called once
// before rendering; no buffer is ever resized inside the render path.
func (e *Engine) Prepare(sampleRate float64, blockSize int) {
	e.sampleRate = sampleRate

	e.voice.Prepare(sampleRate)
	e.pitchLfo.Prepare(sampleRate)
	e.velLfo.Prepare(sampleRate)
	e.filterLfo.Prepare(sampleRate)
	e.delay.Prepare(sampleRate)
	e.reverb.Prepare(sampleRate)
	e.compressor.Prepare(sampleRate)
	e.saturator.SetDrive(MIN_DRIVE)

	e.updateClockRate()
	e.sequencer.Reset()
}

// RenderBlock renders numSamples of stereo audio into outputL/outputR.
func (e *Engine) RenderBlock(outputL, outputR []float32, numSamples int) {
	for i := 0; i < numSamples; i++ {
		// The per-step LFOs free-run every sample; their values are only
		// sampled at step boundaries.
		e.pitchLfo.Process()
		e.velLfo.Process()

		filterLfoValue := e.filterLfo.Process()
		modulatedCutoff := clampf(
			e.filterCutoffBase+filterLfoValue*e.filterLfoAmount*FILTER_LFO_RANGE,
			MIN_FREQ, MAX_FREQ)
		e.voice.SetFilterCutoff(modulatedCutoff)

		if e.running {
			e.clockAccumulator += 1.0
			if e.clockAccumulator >= e.samplesPerStep {
				// Subtract rather than reset so fractional step lengths
				// never accumulate drift
				e.clockAccumulator -= e.samplesPerStep
				pitch, vel := e.sequencer.Advance()
				e.triggerStep(pitch, vel, e.sequencer.CurrentStep())
			}
		}

		e.scratchL[0] = 0
		e.scratchR[0] = 0
		e.voice.Render(e.scratchL[:], e.scratchR[:], 1)

		outL := e.saturator.Process(e.scratchL[0])
		outR := e.saturator.Process(e.scratchR[0])

		outL, outR = e.delay.Process(outL, outR)
		outL, outR = e.reverb.Process(outL, outR)
		outL, outR = e.compressor.Process(outL, outR)

		outputL[i] = outL * e.masterGain
		outputR[i] = outR * e.masterGain
	}
}

// SetRunning starts or stops the sequencer clock. Starting fires step 0
// synchronously rather than waiting for the first clock crossing; stopping
// leaves in-flight envelopes and effect tails to ring out naturally.
func (e *Engine) SetRunning(run bool) {
	if run && !e.running {
		e.clockAccumulator = 0
		e.sequencer.Reset()
		e.triggerStep(e.sequencer.CurrentPitch(), e.sequencer.CurrentVelocity(),
			e.sequencer.CurrentStep())
	}
	e.running = run
}

func (e *Engine) IsRunning() bool { return e.running }

func (e *Engine) SetTempo(bpm float32) {
	e.tempo = clampf(bpm, MIN_TEMPO, MAX_TEMPO)
	e.updateClockRate()
}

func (e *Engine) Tempo() float32 { return e.tempo }

func (e *Engine) SetClockDivider(divider float32) {
	e.clockDivider = clampf(divider, MIN_CLOCK_DIV, MAX_CLOCK_DIV)
	e.updateClockRate()
}

// Sequencer surface

func (e *Engine) SetStepPitch(step int, semitones float32) {
	e.sequencer.SetStepPitch(step, semitones)
}

func (e *Engine) SetStepVelocity(step int, velocity float32) {
	e.sequencer.SetStepVelocity(step, velocity)
}

func (e *Engine) SetStepPitchLfoEnabled(step int, enabled bool) {
	e.sequencer.SetStepPitchLfoEnabled(step, enabled)
}

func (e *Engine) SetStepVelocityLfoEnabled(step int, enabled bool) {
	e.sequencer.SetStepVelocityLfoEnabled(step, enabled)
}

func (e *Engine) CurrentStep() int { return e.sequencer.CurrentStep() }

// VCO / noise surface

func (e *Engine) SetVCO1Frequency(freq float32) { e.voice.SetVCO1Frequency(freq) }
func (e *Engine) SetVCO2Frequency(freq float32) { e.voice.SetVCO2Frequency(freq) }
func (e *Engine) SetVCO1Level(level float32)    { e.voice.SetVCO1Level(level) }
func (e *Engine) SetVCO2Level(level float32)    { e.voice.SetVCO2Level(level) }
func (e *Engine) SetVCO1Waveform(w int)         { e.voice.SetVCO1Waveform(w) }
func (e *Engine) SetVCO2Waveform(w int)         { e.voice.SetVCO2Waveform(w) }
func (e *Engine) SetFMAmount(amount float32)    { e.voice.SetFMAmount(amount) }
func (e *Engine) SetNoiseLevel(level float32)   { e.voice.SetNoiseLevel(level) }

func (e *Engine) SetPitchToNoiseAmount(amount float32) {
	e.voice.SetPitchToNoiseAmount(amount)
}

func (e *Engine) SetPitchToDecayAmount(amount float32) {
	e.voice.SetPitchToDecayAmount(amount)
}

// Filter surface

func (e *Engine) SetFilterCutoff(freq float32) {
	e.filterCutoffBase = freq
	e.voice.SetFilterCutoff(freq)
}

func (e *Engine) SetFilterResonance(res float32)    { e.voice.SetFilterResonance(res) }
func (e *Engine) SetFilterEnvAmount(amount float32) { e.voice.SetFilterEnvAmount(amount) }
func (e *Engine) SetFilterMode(mode int)            { e.voice.SetFilterMode(mode) }

// LFO surface

func (e *Engine) SetPitchLfoRate(hz float32)       { e.pitchLfo.SetRate(hz) }
func (e *Engine) SetPitchLfoWaveform(w int)        { e.pitchLfo.SetWaveform(w) }
func (e *Engine) SetPitchLfoClockSync(div float32) { e.pitchLfo.SetClockSync(e.tempo, div) }
func (e *Engine) SetPitchLfoAmount(semitones float32) {
	e.pitchLfoAmount = clampf(semitones, 0.0, PITCH_NORM_RANGE)
}

func (e *Engine) SetVelocityLfoRate(hz float32)       { e.velLfo.SetRate(hz) }
func (e *Engine) SetVelocityLfoWaveform(w int)        { e.velLfo.SetWaveform(w) }
func (e *Engine) SetVelocityLfoClockSync(div float32) { e.velLfo.SetClockSync(e.tempo, div) }
func (e *Engine) SetVelocityLfoAmount(amount float32) {
	e.velLfoAmount = clampf(amount, 0.0, 1.0)
}

func (e *Engine) SetFilterLfoRate(hz float32)       { e.filterLfo.SetRate(hz) }
func (e *Engine) SetFilterLfoWaveform(w int)        { e.filterLfo.SetWaveform(w) }
func (e *Engine) SetFilterLfoClockSync(div float32) { e.filterLfo.SetClockSync(e.tempo, div) }
func (e *Engine) SetFilterLfoAmount(amount float32) {
	e.filterLfoAmount = clampf(amount, 0.0, 1.0)
}

// Envelope surface

func (e *Engine) SetPitchEnvAttack(t float32)          { e.voice.SetPitchEnvAttack(t) }
func (e *Engine) SetPitchEnvDecay(t float32)           { e.voice.SetPitchEnvDecay(t) }
func (e *Engine) SetPitchEnvAmount(semitones float32)  { e.voice.SetPitchEnvAmount(semitones) }
func (e *Engine) SetVCFVCAEnvAttack(t float32)         { e.voice.SetVCFVCAEnvAttack(t) }
func (e *Engine) SetVCFVCAEnvDecay(t float32)          { e.voice.SetVCFVCAEnvDecay(t) }

// Effects surface

func (e *Engine) SetSaturatorDrive(drive float32) { e.saturator.SetDrive(drive) }
func (e *Engine) SetSaturatorMix(mix float32)     { e.saturator.SetMix(mix) }

func (e *Engine) SetDelayTime(seconds float32)    { e.delay.SetTime(seconds) }
func (e *Engine) SetDelayClockSync(div float32)   { e.delay.SetClockSync(e.tempo, div) }
func (e *Engine) SetDelayFeedback(fb float32)     { e.delay.SetFeedback(fb) }
func (e *Engine) SetDelayMix(mix float32)         { e.delay.SetMix(mix) }

func (e *Engine) SetReverbDecay(decay float32)     { e.reverb.SetDecay(decay) }
func (e *Engine) SetReverbDamping(damping float32) { e.reverb.SetDamping(damping) }
func (e *Engine) SetReverbMix(mix float32)         { e.reverb.SetMix(mix) }

func (e *Engine) SetCompressorThreshold(db float32)    { e.compressor.SetThreshold(db) }
func (e *Engine) SetCompressorRatio(ratio float32)     { e.compressor.SetRatio(ratio) }
func (e *Engine) SetCompressorAttack(ms float32)       { e.compressor.SetAttack(ms) }
func (e *Engine) SetCompressorRelease(ms float32)      { e.compressor.SetRelease(ms) }
func (e *Engine) SetCompressorMakeupGain(db float32)   { e.compressor.SetMakeupGain(db) }
func (e *Engine) SetCompressorMix(mix float32)         { e.compressor.SetMix(mix) }

// Master

func (e *Engine) SetMasterVolume(volumeDb float32) {
	e.masterGain = float32(math.Pow(10.0, float64(volumeDb)/20.0))
}

// Manual triggering that bypasses the sequencer. The note number maps to
// frequency through standard equal temperament and retunes both VCOs.
func (e *Engine) NoteOn(note int, velocity float32) {
	freq := float32(440.0 * math.Pow(2.0, float64(note-69)/12.0))
	e.voice.SetVCO1Frequency(freq)
	e.voice.SetVCO2Frequency(freq)
	e.voice.SetPitchOffset(0)
	e.voice.Trigger(clampf(velocity, 0.0, 1.0))
}

// NoteOff exists for interface symmetry; AD envelopes have no sustain to
// release.
func (e *Engine) NoteOff(note int) {}

func (e *Engine) AllNotesOff() {
	e.running = false
}

// SequencerState is a read-only snapshot for UI polling.
type SequencerState struct {
	CurrentStep int
	Running     bool
	Pitches     [NUM_STEPS]float32
	Velocities  [NUM_STEPS]float32
}

func (e *Engine) GetSequencerState() SequencerState {
	state := SequencerState{
		CurrentStep: e.sequencer.CurrentStep(),
		Running:     e.running,
	}
	for i := 0; i < NUM_STEPS; i++ {
		state.Pitches[i] = e.sequencer.StepPitch(i)
		state.Velocities[i] = e.sequencer.StepVelocity(i)
	}
	return state
}

func (e *Engine) updateClockRate() {
	stepsPerSecond := (e.tempo / 60.0) * STEP_BASE_DIV * e.clockDivider
	e.samplesPerStep = e.sampleRate / float64(stepsPerSecond)
}

// triggerStep applies the per-step LFO gating and fires the voice.
func (e *Engine) triggerStep(pitch, vel float32, step int) {
	if e.sequencer.PitchLfoEnabled(step) {
		pitch = applyPitchLFO(pitch, e.pitchLfo.Value(), e.pitchLfoAmount)
	}
	if e.sequencer.VelocityLfoEnabled(step) {
		vel = applyVelocityLFO(vel, e.velLfo.Value(), e.velLfoAmount)
	}

	e.voice.SetPitchOffset(pitch)
	e.voice.Trigger(vel)
}
