// synth_voice.go - Monophonic percussion voice

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

// Voice composes the full monophonic signal path:
//
//	VCO1 ----+
//	         |---> Mixer ---> VCF (Ladder) ---> VCA ---> anti-click ramp
//	VCO2 ----+                  ^               ^
//	  ^      |                  |               |
//	  |   Noise            VCF/VCA Env     VCF/VCA Env
//	FM from VCO1
//
// The pitch envelope sweeps both VCO frequencies exponentially; VCO1's
// output linearly frequency-modulates VCO2. State is mutated only during
// Render and Trigger.
type Voice struct {
	sampleRate float64

	vco1      Oscillator
	vco2      Oscillator
	noise     *NoiseGenerator
	filter    LadderFilter
	pitchEnv  ADEnvelope
	vcfVcaEnv ADEnvelope

	vco1BaseFreq float32
	vco2BaseFreq float32
	vco1Level    float32
	vco2Level    float32
	noiseLevel   float32
	fmAmount     float32

	pitchToNoiseAmount float32
	pitchToDecayAmount float32
	vcfVcaDecayBase    float32

	filterCutoff    float32
	filterEnvAmount float32
	pitchEnvAmount  float32

	pitchOffset float32
	velocity    float32
	masterLevel float32

	antiClickRamp   float32
	antiClickActive bool
}

func NewVoice() *Voice {
	return &Voice{
		noise:           NewNoiseGenerator(),
		vco1BaseFreq:    DEFAULT_VCO_FREQ,
		vco2BaseFreq:    DEFAULT_VCO_FREQ,
		vco1Level:       DEFAULT_VCO_LEVEL,
		vco2Level:       DEFAULT_VCO_LEVEL,
		vcfVcaDecayBase: DEFAULT_VCFVCA_ENV_DEC,
		filterCutoff:    DEFAULT_FILTER_CUTOFF,
		filterEnvAmount: DEFAULT_FILTER_ENV_AMT,
		pitchEnvAmount:  DEFAULT_PITCH_ENV_AMT,
		velocity:        1.0,
		masterLevel:     DEFAULT_VOICE_LEVEL,
		antiClickRamp:   1.0,
	}
}

func (v *Voice) Prepare(sampleRate float64) {
	v.sampleRate = sampleRate

	v.vco1.Prepare(sampleRate)
	v.vco2.Prepare(sampleRate)
	v.filter.Prepare(sampleRate)
	v.pitchEnv.Prepare(sampleRate)
	v.vcfVcaEnv.Prepare(sampleRate)

	v.pitchEnv.SetAttack(DEFAULT_PITCH_ENV_ATK)
	v.pitchEnv.SetDecay(DEFAULT_PITCH_ENV_DEC)
	v.vcfVcaEnv.SetAttack(DEFAULT_VCFVCA_ENV_ATK)
	v.vcfVcaEnv.SetDecay(v.vcfVcaDecayBase)
}

// Trigger starts (or restarts) the voice. Envelope values carry over from
// any in-flight decay; the oscillator phases reset; the anti-click ramp
// rises linearly over ANTI_CLICK_SAMPLES to mask the onset discontinuity
// caused by non-zero filter and envelope carry-over state.
func (v *Voice) Trigger(vel float32) {
	v.velocity = vel

	v.vco1.ResetPhase()
	v.vco2.ResetPhase()

	v.vcfVcaEnv.SetDecay(v.effectiveDecayTime())

	v.pitchEnv.Trigger()
	v.vcfVcaEnv.Trigger()

	v.antiClickRamp = 0
	v.antiClickActive = true
}

// Render mixes the voice into outputL/outputR (additive, like a bus send).
func (v *Voice) Render(outputL, outputR []float32, numSamples int) {
	for i := 0; i < numSamples; i++ {
		pitchEnvValue := v.pitchEnv.Process()
		vcfVcaEnvValue := v.vcfVcaEnv.Process()

		semitones := pitchEnvValue*v.pitchEnvAmount + v.pitchOffset
		ratio := float32(math.Pow(2.0, float64(semitones)/12.0))
		vco1Freq := v.vco1BaseFreq * ratio
		vco2Freq := v.vco2BaseFreq * ratio

		v.vco1.SetFrequency(vco1Freq)
		vco1Out := v.vco1.Process()

		// Linear FM: VCO1 output perturbs VCO2's instantaneous frequency
		fmMod := vco1Out * v.fmAmount * vco2Freq
		v.vco2.SetFrequency(vco2Freq + fmMod)
		vco2Out := v.vco2.Process()

		noiseOut := v.noise.Process()
		noiseLvl := modulatedNoiseLevel(v.noiseLevel, v.pitchToNoiseAmount, v.pitchOffset)

		mix := vco1Out*v.vco1Level + vco2Out*v.vco2Level + noiseOut*noiseLvl

		filterMod := v.filterCutoff + vcfVcaEnvValue*v.filterEnvAmount*FILTER_ENV_RANGE
		v.filter.SetCutoff(clampf(filterMod, MIN_FREQ, MAX_FREQ))
		filtered := v.filter.Process(mix)

		output := filtered * vcfVcaEnvValue * v.velocity * v.masterLevel

		if v.antiClickActive {
			v.antiClickRamp += 1.0 / ANTI_CLICK_SAMPLES
			if v.antiClickRamp >= 1.0 {
				v.antiClickRamp = 1.0
				v.antiClickActive = false
			}
			output *= v.antiClickRamp
		}

		outputL[i] += output
		outputR[i] += output
	}
}

// pitchNormalized maps a pitch offset in semitones to [0, 1], with -24st at
// 0, 0st at 0.5 and +24st at 1.
func pitchNormalized(pitchOffset float32) float32 {
	return clampf((pitchOffset+PITCH_NORM_RANGE)/(2.0*PITCH_NORM_RANGE), 0.0, 1.0)
}

// pitchDecayScale derives the bipolar decay modulation in [-amount, amount]
// from the current pitch offset.
func pitchDecayScale(amount, pitchOffset float32) float32 {
	return amount * (pitchNormalized(pitchOffset) - 0.5) * 2.0
}

// modulatedNoiseLevel couples the noise level to pitch: higher steps bring
// up the noise floor when the amount is nonzero.
func modulatedNoiseLevel(noiseLevel, amount, pitchOffset float32) float32 {
	return noiseLevel + amount*pitchNormalized(pitchOffset)
}

// effectiveDecayTime scales the configured VCF/VCA decay by the pitch→decay
// coupling. Recomputed on every trigger.
func (v *Voice) effectiveDecayTime() float32 {
	scaled := v.vcfVcaDecayBase * (1.0 + pitchDecayScale(v.pitchToDecayAmount, v.pitchOffset))
	return clampf(scaled, MIN_DECAY_TIME, MAX_DECAY_TIME)
}

func (v *Voice) SetVCO1Frequency(freq float32) { v.vco1BaseFreq = freq }
func (v *Voice) SetVCO1Level(level float32)    { v.vco1Level = level }
func (v *Voice) SetVCO1Waveform(w int)         { v.vco1.SetWaveform(w) }

func (v *Voice) SetVCO2Frequency(freq float32) { v.vco2BaseFreq = freq }
func (v *Voice) SetVCO2Level(level float32)    { v.vco2Level = level }
func (v *Voice) SetVCO2Waveform(w int)         { v.vco2.SetWaveform(w) }

func (v *Voice) SetFMAmount(amount float32) { v.fmAmount = amount }

func (v *Voice) SetNoiseLevel(level float32) { v.noiseLevel = level }

func (v *Voice) SetPitchToNoiseAmount(amount float32) {
	v.pitchToNoiseAmount = clampf(amount, 0.0, 1.0)
}

func (v *Voice) SetPitchToDecayAmount(amount float32) {
	v.pitchToDecayAmount = clampf(amount, -1.0, 1.0)
}

func (v *Voice) SetFilterCutoff(freq float32) {
	v.filterCutoff = freq
	v.filter.SetCutoff(freq)
}

func (v *Voice) SetFilterResonance(res float32) { v.filter.SetResonance(res) }
func (v *Voice) SetFilterEnvAmount(amount float32) {
	v.filterEnvAmount = amount
}
func (v *Voice) SetFilterMode(mode int) { v.filter.SetMode(mode) }

func (v *Voice) SetPitchEnvAttack(t float32) { v.pitchEnv.SetAttack(t) }
func (v *Voice) SetPitchEnvDecay(t float32)  { v.pitchEnv.SetDecay(t) }
func (v *Voice) SetPitchEnvAmount(semitones float32) {
	v.pitchEnvAmount = semitones
}

func (v *Voice) SetVCFVCAEnvAttack(t float32) { v.vcfVcaEnv.SetAttack(t) }
func (v *Voice) SetVCFVCAEnvDecay(t float32) {
	v.vcfVcaDecayBase = t
	v.vcfVcaEnv.SetDecay(t)
}

func (v *Voice) SetPitchOffset(semitones float32) { v.pitchOffset = semitones }
func (v *Voice) SetMasterLevel(level float32)     { v.masterLevel = level }

func (v *Voice) IsActive() bool { return v.vcfVcaEnv.IsActive() }
