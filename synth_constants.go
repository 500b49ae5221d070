// synth_constants.go - Shared constants and parameter ranges for the percussion engine

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

const SAMPLE_RATE = 44100 // Default rate for the standalone shell

// Oscillator/filter frequency range (Hz)
const (
	MIN_FREQ = 20.0
	MAX_FREQ = 20000.0
)

// Waveform selectors for the audio-rate oscillators
const (
	WAVE_SAW = iota
	WAVE_SQUARE
	WAVE_TRIANGLE
	WAVE_SINE
)

// Waveform selectors for the modulation LFOs (note the different ordering
// from the audio oscillators; both orderings are load-bearing)
const (
	LFO_SINE = iota
	LFO_TRIANGLE
	LFO_SAW
	LFO_SQUARE
)

// Envelope stages
const (
	ENV_IDLE = iota
	ENV_ATTACK
	ENV_DECAY
)

const (
	MIN_ENV_TIME    = 0.001 // Seconds
	ENV_SHAPE_K     = 4.0   // Exponential shaping constant (99.8% settle)
	ENV_ATTACK_DONE = 0.999
	ENV_DECAY_DONE  = 0.001
)

// Filter modes
const (
	FILTER_LOWPASS = iota
	FILTER_HIGHPASS
)

const MAX_FILTER_FC = 0.49 // Normalized cutoff ceiling for the tan() warp

// LFO rate range for free-running mode (Hz)
const (
	MIN_LFO_RATE = 0.01
	MAX_LFO_RATE = 20.0
)

// Transport
const (
	MIN_TEMPO     = 20.0
	MAX_TEMPO     = 300.0
	MIN_CLOCK_DIV = 0.0625 // 1/16
	MAX_CLOCK_DIV = 16.0
	STEP_BASE_DIV = 4.0 // Base clock unit is a sixteenth note
)

const NUM_STEPS = 8

// Voice
const (
	ANTI_CLICK_SAMPLES = 88 // ~2ms at 44.1kHz; fixed in samples, not time
	MIN_DECAY_TIME     = 0.01
	MAX_DECAY_TIME     = 4.0
	FILTER_ENV_RANGE   = 10000.0 // Hz swept by the filter envelope at full amount
	FILTER_LFO_RANGE   = 5000.0  // Hz swept by the filter LFO at full amount
	PITCH_NORM_RANGE   = 24.0    // Semitone span used to normalize pitch offsets
)

// Saturator
const (
	MIN_DRIVE = 1.0
	MAX_DRIVE = 20.0
)

// Stereo delay
const (
	MAX_DELAY_SECONDS  = 4.0
	MIN_DELAY_SECONDS  = 0.001
	MAX_DELAY_FEEDBACK = 0.95
)

// Reverb: four series allpass diffusers feeding eight parallel combs,
// four per channel. Times in seconds; near-prime sample counts at 44.1kHz.
const (
	NUM_ALLPASS        = 4
	NUM_COMBS          = 8
	COMBS_PER_CHANNEL  = 4
	REVERB_ALLPASS_FB  = 0.5
	REVERB_COMB_ATTEN  = 0.25
	REVERB_TAIL_TARGET = 0.001 // -60dB level that defines the decay time
	MIN_REVERB_DECAY   = 0.1
	MAX_REVERB_DECAY   = 10.0
)

var reverbAllpassTimes = [NUM_ALLPASS]float64{0.0051, 0.0076, 0.01, 0.0123}

var reverbCombTimes = [NUM_COMBS]float64{
	0.0297, 0.0371, 0.0411, 0.0437, // Left bank
	0.0299, 0.0373, 0.0413, 0.0439, // Right bank
}

// Compressor
const (
	MIN_COMP_RATIO      = 1.0
	MAX_COMP_RATIO      = 20.0
	MIN_COMP_ATTACK_MS  = 0.1
	MAX_COMP_ATTACK_MS  = 100.0
	MIN_COMP_RELEASE_MS = 10.0
	MAX_COMP_RELEASE_MS = 1000.0
)

// Voice defaults (the stock DFAM-style patch)
const (
	DEFAULT_VCO_FREQ        = 110.0
	DEFAULT_VCO_LEVEL       = 0.5
	DEFAULT_FILTER_CUTOFF   = 5000.0
	DEFAULT_FILTER_ENV_AMT  = 0.5
	DEFAULT_PITCH_ENV_AMT   = 24.0
	DEFAULT_PITCH_ENV_ATK   = 0.001
	DEFAULT_PITCH_ENV_DEC   = 0.3
	DEFAULT_VCFVCA_ENV_ATK  = 0.001
	DEFAULT_VCFVCA_ENV_DEC  = 0.5
	DEFAULT_VOICE_LEVEL     = 0.8
	DEFAULT_TEMPO           = 120.0
	DEFAULT_CLOCK_DIV       = 1.0
	DEFAULT_MASTER_GAIN     = 0.5
	DEFAULT_PITCH_LFO_AMT   = 12.0 // Semitones
	DEFAULT_VEL_LFO_AMT     = 0.5
	DEFAULT_COMP_THRESHOLD  = -10.0
	DEFAULT_COMP_RATIO      = 4.0
	DEFAULT_COMP_ATTACK_MS  = 10.0
	DEFAULT_COMP_RELEASE_MS = 100.0
	DEFAULT_REVERB_DECAY    = 2.0
	DEFAULT_REVERB_DAMPING  = 0.5
)

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
