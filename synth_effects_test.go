// synth_effects_test.go - Saturator, delay, reverb and compressor verification

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
	"testing"
)

func TestSaturatorDryBypass(t *testing.T) {
	sat := &Saturator{}
	sat.SetDrive(10)
	sat.SetMix(0)

	for _, in := range []float32{-1.5, -0.5, 0, 0.3, 2.0} {
		if out := sat.Process(in); out != in {
			t.Errorf("mix 0 altered the signal: %v -> %v", in, out)
		}
	}
}

func TestSaturatorLimitsWetSignal(t *testing.T) {
	sat := &Saturator{}
	sat.SetDrive(10)
	sat.SetMix(1)

	for _, in := range []float32{-5, -1, 1, 5} {
		out := sat.Process(in)
		if math.Abs(float64(out)) > 1.0 {
			t.Errorf("fully wet tanh exceeded unity: %v -> %v", in, out)
		}
	}

	// Drive pushes small signals toward the rails
	quiet := sat.Process(0.1)
	if quiet < 0.5 {
		t.Errorf("drive 10 barely lifted a quiet signal: %v", quiet)
	}
}

func TestSaturatorDriveClamped(t *testing.T) {
	sat := &Saturator{}
	sat.SetDrive(0)
	if sat.drive != MIN_DRIVE {
		t.Errorf("zero drive not clamped to unity: %v", sat.drive)
	}
	sat.SetDrive(1000)
	if sat.drive != MAX_DRIVE {
		t.Errorf("drive not clamped: %v", sat.drive)
	}
}

func TestDelayExactEcho(t *testing.T) {
	t.Log("=== DELAY LINE ===")
	t.Log("Fully wet, zero feedback, 0.5s: an impulse must reappear exactly")
	t.Log("22050 samples later and nowhere else")

	d := &StereoDelay{}
	d.Prepare(SAMPLE_RATE)
	d.SetTime(0.5)
	d.SetFeedback(0)
	d.SetMix(1)

	echoAt := SAMPLE_RATE / 2
	for i := 0; i <= echoAt; i++ {
		var in float32
		if i == 0 {
			in = 1
		}
		outL, outR := d.Process(in, in)
		switch {
		case i == echoAt:
			if outL != 1 || outR != 1 {
				t.Fatalf("echo at sample %d = (%v, %v), want (1, 1)", i, outL, outR)
			}
		default:
			if outL != 0 || outR != 0 {
				t.Fatalf("spurious output at sample %d: (%v, %v)", i, outL, outR)
			}
		}
	}
}

func TestDelayFeedbackRepeats(t *testing.T) {
	d := &StereoDelay{}
	d.Prepare(SAMPLE_RATE)
	d.SetTime(0.1)
	d.SetFeedback(0.5)
	d.SetMix(1)

	period := SAMPLE_RATE / 10
	var taps []float32
	for i := 0; i < period*3+1; i++ {
		var in float32
		if i == 0 {
			in = 1
		}
		outL, _ := d.Process(in, in)
		if i == period || i == period*2 || i == period*3 {
			taps = append(taps, outL)
		}
	}

	want := []float32{1, 0.5, 0.25}
	for i, tap := range taps {
		if diff := math.Abs(float64(tap - want[i])); diff > 1e-6 {
			t.Errorf("echo %d = %v, want %v", i+1, tap, want[i])
		}
	}
}

func TestDelayClockSync(t *testing.T) {
	d := &StereoDelay{}
	d.Prepare(SAMPLE_RATE)

	// 120 BPM, divider 2: half a beat = 0.25s
	d.SetClockSync(120, 2)
	if d.delaySamples != SAMPLE_RATE/4 {
		t.Errorf("synced delay = %d samples, want %d", d.delaySamples, SAMPLE_RATE/4)
	}

	// Divider 1 at 60 BPM: one full second
	d.SetClockSync(60, 1)
	if d.delaySamples != SAMPLE_RATE {
		t.Errorf("synced delay = %d samples, want %d", d.delaySamples, SAMPLE_RATE)
	}
}

func TestDelayFeedbackClamped(t *testing.T) {
	d := &StereoDelay{}
	d.Prepare(SAMPLE_RATE)
	d.SetFeedback(2.0)
	if d.feedback != MAX_DELAY_FEEDBACK {
		t.Errorf("runaway feedback not clamped: %v", d.feedback)
	}
}

func TestReverbMixCurve(t *testing.T) {
	// The wet control is deliberately 4th-power: half the knob is a
	// sixteenth of the mix
	r := &Reverb{}
	r.Prepare(SAMPLE_RATE)

	r.SetMix(0.5)
	if diff := math.Abs(float64(r.mix - 0.0625)); diff > 1e-6 {
		t.Errorf("mix 0.5 stored as %v, want 0.0625", r.mix)
	}
	r.SetMix(1.0)
	if r.mix != 1.0 {
		t.Errorf("full mix stored as %v", r.mix)
	}
	r.SetMix(0)
	if r.mix != 0 {
		t.Errorf("zero mix stored as %v", r.mix)
	}
}

func TestReverbDryPassAtZeroMix(t *testing.T) {
	r := &Reverb{}
	r.Prepare(SAMPLE_RATE)
	r.SetMix(0)

	osc := &Oscillator{}
	osc.Prepare(SAMPLE_RATE)
	osc.SetFrequency(440)

	for i := 0; i < 10000; i++ {
		in := osc.Process()
		outL, outR := r.Process(in, in)
		if outL != in || outR != in {
			t.Fatalf("zero mix altered the signal at sample %d", i)
		}
	}
}

func TestReverbProducesTail(t *testing.T) {
	t.Log("A fully wet impulse must ring: energy present well after the")
	t.Log("longest comb time, decaying toward silence")

	r := &Reverb{}
	r.Prepare(SAMPLE_RATE)
	r.SetDecay(1.0)
	r.SetMix(1.0)

	r.Process(1, 1)
	var early, late float64
	for i := 1; i < SAMPLE_RATE; i++ {
		outL, _ := r.Process(0, 0)
		a := math.Abs(float64(outL))
		if i < SAMPLE_RATE/10 {
			if a > early {
				early = a
			}
		} else if i > SAMPLE_RATE*3/4 {
			if a > late {
				late = a
			}
		}
	}

	if early < 0.001 {
		t.Errorf("no early reflections: peak %.6f", early)
	}
	if late >= early {
		t.Errorf("tail not decaying: early %.5f late %.5f", early, late)
	}
}

func TestReverbStaysFinite(t *testing.T) {
	r := &Reverb{}
	r.Prepare(SAMPLE_RATE)
	r.SetDecay(MAX_REVERB_DECAY)
	r.SetDamping(0)
	r.SetMix(1.0)

	for i := 0; i < SAMPLE_RATE * 2; i++ {
		outL, outR := r.Process(1, 1)
		if math.IsNaN(float64(outL)) || math.IsInf(float64(outL), 0) ||
			math.IsNaN(float64(outR)) || math.IsInf(float64(outR), 0) {
			t.Fatalf("reverb went non-finite at sample %d", i)
		}
	}
}

func TestCompressorBypassIsBitExact(t *testing.T) {
	t.Log("=== COMPRESSOR ===")
	t.Log("Mix 0 must return the dry samples untouched while the envelope")
	t.Log("follower keeps tracking underneath")

	c := &Compressor{}
	c.Prepare(SAMPLE_RATE)
	c.SetMix(0)

	osc := &Oscillator{}
	osc.Prepare(SAMPLE_RATE)
	osc.SetFrequency(100)

	for i := 0; i < 20000; i++ {
		in := osc.Process() * 0.9
		outL, outR := c.Process(in, in)
		if outL != in || outR != in {
			t.Fatalf("bypass not bit-exact at sample %d: %v != %v", i, outL, in)
		}
	}
}

func TestCompressorReducesLoudSignal(t *testing.T) {
	c := &Compressor{}
	c.Prepare(SAMPLE_RATE)
	c.SetThreshold(-20)
	c.SetRatio(10)
	c.SetAttack(1)
	c.SetRelease(100)
	c.SetMakeupGain(0)
	c.SetMix(1)

	osc := &Oscillator{}
	osc.Prepare(SAMPLE_RATE)
	osc.SetFrequency(440)

	// Skip the attack transient, then compare steady-state RMS
	for i := 0; i < 4410; i++ {
		c.Process(osc.Process(), 0)
	}
	var inSq, outSq float64
	const n = SAMPLE_RATE / 2
	for i := 0; i < n; i++ {
		in := osc.Process()
		outL, _ := c.Process(in, 0)
		inSq += float64(in) * float64(in)
		outSq += float64(outL) * float64(outL)
	}
	inRms := math.Sqrt(inSq / n)
	outRms := math.Sqrt(outSq / n)
	t.Logf("0dBFS sine through -20dB/10:1: in RMS %.3f out RMS %.3f", inRms, outRms)

	if outRms > inRms*0.5 {
		t.Errorf("compressor barely working: %.3f -> %.3f", inRms, outRms)
	}
}

func TestCompressorLeavesQuietSignalAlone(t *testing.T) {
	c := &Compressor{}
	c.Prepare(SAMPLE_RATE)
	c.SetThreshold(-10)
	c.SetRatio(4)
	c.SetMakeupGain(0)
	c.SetMix(1)

	// -40dB sine sits far below threshold: gain stays ~unity
	osc := &Oscillator{}
	osc.Prepare(SAMPLE_RATE)
	osc.SetFrequency(440)

	for i := 0; i < 4410; i++ {
		in := osc.Process() * 0.01
		c.Process(in, in)
	}
	if c.envelope < 0.99 {
		t.Errorf("gain envelope dipped on a quiet signal: %v", c.envelope)
	}
}

func TestCompressorRatioClamped(t *testing.T) {
	c := &Compressor{}
	c.Prepare(SAMPLE_RATE)
	c.SetRatio(0.5)
	if c.ratio != MIN_COMP_RATIO {
		t.Errorf("sub-unity ratio not clamped: %v", c.ratio)
	}
	c.SetRatio(1000)
	if c.ratio != MAX_COMP_RATIO {
		t.Errorf("ratio not clamped: %v", c.ratio)
	}
}
