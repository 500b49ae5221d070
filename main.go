// main.go - Standalone shell for the IntuitionBeat percussion engine

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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █     ▄▄▄▄    ▓█████  ▄▄▄      ▄▄▄█████▓\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█████▄  ▓█   ▀ ▒████▄    ▓  ██▒ ▓▒\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒██▒ ▄██ ▒███   ▒██  ▀█▄  ▒ ▓██░ ▒░\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒██░█▀   ▒▓█  ▄ ░██▄▄▄▄██ ░ ▓██▓ ░\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▓█  ▀█▓ ░▒████▒ ▓█   ▓██▒  ▒██▒ ░\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░▒▓███▀▒ ░░ ▒░ ░ ▒▒   ▓▒█░  ▒ ░░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░   ▒░▒   ░   ░ ░  ░  ▒   ▒▒ ░    ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░     ░    ░     ░     ░   ▒     ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░     ░          ░  ░      ░  ░\033[0m")
	fmt.Println("\nA DFAM-style monophonic percussion synthesizer and 8-step groovebox.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionBeat")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	wavPath := flag.String("wav", "", "render offline to a WAV file instead of playing")
	seconds := flag.Float64("seconds", 8.0, "duration of offline WAV render")
	tempo := flag.Float64("tempo", DEFAULT_TEMPO, "sequencer tempo in BPM")
	live := flag.Bool("live", false, "interactive terminal transport (space: run/stop, q: quit)")
	midi := flag.Bool("midi", false, "take note input from the default MIDI device")
	flag.Parse()

	boilerPlate()

	engine := NewEngine()
	engine.Prepare(SAMPLE_RATE, 512)
	engine.SetTempo(float32(*tempo))
	loadDemoPatch(engine)

	if *wavPath != "" {
		engine.SetRunning(true)
		if err := RenderToWav(engine, *wavPath, *seconds, SAMPLE_RATE); err != nil {
			fmt.Printf("WAV render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rendered %.1fs to %s\n", *seconds, *wavPath)
		return
	}

	output, err := NewAudioOutput(AUDIO_BACKEND_OTO, SAMPLE_RATE, engine)
	if err != nil {
		fmt.Printf("Failed to initialize audio: %v\n", err)
		os.Exit(1)
	}
	defer output.Close()
	output.Start()

	switch {
	case *midi:
		stop := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			close(stop)
		}()
		fmt.Println("Listening for MIDI notes (Ctrl-C to quit)...")
		if err := RunMidiInput(engine, stop); err != nil {
			fmt.Printf("MIDI input failed: %v\n", err)
			os.Exit(1)
		}

	case *live:
		if err := RunLiveTerminal(engine); err != nil {
			fmt.Printf("Live mode failed: %v\n", err)
			os.Exit(1)
		}

	default:
		engine.SetRunning(true)
		fmt.Println("Playing demo pattern (Ctrl-C to quit)...")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	}

	engine.SetRunning(false)
	output.Stop()
}

// loadDemoPatch dials in a kick/tom pattern that exercises the voice
// couplings and the effects chain.
func loadDemoPatch(engine *Engine) {
	engine.SetVCO1Waveform(WAVE_SINE)
	engine.SetVCO2Waveform(WAVE_TRIANGLE)
	engine.SetVCO1Frequency(55.0)
	engine.SetVCO2Frequency(110.0)
	engine.SetVCO1Level(0.8)
	engine.SetVCO2Level(0.3)
	engine.SetFMAmount(0.2)
	engine.SetNoiseLevel(0.05)
	engine.SetPitchToNoiseAmount(0.3)

	engine.SetFilterCutoff(900.0)
	engine.SetFilterResonance(0.35)
	engine.SetFilterEnvAmount(0.6)

	engine.SetPitchEnvAttack(0.001)
	engine.SetPitchEnvDecay(0.08)
	engine.SetPitchEnvAmount(30.0)
	engine.SetVCFVCAEnvAttack(0.001)
	engine.SetVCFVCAEnvDecay(0.35)
	engine.SetPitchToDecayAmount(-0.5)

	pitches := []float32{0, 0, 12, 0, 0, 7, 12, 3}
	velocities := []float32{1.0, 0.5, 0.8, 0.4, 1.0, 0.6, 0.9, 0.7}
	for i := 0; i < NUM_STEPS; i++ {
		engine.SetStepPitch(i, pitches[i])
		engine.SetStepVelocity(i, velocities[i])
	}
	engine.SetStepPitchLfoEnabled(2, true)
	engine.SetStepPitchLfoEnabled(6, true)
	engine.SetStepVelocityLfoEnabled(3, true)
	engine.SetStepVelocityLfoEnabled(7, true)
	engine.SetPitchLfoClockSync(0.25)
	engine.SetPitchLfoAmount(7.0)
	engine.SetVelocityLfoClockSync(0.5)
	engine.SetVelocityLfoAmount(0.6)

	engine.SetFilterLfoRate(0.4)
	engine.SetFilterLfoAmount(0.25)

	engine.SetSaturatorDrive(3.0)
	engine.SetSaturatorMix(0.4)
	engine.SetDelayClockSync(1.5)
	engine.SetDelayFeedback(0.35)
	engine.SetDelayMix(0.25)
	engine.SetReverbDecay(1.8)
	engine.SetReverbDamping(0.6)
	engine.SetReverbMix(0.55)
	engine.SetCompressorThreshold(-12.0)
	engine.SetCompressorRatio(4.0)
	engine.SetCompressorMix(0.8)
	engine.SetMasterVolume(-6.0)
}
