// wav_export.go - Offline rendering to a 16-bit stereo WAV file

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
	"os"

	wav "github.com/youpy/go-wav"
)

const wavRenderBlock = 512

// RenderToWav renders the engine offline for the given duration and writes
// a 16-bit stereo WAV file. Rendering is deterministic: the same parameters
// and duration always produce the same file.
func RenderToWav(engine *Engine, path string, seconds float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	totalFrames := int(seconds * float64(sampleRate))
	writer := wav.NewWriter(f, uint32(totalFrames), 2, uint32(sampleRate), 16)

	bufL := make([]float32, wavRenderBlock)
	bufR := make([]float32, wavRenderBlock)
	samples := make([]wav.Sample, wavRenderBlock)

	for rendered := 0; rendered < totalFrames; {
		n := wavRenderBlock
		if totalFrames-rendered < n {
			n = totalFrames - rendered
		}

		engine.RenderBlock(bufL[:n], bufR[:n], n)

		for i := 0; i < n; i++ {
			samples[i].Values[0] = int(clampf(bufL[i], -1.0, 1.0) * 32767.0)
			samples[i].Values[1] = int(clampf(bufR[i], -1.0, 1.0) * 32767.0)
		}
		if err := writer.WriteSamples(samples[:n]); err != nil {
			return err
		}

		rendered += n
	}

	return nil
}
