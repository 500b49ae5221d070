//go:build midi

// midi_input.go - PortMidi note input for manual triggering

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
	"fmt"
	"time"

	"github.com/rakyll/portmidi"
)

const (
	midiStatusNoteOn  = 0x90
	midiStatusNoteOff = 0x80
)

// RunMidiInput opens the default MIDI input device and maps incoming notes
// onto the engine's manual-trigger interface until stop is closed. Note-on
// with velocity 0 is treated as note-off, per convention.
func RunMidiInput(engine *Engine, stop <-chan struct{}) error {
	if err := portmidi.Initialize(); err != nil {
		return fmt.Errorf("portmidi init: %w", err)
	}
	defer portmidi.Terminate()

	deviceID := portmidi.DefaultInputDeviceID()
	if deviceID < 0 {
		return fmt.Errorf("no MIDI input device available")
	}

	in, err := portmidi.NewInputStream(deviceID, 1024)
	if err != nil {
		return fmt.Errorf("portmidi open: %w", err)
	}
	defer in.Close()

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		events, err := in.Read(1024)
		if err != nil {
			return fmt.Errorf("portmidi read: %w", err)
		}

		for _, event := range events {
			status := event.Status & 0xF0
			note := int(event.Data1)
			velocity := float32(event.Data2) / 127.0

			switch {
			case status == midiStatusNoteOn && event.Data2 > 0:
				engine.NoteOn(note, velocity)
			case status == midiStatusNoteOff,
				status == midiStatusNoteOn && event.Data2 == 0:
				engine.NoteOff(note)
			}
		}

		time.Sleep(time.Millisecond)
	}
}
