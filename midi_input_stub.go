//go:build !midi

// midi_input_stub.go - Stub for builds without PortMidi

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

import "fmt"

func RunMidiInput(engine *Engine, stop <-chan struct{}) error {
	return fmt.Errorf("built without MIDI support (rebuild with -tags midi)")
}
