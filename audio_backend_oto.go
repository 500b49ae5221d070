//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

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
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	engine  atomic.Pointer[Engine] // Atomic for lock-free Read()
	renderL []float32
	renderR []float32
	started bool
	mutex   sync.Mutex // Only for setup/control operations
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{
		ctx:     ctx,
		started: false,
	}, nil
}

func (op *OtoPlayer) SetupPlayer(engine *Engine) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.engine.Store(engine)
	op.player = op.ctx.NewPlayer(op)
	// Pre-allocate per-channel render buffers for typical oto pulls
	// (8192 bytes = 1024 stereo float32 frames)
	op.renderL = make([]float32, 1024)
	op.renderR = make([]float32, 1024)
}

// Read renders interleaved little-endian stereo float32 frames. This is the
// realtime pull path: no locks, and no allocation for any pull that fits
// the pre-sized buffers.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	engine := op.engine.Load()
	if engine == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numFrames := len(p) / 8
	if numFrames == 0 {
		return 0, nil
	}
	if numFrames > len(op.renderL) {
		op.renderL = make([]float32, numFrames)
		op.renderR = make([]float32, numFrames)
	}

	engine.RenderBlock(op.renderL[:numFrames], op.renderR[:numFrames], numFrames)

	for i := 0; i < numFrames; i++ {
		l := math.Float32bits(op.renderL[i])
		r := math.Float32bits(op.renderR[i])
		o := i * 8
		p[o+0] = byte(l)
		p[o+1] = byte(l >> 8)
		p[o+2] = byte(l >> 16)
		p[o+3] = byte(l >> 24)
		p[o+4] = byte(r)
		p[o+5] = byte(r >> 8)
		p[o+6] = byte(r >> 16)
		p[o+7] = byte(r >> 24)
	}

	return numFrames * 8, nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil && !op.started {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil && op.started {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil {
		_ = op.player.Close()
	}
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
