// Package audio plays the race music and sound effects through oto.
// All sounds are synthesized at runtime; there are no asset files.
package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/f1race/internal/core"
)

// DefaultVolume is the output volume in (0,1].
const DefaultVolume = 0.4

// sampleFormat matches the float32 PCM produced by the synthesizers.
const sampleFormat = oto.FormatFloat32LE

// voice is a playing sound. oto.Player satisfies it.
type voice interface {
	Play()
	SetVolume(volume float64)
	Close() error
}

// mixer creates voices for readers.
type mixer interface {
	newVoice(r io.Reader) voice
}

type otoMixer struct {
	ctx *oto.Context
}

func (m otoMixer) newVoice(r io.Reader) voice {
	return m.ctx.NewPlayer(r)
}

// Options configures a Player.
type Options struct {
	Volume  float64 // Outside (0,1], including zero, selects DefaultVolume
	Muted   bool
	Variant core.MusicVariant
}

// Player is a single music channel: starting a track stops the previous one.
// It implements core.Audio and is safe for concurrent use.
type Player struct {
	mu      sync.Mutex
	mix     mixer
	current voice
	track   core.Track
	loop    bool
	active  bool
	variant core.MusicVariant
	muted   bool
	volume  float64
	clips   map[clipKey][]byte
}

type clipKey struct {
	track   core.Track
	variant core.MusicVariant
}

// Open initializes the audio device and waits until it is ready.
// oto allows one context per process, so Open must be called at most once.
func Open(opts Options) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, sampleFormat)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to open device: %w", err)
	}
	<-ready
	return newPlayer(otoMixer{ctx: ctx}, opts), nil
}

func newPlayer(m mixer, opts Options) *Player {
	vol := opts.Volume
	if vol <= 0 || vol > 1 {
		vol = DefaultVolume
	}
	return &Player{
		mix:     m,
		variant: opts.Variant,
		muted:   opts.Muted,
		volume:  vol,
		clips:   make(map[clipKey][]byte),
	}
}

// PlayTrack replaces whatever is playing with track.
func (p *Player) PlayTrack(track core.Track, loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.startLocked(track, loop)
}

func (p *Player) startLocked(track core.Track, loop bool) {
	p.stopLocked()

	data := p.samplesLocked(track)
	var r io.Reader
	if loop {
		r = &loopReader{data: data}
	} else {
		r = &clipReader{data: data}
	}

	v := p.mix.newVoice(r)
	v.SetVolume(p.effectiveVolume())
	v.Play()

	p.current = v
	p.track = track
	p.loop = loop
	p.active = true
}

func (p *Player) stopLocked() {
	if p.current != nil {
		_ = p.current.Close()
		p.current = nil
	}
	p.active = false
}

// samplesLocked returns the cached samples for a track, synthesizing them on first use.
func (p *Player) samplesLocked(track core.Track) []byte {
	key := clipKey{track: track}
	if track == core.TrackBackground {
		key.variant = p.variant
	}
	if data, ok := p.clips[key]; ok {
		return data
	}

	var data []byte
	switch {
	case track == core.TrackBackground && p.variant == core.MusicLowCost:
		data = genBackgroundLowCost()
	case track == core.TrackBackground:
		data = genBackground()
	case track == core.TrackCrash:
		data = genCrash()
	case track == core.TrackGameOver:
		data = genGameOver()
	}
	p.clips[key] = data
	return data
}

func (p *Player) effectiveVolume() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

// ToggleMute silences or restores output without stopping the track.
// It returns the new muted state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.current != nil {
		p.current.SetVolume(p.effectiveVolume())
	}
	return p.muted
}

// SwitchBackground selects the other background loop. If the background is
// playing it restarts with the new variant.
func (p *Player) SwitchBackground() core.MusicVariant {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.variant == core.MusicFull {
		p.variant = core.MusicLowCost
	} else {
		p.variant = core.MusicFull
	}
	if p.active && p.track == core.TrackBackground {
		p.startLocked(core.TrackBackground, p.loop)
	}
	return p.variant
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Variant returns the selected background loop.
func (p *Player) Variant() core.MusicVariant {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.variant
}

// Close stops playback.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	return nil
}
