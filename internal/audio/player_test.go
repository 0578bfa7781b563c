package audio

import (
	"io"
	"testing"

	"github.com/vovakirdan/f1race/internal/core"
)

type fakeVoice struct {
	reader  io.Reader
	volume  float64
	playing bool
	closed  bool
}

func (v *fakeVoice) Play()                 { v.playing = true }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }
func (v *fakeVoice) Close() error          { v.closed = true; v.playing = false; return nil }

type fakeMixer struct {
	voices []*fakeVoice
}

func (m *fakeMixer) newVoice(r io.Reader) voice {
	v := &fakeVoice{reader: r}
	m.voices = append(m.voices, v)
	return v
}

func (m *fakeMixer) last() *fakeVoice { return m.voices[len(m.voices)-1] }

func TestPlayTrackReplacesCurrent(t *testing.T) {
	m := &fakeMixer{}
	p := newPlayer(m, Options{})

	p.PlayTrack(core.TrackBackground, true)
	p.PlayTrack(core.TrackCrash, false)

	if len(m.voices) != 2 {
		t.Fatalf("voices = %d, want 2", len(m.voices))
	}
	if !m.voices[0].closed {
		t.Error("background not stopped when crash started")
	}
	if !m.voices[1].playing || m.voices[1].volume != DefaultVolume {
		t.Errorf("crash voice = %+v", m.voices[1])
	}
	if _, ok := m.voices[0].reader.(*loopReader); !ok {
		t.Errorf("looping track got %T", m.voices[0].reader)
	}
	if _, ok := m.voices[1].reader.(*clipReader); !ok {
		t.Errorf("one-shot track got %T", m.voices[1].reader)
	}
}

func TestToggleMute(t *testing.T) {
	m := &fakeMixer{}
	p := newPlayer(m, Options{Volume: 0.8})
	p.PlayTrack(core.TrackBackground, true)

	if !p.ToggleMute() || !p.Muted() {
		t.Fatal("ToggleMute() did not mute")
	}
	if v := m.last().volume; v != 0 {
		t.Errorf("muted volume = %v", v)
	}

	p.PlayTrack(core.TrackGameOver, false)
	if v := m.last().volume; v != 0 {
		t.Errorf("new track while muted has volume %v", v)
	}

	if p.ToggleMute() || p.Muted() {
		t.Fatal("ToggleMute() did not unmute")
	}
	if v := m.last().volume; v != 0.8 {
		t.Errorf("restored volume = %v, want 0.8", v)
	}
}

func TestSwitchBackground(t *testing.T) {
	m := &fakeMixer{}
	p := newPlayer(m, Options{})

	if got := p.SwitchBackground(); got != core.MusicLowCost {
		t.Fatalf("SwitchBackground() = %v, want lowcost", got)
	}
	if len(m.voices) != 0 {
		t.Error("switch started playback while silent")
	}

	if p.Variant() != core.MusicLowCost {
		t.Errorf("Variant() = %v after switch", p.Variant())
	}

	p.PlayTrack(core.TrackBackground, true)
	first := m.last()
	if got := p.SwitchBackground(); got != core.MusicFull {
		t.Fatalf("SwitchBackground() = %v, want full", got)
	}
	if len(m.voices) != 2 || !first.closed || !m.last().playing {
		t.Error("background did not restart with the new variant")
	}

	p.PlayTrack(core.TrackCrash, false)
	n := len(m.voices)
	p.SwitchBackground()
	if len(m.voices) != n {
		t.Error("switch interrupted the crash sound")
	}
}

func TestVolumeOutOfRangeUsesDefault(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"zero", 0, DefaultVolume},
		{"negative", -0.5, DefaultVolume},
		{"too loud", 1.5, DefaultVolume},
		{"in range", 0.7, 0.7},
		{"full", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMixer{}
			p := newPlayer(m, Options{Volume: tt.volume})
			p.PlayTrack(core.TrackCrash, false)
			if v := m.last().volume; v != tt.want {
				t.Errorf("volume = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestClose(t *testing.T) {
	m := &fakeMixer{}
	p := newPlayer(m, Options{})
	p.PlayTrack(core.TrackBackground, true)
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !m.last().closed {
		t.Error("Close() left the voice open")
	}
}
