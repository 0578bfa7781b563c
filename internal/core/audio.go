package core

// Track names a piece of audio the game can request.
type Track int

const (
	TrackBackground Track = iota // Looping race music
	TrackCrash                   // One-shot crash sound
	TrackGameOver                // One-shot game over jingle
)

// String returns the track name.
func (t Track) String() string {
	switch t {
	case TrackBackground:
		return "background"
	case TrackCrash:
		return "crash"
	case TrackGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator. Calls are fire-and-forget.
type Audio interface {
	PlayTrack(track Track, loop bool)
}

// NopAudio discards every request.
type NopAudio struct{}

// PlayTrack implements Audio.
func (NopAudio) PlayTrack(Track, bool) {}

// MusicVariant selects which background loop plays.
type MusicVariant int

const (
	MusicFull    MusicVariant = iota // Layered theme
	MusicLowCost                     // Square wave chiptune
)

// String returns the variant name.
func (v MusicVariant) String() string {
	if v == MusicLowCost {
		return "lowcost"
	}
	return "full"
}
