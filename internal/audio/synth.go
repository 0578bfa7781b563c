package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2

	bytesPerFrame = 4 * ChannelCount // float32 per channel
)

// raceTheme is the background melody in MIDI notes, one per eighth.
var raceTheme = []int{
	69, 72, 76, 72, 69, 72, 76, 79,
	77, 76, 74, 72, 74, 76, 72, 69,
	67, 71, 74, 71, 67, 71, 74, 77,
	76, 74, 72, 71, 72, 71, 69, 68,
}

// raceBass holds one root note per bar of eight eighths.
var raceBass = []int{45, 41, 43, 40}

const themeEighth = 0.15 // Seconds per eighth note

func midiFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*bytesPerFrame + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(frames int) []byte { return make([]byte, frames*bytesPerFrame) }

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if phase-math.Floor(phase) < 0.5 {
		return 1
	}
	return -1
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4*math.Abs(p-0.5) - 1
}

// genTheme renders one loop of the race theme with the given lead voice.
func genTheme(lead func(phase float64) float64, leadGain, bassGain float64) []byte {
	frames := int(float64(len(raceTheme)) * themeEighth * SampleRate)
	buf := makeBuf(frames)
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		step := int(t / themeEighth)
		if step >= len(raceTheme) {
			step = len(raceTheme) - 1
		}
		np := (t - float64(step)*themeEighth) / themeEighth

		freq := midiFreq(raceTheme[step])
		s := lead(freq*t) * adsr(np, 0.05, 0.3, 0.6, 0.2) * leadGain

		root := midiFreq(raceBass[step/8%len(raceBass)])
		bp := (t - float64(step/2*2)*themeEighth) / (2 * themeEighth)
		s += triangle(root*t) * adsr(bp, 0.02, 0.4, 0.5, 0.1) * bassGain

		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBackground is the full background loop: a sine lead with harmonics.
func genBackground() []byte {
	rich := func(phase float64) float64 {
		return sine(phase)*0.7 + sine(phase*2)*0.2 + sine(phase*3)*0.1
	}
	return genTheme(rich, 0.35, 0.3)
}

// genBackgroundLowCost is the chiptune variant of the loop.
func genBackgroundLowCost() []byte {
	return genTheme(square, 0.12, 0.2)
}

// genCrash: filtered noise burst over a falling tone.
func genCrash() []byte {
	dur := 0.6
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5eed)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		np := float64(i) / float64(n)
		env := math.Exp(-np * 5)
		lp += (lcg(&seed) - lp) * 0.25
		tone := sine((180 - 120*np) * t)
		putStereoF32(buf, i, softSat((lp*0.9+tone*0.4)*env))
	}
	return buf
}

// genGameOver: three falling notes.
func genGameOver() []byte {
	dur := 1.2
	n := int(dur * SampleRate)
	notes := []struct {
		note  int
		onset float64
	}{
		{71, 0.00}, // B4
		{67, 0.30}, // G4
		{64, 0.60}, // E4
	}
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		freq := midiFreq(nt.note)
		for i := start; i < n; i++ {
			t := float64(i-start) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.2, 0.4, 0.5)
			mix[i] += (square(freq*t)*0.15 + sine(freq*t)*0.25) * env
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
