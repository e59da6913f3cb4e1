package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// SampleRate is the rate everything is resampled to before mixing.
const SampleRate = beep.SampleRate(44100)

// Mixer plays music and effects through a single beep mixer. Until Start is
// called it mixes into nothing, which is enough for tests.
type Mixer struct {
	mu      sync.Mutex
	dirs    Dirs
	log     *log.Logger
	mix     *beep.Mixer
	started bool

	musicKey string
	music    *fader
	musicVol *effects.Volume
	sfxVol   float64
	musicLvl float64

	sfx map[string]*beep.Buffer
}

// NewMixer returns a mixer reading assets from dirs.
func NewMixer(dirs Dirs, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mixer{
		dirs:     dirs,
		log:      logger,
		mix:      &beep.Mixer{},
		sfxVol:   1,
		musicLvl: 1,
		sfx:      make(map[string]*beep.Buffer),
	}
}

// Start opens the output device. On failure the mixer keeps working
// silently and the error is returned for logging.
func (m *Mixer) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}
	speaker.Play(m.mix)
	m.started = true
	return nil
}

// Close stops playback and releases the device.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.started = false
}

// Voices returns the number of streams currently mixed.
func (m *Mixer) Voices() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lock()
	defer m.unlock()
	return m.mix.Len()
}

// MusicKey returns the key of the track currently playing.
func (m *Mixer) MusicKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicKey
}

func (m *Mixer) lock() {
	if m.started {
		speaker.Lock()
	}
}

func (m *Mixer) unlock() {
	if m.started {
		speaker.Unlock()
	}
}

// PlayMusic implements Player.
func (m *Mixer) PlayMusic(key string) {
	m.switchMusic(key, 0)
}

// FadeToMusic implements Player.
func (m *Mixer) FadeToMusic(key string, d time.Duration) {
	m.switchMusic(key, d)
}

func (m *Mixer) switchMusic(key string, fade time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if key == m.musicKey && m.music != nil {
		return
	}

	path := m.dirs.ResolveMusic(key)
	if path == "" {
		m.log.Debug("music not found", "key", key)
		return
	}
	s, err := m.decode(path)
	if err != nil {
		m.log.Debug("cannot decode music", "key", key, "error", err)
		return
	}
	loop, err := beep.Loop2(s)
	if err != nil {
		s.Close()
		m.log.Debug("cannot loop music", "key", key, "error", err)
		return
	}

	fadeSamples := SampleRate.N(fade)
	next := newFader(loop, fadeSamples)
	vol := volumeFor(next, m.musicLvl)

	m.lock()
	if m.music != nil {
		m.music.fadeOut(fadeSamples)
	}
	m.mix.Add(vol)
	m.unlock()

	m.musicKey = key
	m.music = next
	m.musicVol = vol
}

// PlaySFX implements Player.
func (m *Mixer) PlaySFX(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf, ok := m.sfx[key]
	if !ok {
		buf = m.loadSFX(key)
		m.sfx[key] = buf
	}
	if buf == nil {
		return
	}
	voice := volumeFor(buf.Streamer(0, buf.Len()), m.sfxVol)

	m.lock()
	m.mix.Add(voice)
	m.unlock()
}

// loadSFX decodes an effect fully into memory. A nil buffer is cached for
// missing files so the lookup is not repeated every click.
func (m *Mixer) loadSFX(key string) *beep.Buffer {
	path := m.dirs.ResolveSFX(key)
	if path == "" {
		m.log.Debug("sound effect not found", "key", key)
		return nil
	}
	s, err := m.decode(path)
	if err != nil {
		m.log.Debug("cannot decode sound effect", "key", key, "error", err)
		return nil
	}
	defer s.Close()
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// SetMusicVolume implements Player.
func (m *Mixer) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicLvl = clamp01(v)
	if m.musicVol == nil {
		return
	}
	m.lock()
	m.musicVol.Volume, m.musicVol.Silent = gain(m.musicLvl)
	m.unlock()
}

// SetSFXVolume implements Player. It applies to effects started afterwards.
func (m *Mixer) SetSFXVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVol = clamp01(v)
}

// decodedStream is a decoded file resampled to SampleRate. Seeking and
// length are in source samples, which is all looping needs.
type decodedStream struct {
	beep.StreamSeekCloser
	out beep.Streamer
}

func (d *decodedStream) Stream(samples [][2]float64) (int, bool) {
	return d.out.Stream(samples)
}

func (m *Mixer) decode(path string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	if format.SampleRate == SampleRate {
		return s, nil
	}
	return &decodedStream{
		StreamSeekCloser: s,
		out:              beep.Resample(4, format.SampleRate, SampleRate, s),
	}, nil
}

func volumeFor(s beep.Streamer, level float64) *effects.Volume {
	v, silent := gain(level)
	return &effects.Volume{Streamer: s, Base: 2, Volume: v, Silent: silent}
}

// gain converts a linear level in [0, 1] to a base-2 volume.
func gain(level float64) (float64, bool) {
	if level <= 0.001 {
		return 0, true
	}
	return math.Log2(level), false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// fader ramps a streamer's amplitude linearly and ends it once faded out.
type fader struct {
	s      beep.Streamer
	level  float64
	target float64
	step   float64
}

func newFader(s beep.Streamer, samples int) *fader {
	f := &fader{s: s, target: 1}
	if samples <= 0 {
		f.level = 1
		return f
	}
	f.step = 1 / float64(samples)
	return f
}

func (f *fader) fadeOut(samples int) {
	f.target = 0
	if samples <= 0 {
		f.level = 0
		return
	}
	f.step = f.level / float64(samples)
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.target == 0 && f.level <= 0 {
		return 0, false
	}
	n, ok := f.s.Stream(samples)
	for i := range samples[:n] {
		switch {
		case f.level < f.target:
			f.level = math.Min(f.target, f.level+f.step)
		case f.level > f.target:
			f.level = math.Max(f.target, f.level-f.step)
		}
		samples[i][0] *= f.level
		samples[i][1] *= f.level
	}
	return n, ok
}

func (f *fader) Err() error {
	return f.s.Err()
}
