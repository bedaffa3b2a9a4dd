package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	alertSampleRate = beep.SampleRate(44100)
	alertFrequency  = 880.0
	alertDuration   = 300 * time.Millisecond
	alertVolume     = 0.3
)

// toneStreamer generates a sine tone. The alert is synthesized instead
// of decoded from an asset so the binary ships without audio files.
type toneStreamer struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := alertVolume * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

func (a *AppManager) initAudio() {
	if err := speaker.Init(alertSampleRate, alertSampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return
	}
	a.audioReady = true
}

// PlayAlert plays a short attention tone before the warning dialog
// opens. A no-op when audio failed to initialize.
func (a *AppManager) PlayAlert() {
	if !a.audioReady {
		return
	}

	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()

	tone := &toneStreamer{sr: alertSampleRate, freq: alertFrequency}
	speaker.Play(beep.Take(alertSampleRate.N(alertDuration), tone))
}
