package audio

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

var ErrFormat = errors.New("unsupported audio format")

// Length decodes the audio at p far enough to know how long it plays.
func Length(p string) (time.Duration, error) {
	f, err := os.Open(p)
	if nil != err {
		return 0, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return 0, fmt.Errorf("%w: %v", ErrFormat, p)
	}
	if nil != err {
		f.Close()
		return 0, fmt.Errorf("unable to decode %v: %w", p, err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Overrun reports how far the chart runs past the end of the audio, or zero.
func Overrun(length time.Duration, chartEnd float64) time.Duration {
	end := time.Duration(chartEnd * float64(time.Millisecond))
	if end <= length {
		return 0
	}
	return end - length
}
