package parser

import (
	"bufio"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/rush/internal/game"
)

const earlyVersionOffset = 24

var ErrHeader = errors.New("not an osu file")

type section int

const (
	secNone section = iota
	secGeneral
	secMetadata
	secDifficulty
	secTimingPoints
	secHitObjects
)

const (
	typeCircle   = 1
	typeSlider   = 1 << 1
	typeNewCombo = 1 << 2
	typeSpinner  = 1 << 3
	typeHold     = 1 << 7
)

var hitSounds = []struct {
	bit  int
	name string
}{
	{1 << 1, "hitwhistle"},
	{1 << 2, "hitfinish"},
	{1 << 3, "hitclap"},
}

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*Beatmap, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	header := ""
	for sc.Scan() {
		if header = strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff")); header != "" {
			break
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	const prefix = "osu file format v"
	if !strings.HasPrefix(strings.ToLower(header), prefix) {
		return nil, fmt.Errorf("%w: %q", ErrHeader, header)
	}
	version, err := strconv.Atoi(strings.TrimSpace(header[len(prefix):]))
	if nil != err {
		return nil, fmt.Errorf("%w: %q: %v", ErrHeader, header, err)
	}

	b := &Beatmap{FormatVersion: version, Difficulty: game.DefaultDifficulty}
	offset := 0.0
	if version < 5 {
		offset = earlyVersionOffset
	}

	hash := sha256.New()
	objects := [][]string{}
	sec := secNone
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(line) {
			case "[general]":
				sec = secGeneral
			case "[metadata]":
				sec = secMetadata
			case "[difficulty]":
				sec = secDifficulty
			case "[timingpoints]":
				sec = secTimingPoints
			case "[hitobjects]":
				sec = secHitObjects
			default:
				sec = secNone
			}
			continue
		}

		switch sec {
		case secGeneral:
			if k, v := splitKeyVal(line); strings.EqualFold(k, "audiofilename") {
				b.AudioFilename = v
			}
		case secMetadata:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "title":
				b.Title = v
			case "artist":
				b.Artist = v
			case "version":
				b.Difficulty.Name = v
			}
		case secDifficulty:
			hash.Write([]byte(line))
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "overalldifficulty":
				b.Difficulty.OverallDifficulty = parseFloat(v, b.Difficulty.OverallDifficulty)
			case "slidermultiplier":
				b.Difficulty.SliderMultiplier = parseFloat(v, 1)
			}
		case secTimingPoints:
			if tp, ok := parseTimingPoint(line, offset); ok {
				b.TimingPoints = append(b.TimingPoints, tp)
			}
		case secHitObjects:
			hash.Write([]byte(line))
			objects = append(objects, strings.Split(line, ","))
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}

	sort.SliceStable(b.TimingPoints, func(i, j int) bool {
		return b.TimingPoints[i].Time < b.TimingPoints[j].Time
	})
	for _, parts := range objects {
		if ev, ok := b.hitObject(parts, offset); ok {
			b.Events = append(b.Events, ev)
		}
	}
	sort.SliceStable(b.Events, func(i, j int) bool {
		return b.Events[i].StartTime < b.Events[j].StartTime
	})
	b.Events = b.dedupe(b.Events)

	sum := hash.Sum(nil)
	b.Sum = base64.StdEncoding.EncodeToString(sum)
	return b, nil
}

func parseTimingPoint(line string, offset float64) (game.TimingPoint, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return game.TimingPoint{}, false
	}
	tp := game.TimingPoint{
		Time:       parseFloat(parts[0], 0) + offset,
		BeatLength: parseFloat(parts[1], math.NaN()),
		Multiplier: 1,
	}
	if math.IsNaN(tp.BeatLength) {
		return game.TimingPoint{}, false
	}
	tp.Inherited = tp.BeatLength < 0
	if len(parts) >= 7 {
		tp.Inherited = strings.TrimSpace(parts[6]) == "0"
	}
	if tp.Inherited && tp.BeatLength < 0 {
		tp.Multiplier = 100 / -tp.BeatLength
	}
	if len(parts) >= 8 {
		tp.Kiai = parseInt(parts[7], 0)&1 != 0
	}
	return tp, true
}

// timingAt returns the beat length of the governing uninherited point, the
// velocity multiplier of any inherited point after it, and the kiai state
// of the latest point at t.
func (b *Beatmap) timingAt(t float64) (beatLength, multiplier float64, kiai bool) {
	beatLength, multiplier = 500, 1
	for _, tp := range b.TimingPoints {
		if tp.Time > t {
			break
		}
		if tp.Inherited {
			multiplier = tp.Multiplier
		} else {
			beatLength = tp.BeatLength
			multiplier = 1
		}
		kiai = tp.Kiai
	}
	return beatLength, multiplier, kiai
}

func (b *Beatmap) hitObject(parts []string, offset float64) (game.SourceEvent, bool) {
	if len(parts) < 5 {
		return game.SourceEvent{}, false
	}
	kind := parseInt(parts[3], 0)
	sound := parseInt(parts[4], 0)
	ev := game.SourceEvent{
		StartTime: parseFloat(parts[2], 0) + offset,
		Position:  &game.Vec2{X: parseFloat(parts[0], 0), Y: parseFloat(parts[1], 0)},
		NewCombo:  kind&typeNewCombo != 0,
		SpanCount: 1,
		Samples:   []string{"hitnormal"},
	}
	for _, hs := range hitSounds {
		if sound&hs.bit != 0 {
			ev.Samples = append(ev.Samples, hs.name)
		}
	}
	beatLength, multiplier, kiai := b.timingAt(ev.StartTime)
	ev.Kiai = kiai

	switch {
	case kind&typeHold != 0:
		if len(parts) < 6 {
			return ev, true
		}
		end := strings.SplitN(parts[5], ":", 2)[0]
		ev.Duration = math.Max(0, parseFloat(end, 0)+offset-ev.StartTime)
		ev.Position = nil
	case kind&typeSpinner != 0:
		if len(parts) >= 6 {
			ev.Duration = math.Max(0, parseFloat(parts[5], 0)+offset-ev.StartTime)
		}
		ev.Position = nil
	case kind&typeSlider != 0:
		if len(parts) < 8 {
			return ev, true
		}
		slides := parseInt(parts[6], 1)
		if slides < 1 {
			slides = 1
		}
		length := parseFloat(parts[7], 0)
		velocity := b.Difficulty.SliderMultiplier * 100 * multiplier
		if velocity > 0 && length > 0 {
			ev.Duration = length / velocity * beatLength * float64(slides)
			ev.HasPath = true
			ev.SpanCount = slides
		}
	case kind&typeCircle == 0:
		return ev, false
	}
	return ev, true
}

// dedupe keeps the first of any events sharing a start time.
func (b *Beatmap) dedupe(events []game.SourceEvent) []game.SourceEvent {
	out := events[:0]
	for _, ev := range events {
		if n := len(out); n > 0 && ev.StartTime <= out[n-1].StartTime {
			b.Dropped++
			continue
		}
		out = append(out, ev)
	}
	return out
}

func splitKeyVal(line string) (string, string) {
	k, v, ok := strings.Cut(line, ":")
	if !ok {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(k), strings.TrimSpace(v)
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if nil != err {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if nil != err {
			return def
		}
		return int(f)
	}
	return v
}

func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if nil != err {
		return def
	}
	return v
}
