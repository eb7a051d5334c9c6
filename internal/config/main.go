package config

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/rush/internal/convert"
	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/judge"
	"git.lost.host/meutraa/rush/internal/replay"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

const (
	CommandConvert = "convert"
	CommandAuto    = "auto"
	CommandScores  = "scores"
)

// Settings holds everything the command line decided.
type Settings struct {
	Command  string
	Chart    string
	Audio    string
	Database string
	Save     bool
	Verbose  bool

	converter convert.Config
	judge     judge.Config
	auto      replay.Config
}

func (s *Settings) Converter() convert.Config { return s.converter }

// Judge uses the chart's overall difficulty unless the flag overrides it.
func (s *Settings) Judge(d game.Difficulty) judge.Config {
	j := s.judge
	if j.OverallDifficulty < 0 {
		j.OverallDifficulty = d.OverallDifficulty
	}
	return j
}

// Auto shares the auto-fever switch with the judge so a generated replay
// records the setting it was played with.
func (s *Settings) Auto() replay.Config {
	a := s.auto
	a.AutoFever = s.judge.AutoFever
	return a
}

// IsURL reports whether the chart argument should be downloaded.
func (s *Settings) IsURL() bool {
	return strings.HasPrefix(s.Chart, "http://") || strings.HasPrefix(s.Chart, "https://")
}

// Parse reads args (without the program name). Defaults come from each
// package's DefaultConfig so the flags and the library agree.
func Parse(args []string) (*Settings, error) {
	s := &Settings{
		converter: convert.DefaultConfig(),
		judge:     judge.DefaultConfig(),
		auto:      replay.DefaultConfig(),
	}
	app := kingpin.New("rush", "Two lane chart converter and replay judge")
	app.Version(Version)

	c := &s.converter
	app.Flag("suggestion", "Probability an advisory lane or hold rule applies").Default(f(c.SuggestionProbability)).Float64Var(&c.SuggestionProbability)
	app.Flag("skip", "Probability a low priority event is skipped").Default(f(c.SkipProbability)).Float64Var(&c.SkipProbability)
	app.Flag("double-hit", "Probability of a double hit").Default(f(c.DoubleHitProbability)).Float64Var(&c.DoubleHitProbability)
	app.Flag("hazard", "Probability of a sawblade").Default(f(c.HazardProbability)).Float64Var(&c.HazardProbability)
	app.Flag("mirror-hold", "Probability a hold is mirrored in the other lane").Default(f(c.MirrorHoldProbability)).Float64Var(&c.MirrorHoldProbability)
	app.Flag("kiai-multiplier", "Hazard probability multiplier during kiai").Default(f(c.KiaiMultiplier)).Float64Var(&c.KiaiMultiplier)
	app.Flag("double-hit-interval", "Minimum ms between double hits").Default(f(c.MinDoubleHitInterval)).Float64Var(&c.MinDoubleHitInterval)
	app.Flag("hazard-interval", "Minimum ms between sawblades").Default(f(c.MinHazardInterval)).Float64Var(&c.MinHazardInterval)
	app.Flag("lane-safety", "Minimum ms between a sawblade and a hit in its lane").Default(f(c.SameLaneSafety)).Float64Var(&c.SameLaneSafety)
	app.Flag("min-hold", "Shortest source duration that forces a hold").Default(f(c.MinHoldDuration)).Float64Var(&c.MinHoldDuration)
	app.Flag("max-hold", "Longest hold in ms").Default(f(c.MaxHoldDuration)).Float64Var(&c.MaxHoldDuration)
	app.Flag("repeat-spacing", "Minimum ms between repeat hits").Default(f(c.MinRepeatSpacing)).Float64Var(&c.MinRepeatSpacing)
	app.Flag("heart-interval", "Ms between hearts").Default(f(c.HeartInterval)).Float64Var(&c.HeartInterval)
	app.Flag("boss-rate", "Mini boss hits per second").Default(f(c.BossHitsPerSecond)).Float64Var(&c.BossHitsPerSecond)

	j := &s.judge
	app.Flag("od", "Overall difficulty override, negative uses the chart").Default("-1").Float64Var(&j.OverallDifficulty)
	app.Flag("lenience", "Release window lenience").Default(f(j.ReleaseLenience)).Float64Var(&j.ReleaseLenience)
	app.Flag("fever-duration", "Fever length in ms").Default(f(j.FeverDuration)).Float64Var(&j.FeverDuration)
	app.Flag("fever-fill", "Perfect judgements to fill the fever meter").Default(f(j.FeverFill)).Float64Var(&j.FeverFill)
	app.Flag("auto-fever", "Activate fever as soon as it is full").Short('f').BoolVar(&j.AutoFever)

	a := &s.auto
	app.Flag("release-delay", "Ms the auto player holds past an event").Default(f(a.ReleaseDelay)).Float64Var(&a.ReleaseDelay)
	app.Flag("punch-delay", "Ms the auto player holds a boss punch").Default(f(a.PunchDelay)).Float64Var(&a.PunchDelay)

	app.Flag("database", "Replay database").Default("./scores.db").Envar("RUSH_DATABASE").Short('D').StringVar(&s.Database)
	app.Flag("audio", "Audio file to check the chart length against").Short('a').StringVar(&s.Audio)
	app.Flag("verbose", "Log every judgement").Short('v').BoolVar(&s.Verbose)

	convertCmd := app.Command(CommandConvert, "Print the converted chart")
	convertCmd.Arg("chart", ".osu file or URL").Required().StringVar(&s.Chart)

	autoCmd := app.Command(CommandAuto, "Generate and judge a perfect replay")
	autoCmd.Arg("chart", ".osu file or URL").Required().StringVar(&s.Chart)
	autoCmd.Flag("save", "Store the replay").Short('s').BoolVar(&s.Save)

	scoresCmd := app.Command(CommandScores, "Judge every stored replay of a chart")
	scoresCmd.Arg("chart", ".osu file or URL").Required().StringVar(&s.Chart)

	cmd, err := app.Parse(args)
	if nil != err {
		return nil, err
	}
	s.Command = cmd
	return s, nil
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
