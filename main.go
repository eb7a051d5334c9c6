package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/rush/internal/audio"
	"git.lost.host/meutraa/rush/internal/config"
	"git.lost.host/meutraa/rush/internal/convert"
	"git.lost.host/meutraa/rush/internal/fetch"
	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/parser"
	"git.lost.host/meutraa/rush/internal/replay"
	"git.lost.host/meutraa/rush/internal/score"
	"git.lost.host/meutraa/rush/internal/theme"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	settings, err := config.Parse(args)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var th theme.Theme = theme.NewDefaultTheme(os.Stdout)
	var psr parser.Parser = &parser.DefaultParser{}

	bm, err := load(settings, psr)
	if nil != err {
		return err
	}
	if bm.Dropped > 0 {
		log.Printf("Dropped %v hit objects sharing a start time\n", bm.Dropped)
	}

	chart, err := convert.NewConverter(settings.Converter()).Convert(bm.Events, bm.Difficulty)
	if nil != err {
		return fmt.Errorf("unable to convert %v: %w", settings.Chart, err)
	}
	chart.Sum = bm.Sum
	checkAudio(settings, bm, chart)

	fmt.Println(th.RenderHeader(fmt.Sprintf("%v - %v [%v]", bm.Artist, bm.Title, bm.Difficulty.Name)))

	var scorer score.Scorer = &score.DefaultScorer{
		Path:   settings.Database,
		Config: settings.Judge(chart.Difficulty),
	}

	switch settings.Command {
	case config.CommandConvert:
		for _, e := range chart.Events {
			fmt.Println(th.RenderEvent(e))
		}
		fmt.Printf("%v notes, %v holds, %v hazards, %v bosses\n", chart.NoteCount, chart.HoldCount, chart.HazardCount, chart.BossCount)
	case config.CommandAuto:
		frames := replay.Generate(chart, settings.Auto())
		p, end := score.Apply(chart, frames, settings.Judge(chart.Difficulty))
		if settings.Verbose {
			for _, r := range p.Results() {
				log.Printf("%10.1f %-9v %v\n", r.Time, r.Target.Kind, r.Outcome)
			}
		}
		printSummary(th, score.Summarize(p, end))
		if settings.Save {
			if err := scorer.Init(); nil != err {
				return fmt.Errorf("unable to open %v: %w", settings.Database, err)
			}
			defer scorer.Deinit()
			scorer.Save(chart, frames)
		}
	case config.CommandScores:
		if err := scorer.Init(); nil != err {
			return fmt.Errorf("unable to open %v: %w", settings.Database, err)
		}
		defer scorer.Deinit()
		histories := scorer.Load(chart)
		if len(histories) == 0 {
			fmt.Println("No replays")
		}
		for i := range histories {
			h := &histories[i]
			fmt.Println(th.RenderHeader(time.Unix(h.Created, 0).Format(time.DateTime)))
			printSummary(th, scorer.Score(chart, h))
		}
	}
	return nil
}

func load(settings *config.Settings, psr parser.Parser) (*parser.Beatmap, error) {
	if !settings.IsURL() {
		return psr.Parse(settings.Chart)
	}
	r, err := fetch.Chart(settings.Chart)
	if nil != err {
		return nil, err
	}
	return parser.Decode(r)
}

// checkAudio warns when the chart outlasts its song. The song next to a
// local chart is used when no audio file was given.
func checkAudio(settings *config.Settings, bm *parser.Beatmap, chart *game.Chart) {
	audioFile := settings.Audio
	if audioFile == "" && !settings.IsURL() && bm.AudioFilename != "" {
		audioFile = filepath.Join(filepath.Dir(settings.Chart), bm.AudioFilename)
		if _, err := os.Stat(audioFile); nil != err {
			return
		}
	}
	if audioFile == "" {
		return
	}
	length, err := audio.Length(audioFile)
	if nil != err {
		log.Println("unable to read audio length", err)
		return
	}
	if over := audio.Overrun(length, chart.EndTime()); over > 0 {
		log.Printf("Chart runs %v past the end of %v\n", over, filepath.Base(audioFile))
	}
}

func printSummary(th theme.Theme, s score.Summary) {
	for _, o := range game.Outcomes {
		fmt.Printf("%v %6d\n", th.RenderOutcome(o), s.Count(o))
	}
	fmt.Printf("%11v %6.0f\n", "Score", s.Score)
	fmt.Printf("%11v %6d\n", "Max Combo", s.MaxCombo)
	fmt.Printf("%11v %5.0f%%\n", "Health", s.Health*100)
	fmt.Printf("%11v %4.0fms\n", "Error", s.TotalError)
	fmt.Printf("%11v %6d\n", "Fevers", s.FeverActivations)
	fmt.Printf("%11v %2d/%3d\n", "Judged", s.Judged, s.Total)
	if s.Failed {
		fmt.Println(th.RenderOutcome(game.OutcomeMiss), "Failed")
	}
}
