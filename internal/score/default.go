package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/rush/internal/game"
	"git.lost.host/meutraa/rush/internal/judge"
	"git.lost.host/meutraa/rush/internal/replay"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	Path   string
	Config judge.Config

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  created integer,
		  frames blob
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashChart identifies a chart by its source when known, otherwise by the
// converted events.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	if c.Sum != "" {
		return c.Sum
	}
	h := sha256.New()
	for _, e := range c.Events {
		fmt.Fprintf(h, "%d %v %v %d\n", e.Kind(), e.StartTime(), e.Duration(), e.Lane())
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, frames []replay.Frame) {
	data := replay.MarshalFrames(frames)
	_, err := s.db.Exec("insert into replays(sum, created, frames) values(?, ?, ?)", s.hashChart(c), time.Now().Unix(), data)
	if nil != err {
		log.Println("unable to save replay", err)
		return
	}
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	histories := []History{}
	rows, err := s.db.Query("select sum, created, frames from replays where sum = ? order by id", s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load replays", err)
		return histories
	}
	if nil != err {
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var created int64
		var data []byte
		if err := rows.Scan(&sum, &created, &data); nil != err {
			log.Println("unable to scan replay", err)
			continue
		}
		frames, err := replay.UnmarshalFrames(data)
		if nil != err {
			log.Println("unable to unmarshal replay", err)
			continue
		}
		histories = append(histories, History{
			Sum:     sum,
			Created: created,
			Frames:  frames,
		})
	}
	return histories
}

func (s *DefaultScorer) Score(chart *game.Chart, history *History) Summary {
	p, end := Apply(chart, history.Frames, s.Config)
	return Summarize(p, end)
}
