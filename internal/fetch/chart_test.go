package fetch

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.lost.host/meutraa/rush/internal/parser"
	"git.lost.host/meutraa/rush/internal/testdata"
)

func TestChart(t *testing.T) {
	sample, err := io.ReadAll(testdata.Beatmap())
	if nil != err {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.UserAgent() != UserAgent {
			http.Error(w, "unexpected user agent "+r.UserAgent(), http.StatusForbidden)
			return
		}
		if r.URL.Path != "/map.osu" {
			http.NotFound(w, r)
			return
		}
		w.Write(sample)
	}))
	defer srv.Close()

	r, err := Chart(srv.URL + "/map.osu")
	if nil != err {
		t.Fatal(err)
	}
	bm, err := parser.Decode(r)
	if nil != err {
		t.Fatal(err)
	}
	if len(bm.Events) != testdata.Events {
		t.Log(len(bm.Events), "events")
		t.Fail()
	}

	if _, err := Chart(srv.URL + "/missing.osu"); !errors.Is(err, ErrStatus) {
		t.Log(err)
		t.Fail()
	}
}
