package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/levigross/grequests"
)

var ErrStatus = errors.New("unexpected response status")

const UserAgent = "rush"

// Timeout bounds a whole chart download.
var Timeout = 30 * time.Second

// Chart downloads a chart file. The body is read fully since charts are
// small and the parser wants the whole file.
func Chart(url string) (io.Reader, error) {
	resp, err := grequests.Get(url,
		grequests.UserAgent(UserAgent),
		grequests.RequestTimeout(Timeout),
	)
	if nil != err {
		return nil, fmt.Errorf("unable to fetch %v: %w", url, err)
	}
	defer resp.Close()
	if !resp.Ok {
		return nil, fmt.Errorf("%w: %v returned %d", ErrStatus, url, resp.StatusCode)
	}
	return bytes.NewReader(resp.Bytes()), nil
}
