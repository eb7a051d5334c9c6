package replay

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// FrameSize is the width of one frame in the fixed-width blob: a float64
// time followed by the uint32 flags, little endian.
const FrameSize = 12

var ErrFrameBlob = errors.New("frame blob is not a whole number of frames")

type rawFrame struct {
	Time  float64
	Flags uint32
}

func MarshalFrames(frames []Frame) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(frames)*FrameSize))
	for _, f := range frames {
		// Writes to a bytes.Buffer cannot fail.
		_ = binary.Write(buf, binary.LittleEndian, rawFrame{Time: f.Time, Flags: f.Flags()})
	}
	return buf.Bytes()
}

func UnmarshalFrames(data []byte) ([]Frame, error) {
	if len(data)%FrameSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameBlob, len(data))
	}
	r := bytes.NewReader(data)
	frames := make([]Frame, 0, len(data)/FrameSize)
	var raw rawFrame
	for r.Len() > 0 {
		err := binary.Read(r, binary.LittleEndian, &raw)
		if nil != err {
			return nil, err
		}
		frames = append(frames, NewFrame(raw.Time, raw.Flags))
	}
	return frames, nil
}
