package testdata

import (
	"io"
	"strings"
)

// Events is the number of hit objects in the sample beatmap.
const Events = 32

// Beatmap returns a small osu! standard beatmap with circles, streams,
// sliders with and without repeats, a spinner and a kiai section.
func Beatmap() io.Reader {
	return strings.NewReader(data)
}

const data = `osu file format v14

[General]
AudioFilename: audio.mp3
AudioLeadIn: 0
Mode: 0

[Metadata]
Title:Sample
Artist:Nobody
Creator:rush
Version:Normal

[Difficulty]
HPDrainRate:5
CircleSize:4
OverallDifficulty:5
ApproachRate:5
SliderMultiplier:1.4
SliderTickRate:1

[TimingPoints]
0,500,4,2,0,60,1,0
10000,-100,4,2,0,60,0,1
14000,-50,4,2,0,60,0,1
15000,500,4,2,0,60,1,0

[HitObjects]
100,100,1000,5,0,0:0:0:0:
200,300,1250,1,0,0:0:0:0:
300,120,1500,1,8,0:0:0:0:
400,320,1750,1,0,0:0:0:0:
256,80,2000,1,0,0:0:0:0:
256,85,2080,1,0,0:0:0:0:
256,90,2160,1,0,0:0:0:0:
256,95,2240,1,0,0:0:0:0:
100,300,3000,2,0,B|200:300|300:300,1,140
256,192,3700,1,2,0:0:0:0:
300,100,4500,2,0,L|370:100,4,70
256,100,6000,5,0,0:0:0:0:
256,192,7000,12,0,9000,0:0:0:0:
100,100,10000,5,0,0:0:0:0:
120,300,10250,1,0,0:0:0:0:
140,100,10500,1,0,0:0:0:0:
160,300,10750,1,0,0:0:0:0:
180,100,11000,1,0,0:0:0:0:
200,300,11250,1,0,0:0:0:0:
220,100,11500,1,0,0:0:0:0:
240,300,11750,1,0,0:0:0:0:
260,100,12000,5,0,0:0:0:0:
280,300,12250,1,0,0:0:0:0:
300,100,12500,1,0,0:0:0:0:
320,300,12750,1,0,0:0:0:0:
340,100,13000,1,0,0:0:0:0:
360,300,13250,1,0,0:0:0:0:
380,100,13500,1,0,0:0:0:0:
100,300,13750,1,0,0:0:0:0:
120,100,14000,5,0,0:0:0:0:
200,300,14500,2,0,L|340:300,1,280
256,300,15500,1,0,0:0:0:0:
`
