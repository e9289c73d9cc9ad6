package metrics

import "tiles/game"

// Replay is a full game recording in the format read by the replay viewer.
type Replay struct {
	Meta  ReplayMeta   `json:"meta"`
	Steps []ReplayStep `json:"steps"`
}

type ReplayMeta struct {
	Seed        uint64 `json:"seed"`
	FinalScore  int    `json:"finalScore"`
	StepCount   int    `json:"stepCount"`
	MaxTile     int    `json:"maxTile"`
	Reached2048 bool   `json:"reached2048"`
}

// ReplayStep is the board after a move and its spawn. Index 0 is the
// starting position and has no move.
type ReplayStep struct {
	Index int           `json:"index"`
	Move  string        `json:"move,omitempty"`
	Score int           `json:"score"`
	Board BoardSnapshot `json:"board"`
}

type BoardSnapshot struct {
	Size  int     `json:"size"`
	Cells [][]int `json:"cells"`
}

func snapshot(b *game.Board) BoardSnapshot {
	return BoardSnapshot{Size: b.Dimension(), Cells: b.Grid()}
}

// Recorder builds a Replay from engine notifications.
type Recorder struct {
	replay Replay
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnInit(b *game.Board) {
	r.replay = Replay{Steps: []ReplayStep{{Index: 0, Board: snapshot(b)}}}
}

func (r *Recorder) OnStep(step int, move game.Move, b *game.Board, score int) {
	r.replay.Steps = append(r.replay.Steps, ReplayStep{
		Index: step,
		Move:  move.String(),
		Score: score,
		Board: snapshot(b),
	})
}

func (r *Recorder) OnGameOver(gameMetric GameMetric) {
	r.replay.Meta = ReplayMeta{
		Seed:        gameMetric.Seed,
		FinalScore:  gameMetric.FinalScore,
		StepCount:   gameMetric.Steps,
		MaxTile:     gameMetric.MaxTile,
		Reached2048: gameMetric.Reached2048,
	}
}

func (r *Recorder) Replay() Replay {
	return r.replay
}
