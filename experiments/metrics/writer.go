package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID            int
	Kind          string // expectimax, greedy or random
	Depth         int
	CacheCapacity int
	Goroutines    int
	TimeBudget    time.Duration
	EmptyCells    float64 // Evaluator weights
	Monotonicity  float64
	Smoothness    float64
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's output.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "cache_capacity", "goroutines", "time_budget", "empty_cells", "monotonicity", "smoothness"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.CacheCapacity),
			strconv.Itoa(config.Goroutines),
			config.TimeBudget.String(),
			formatFloat(config.EmptyCells),
			formatFloat(config.Monotonicity),
			formatFloat(config.Smoothness),
		})
	}
	return w.writeCSV("agent_configs.csv", "agent configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "seed", "final_score", "steps", "max_tile", "reached_2048", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.FinalScore),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.MaxTile),
			strconv.FormatBool(record.Reached2048),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.writeCSV("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "move", "score", "duration", "decision_nodes", "chance_nodes", "evaluations", "cache_lookups", "cache_hits", "is_truncated"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Move,
			strconv.Itoa(record.Score),
			record.Duration.String(),
			strconv.Itoa(record.DecisionNodes),
			strconv.Itoa(record.ChanceNodes),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.CacheLookups),
			strconv.Itoa(record.CacheHits),
			strconv.FormatBool(record.IsTruncated),
		})
	}
	return w.writeCSV("move_records.csv", "move records", header, rows)
}

// WriteReplay stores an agent's replay as replays/<agent>/<seed>.json.
func (w *Writer) WriteReplay(agent int, replay Replay) error {
	dir := filepath.Join(w.baseDir, "replays", strconv.Itoa(agent))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create replays directory: %w", err)
	}

	data, err := json.MarshalIndent(replay, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay %d: %w", replay.Meta.Seed, err)
	}
	path := filepath.Join(dir, strconv.FormatUint(replay.Meta.Seed, 10)+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write replay %d: %w", replay.Meta.Seed, err)
	}
	return nil
}

func (w *Writer) writeCSV(filename, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", what, err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
