package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchRecord struct {
	Series string
	Index  int // 1-based position in the series
	MatchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/<series> and writes every file below it.
func NewWriter(root, series string) (*Writer, error) {
	baseDir := filepath.Join(root, series)
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

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{
		"series", "match", "seed", "winner", "turns", "fight_turns", "fights", "deaths",
		"spawned", "heirs", "peak_units", "final_red", "final_blue", "start_time", "duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Series,
			strconv.Itoa(record.Index),
			strconv.FormatUint(uint64(record.Seed), 10),
			record.Winner.String(),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.FightTurns),
			strconv.Itoa(record.Fights),
			strconv.Itoa(record.Deaths),
			strconv.Itoa(record.Spawned),
			strconv.Itoa(record.Heirs),
			strconv.Itoa(record.PeakUnits),
			strconv.Itoa(record.FinalRed),
			strconv.Itoa(record.FinalBlue),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush match records: %w", err)
	}
	return nil
}

// Summary is the aggregate line of a series.
type Summary struct {
	Series  string
	Games   int
	Red     int
	Blue    int
	Draws   int
	RedPct  int
	BluePct int
	DrawPct int
}

func (w *Writer) WriteSummary(s Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	rows := [][]string{
		{"series", "games", "red", "blue", "draw", "red_pct", "blue_pct", "draw_pct"},
		{
			s.Series,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Red),
			strconv.Itoa(s.Blue),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.RedPct),
			strconv.Itoa(s.BluePct),
			strconv.Itoa(s.DrawPct),
		},
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
