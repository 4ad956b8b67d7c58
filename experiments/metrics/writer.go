package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// PruningRecord compares minimax and alpha-beta on one position and depth.
type PruningRecord struct {
	Position       int
	Depth          int
	Move           string
	MinimaxScore   float64
	AlphaBetaScore float64
	MinimaxNodes   int
	AlphaBetaNodes int
	Cutoffs        int
	Agree          bool // Same score and move from both algorithms
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "method", "iterative", "duration", "nodes", "leaves", "cutoffs", "depth", "timed_out"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Method,
			strconv.FormatBool(record.Iterative),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.TimedOut),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WritePruningRecords(records []PruningRecord) error {
	header := []string{"position", "depth", "move", "minimax_score", "alphabeta_score", "minimax_nodes", "alphabeta_nodes", "cutoffs", "agree"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Position),
			strconv.Itoa(record.Depth),
			record.Move,
			strconv.FormatFloat(record.MinimaxScore, 'g', -1, 64),
			strconv.FormatFloat(record.AlphaBetaScore, 'g', -1, 64),
			strconv.Itoa(record.MinimaxNodes),
			strconv.Itoa(record.AlphaBetaNodes),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatBool(record.Agree),
		})
	}
	return w.write("pruning_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}
