// Package trace persists per-frame tracking results to SQLite for offline
// analysis.
package trace

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/faisalnazir/AnonCam/internal/track"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    run_id             TEXT PRIMARY KEY,
    source             TEXT NOT NULL,
    started_unix_nanos INTEGER NOT NULL,
    ended_unix_nanos   INTEGER,
    frame_count        INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS frames (
    run_id        TEXT NOT NULL,
    seq           INTEGER NOT NULL,
    ts_unix_nanos INTEGER NOT NULL,
    has_face      INTEGER NOT NULL,
    confidence    REAL NOT NULL,
    pitch         REAL NOT NULL,
    yaw           REAL NOT NULL,
    roll          REAL NOT NULL,
    tx            REAL NOT NULL,
    ty            REAL NOT NULL,
    tz            REAL NOT NULL,
    detect_micros INTEGER NOT NULL,
    total_micros  INTEGER NOT NULL,
    PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_frames_run ON frames(run_id);
`

// Open opens (or creates) a trace database and ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace db %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create trace schema: %w", err)
	}
	return db, nil
}

// Recorder appends frames to one tracking run.
type Recorder struct {
	db    *sql.DB
	runID string
}

// NewRecorder registers a new run and returns a recorder for it. The source
// string labels where the frames came from (device ID, file path, or
// "synthetic").
func NewRecorder(db *sql.DB, source string) (*Recorder, error) {
	runID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO runs (run_id, source, started_unix_nanos) VALUES (?, ?, ?)`,
		runID, source, time.Now().UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register run: %w", err)
	}
	return &Recorder{db: db, runID: runID}, nil
}

// RunID returns the run's identifier.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record appends one processed frame to the run.
func (r *Recorder) Record(seq int, ts time.Time, result track.Result, timing track.Timing) error {
	hasFace := 0
	if result.HasFace {
		hasFace = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO frames
		 (run_id, seq, ts_unix_nanos, has_face, confidence,
		  pitch, yaw, roll, tx, ty, tz, detect_micros, total_micros)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.runID, seq, ts.UnixNano(), hasFace, result.Confidence,
		result.Pose.Rotation[0], result.Pose.Rotation[1], result.Pose.Rotation[2],
		result.Pose.Translation[0], result.Pose.Translation[1], result.Pose.Translation[2],
		timing.Detect.Microseconds(), timing.Total.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record frame %d: %w", seq, err)
	}
	return nil
}

// Finish stamps the run's end time and frame count.
func (r *Recorder) Finish() error {
	_, err := r.db.Exec(
		`UPDATE runs
		 SET ended_unix_nanos = ?,
		     frame_count = (SELECT COUNT(*) FROM frames WHERE run_id = ?)
		 WHERE run_id = ?`,
		time.Now().UnixNano(), r.runID, r.runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", r.runID, err)
	}
	return nil
}

// RunRow is one recorded run.
type RunRow struct {
	RunID      string
	Source     string
	Started    time.Time
	Ended      time.Time
	FrameCount int
}

// FrameRow is one recorded frame.
type FrameRow struct {
	Seq          int
	Timestamp    time.Time
	HasFace      bool
	Confidence   float64
	Pitch        float64
	Yaw          float64
	Roll         float64
	TX           float64
	TY           float64
	TZ           float64
	DetectMicros int64
	TotalMicros  int64
}

// ListRuns returns all runs, newest first.
func ListRuns(db *sql.DB) ([]RunRow, error) {
	rows, err := db.Query(
		`SELECT run_id, source, started_unix_nanos, COALESCE(ended_unix_nanos, 0), frame_count
		 FROM runs ORDER BY started_unix_nanos DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var r RunRow
		var started, ended int64
		if err := rows.Scan(&r.RunID, &r.Source, &started, &ended, &r.FrameCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Started = time.Unix(0, started)
		if ended != 0 {
			r.Ended = time.Unix(0, ended)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRunID returns the most recently started run.
func LatestRunID(db *sql.DB) (string, error) {
	var runID string
	err := db.QueryRow(
		`SELECT run_id FROM runs ORDER BY started_unix_nanos DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no runs recorded")
	}
	if err != nil {
		return "", fmt.Errorf("failed to find latest run: %w", err)
	}
	return runID, nil
}

// LoadFrames returns a run's frames in sequence order.
func LoadFrames(db *sql.DB, runID string) ([]FrameRow, error) {
	rows, err := db.Query(
		`SELECT seq, ts_unix_nanos, has_face, confidence,
		        pitch, yaw, roll, tx, ty, tz, detect_micros, total_micros
		 FROM frames WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load frames for run %s: %w", runID, err)
	}
	defer rows.Close()

	var frames []FrameRow
	for rows.Next() {
		var f FrameRow
		var ts int64
		var hasFace int
		if err := rows.Scan(&f.Seq, &ts, &hasFace, &f.Confidence,
			&f.Pitch, &f.Yaw, &f.Roll, &f.TX, &f.TY, &f.TZ,
			&f.DetectMicros, &f.TotalMicros); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		f.Timestamp = time.Unix(0, ts)
		f.HasFace = hasFace != 0
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// PruneRuns deletes all but the newest keep runs, frames included. Returns
// how many runs were removed.
func PruneRuns(db *sql.DB, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := db.Exec(
		`DELETE FROM runs WHERE run_id NOT IN
		 (SELECT run_id FROM runs ORDER BY started_unix_nanos DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if _, err := db.Exec(
		`DELETE FROM frames WHERE run_id NOT IN (SELECT run_id FROM runs)`); err != nil {
		return removed, fmt.Errorf("failed to prune orphaned frames: %w", err)
	}
	return removed, nil
}
