package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inhies/go-bytesize"

	"github.com/lgbarn/pgn2csv-go/internal/errors"
)

// ManifestFile is the file name of the run manifest.
const ManifestFile = "manifest.json"

// TableInfo describes one table file of a run.
type TableInfo struct {
	Name string `json:"name"`
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// Manifest summarises a run: what was read, what was written and which
// problems were seen.
type Manifest struct {
	RunID       string         `json:"run_id"`
	Input       string         `json:"input"`
	Compression string         `json:"compression,omitempty"`
	Engine      string         `json:"engine"`
	Format      string         `json:"format"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
	BytesRead   int64          `json:"bytes_read"`
	Size        string         `json:"size"`
	Games       int            `json:"games"`
	Moves       int            `json:"moves"`
	Diagnostics map[string]int `json:"diagnostics"`
	Tables      []TableInfo    `json:"tables"`
}

// NewManifest starts a manifest for input with a fresh run id.
func NewManifest(input string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		Input:       input,
		StartedAt:   time.Now().UTC(),
		Diagnostics: map[string]int{},
	}
}

// Finish records the end of the run.
func (m *Manifest) Finish(games, moves int, read bytesize.ByteSize, sinks *Sinks) {
	m.FinishedAt = time.Now().UTC()
	m.Games = games
	m.Moves = moves
	m.BytesRead = int64(read)
	m.Size = read.String()

	m.Tables = m.Tables[:0]
	if sinks != nil {
		for _, t := range sinks.Tables() {
			m.Tables = append(m.Tables, TableInfo{
				Name: t.Name(),
				File: filepath.Base(t.Path()),
				Rows: t.Rows(),
			})
		}
	}
}

// WriteFile writes the manifest as indented JSON to dir.
func (m *Manifest) WriteFile(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("manifest: %w: %w", errors.ErrSinkWrite, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteFile.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return m, nil
}
