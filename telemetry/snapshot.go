package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/rps/systems"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when loading a snapshot written by an
// incompatible version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

// Snapshot holds the complete simulation state for replay.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`

	WorldWidth  float64 `json:"world_width"`
	WorldHeight float64 `json:"world_height"`

	Tick int32 `json:"tick"`

	// Agents in evaluation order.
	Agents []systems.AgentState `json:"agents"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// NewSnapshot captures the population at the given tick.
func NewSnapshot(pop *systems.Population, seed int64, width, height float64, tick int32) *Snapshot {
	return &Snapshot{
		Version:     SnapshotVersion,
		RNGSeed:     seed,
		WorldWidth:  width,
		WorldHeight: height,
		Tick:        tick,
		Agents:      pop.Snapshot(),
	}
}

// Restore spawns the snapshot's agents, in order, into a new population.
func (s *Snapshot) Restore() *systems.Population {
	pop := systems.NewPopulation()
	pop.SpawnStates(s.Agents)
	return pop
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	// Build filename
	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snapshot.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snapshot.Version)
	}

	return &snapshot, nil
}
