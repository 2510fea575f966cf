package hypergraph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/hygra/entity"
)

// Snapshot framing. Version bumps whenever the payload layout changes;
// recovery assumes a compatible producer and fails cleanly otherwise.
const (
	snapshotMagic   = "hygra"
	snapshotVersion = 1
)

// snapshot is the persisted pair of (state-cache contents, per-level label
// lists): the raw triples plus everything needed to rebuild the edge store,
// and the scalar cache entries worth carrying across a restart.
type snapshot struct {
	Magic   string `msgpack:"magic"`
	Version int    `msgpack:"version"`

	Name       string    `msgpack:"name"`
	Rows       []int     `msgpack:"rows"`
	Cols       []int     `msgpack:"cols"`
	Weights    []float64 `msgpack:"weights"`
	EdgeLabels []string  `msgpack:"edge_labels"`
	NodeLabels []string  `msgpack:"node_labels"`

	EdgeSizeDist []int `msgpack:"edge_size_dist,omitempty"`
}

// Save writes the hypergraph state to path as one atomic msgpack snapshot:
// the file appears complete or not at all (temp file + rename in the target
// directory). Only hypergraphs whose edge store has exactly two levels can
// be snapshotted this way.
func (h *Hypergraph) Save(path string) error {
	if h.edges.Dimsize() != 2 {
		return fmt.Errorf("%w: snapshot supports 2-level stores, got %d levels", ErrSnapshot, h.edges.Dimsize())
	}
	rows, cols, weights := h.Triples()
	labels := h.edges.Labels()
	snap := snapshot{
		Magic:        snapshotMagic,
		Version:      snapshotVersion,
		Name:         h.name,
		Rows:         rows,
		Cols:         cols,
		Weights:      weights,
		EdgeLabels:   labels[0],
		NodeLabels:   labels[1],
		EdgeSizeDist: h.state.edgeSizeDist,
	}
	payload, err := msgpack.Marshal(&snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".hygra-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Load recovers a hypergraph from a Save snapshot: the edge store is
// reconstructed from the raw triples and label lists, the facade rebuilt,
// and recovered scalar cache entries merged back in. Loaded hypergraphs are
// static.
//
// Returns ErrSnapshot when the file was not produced by Save or is
// internally inconsistent.
func Load(path string) (*Hypergraph, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err = msgpack.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if snap.Magic != snapshotMagic || snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: magic %q version %d", ErrSnapshot, snap.Magic, snap.Version)
	}
	if len(snap.Rows) != len(snap.Cols) || len(snap.Rows) != len(snap.Weights) {
		return nil, fmt.Errorf("%w: %d rows, %d cols, %d weights", ErrSnapshot, len(snap.Rows), len(snap.Cols), len(snap.Weights))
	}

	data := make([][]int, len(snap.Rows))
	for r := range snap.Rows {
		data[r] = []int{snap.Rows[r], snap.Cols[r]}
	}
	src := entity.FromArray(data, [][]string{snap.EdgeLabels, snap.NodeLabels})
	h, err := New(src, WithName(snap.Name), WithStatic(), WithWeights(snap.Weights))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if snap.EdgeSizeDist != nil {
		h.state.edgeSizeDist = snap.EdgeSizeDist
	}

	return h, nil
}
