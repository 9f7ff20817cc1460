package driver

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Machtan/lintparser/internal/diag"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Cache stores parsed reports on disk keyed by source-tree digest, so a
// repeat run over an unchanged tree skips the external command.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes and returns a report cache at the standard
// location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

type cachePayload struct {
	Schema   uint16
	Verdict  uint8
	Problems []problemPayload
}

type problemPayload struct {
	Filepath string
	Message  notePayload
	Help     []notePayload
	Notes    []notePayload
}

type notePayload struct {
	StartLine uint32
	StartCol  uint32
	EndLine   uint32
	EndCol    uint32
	Message   string
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, key.String()+".msgpack")
}

// Load returns the cached report for key, if a valid entry exists.
func (c *Cache) Load(key Digest) (diag.Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return diag.Report{}, false
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return diag.Report{}, false
	}
	if payload.Schema != cacheSchemaVersion {
		return diag.Report{}, false
	}
	return payload.toReport(), true
}

// Store writes the report for key, replacing any previous entry.
func (c *Cache) Store(key Digest, rep diag.Report) error {
	data, err := msgpack.Marshal(newCachePayload(rep))
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.WriteFile(c.pathFor(key), data, 0o644)
}

func newCachePayload(rep diag.Report) cachePayload {
	payload := cachePayload{
		Schema:  cacheSchemaVersion,
		Verdict: uint8(rep.Verdict),
	}
	for _, p := range rep.Problems {
		payload.Problems = append(payload.Problems, problemPayload{
			Filepath: p.Filepath,
			Message:  toNotePayload(p.Message),
			Help:     toNotePayloads(p.Help),
			Notes:    toNotePayloads(p.Notes),
		})
	}
	return payload
}

func (p cachePayload) toReport() diag.Report {
	rep := diag.Report{Verdict: diag.Verdict(p.Verdict)}
	for _, prob := range p.Problems {
		rep.Problems = append(rep.Problems, diag.Problem{
			Filepath: prob.Filepath,
			Message:  fromNotePayload(prob.Message),
			Help:     fromNotePayloads(prob.Help),
			Notes:    fromNotePayloads(prob.Notes),
		})
	}
	return rep
}

func toNotePayload(n diag.Note) notePayload {
	return notePayload{
		StartLine: n.StartLine,
		StartCol:  n.StartCol,
		EndLine:   n.EndLine,
		EndCol:    n.EndCol,
		Message:   n.Message,
	}
}

func toNotePayloads(notes []diag.Note) []notePayload {
	if len(notes) == 0 {
		return nil
	}
	out := make([]notePayload, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNotePayload(n))
	}
	return out
}

func fromNotePayload(n notePayload) diag.Note {
	return diag.NewNote(n.StartLine, n.StartCol, n.EndLine, n.EndCol, n.Message)
}

func fromNotePayloads(notes []notePayload) []diag.Note {
	if len(notes) == 0 {
		return nil
	}
	out := make([]diag.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, fromNotePayload(n))
	}
	return out
}
