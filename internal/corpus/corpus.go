// Package corpus manages the on-disk puzzle documents.
//
// Every stored puzzle is one JSON file under the puzzles directory; the
// directory itself is the single source of truth. Nothing here caches
// derived state across calls, so documents appearing between runs are
// picked up automatically.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sudoq/internal/model"
)

var (
	// ErrEmptyCorpus means no puzzles are stored yet.
	ErrEmptyCorpus = errors.New("no puzzles stored")
	// ErrNotFound means no stored document matches the identifier.
	ErrNotFound = errors.New("puzzle not found")
)

// Store manages one directory of puzzle documents.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir. The directory is created lazily.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Handle identifies one stored document.
type Handle struct {
	Path    string
	ModTime int64 // unix nanos, used for creation-time ordering
}

// Name returns the document filename.
func (h Handle) Name() string {
	return filepath.Base(h.Path)
}

func (s *Store) ensure() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create puzzles dir: %w", err)
	}
	return nil
}

// List returns all stored documents ordered by ascending creation time.
// An empty corpus yields an empty slice, never an error.
func (s *Store) List() ([]Handle, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read puzzles dir: %w", err)
	}

	var handles []Handle
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		handles = append(handles, Handle{
			Path:    filepath.Join(s.Dir, e.Name()),
			ModTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(handles, func(i, j int) bool {
		if handles[i].ModTime != handles[j].ModTime {
			return handles[i].ModTime < handles[j].ModTime
		}
		// Filenames start with the creation stamp, so a name tie-break
		// keeps same-second writes in creation order.
		return handles[i].Path < handles[j].Path
	})
	return handles, nil
}

// Latest returns the most recently created document.
func (s *Store) Latest() (Handle, error) {
	handles, err := s.List()
	if err != nil {
		return Handle{}, err
	}
	if len(handles) == 0 {
		return Handle{}, fmt.Errorf("%w in %s", ErrEmptyCorpus, s.Dir)
	}
	return handles[len(handles)-1], nil
}

// Read decodes the document at path.
func (s *Store) Read(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", filepath.Base(path), err)
	}
	return &doc, nil
}

// UsedIDs returns the set of picked ids across all stored documents.
// Recomputed from disk on every call; unreadable documents are skipped.
func (s *Store) UsedIDs() (map[string]bool, error) {
	handles, err := s.List()
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool)
	for _, h := range handles {
		doc, err := s.Read(h.Path)
		if err != nil {
			continue
		}
		if doc.Picked.ID != "" {
			used[doc.Picked.ID] = true
		}
	}
	return used, nil
}

// Resolve finds a stored document by identifier: either the full id or
// its short (first-segment) form embedded in filenames.
//
// Fast path: filename suffix match on the short segment. A short-only
// identifier returns the newest match without reading content; a full id
// is verified against picked.id, newest first. Slow path: content scan of
// every document, newest first.
func (s *Store) Resolve(id string) (Handle, error) {
	normalized, err := model.NormalizeID(id)
	if err != nil {
		return Handle{}, err
	}
	short := strings.ToLower(model.ShortID(normalized))
	want := strings.ToLower(normalized)

	handles, err := s.List()
	if err != nil {
		return Handle{}, err
	}

	suffix := "_" + short + ".json"
	var candidates []Handle
	for _, h := range handles {
		if strings.HasSuffix(strings.ToLower(h.Name()), suffix) {
			candidates = append(candidates, h)
		}
	}

	if len(candidates) > 0 {
		if !strings.Contains(normalized, "-") {
			// Short id only: the newest filename match wins, no reads.
			return candidates[len(candidates)-1], nil
		}
		for i := len(candidates) - 1; i >= 0; i-- {
			doc, err := s.Read(candidates[i].Path)
			if err != nil {
				continue
			}
			if strings.ToLower(doc.Picked.ID) == want {
				return candidates[i], nil
			}
		}
	}

	// Slow path: filenames embed only the short id, so a renamed or
	// foreign file can still hold the document.
	for i := len(handles) - 1; i >= 0; i-- {
		doc, err := s.Read(handles[i].Path)
		if err != nil {
			continue
		}
		if strings.ToLower(doc.Picked.ID) == want {
			return handles[i], nil
		}
	}

	return Handle{}, fmt.Errorf("%w: id=%s", ErrNotFound, id)
}

// Filename derives the deterministic document filename. Distinct puzzles
// written in the same second differ in their short id.
func Filename(createdUTC, presetKey string, size int, puzzleID string) string {
	return fmt.Sprintf("%s_%s_%dx%d_%s.json", createdUTC, presetKey, size, size, model.ShortID(puzzleID))
}

// Write persists doc as a new document and returns its handle. The write
// is atomic: the document appears fully written or not at all.
func (s *Store) Write(doc *model.Document) (Handle, error) {
	if err := s.ensure(); err != nil {
		return Handle{}, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Handle{}, fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	name := Filename(doc.CreatedUTC, doc.Preset.Key, doc.Size, doc.Picked.ID)
	path := filepath.Join(s.Dir, name)

	tmp, err := os.CreateTemp(s.Dir, ".tmp-"+name+"-*")
	if err != nil {
		return Handle{}, fmt.Errorf("create temp document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return Handle{}, fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return Handle{}, fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return Handle{}, fmt.Errorf("store document: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Handle{}, fmt.Errorf("stat document: %w", err)
	}
	slog.Debug("stored puzzle document", "path", path, "id", doc.Picked.ID)
	return Handle{Path: path, ModTime: info.ModTime().UnixNano()}, nil
}
