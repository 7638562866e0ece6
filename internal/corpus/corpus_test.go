package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"sudoq/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "puzzles"))
}

func testDoc(id, presetKey, stamp string) *model.Document {
	return &model.Document{
		Version:    model.DocumentVersion,
		CreatedUTC: stamp,
		Preset:     model.Preset{Key: presetKey, Desc: "test", URL: "https://example.com"},
		Picked:     model.Picked{ID: id, Index: 0, Total: 10},
		Size:       4,
		Block:      model.Block{BW: 2, BH: 2},
		Clues:      [][]int{{1, 0, 3, 0}, {0, 0, 0, 2}, {0, 4, 0, 0}, {2, 0, 0, 3}},
		Solution:   [][]int{{1, 2, 3, 4}, {4, 3, 1, 2}, {3, 4, 2, 1}, {2, 1, 4, 3}},
		Share:      model.Share{Kind: "none"},
	}
}

// writeAt stores a document and backdates its mtime so creation order is
// deterministic regardless of test speed.
func writeAt(t *testing.T, s *Store, doc *model.Document, age time.Duration) Handle {
	t.Helper()
	h, err := s.Write(doc)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(h.Path, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	return h
}

func TestListEmptyCorpus(t *testing.T) {
	s := newTestStore(t)
	handles, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(handles) != 0 {
		t.Errorf("expected empty corpus, got %d handles", len(handles))
	}
	if _, err := os.Stat(s.Dir); err != nil {
		t.Errorf("expected puzzles dir to be created: %v", err)
	}
}

func TestWriteAndLatest(t *testing.T) {
	s := newTestStore(t)

	writeAt(t, s, testDoc("aaaa1111-0001-4000-8000-000000000001", "kids4n", "2026-08-01_100000Z"), 2*time.Hour)
	writeAt(t, s, testDoc("bbbb2222-0002-4000-8000-000000000002", "kids4n", "2026-08-01_110000Z"), time.Hour)

	latest, err := s.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !strings.Contains(latest.Name(), "_bbbb2222.json") {
		t.Errorf("expected newest document, got %s", latest.Name())
	}

	doc, err := s.Read(latest.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Picked.ID != "bbbb2222-0002-4000-8000-000000000002" {
		t.Errorf("unexpected id %q", doc.Picked.ID)
	}
}

func TestLatestEmptyCorpus(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Latest()
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestWriteFilename(t *testing.T) {
	s := newTestStore(t)
	h, err := s.Write(testDoc("324306f5-034d-4089-8723-56a8087fde14", "easy9", "2026-08-29_120000Z"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "2026-08-29_120000Z_easy9_4x4_324306f5.json"
	if h.Name() != want {
		t.Errorf("got filename %q, want %q", h.Name(), want)
	}

	// No temp residue after a successful write.
	entries, _ := os.ReadDir(s.Dir)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestResolveByFullID(t *testing.T) {
	s := newTestStore(t)

	// Two documents deliberately sharing a short-id prefix.
	idOld := "deadbeef-1111-4000-8000-000000000001"
	idNew := "deadbeef-2222-4000-8000-000000000002"
	writeAt(t, s, testDoc(idOld, "kids4n", "2026-08-01_100000Z"), 2*time.Hour)
	writeAt(t, s, testDoc(idNew, "kids4l", "2026-08-01_110000Z"), time.Hour)

	h, err := s.Resolve(idOld)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	doc, err := s.Read(h.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Picked.ID != idOld {
		t.Errorf("resolved wrong document: %q", doc.Picked.ID)
	}

	// Case-insensitive.
	h2, err := s.Resolve(strings.ToUpper(idOld))
	if err != nil {
		t.Fatalf("resolve upper: %v", err)
	}
	if h2.Path != h.Path {
		t.Errorf("case-insensitive resolve diverged")
	}
}

func TestResolveByShortID(t *testing.T) {
	s := newTestStore(t)

	idOld := "deadbeef-1111-4000-8000-000000000001"
	idNew := "deadbeef-2222-4000-8000-000000000002"
	writeAt(t, s, testDoc(idOld, "kids4n", "2026-08-01_100000Z"), 2*time.Hour)
	writeAt(t, s, testDoc(idNew, "kids4l", "2026-08-01_110000Z"), time.Hour)

	// Short id returns the newest filename match.
	h, err := s.Resolve("deadbeef")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	doc, _ := s.Read(h.Path)
	if doc.Picked.ID != idNew {
		t.Errorf("expected newest match, got %q", doc.Picked.ID)
	}
}

func TestResolveSlowPath(t *testing.T) {
	s := newTestStore(t)
	id := uuid.NewString()
	h := writeAt(t, s, testDoc(id, "easy9", "2026-08-01_100000Z"), time.Hour)

	// Rename the file so the filename heuristic cannot see the short id.
	renamed := filepath.Join(s.Dir, "imported-puzzle.json")
	if err := os.Rename(h.Path, renamed); err != nil {
		t.Fatalf("rename: %v", err)
	}

	got, err := s.Resolve(id)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Path != renamed {
		t.Errorf("expected slow path to find %s, got %s", renamed, got.Path)
	}
}

func TestResolveNotFound(t *testing.T) {
	s := newTestStore(t)
	writeAt(t, s, testDoc(uuid.NewString(), "easy9", "2026-08-01_100000Z"), time.Hour)

	_, err := s.Resolve("0123abcd")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveInvalidID(t *testing.T) {
	s := newTestStore(t)
	for _, bad := range []string{"", "zzzz", "abc'; rm", "abc_def"} {
		if _, err := s.Resolve(bad); !errors.Is(err, model.ErrInvalidID) {
			t.Errorf("Resolve(%q): expected ErrInvalidID, got %v", bad, err)
		}
	}
}

func TestUsedIDs(t *testing.T) {
	s := newTestStore(t)

	ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
	for i, id := range ids {
		stamp := model.UTCStamp(time.Now().Add(time.Duration(i) * time.Second))
		writeAt(t, s, testDoc(id, "easy9", stamp), time.Duration(len(ids)-i)*time.Hour)
	}

	// A junk file must be skipped, not fatal.
	if err := os.WriteFile(filepath.Join(s.Dir, "2026-08-01_000000Z_junk_4x4_ffff.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	used, err := s.UsedIDs()
	if err != nil {
		t.Fatalf("used ids: %v", err)
	}
	if len(used) != len(ids) {
		t.Fatalf("expected %d used ids, got %d", len(ids), len(used))
	}
	for _, id := range ids {
		if !used[id] {
			t.Errorf("missing id %s", id)
		}
	}
}

func TestListOrdering(t *testing.T) {
	s := newTestStore(t)

	writeAt(t, s, testDoc("cccc3333-0003-4000-8000-000000000003", "kids4n", "2026-08-01_120000Z"), time.Hour)
	writeAt(t, s, testDoc("aaaa1111-0001-4000-8000-000000000001", "kids4n", "2026-08-01_100000Z"), 3*time.Hour)
	writeAt(t, s, testDoc("bbbb2222-0002-4000-8000-000000000002", "kids4n", "2026-08-01_110000Z"), 2*time.Hour)

	handles, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(handles) != 3 {
		t.Fatalf("expected 3, got %d", len(handles))
	}
	wantOrder := []string{"_aaaa1111.json", "_bbbb2222.json", "_cccc3333.json"}
	for i, suffix := range wantOrder {
		if !strings.HasSuffix(handles[i].Name(), suffix) {
			t.Errorf("position %d: got %s, want suffix %s", i, handles[i].Name(), suffix)
		}
	}
}
