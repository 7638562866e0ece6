package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"sudoq/internal/model"
)

// OutputPath builds a render output path under dir. The ULID suffix keeps
// repeated renders of the same puzzle distinct even within one second.
func OutputPath(dir string, doc *model.Document, kind, ext string) string {
	name := fmt.Sprintf("%s_%s_%dx%d_%s_%s_%s.%s",
		model.UTCStamp(time.Now()),
		doc.Preset.Key,
		doc.Size, doc.Size,
		doc.ShortID(),
		kind,
		strings.ToLower(ulid.Make().String()),
		ext,
	)
	return filepath.Join(dir, name)
}

// EnsureDir creates the renders directory if absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create renders dir: %w", err)
	}
	return nil
}
