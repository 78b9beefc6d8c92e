package ops

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/marmos91/idmctl/internal/cli/output"
)

// File suffixes used by --all-separate.
const (
	ResourceTypeSuffix = ".resourcetype.authz.json"
	IdPSuffix          = ".idp.json"

	resourceTypeKind = "resourcetype"
	idpKind          = "idp"
)

// ErrFileRequired is returned when an import mode needs --file.
var ErrFileRequired = errors.New("a file is required (--file)")

// Meta describes where and when an export was taken.
type Meta struct {
	Origin      string `json:"origin"`
	Realm       string `json:"realm"`
	ExportedBy  string `json:"exportedBy,omitempty"`
	ExportDate  string `json:"exportDate"`
	ExportTool  string `json:"exportTool"`
	ToolVersion string `json:"exportToolVersion,omitempty"`
}

func (s *Service) meta() *Meta {
	return &Meta{
		Origin:      s.host,
		Realm:       s.realm,
		ExportedBy:  s.username,
		ExportDate:  s.now().UTC().Format(time.RFC3339),
		ExportTool:  "idmctl",
		ToolVersion: s.version,
	}
}

// writeExport writes {"meta": meta, kind: items} to path.
func writeExport[T any](path, kind string, meta *Meta, items map[string]T) error {
	return output.WriteJSONFile(path, map[string]any{"meta": meta, kind: items})
}

// readExport reads the kind section of an export file.
func readExport[T any](path, kind string) (map[string]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	raw, ok := doc[kind]
	if !ok {
		return nil, fmt.Errorf("%s has no %q section", path, kind)
	}
	items := map[string]T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parsing %s section of %s: %w", kind, path, err)
	}
	return items, nil
}

// sortedKeys returns the keys of m in order, giving imports a stable
// sequence.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// filesWithSuffix lists the files in dir ending in suffix.
func filesWithSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// fileName turns a resource name into a file name with suffix.
func fileName(name, suffix string) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-")
	if base == "" {
		base = "unnamed"
	}
	return base + suffix
}

// outputPath resolves an explicit --file or the default name inside dir.
func (s *Service) outputPath(file, defaultName string) string {
	if file != "" {
		return file
	}
	return filepath.Join(s.dir, defaultName)
}
