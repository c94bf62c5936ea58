package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mylxsw/asteria/log"
)

// DefaultName is the file name offered for download
const DefaultName = "split_excel_files.zip"

type entry struct {
	name string
	data []byte
}

// Archive is an ordered set of named files.
//
// By default adding a name twice replaces the earlier content in place.
// With unique names the later file is renamed to "{base}_2{ext}", "{base}_3{ext}", ...
type Archive struct {
	unique  bool
	entries []*entry
	index   map[string]*entry
}

// New creates an empty archive
func New(uniqueNames bool) *Archive {
	return &Archive{
		unique:  uniqueNames,
		entries: make([]*entry, 0),
		index:   make(map[string]*entry),
	}
}

// Add registers a file and returns the name it is stored under
func (a *Archive) Add(name string, data []byte) string {
	if e, ok := a.index[name]; ok {
		if !a.unique {
			log.WithFields(log.Fields{"name": name}).Warningf("duplicated file name, the earlier file is replaced")
			e.data = data
			return name
		}

		name = a.nextFreeName(name)
	}

	e := &entry{name: name, data: data}
	a.entries = append(a.entries, e)
	a.index[name] = e

	return name
}

func (a *Archive) nextFreeName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, ok := a.index[candidate]; !ok {
			return candidate
		}
	}
}

// Len returns the number of files
func (a *Archive) Len() int {
	return len(a.entries)
}

// Names returns the file names in insertion order
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		names = append(names, e.name)
	}

	return names
}

// Get returns the content of a file
func (a *Archive) Get(name string) ([]byte, bool) {
	e, ok := a.index[name]
	if !ok {
		return nil, false
	}

	return e.data, true
}

// Write writes all files as a zip container
func (a *Archive) Write(w io.Writer) error {
	zw := zip.NewWriter(w)
	modified := time.Now()

	for _, e := range a.entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return fmt.Errorf("create zip entry %s failed: %w", e.name, err)
		}

		if _, err := fw.Write(e.data); err != nil {
			return fmt.Errorf("write zip entry %s failed: %w", e.name, err)
		}
	}

	return zw.Close()
}

// Bytes returns the zip container held in memory
func (a *Archive) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := a.Write(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SaveAs writes the zip container to a file
func (a *Archive) SaveAs(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := a.Write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Extract writes every file into dir, creating dir when missing, and
// returns the written paths
func (a *Archive) Extract(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s failed: %w", dir, err)
	}

	paths := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		path := filepath.Join(dir, filepath.Base(e.name))
		if err := os.WriteFile(path, e.data, 0644); err != nil {
			return paths, fmt.Errorf("write %s failed: %w", path, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
