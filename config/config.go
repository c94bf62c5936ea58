package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mylxsw/asteria/log"
)

// Job is a split job stored in a TOML file, columns are kept as they are
// written on the command line ("3" or "C")
type Job struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	OutputDir   string `toml:"output_dir"`
	Sheet       string `toml:"sheet"`
	HeaderStart int    `toml:"header_start"`
	HeaderEnd   int    `toml:"header_end"`
	SplitColumn string `toml:"split_column"`
	NameColumn  string `toml:"name_column"`
	UniqueNames bool   `toml:"unique_names"`
	PinyinNames bool   `toml:"pinyin_names"`
	Format      string `toml:"format"`
}

// DefaultJob returns a job with the command line defaults
func DefaultJob() Job {
	return Job{
		Output:      "split_excel_files.zip",
		HeaderStart: 0,
		HeaderEnd:   1,
		SplitColumn: "0",
		NameColumn:  "0",
		Format:      "table",
	}
}

// LoadJob loads a job file, keys missing from the file keep their defaults
func LoadJob(path string) (*Job, error) {
	job := DefaultJob()
	meta, err := toml.DecodeFile(path, &job)
	if err != nil {
		return nil, fmt.Errorf("failed to load job file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.WithFields(log.Fields{"path": path, "keys": undecoded}).Warningf("unknown keys in job file")
	}

	log.Debugf("loaded job file %s", path)
	return &job, nil
}

// SaveJob writes a job file, creating its directory when needed
func SaveJob(path string, job Job) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create job directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create job file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(job); err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	log.Debugf("saved job file %s", path)
	return nil
}
