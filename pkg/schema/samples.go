package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Sample is one representative upstream payload for a resource.
type Sample struct {
	// Resource is the record name derived from the file name, for example
	// "time_entry.json" yields "TimeEntry".
	Resource string
	Path     string
	Data     []byte
}

// ReadSamples reads every *.json file in dir, ordered by file name.
func ReadSamples(fs afero.Fs, dir string) ([]Sample, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("error reading samples directory: %w", err)
	}

	var samples []Sample
	for _, fi := range infos {
		if fi.IsDir() || filepath.Ext(fi.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, fi.Name())
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading sample %s: %w", path, err)
		}
		samples = append(samples, Sample{
			Resource: RecordName(strings.TrimSuffix(fi.Name(), ".json"), false),
			Path:     path,
			Data:     data,
		})
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples found in %s", dir)
	}
	return samples, nil
}

// Build synthesizes records for all samples in order. Every failing sample is
// reported, not just the first.
func Build(samples []Sample) ([]RecordSpec, error) {
	b := NewBuilder()
	var result *multierror.Error
	for _, s := range samples {
		if err := b.Add(s.Resource, s.Data); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Path, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b.Records(), nil
}
