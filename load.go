package kenyaloc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// gazetteerFile is the on-disk YAML shape:
//
//	counties:
//	  - name: Nairobi
//	    towns:
//	      - name: Nairobi CBD
//	        lat: -1.2864
//	        lon: 36.8172
//	        aliases: [nairobi, cbd]
type gazetteerFile struct {
	Counties Gazetteer `yaml:"counties"`
}

// ErrEmptyGazetteer is returned when a gazetteer document has no counties.
var ErrEmptyGazetteer = errors.New("gazetteer has no counties")

// LoadGazetteer decodes a YAML gazetteer document. Unknown fields are
// rejected so typos in data files surface early. The result is not
// validated; run Validate before building an index from untrusted data.
func LoadGazetteer(r io.Reader) (Gazetteer, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f gazetteerFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyGazetteer
		}
		return nil, fmt.Errorf("decoding gazetteer: %w", err)
	}
	if len(f.Counties) == 0 {
		return nil, ErrEmptyGazetteer
	}
	return f.Counties, nil
}

// LoadGazetteerFile reads a YAML gazetteer from path.
func LoadGazetteerFile(path string) (Gazetteer, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gazetteer %s: %w", path, err)
	}
	defer fh.Close()

	g, err := LoadGazetteer(fh)
	if err != nil {
		return nil, fmt.Errorf("loading gazetteer %s: %w", path, err)
	}
	return g, nil
}

// WriteGazetteer encodes g in the YAML shape LoadGazetteer reads.
func WriteGazetteer(w io.Writer, g Gazetteer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(gazetteerFile{Counties: g}); err != nil {
		return fmt.Errorf("encoding gazetteer: %w", err)
	}
	return enc.Close()
}
