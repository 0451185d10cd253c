package frames

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteSpec writes a spec as YAML.
func WriteSpec(spec *Spec, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return err
	}
	return enc.Close()
}

// WriteSpecFile writes a spec as YAML to a file at path.
func WriteSpecFile(spec *Spec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSpec(spec, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
