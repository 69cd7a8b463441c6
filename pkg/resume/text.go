package resume

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MarshalText renders a snapshot as human-readable YAML for inspection.
// There is no matching loader.
func MarshalText(doc Document) (data []byte, err error) {
	data, err = yaml.Marshal(doc)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal resume")
		return data, err
	}
	return data, err
}

// Filename returns the suggested file name for the exported PDF.
func Filename(doc Document) (name string) {
	name = fmt.Sprintf("%s_%s_resume.pdf", doc.FirstName, doc.LastName)
	return name
}
