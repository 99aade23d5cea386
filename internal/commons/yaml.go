package commons

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// DecodeYAML decodes data into out, rejecting keys that out does not declare.
func DecodeYAML(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
