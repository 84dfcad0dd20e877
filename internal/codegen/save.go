package codegen

import (
	"fmt"
	"os"
)

// SaveScript writes a generated script to path. This is the editor's
// "download" step: a plain hand-off of the service's output to disk.
func SaveScript(path, code string) error {
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
