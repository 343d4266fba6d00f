package report

import (
	"fmt"
	"os"
)

// WriteFile writes doc to path, replacing any existing file
func WriteFile(path, doc string) error {
	// #nosec G306 - reports are meant to be shared
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
