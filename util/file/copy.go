package file

import (
	"os"

	"github.com/cockroachdb/errors"
)

// Copy copies <src> file path to <dst> file path
func Copy(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "Read source file")
	}
	if err := os.WriteFile(dst, input, 0644); err != nil {
		return errors.Wrap(err, "Write destination file")
	}
	return nil
}
