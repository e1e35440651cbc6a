package imageio

import "fmt"

// PfmFormatError flags a malformed PFM stream: a bad magic number, an
// unparseable dimension/scale line, or a pixel payload shorter than the
// header promises.
type PfmFormatError struct {
	Message string
}

func (e *PfmFormatError) Error() string { return fmt.Sprintf("invalid PFM format: %s", e.Message) }

func newPfmFormatError(format string, args ...interface{}) error {
	return &PfmFormatError{Message: fmt.Sprintf(format, args...)}
}
