package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gotube/internal/log"
)

// Writer is the signature shared by the report encoders
type Writer func(io.Writer, Report) error

// WriteFile creates path, and its parent directory if needed, and writes r
// to it with write.
func WriteFile(path string, r Report, write Writer) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f, r); err != nil {
		return err
	}
	log.Infow("report written", "path", path, "report_id", r.ID.String())
	return nil
}
