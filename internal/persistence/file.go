package persistence

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/logging"
)

// Format identifies a flat-file layout.
type Format string

const (
	FormatPipe Format = "pipe"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPipe, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", apperrors.NewInvalidInputError("format", s, "unsupported format (use csv, pdf or pipe)")
	}
}

// ImportFormatFromPath picks the reader for a source file: ".csv" files are
// read as CSV, everything else as the pipe-delimited format.
func ImportFormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatPipe
}

// ExportFormatFromPath picks the writer for a target file, defaulting to CSV.
func ExportFormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".txt":
		return FormatPipe
	default:
		return FormatCSV
	}
}

// ReadFile opens path and parses it in the format implied by its extension.
// A missing file yields a FILE_NOT_FOUND error.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewFileNotFoundError(path, err)
		}
		return nil, apperrors.NewIOError("open", path, err)
	}
	defer f.Close()

	format := ImportFormatFromPath(path)
	logging.Debugf("reading %s as %s\n", path, format)

	if format == FormatCSV {
		return ReadCSV(f)
	}
	return ReadPipe(f)
}

// WriteFile creates or truncates path and writes tasks in the given format.
// Tasks the pipe format cannot store leave the target untouched.
// The file is always closed; a failed close is reported as a write failure.
func WriteFile(path string, format Format, tasks []domain.Task) (err error) {
	// Checked before the target is truncated
	if format == FormatPipe {
		if err := checkPipeFields(tasks); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewIOError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = apperrors.NewIOError("close", path, cerr)
		}
	}()

	logging.Debugf("writing %d tasks to %s as %s\n", len(tasks), path, format)
	if err := Write(f, format, reportTitle(path), tasks); err != nil {
		return apperrors.NewIOError("write", path, err)
	}
	return nil
}

// Write encodes tasks to w in the given format.
func Write(w io.Writer, format Format, title string, tasks []domain.Task) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, tasks)
	case FormatPDF:
		return WritePDF(w, title, tasks)
	case FormatPipe:
		return WritePipe(w, tasks)
	default:
		return apperrors.NewInvalidInputError("format", string(format), "unsupported format")
	}
}

func reportTitle(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" || name == "." {
		return "Tasks"
	}
	return name
}
