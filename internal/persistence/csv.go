package persistence

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

// WriteCSV writes the export format: a fixed header followed by one row per
// task in insertion order. Fields containing commas, quotes or line breaks are
// quoted; everything else is written verbatim.
func WriteCSV(w io.Writer, tasks []domain.Task) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, task := range tasks {
		if err := writer.Write(taskRow(task)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a file produced by WriteCSV (or any CSV with the same column
// names in any order).
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var (
		h       header
		records []Record
	)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, apperrors.NewRecordError(parseErr.Line, "csv", parseErr.Err.Error())
			}
			return nil, apperrors.WrapError(err, apperrors.ErrorTypeIO, "read csv file")
		}

		line, _ := reader.FieldPos(0)
		if h == nil {
			fields[0] = trimBOM(fields[0])
			if h, err = newHeader(line, fields); err != nil {
				return nil, err
			}
			continue
		}

		rec, err := h.record(line, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func taskRow(task domain.Task) []string {
	return []string{
		task.Category,
		strconv.Itoa(task.ID),
		task.Description,
		task.DueDateText(),
		task.Priority,
		task.Status,
	}
}
