package persistence

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

const pipeSeparator = "|"

// ReadPipe parses the pipe-delimited import format. The first line names the
// columns; each following line is mapped to them by position. Blank lines are
// skipped and columns beyond the header are ignored.
func ReadPipe(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		h       header
		records []Record
		line    int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line == 1 {
			text = strings.TrimSpace(trimBOM(text))
		}
		if text == "" {
			continue
		}

		fields := strings.Split(text, pipeSeparator)
		if h == nil {
			var err error
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
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrorTypeIO, "read pipe-delimited file")
	}

	return records, nil
}

// WritePipe writes tasks in the import format with the canonical column order.
// The format has no escaping, so a value containing "|" or a line break is
// rejected before anything is written.
func WritePipe(w io.Writer, tasks []domain.Task) error {
	if err := checkPipeFields(tasks); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(Columns, pipeSeparator) + "\n")
	for _, task := range tasks {
		bw.WriteString(strings.Join(taskRow(task), pipeSeparator) + "\n")
	}
	return bw.Flush()
}

func checkPipeFields(tasks []domain.Task) error {
	for _, task := range tasks {
		for i, value := range taskRow(task) {
			if strings.ContainsAny(value, "|\r\n") {
				return apperrors.NewInvalidInputError(Columns[i], value,
					fmt.Sprintf("task %d contains \"|\" or a line break, which the pipe format cannot store", task.ID))
			}
		}
	}
	return nil
}
