package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// ErrCancelled is returned by a Prompter when the user abandons a form.
var ErrCancelled = stderrors.New("cancelled")

// Prompter presents a form and returns its validated result or ErrCancelled.
type Prompter interface {
	PromptCategory() (string, error)
	PromptTask(categories []string, defaults validation.TaskInput) (validation.TaskInput, error)
	PromptSavePath(defaultPath string) (string, error)
}

// LinePrompter asks one question per line. An invalid answer is reported
// and the same question is asked again; earlier answers are kept.
type LinePrompter struct {
	in        *bufio.Reader
	out       io.Writer
	validator *validation.TaskValidator
}

// NewLinePrompter creates a prompter reading answers from in.
func NewLinePrompter(in *bufio.Reader, out io.Writer, validator *validation.TaskValidator) *LinePrompter {
	if validator == nil {
		validator = validation.NewTaskValidator()
	}
	return &LinePrompter{in: in, out: out, validator: validator}
}

// PromptCategory asks for a new category name. An empty name cancels.
func (p *LinePrompter) PromptCategory() (string, error) {
	return p.askFirst("Category name", "", p.validator.ValidateCategoryName)
}

// PromptTask asks for every task field in form order. An empty description
// cancels; other fields fall back to their defaults.
func (p *LinePrompter) PromptTask(categories []string, defaults validation.TaskInput) (validation.TaskInput, error) {
	if len(categories) == 0 {
		return validation.TaskInput{}, errors.NewValidationError("add a category before adding tasks", nil)
	}

	fmt.Fprintln(p.out, "New task (empty description cancels)")

	var (
		input validation.TaskInput
		err   error
	)
	if input.Description, err = p.askFirst("Description", defaults.Description, p.validator.ValidateDescription); err != nil {
		return validation.TaskInput{}, err
	}
	if input.DueDate, err = p.ask("Due date (YYYY/MM/DD)", defaults.DueDate, p.validator.ValidateDueDate); err != nil {
		return validation.TaskInput{}, err
	}
	if input.Priority, err = p.ask("Priority", defaults.Priority, func(s string) error {
		return p.validator.ValidateOptional(validation.FieldPriority, s)
	}); err != nil {
		return validation.TaskInput{}, err
	}
	if input.Status, err = p.ask("Status", defaults.Status, func(s string) error {
		return p.validator.ValidateOptional(validation.FieldStatus, s)
	}); err != nil {
		return validation.TaskInput{}, err
	}

	label := fmt.Sprintf("Category (%s)", strings.Join(categories, ", "))
	if input.Category, err = p.ask(label, defaults.Category, func(s string) error {
		return p.validator.ValidateCategory(s, categories)
	}); err != nil {
		return validation.TaskInput{}, err
	}

	return input, nil
}

// PromptSavePath asks where to write an export. An empty answer keeps defaultPath.
func (p *LinePrompter) PromptSavePath(defaultPath string) (string, error) {
	path, err := p.readLine("Save as", defaultPath)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, nil
}

// askFirst is ask for the opening field of a form: an empty answer cancels.
func (p *LinePrompter) askFirst(label, def string, check func(string) error) (string, error) {
	for {
		answer, err := p.readLine(label, def)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", ErrCancelled
		}
		if err := check(answer); err != nil {
			fmt.Fprintln(p.out, userMessage(err))
			continue
		}
		return answer, nil
	}
}

func (p *LinePrompter) ask(label, def string, check func(string) error) (string, error) {
	for {
		answer, err := p.readLine(label, def)
		if err != nil {
			return "", err
		}
		if err := check(answer); err != nil {
			fmt.Fprintln(p.out, userMessage(err))
			continue
		}
		return answer, nil
	}
}

// readLine prints the question and returns the trimmed answer, or def when
// the answer is empty. End of input cancels the form.
func (p *LinePrompter) readLine(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !stderrors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrCancelled
		}
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
