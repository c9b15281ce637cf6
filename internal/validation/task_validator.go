package validation

const (
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldDueDate     = "due date"
	FieldPriority    = "priority"
	FieldStatus      = "status"
)

// TaskInput is the raw content of the task form
type TaskInput struct {
	Category    string
	Description string
	DueDate     string
	Priority    string
	Status      string
}

// TaskValidator validates the category and task forms
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return NewTaskValidatorWith(NewValidator())
}

// NewTaskValidatorWith creates a task validator around v
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateCategoryName validates the name typed in the category form
func (tv *TaskValidator) ValidateCategoryName(name string) error {
	return tv.requiredText(FieldCategory, name)
}

// ValidateCategory checks that a task is filed under a registered category
func (tv *TaskValidator) ValidateCategory(name string, categories []string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError(FieldCategory)
	} else if !tv.validator.IsKnownValue(name, categories) {
		validationError.AddUnknownValueError(FieldCategory, name, categories)
	}
	return validationError.ErrorOrNil()
}

// ValidateDescription requires a non-empty description
func (tv *TaskValidator) ValidateDescription(description string) error {
	return tv.requiredText(FieldDescription, description)
}

// ValidateDueDate requires a YYYY/MM/DD calendar date
func (tv *TaskValidator) ValidateDueDate(dueDate string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(dueDate) {
		validationError.AddRequiredError(FieldDueDate)
	} else if !tv.validator.IsValidDueDate(dueDate) {
		validationError.AddInvalidFormatError(FieldDueDate, dueDate, "YYYY/MM/DD")
	}
	return validationError.ErrorOrNil()
}

// ValidateOptional checks the length of a free-text field that may be empty
func (tv *TaskValidator) ValidateOptional(field, value string) error {
	validationError := NewValidationError()
	if !tv.validator.IsWithinMaxLength(value) {
		validationError.AddInvalidLengthError(field, value, tv.validator.MaxFieldLength())
	}
	return validationError.ErrorOrNil()
}

// ValidateTask validates a complete task form against the known categories
func (tv *TaskValidator) ValidateTask(input TaskInput, categories []string) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateCategory(input.Category, categories))
	validationError.Merge(tv.ValidateDescription(input.Description))
	validationError.Merge(tv.ValidateDueDate(input.DueDate))
	validationError.Merge(tv.ValidateOptional(FieldPriority, input.Priority))
	validationError.Merge(tv.ValidateOptional(FieldStatus, input.Status))
	return validationError.ErrorOrNil()
}

// Normalize trims the surrounding whitespace of the free-text fields. The
// category is kept as given since category names match exactly.
func (tv *TaskValidator) Normalize(input TaskInput) TaskInput {
	return TaskInput{
		Category:    input.Category,
		Description: tv.validator.TrimAndValidateString(input.Description),
		DueDate:     tv.validator.TrimAndValidateString(input.DueDate),
		Priority:    tv.validator.TrimAndValidateString(input.Priority),
		Status:      tv.validator.TrimAndValidateString(input.Status),
	}
}

func (tv *TaskValidator) requiredText(field, value string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyString(value) {
		validationError.AddRequiredError(field)
	} else if !tv.validator.IsWithinMaxLength(value) {
		validationError.AddInvalidLengthError(field, value, tv.validator.MaxFieldLength())
	}
	return validationError.ErrorOrNil()
}
