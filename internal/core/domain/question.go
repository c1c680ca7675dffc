package domain

import (
	"fmt"
	"strings"
)

// QuestionType enumerates the twelve supported Google Forms question
// kinds. The set is closed: the request builders switch exhaustively
// over it and reject anything else at parse time.
type QuestionType string

const (
	ShortAnswer        QuestionType = "SHORT_ANSWER"
	Paragraph          QuestionType = "PARAGRAPH"
	MultipleChoice     QuestionType = "MULTIPLE_CHOICE"
	Checkboxes         QuestionType = "CHECKBOXES"
	Dropdown           QuestionType = "DROPDOWN"
	LinearScale        QuestionType = "LINEAR_SCALE"
	Date               QuestionType = "DATE"
	Time               QuestionType = "TIME"
	FileUpload         QuestionType = "FILE_UPLOAD"
	MultipleChoiceGrid QuestionType = "MULTIPLE_CHOICE_GRID"
	CheckboxGrid       QuestionType = "CHECKBOX_GRID"
	Rating             QuestionType = "RATING"
)

// QuestionTypes lists every supported kind, in documentation order.
var QuestionTypes = []QuestionType{
	ShortAnswer, Paragraph, MultipleChoice, Checkboxes, Dropdown,
	LinearScale, Date, Time, FileUpload, MultipleChoiceGrid,
	CheckboxGrid, Rating,
}

// ParseQuestionType parses a case-insensitive question type name.
func ParseQuestionType(s string) (QuestionType, error) {
	qt := QuestionType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range QuestionTypes {
		if qt == known {
			return qt, nil
		}
	}
	return "", fmt.Errorf("unsupported question type: %q", s)
}

// HasOptions returns true for kinds that carry an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case MultipleChoice, Checkboxes, Dropdown:
		return true
	}
	return false
}

// HasBounds returns true for kinds that carry low/high scale bounds.
func (t QuestionType) HasBounds() bool {
	return t == LinearScale || t == Rating
}

// IsGrid returns true for grid kinds that carry rows and columns.
func (t QuestionType) IsGrid() bool {
	return t == MultipleChoiceGrid || t == CheckboxGrid
}

// DefaultMaxFileSize is the file-upload size cap when unspecified (10 MiB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// QuestionSpec is a declarative question description, as it appears in
// templates and on the add-question command line.
type QuestionSpec struct {
	Type        QuestionType `yaml:"type"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description,omitempty"`
	Required    bool         `yaml:"required,omitempty"`

	// Options for MULTIPLE_CHOICE, CHECKBOXES, DROPDOWN.
	Options []string `yaml:"options,omitempty"`

	// Bounds and labels for LINEAR_SCALE and RATING. RATING always has
	// Low fixed to 1 by the request builder.
	Low       int    `yaml:"low,omitempty"`
	High      int    `yaml:"high,omitempty"`
	LowLabel  string `yaml:"lowLabel,omitempty"`
	HighLabel string `yaml:"highLabel,omitempty"`

	// Rows and Columns for grid kinds.
	Rows    []string `yaml:"rows,omitempty"`
	Columns []string `yaml:"columns,omitempty"`

	// File-upload parameters.
	FolderID     string   `yaml:"folderId,omitempty"`
	MaxFiles     int      `yaml:"maxFiles,omitempty"`
	MaxFileSize  int64    `yaml:"maxFileSize,omitempty"`
	AllowedTypes []string `yaml:"allowedTypes,omitempty"`

	// Position is the zero-based item index for insertion.
	Position int `yaml:"-"`
}

// Validate checks the per-kind invariants. The returned error names the
// violated field; callers wrap it with the question index for template
// errors.
func (q QuestionSpec) Validate() error {
	if _, err := ParseQuestionType(string(q.Type)); err != nil {
		return err
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if q.Type.HasOptions() && len(q.Options) == 0 {
		return fmt.Errorf("%s requires at least one option", q.Type)
	}
	if q.Type.HasBounds() {
		low, high := q.Low, q.High
		if q.Type == Rating {
			low = 1
		}
		if low == 0 && high == 0 {
			return fmt.Errorf("%s requires low and high bounds", q.Type)
		}
		if high <= low {
			return fmt.Errorf("%s bounds invalid: low %d must be below high %d", q.Type, low, high)
		}
	}
	if q.Type.IsGrid() {
		if len(q.Rows) == 0 || len(q.Columns) == 0 {
			return fmt.Errorf("%s requires rows and columns", q.Type)
		}
	}
	return nil
}

// CleanText strips newlines from displayed text. The Forms API rejects
// newline characters in item titles and option values.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
