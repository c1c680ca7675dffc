package domain

// FormSummary is one entry of a form listing.
type FormSummary struct {
	FormID        string `json:"formId"`
	Title         string `json:"title"`
	ResponderURI  string `json:"responderUri,omitempty"`
	ResponseCount int    `json:"responseCount"`
}

// FormList is the result of listing forms.
type FormList struct {
	Forms         []FormSummary `json:"forms"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
}

// FormInfo is the form-level metadata (title and description).
type FormInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FormItem is one item of a live form, reduced to what the CLI and the
// template exporter need.
type FormItem struct {
	ItemID      string
	Title       string
	Description string
	// Question is nil for page breaks and display-only items.
	Question *QuestionSpec
	// PageBreak marks a section break item.
	PageBreak bool
}

// FormDetail is a live form's structure.
type FormDetail struct {
	FormID       string
	Info         FormInfo
	ResponderURI string
	Items        []FormItem
}

// CreateResult is the outcome of creating a form.
type CreateResult struct {
	FormID         string `json:"formId"`
	ResponderURI   string `json:"responderUri"`
	EditURI        string `json:"editUri"`
	QuestionsAdded int    `json:"questionsAdded,omitempty"`
}

// DuplicateResult is the outcome of duplicating a form.
type DuplicateResult struct {
	NewFormID    string `json:"newFormId"`
	ResponderURI string `json:"responderUri"`
	EditURI      string `json:"editUri"`
	CopiedItems  int    `json:"copiedItems"`
	TotalItems   int    `json:"totalItems"`
	// ItemsPersonalized counts items whose text was patched after the
	// copy. Zero when no personalization was requested.
	ItemsPersonalized int `json:"itemsPersonalized,omitempty"`
}

// ItemPatch describes a partial update of a form item. Nil fields are
// left untouched.
type ItemPatch struct {
	Title       *string
	Description *string
	Required    *bool
}

// ResponseSummary is one submitted response.
type ResponseSummary struct {
	ResponseID      string `json:"responseId"`
	CreateTime      string `json:"createTime"`
	RespondentEmail string `json:"respondentEmail,omitempty"`
	// Answers maps question title to the joined answer text.
	Answers map[string]string `json:"answers,omitempty"`
}

// ResponseList is the result of listing responses.
type ResponseList struct {
	Responses     []ResponseSummary `json:"responses"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// ExportResult is CSV-exported response data.
type ExportResult struct {
	CSV      string `json:"csv"`
	RowCount int    `json:"rowCount"`
}

// PersonalizeResult reports a placeholder substitution pass.
type PersonalizeResult struct {
	FormID       string `json:"formId"`
	ItemsUpdated int    `json:"itemsUpdated"`
	TotalItems   int    `json:"totalItems"`
	InfoUpdated  bool   `json:"infoUpdated"`
}
