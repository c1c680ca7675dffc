package forms

import (
	"context"
	"fmt"

	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// Choice question wire types.
const (
	choiceRadio    = "RADIO"
	choiceCheckbox = "CHECKBOX"
	choiceDropdown = "DROP_DOWN"
)

// buildItem converts a validated question spec into a Forms API item.
// Titles and option values are newline-cleaned; the API rejects them
// otherwise.
func buildItem(q domain.QuestionSpec) (*forms.Item, error) {
	item := &forms.Item{
		Title:       domain.CleanText(q.Title),
		Description: q.Description,
	}

	if q.Type.IsGrid() {
		item.QuestionGroupItem = buildGrid(q)
		return item, nil
	}

	question := &forms.Question{Required: q.Required}

	switch q.Type {
	case domain.ShortAnswer:
		question.TextQuestion = &forms.TextQuestion{}
	case domain.Paragraph:
		question.TextQuestion = &forms.TextQuestion{Paragraph: true}
	case domain.MultipleChoice:
		question.ChoiceQuestion = buildChoice(choiceRadio, q.Options)
	case domain.Checkboxes:
		question.ChoiceQuestion = buildChoice(choiceCheckbox, q.Options)
	case domain.Dropdown:
		question.ChoiceQuestion = buildChoice(choiceDropdown, q.Options)
	case domain.LinearScale:
		question.ScaleQuestion = &forms.ScaleQuestion{
			Low:             int64(q.Low),
			High:            int64(q.High),
			LowLabel:        q.LowLabel,
			HighLabel:       q.HighLabel,
			ForceSendFields: []string{"Low"},
		}
	case domain.Rating:
		// Rating scales always start at 1; only the level is tunable.
		question.RatingQuestion = &forms.RatingQuestion{
			IconType:         "STAR",
			RatingScaleLevel: int64(q.High),
		}
	case domain.Date:
		question.DateQuestion = &forms.DateQuestion{IncludeYear: true}
	case domain.Time:
		question.TimeQuestion = &forms.TimeQuestion{}
	case domain.FileUpload:
		maxFiles := int64(q.MaxFiles)
		if maxFiles == 0 {
			maxFiles = 1
		}
		maxSize := q.MaxFileSize
		if maxSize == 0 {
			maxSize = domain.DefaultMaxFileSize
		}
		question.FileUploadQuestion = &forms.FileUploadQuestion{
			FolderId:    q.FolderID,
			MaxFiles:    maxFiles,
			MaxFileSize: maxSize,
			Types:       q.AllowedTypes,
		}
	default:
		return nil, fmt.Errorf("unsupported question type: %q", q.Type)
	}

	item.QuestionItem = &forms.QuestionItem{Question: question}
	return item, nil
}

func buildChoice(kind string, options []string) *forms.ChoiceQuestion {
	cq := &forms.ChoiceQuestion{Type: kind}
	for _, opt := range options {
		cq.Options = append(cq.Options, &forms.Option{Value: domain.CleanText(opt)})
	}
	return cq
}

func buildGrid(q domain.QuestionSpec) *forms.QuestionGroupItem {
	columnType := choiceRadio
	if q.Type == domain.CheckboxGrid {
		columnType = choiceCheckbox
	}

	group := &forms.QuestionGroupItem{
		Grid: &forms.Grid{
			Columns: buildChoice(columnType, q.Columns),
		},
	}
	for _, row := range q.Rows {
		group.Questions = append(group.Questions, &forms.Question{
			Required:    q.Required,
			RowQuestion: &forms.RowQuestion{Title: domain.CleanText(row)},
		})
	}
	return group
}

// toQuestionSpec reverses buildItem for a single-question item.
// Returns nil for kinds the CLI does not model.
func toQuestionSpec(title, description string, q *forms.Question) *domain.QuestionSpec {
	spec := &domain.QuestionSpec{
		Title:       title,
		Description: description,
		Required:    q.Required,
	}

	switch {
	case q.TextQuestion != nil:
		spec.Type = domain.ShortAnswer
		if q.TextQuestion.Paragraph {
			spec.Type = domain.Paragraph
		}
	case q.ChoiceQuestion != nil:
		switch q.ChoiceQuestion.Type {
		case choiceRadio:
			spec.Type = domain.MultipleChoice
		case choiceCheckbox:
			spec.Type = domain.Checkboxes
		case choiceDropdown:
			spec.Type = domain.Dropdown
		default:
			return nil
		}
		for _, opt := range q.ChoiceQuestion.Options {
			spec.Options = append(spec.Options, opt.Value)
		}
	case q.ScaleQuestion != nil:
		spec.Type = domain.LinearScale
		spec.Low = int(q.ScaleQuestion.Low)
		spec.High = int(q.ScaleQuestion.High)
		spec.LowLabel = q.ScaleQuestion.LowLabel
		spec.HighLabel = q.ScaleQuestion.HighLabel
	case q.RatingQuestion != nil:
		spec.Type = domain.Rating
		spec.Low = 1
		spec.High = int(q.RatingQuestion.RatingScaleLevel)
	case q.DateQuestion != nil:
		spec.Type = domain.Date
	case q.TimeQuestion != nil:
		spec.Type = domain.Time
	case q.FileUploadQuestion != nil:
		spec.Type = domain.FileUpload
		spec.FolderID = q.FileUploadQuestion.FolderId
		spec.MaxFiles = int(q.FileUploadQuestion.MaxFiles)
		spec.MaxFileSize = q.FileUploadQuestion.MaxFileSize
		spec.AllowedTypes = q.FileUploadQuestion.Types
	default:
		return nil
	}

	return spec
}

// toGridSpec reverses buildGrid.
func toGridSpec(title, description string, group *forms.QuestionGroupItem) *domain.QuestionSpec {
	if group.Grid == nil || group.Grid.Columns == nil {
		return nil
	}

	spec := &domain.QuestionSpec{
		Title:       title,
		Description: description,
		Type:        domain.MultipleChoiceGrid,
	}
	if group.Grid.Columns.Type == choiceCheckbox {
		spec.Type = domain.CheckboxGrid
	}
	for _, opt := range group.Grid.Columns.Options {
		spec.Columns = append(spec.Columns, opt.Value)
	}
	for _, q := range group.Questions {
		if q.RowQuestion != nil {
			spec.Rows = append(spec.Rows, q.RowQuestion.Title)
		}
		spec.Required = spec.Required || q.Required
	}
	return spec
}

// location builds a batch-update location, forcing index zero onto the
// wire.
func location(index int) *forms.Location {
	return &forms.Location{
		Index:           int64(index),
		ForceSendFields: []string{"Index"},
	}
}

// AddQuestion appends or inserts one question.
func (c *Client) AddQuestion(ctx context.Context, formID string, q domain.QuestionSpec) error {
	if err := q.Validate(); err != nil {
		return &domain.GatewayError{Kind: domain.GatewayInvalidRequest, Detail: err.Error()}
	}

	item, err := buildItem(q)
	if err != nil {
		return &domain.GatewayError{Kind: domain.GatewayInvalidRequest, Detail: err.Error()}
	}

	index := q.Position
	if index < 0 {
		form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
		if err != nil {
			return google.WrapError(err)
		}
		index = len(form.Items)
	}

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{{
			CreateItem: &forms.CreateItemRequest{
				Item:     item,
				Location: location(index),
			},
		}},
	}
	if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// itemIndex resolves an item ID to its current position.
func (c *Client) itemIndex(ctx context.Context, formID, itemID string) (int, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return 0, google.WrapError(err)
	}
	for i, item := range form.Items {
		if item.ItemId == itemID {
			return i, nil
		}
	}
	return 0, &domain.GatewayError{
		Kind:   domain.GatewayInvalidRequest,
		Detail: fmt.Sprintf("item %s not found in form %s", itemID, formID),
	}
}

// UpdateItem patches an item's title, description, or required flag.
func (c *Client) UpdateItem(ctx context.Context, formID, itemID string, patch domain.ItemPatch) error {
	index, err := c.itemIndex(ctx, formID, itemID)
	if err != nil {
		return err
	}

	item := &forms.Item{ItemId: itemID}
	var mask []string
	if patch.Title != nil {
		item.Title = domain.CleanText(*patch.Title)
		mask = append(mask, "title")
	}
	if patch.Description != nil {
		item.Description = *patch.Description
		item.ForceSendFields = append(item.ForceSendFields, "Description")
		mask = append(mask, "description")
	}
	if patch.Required != nil {
		item.QuestionItem = &forms.QuestionItem{
			Question: &forms.Question{
				Required:        *patch.Required,
				ForceSendFields: []string{"Required"},
			},
		}
		mask = append(mask, "questionItem.question.required")
	}
	if len(mask) == 0 {
		return nil
	}

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{{
			UpdateItem: &forms.UpdateItemRequest{
				Item:       item,
				Location:   location(index),
				UpdateMask: joinMask(mask),
			},
		}},
	}
	if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, formID, itemID string) error {
	index, err := c.itemIndex(ctx, formID, itemID)
	if err != nil {
		return err
	}

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{{
			DeleteItem: &forms.DeleteItemRequest{Location: location(index)},
		}},
	}
	if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// MoveItem moves an item to a new zero-based position.
func (c *Client) MoveItem(ctx context.Context, formID, itemID string, newIndex int) error {
	index, err := c.itemIndex(ctx, formID, itemID)
	if err != nil {
		return err
	}

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{{
			MoveItem: &forms.MoveItemRequest{
				OriginalLocation: location(index),
				NewLocation:      location(newIndex),
			},
		}},
	}
	if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// AddSection inserts a page break. A negative position appends.
func (c *Client) AddSection(ctx context.Context, formID, title, description string, position int) error {
	if position < 0 {
		form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
		if err != nil {
			return google.WrapError(err)
		}
		position = len(form.Items)
	}

	req := &forms.BatchUpdateFormRequest{
		Requests: []*forms.Request{{
			CreateItem: &forms.CreateItemRequest{
				Item: &forms.Item{
					Title:         domain.CleanText(title),
					Description:   description,
					PageBreakItem: &forms.PageBreakItem{},
				},
				Location: location(position),
			},
		}},
	}
	if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}
