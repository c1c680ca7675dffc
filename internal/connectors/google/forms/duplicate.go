package forms

import (
	"context"
	"strings"

	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// createItemBatchSize bounds a single batch update. The API caps the
// request count per batch.
const createItemBatchSize = 100

// Duplicate copies a form's structure into a new form. The copy is a
// create plus batched item creation; a mid-way failure leaves a
// partially built form, reported in the result counts.
func (c *Client) Duplicate(ctx context.Context, formID, newTitle string) (*domain.DuplicateResult, error) {
	source, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	title := newTitle
	if title == "" && source.Info != nil {
		title = "Copy of " + source.Info.Title
	}

	description := ""
	if source.Info != nil {
		description = source.Info.Description
	}

	created, err := c.CreateForm(ctx, title, description)
	if err != nil {
		return nil, err
	}

	result := &domain.DuplicateResult{
		NewFormID:    created.FormID,
		ResponderURI: created.ResponderURI,
		EditURI:      created.EditURI,
		TotalItems:   len(source.Items),
	}

	requests := buildCopyRequests(source.Items)
	for start := 0; start < len(requests); start += createItemBatchSize {
		end := start + createItemBatchSize
		if end > len(requests) {
			end = len(requests)
		}
		batch := &forms.BatchUpdateFormRequest{Requests: requests[start:end]}
		if _, err := c.forms.Forms.BatchUpdate(created.FormID, batch).Context(ctx).Do(); err != nil {
			return result, google.WrapError(err)
		}
		result.CopiedItems += end - start
	}

	return result, nil
}

// buildCopyRequests turns source items into create requests. Item IDs
// and question IDs are stripped; the target form assigns fresh ones.
// Items of kinds the copier cannot rebuild are skipped.
func buildCopyRequests(items []*forms.Item) []*forms.Request {
	var requests []*forms.Request
	for _, item := range items {
		copied := copyItem(item)
		if copied == nil {
			continue
		}
		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item:     copied,
				Location: location(len(requests)),
			},
		})
	}
	return requests
}

// copyItem rebuilds one item from its question spec. Round-tripping
// through QuestionSpec strips server-assigned IDs and cleans text.
func copyItem(item *forms.Item) *forms.Item {
	if item.PageBreakItem != nil {
		return &forms.Item{
			Title:         domain.CleanText(item.Title),
			Description:   item.Description,
			PageBreakItem: &forms.PageBreakItem{},
		}
	}
	if item.TextItem != nil {
		return &forms.Item{
			Title:       domain.CleanText(item.Title),
			Description: item.Description,
			TextItem:    &forms.TextItem{},
		}
	}

	spec := toFormItem(item).Question
	if spec == nil {
		return nil
	}
	rebuilt, err := buildItem(*spec)
	if err != nil {
		return nil
	}
	return rebuilt
}

// Personalize replaces placeholder strings in the form info and all
// item text. Each changed target is one patch; a failure mid-way
// leaves earlier patches applied and reports the partial count.
func (c *Client) Personalize(ctx context.Context, formID string, replacements map[string]string) (*domain.PersonalizeResult, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	result := &domain.PersonalizeResult{
		FormID:     formID,
		TotalItems: len(form.Items),
	}

	if form.Info != nil {
		newTitle := applyReplacements(form.Info.Title, replacements)
		newDescription := applyReplacements(form.Info.Description, replacements)
		if newTitle != form.Info.Title || newDescription != form.Info.Description {
			var title, description *string
			if newTitle != form.Info.Title {
				title = &newTitle
			}
			if newDescription != form.Info.Description {
				description = &newDescription
			}
			if _, err := c.UpdateForm(ctx, formID, title, description); err != nil {
				return result, err
			}
			result.InfoUpdated = true
		}
	}

	for i, item := range form.Items {
		newTitle := applyReplacements(item.Title, replacements)
		newDescription := applyReplacements(item.Description, replacements)
		if newTitle == item.Title && newDescription == item.Description {
			continue
		}

		patched := &forms.Item{ItemId: item.ItemId}
		var mask []string
		if newTitle != item.Title {
			patched.Title = newTitle
			mask = append(mask, "title")
		}
		if newDescription != item.Description {
			patched.Description = newDescription
			patched.ForceSendFields = append(patched.ForceSendFields, "Description")
			mask = append(mask, "description")
		}

		req := &forms.BatchUpdateFormRequest{
			Requests: []*forms.Request{{
				UpdateItem: &forms.UpdateItemRequest{
					Item:       patched,
					Location:   location(i),
					UpdateMask: joinMask(mask),
				},
			}},
		}
		if _, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do(); err != nil {
			return result, google.WrapError(err)
		}
		result.ItemsUpdated++
	}

	return result, nil
}

// applyReplacements substitutes every placeholder occurrence.
func applyReplacements(s string, replacements map[string]string) string {
	for placeholder, value := range replacements {
		s = strings.ReplaceAll(s, placeholder, value)
	}
	return s
}
