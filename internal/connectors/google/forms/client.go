// Package forms implements the Forms gateway over the Google Forms and
// Drive APIs. The Forms API has no list or delete; those go through
// Drive, which only sees files this client created (drive.file scope).
package forms

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.FormsGateway = (*Client)(nil)

// formMimeType is the Drive MIME type for Google Forms files.
const formMimeType = "application/vnd.google-apps.form"

// Client is the Forms gateway backed by the Forms and Drive APIs.
type Client struct {
	forms *forms.Service
	drive *drive.Service
}

// NewClient creates a forms gateway over the given API services.
func NewClient(formsSvc *forms.Service, driveSvc *drive.Service) *Client {
	return &Client{forms: formsSvc, drive: driveSvc}
}

// editURI builds the form editor URL.
func editURI(formID string) string {
	return "https://docs.google.com/forms/d/" + formID + "/edit"
}

// CreateForm creates a form. The create call accepts only the title;
// a description requires a follow-up batch update.
func (c *Client) CreateForm(ctx context.Context, title, description string) (*domain.CreateResult, error) {
	form := &forms.Form{
		Info: &forms.Info{Title: title},
	}

	created, err := c.forms.Forms.Create(form).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	if description != "" {
		req := &forms.BatchUpdateFormRequest{
			Requests: []*forms.Request{{
				UpdateFormInfo: &forms.UpdateFormInfoRequest{
					Info:       &forms.Info{Description: description},
					UpdateMask: "description",
				},
			}},
		}
		if _, err := c.forms.Forms.BatchUpdate(created.FormId, req).Context(ctx).Do(); err != nil {
			return nil, google.WrapError(err)
		}
	}

	return &domain.CreateResult{
		FormID:       created.FormId,
		ResponderURI: created.ResponderUri,
		EditURI:      editURI(created.FormId),
	}, nil
}

// ListForms lists forms via Drive, newest first. Response counts are
// filled best-effort with one responses call per form; a count that
// cannot be fetched is logged and left at zero.
func (c *Client) ListForms(ctx context.Context, pageSize int64, pageToken string) (*domain.FormList, error) {
	call := c.drive.Files.List().
		Q(fmt.Sprintf("mimeType='%s' and trashed=false", formMimeType)).
		Fields("files(id,name),nextPageToken").
		OrderBy("modifiedTime desc").
		PageSize(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	files, err := call.Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	list := &domain.FormList{
		Forms:         make([]domain.FormSummary, 0, len(files.Files)),
		NextPageToken: files.NextPageToken,
	}
	for _, f := range files.Files {
		summary := domain.FormSummary{FormID: f.Id, Title: f.Name}
		count, err := c.countResponses(ctx, f.Id)
		if err != nil {
			logger.Warn("response count for %s unavailable: %v", f.Id, err)
		} else {
			summary.ResponseCount = count
		}
		list.Forms = append(list.Forms, summary)
	}

	return list, nil
}

// countResponses pages through a form's responses and counts them. The
// Responses API reports no total.
func (c *Client) countResponses(ctx context.Context, formID string) (int, error) {
	count := 0
	pageToken := ""
	for {
		call := c.forms.Forms.Responses.List(formID).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return 0, google.WrapError(err)
		}
		count += len(resp.Responses)
		if resp.NextPageToken == "" {
			return count, nil
		}
		pageToken = resp.NextPageToken
	}
}

// GetForm fetches a form's structure.
func (c *Client) GetForm(ctx context.Context, formID string) (*domain.FormDetail, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}
	return toFormDetail(form), nil
}

// UpdateForm patches the form's title and/or description. A title
// change also renames the backing Drive file so the Drive listing
// stays in sync; that rename is best-effort.
func (c *Client) UpdateForm(ctx context.Context, formID string, title, description *string) (*domain.FormDetail, error) {
	info := &forms.Info{}
	var mask []string
	if title != nil {
		info.Title = *title
		mask = append(mask, "title")
	}
	if description != nil {
		info.Description = *description
		info.ForceSendFields = append(info.ForceSendFields, "Description")
		mask = append(mask, "description")
	}
	if len(mask) == 0 {
		return c.GetForm(ctx, formID)
	}

	req := &forms.BatchUpdateFormRequest{
		IncludeFormInResponse: true,
		Requests: []*forms.Request{{
			UpdateFormInfo: &forms.UpdateFormInfoRequest{
				Info:       info,
				UpdateMask: joinMask(mask),
			},
		}},
	}

	resp, err := c.forms.Forms.BatchUpdate(formID, req).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	if title != nil {
		_, err := c.drive.Files.Update(formID, &drive.File{Name: *title}).Context(ctx).Do()
		if err != nil {
			logger.Warn("drive name sync for %s failed: %v", formID, err)
		}
	}

	if resp.Form != nil {
		return toFormDetail(resp.Form), nil
	}
	return c.GetForm(ctx, formID)
}

// DeleteForm trashes the form's Drive file.
func (c *Client) DeleteForm(ctx context.Context, formID string) error {
	if err := c.drive.Files.Delete(formID).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

func joinMask(fields []string) string {
	mask := ""
	for i, f := range fields {
		if i > 0 {
			mask += ","
		}
		mask += f
	}
	return mask
}

// toFormDetail reduces an API form to the domain shape.
func toFormDetail(form *forms.Form) *domain.FormDetail {
	detail := &domain.FormDetail{
		FormID:       form.FormId,
		ResponderURI: form.ResponderUri,
	}
	if form.Info != nil {
		detail.Info = domain.FormInfo{
			Title:       form.Info.Title,
			Description: form.Info.Description,
		}
	}
	for _, item := range form.Items {
		detail.Items = append(detail.Items, toFormItem(item))
	}
	return detail
}

// toFormItem reduces an API item. Question kinds outside the supported
// set come back with a nil Question; they are still listed and can be
// deleted or moved.
func toFormItem(item *forms.Item) domain.FormItem {
	fi := domain.FormItem{
		ItemID:      item.ItemId,
		Title:       item.Title,
		Description: item.Description,
		PageBreak:   item.PageBreakItem != nil,
	}
	if item.QuestionItem != nil && item.QuestionItem.Question != nil {
		fi.Question = toQuestionSpec(item.Title, item.Description, item.QuestionItem.Question)
	}
	if item.QuestionGroupItem != nil {
		fi.Question = toGridSpec(item.Title, item.Description, item.QuestionGroupItem)
	}
	return fi
}
