package forms

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"

	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/gtools-cli/internal/connectors/google"
	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// questionColumn pairs a question ID with its display title, in form
// order. Grid rows expand to one column per row.
type questionColumn struct {
	ID    string
	Title string
}

// questionColumns walks the form items and extracts the answerable
// questions. Responses key their answers by question ID, not item ID.
func questionColumns(form *forms.Form) []questionColumn {
	var cols []questionColumn
	for _, item := range form.Items {
		if item.QuestionItem != nil && item.QuestionItem.Question != nil {
			cols = append(cols, questionColumn{
				ID:    item.QuestionItem.Question.QuestionId,
				Title: item.Title,
			})
		}
		if item.QuestionGroupItem != nil {
			for _, q := range item.QuestionGroupItem.Questions {
				title := item.Title
				if q.RowQuestion != nil {
					title = item.Title + " [" + q.RowQuestion.Title + "]"
				}
				cols = append(cols, questionColumn{ID: q.QuestionId, Title: title})
			}
		}
	}
	return cols
}

// answerText flattens one answer to display text. Multi-value answers
// join with "; ".
func answerText(a forms.Answer) string {
	var values []string
	if a.TextAnswers != nil {
		for _, ta := range a.TextAnswers.Answers {
			values = append(values, ta.Value)
		}
	}
	if a.FileUploadAnswers != nil {
		for _, fa := range a.FileUploadAnswers.Answers {
			values = append(values, fa.FileName)
		}
	}
	return strings.Join(values, "; ")
}

// listAllResponses pages through every response of a form.
func (c *Client) listAllResponses(ctx context.Context, formID string) ([]*forms.FormResponse, error) {
	var all []*forms.FormResponse
	pageToken := ""
	for {
		call := c.forms.Forms.Responses.List(formID).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, google.WrapError(err)
		}
		all = append(all, resp.Responses...)
		if resp.NextPageToken == "" {
			return all, nil
		}
		pageToken = resp.NextPageToken
	}
}

// toResponseSummary maps one API response, resolving question IDs to
// titles.
func toResponseSummary(resp *forms.FormResponse, titles map[string]string) domain.ResponseSummary {
	summary := domain.ResponseSummary{
		ResponseID:      resp.ResponseId,
		CreateTime:      resp.CreateTime,
		RespondentEmail: resp.RespondentEmail,
	}
	if len(resp.Answers) > 0 {
		summary.Answers = make(map[string]string, len(resp.Answers))
		for qid, answer := range resp.Answers {
			title := titles[qid]
			if title == "" {
				title = qid
			}
			summary.Answers[title] = answerText(answer)
		}
	}
	return summary
}

// ListResponses lists a form's responses. One extra form fetch maps
// question IDs back to titles.
func (c *Client) ListResponses(ctx context.Context, formID string, pageSize int64, pageToken string) (*domain.ResponseList, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}
	titles := make(map[string]string)
	for _, col := range questionColumns(form) {
		titles[col.ID] = col.Title
	}

	call := c.forms.Forms.Responses.List(formID).Context(ctx)
	if pageSize > 0 {
		call = call.PageSize(pageSize)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	list := &domain.ResponseList{NextPageToken: resp.NextPageToken}
	for _, r := range resp.Responses {
		list.Responses = append(list.Responses, toResponseSummary(r, titles))
	}
	return list, nil
}

// GetResponse fetches a single response by ID.
func (c *Client) GetResponse(ctx context.Context, formID, responseID string) (*domain.ResponseSummary, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}
	titles := make(map[string]string)
	for _, col := range questionColumns(form) {
		titles[col.ID] = col.Title
	}

	resp, err := c.forms.Forms.Responses.Get(formID, responseID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	summary := toResponseSummary(resp, titles)
	return &summary, nil
}

// ExportResponsesCSV exports all responses as CSV, one column per
// question in form order.
func (c *Client) ExportResponsesCSV(ctx context.Context, formID string, includeTimestamps, includeEmail bool) (*domain.ExportResult, error) {
	form, err := c.forms.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	responses, err := c.listAllResponses(ctx, formID)
	if err != nil {
		return nil, err
	}

	return buildCSV(form, responses, includeTimestamps, includeEmail)
}

// buildCSV assembles the export. Responses are written in the order
// the API returned them.
func buildCSV(form *forms.Form, responses []*forms.FormResponse, includeTimestamps, includeEmail bool) (*domain.ExportResult, error) {
	cols := questionColumns(form)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(cols)+2)
	if includeTimestamps {
		header = append(header, "Timestamp")
	}
	if includeEmail {
		header = append(header, "Email")
	}
	for _, col := range cols {
		header = append(header, col.Title)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, resp := range responses {
		row := make([]string, 0, len(header))
		if includeTimestamps {
			row = append(row, resp.CreateTime)
		}
		if includeEmail {
			row = append(row, resp.RespondentEmail)
		}
		for _, col := range cols {
			value := ""
			if answer, ok := resp.Answers[col.ID]; ok {
				value = answerText(answer)
			}
			row = append(row, value)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &domain.ExportResult{
		CSV:      buf.String(),
		RowCount: len(responses),
	}, nil
}
