package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// fakeGateway records calls and returns canned results.
type fakeGateway struct {
	createCalls int
	createErr   error

	addedQuestions []domain.QuestionSpec
	addErr         error
	addErrAtIndex  int

	getFormResult *domain.FormDetail

	duplicateResult   *domain.DuplicateResult
	duplicateErr      error
	personalizeCalled bool
	personalizeRepl   map[string]string
	personalizeResult *domain.PersonalizeResult
	personalizeErr    error
}

func (g *fakeGateway) CreateForm(_ context.Context, title, description string) (*domain.CreateResult, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &domain.CreateResult{FormID: "new-form", ResponderURI: "https://example.com/view"}, nil
}

func (g *fakeGateway) ListForms(context.Context, int64, string) (*domain.FormList, error) {
	return &domain.FormList{}, nil
}

func (g *fakeGateway) GetForm(context.Context, string) (*domain.FormDetail, error) {
	return g.getFormResult, nil
}

func (g *fakeGateway) UpdateForm(context.Context, string, *string, *string) (*domain.FormDetail, error) {
	return nil, nil
}

func (g *fakeGateway) DeleteForm(context.Context, string) error { return nil }

func (g *fakeGateway) AddQuestion(_ context.Context, _ string, q domain.QuestionSpec) error {
	if g.addErr != nil && len(g.addedQuestions) == g.addErrAtIndex {
		return g.addErr
	}
	g.addedQuestions = append(g.addedQuestions, q)
	return nil
}

func (g *fakeGateway) UpdateItem(context.Context, string, string, domain.ItemPatch) error { return nil }
func (g *fakeGateway) DeleteItem(context.Context, string, string) error                   { return nil }
func (g *fakeGateway) MoveItem(context.Context, string, string, int) error                { return nil }
func (g *fakeGateway) AddSection(context.Context, string, string, string, int) error      { return nil }

func (g *fakeGateway) ListResponses(context.Context, string, int64, string) (*domain.ResponseList, error) {
	return &domain.ResponseList{}, nil
}

func (g *fakeGateway) GetResponse(context.Context, string, string) (*domain.ResponseSummary, error) {
	return nil, nil
}

func (g *fakeGateway) ExportResponsesCSV(context.Context, string, bool, bool) (*domain.ExportResult, error) {
	return nil, nil
}

func (g *fakeGateway) Duplicate(context.Context, string, string) (*domain.DuplicateResult, error) {
	return g.duplicateResult, g.duplicateErr
}

func (g *fakeGateway) Personalize(_ context.Context, _ string, repl map[string]string) (*domain.PersonalizeResult, error) {
	g.personalizeCalled = true
	g.personalizeRepl = repl
	return g.personalizeResult, g.personalizeErr
}

func validTemplate() domain.FormTemplate {
	return domain.FormTemplate{
		Form: domain.FormInfo{Title: "Survey", Description: "Annual"},
		Questions: []domain.QuestionSpec{
			{Type: domain.ShortAnswer, Title: "Name", Required: true},
			{Type: domain.MultipleChoice, Title: "Team", Options: []string{"Eng", "Sales"}},
			{Type: domain.LinearScale, Title: "Satisfaction", Low: 1, High: 5},
		},
	}
}

func TestApply_CreatesFormAndAddsQuestionsInOrder(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewTemplateService(gw)

	result, err := svc.Apply(context.Background(), validTemplate())
	require.NoError(t, err)
	assert.Equal(t, "new-form", result.FormID)
	assert.Equal(t, 3, result.QuestionsAdded)

	require.Len(t, gw.addedQuestions, 3)
	assert.Equal(t, "Name", gw.addedQuestions[0].Title)
	assert.Equal(t, 0, gw.addedQuestions[0].Position)
	assert.Equal(t, 2, gw.addedQuestions[2].Position)
}

func TestApply_InvalidQuestionAbortsBeforeAnyCall(t *testing.T) {
	tpl := validTemplate()
	// Index 1 loses its options.
	tpl.Questions[1].Options = nil

	gw := &fakeGateway{}
	svc := NewTemplateService(gw)

	_, err := svc.Apply(context.Background(), tpl)
	te, ok := domain.IsTemplateError(err)
	require.True(t, ok)
	assert.Equal(t, 1, te.Index)
	assert.Contains(t, te.Reason, "option")

	assert.Zero(t, gw.createCalls)
	assert.Empty(t, gw.addedQuestions)
}

func TestApply_MissingTitleIsTemplateError(t *testing.T) {
	tpl := validTemplate()
	tpl.Form.Title = ""

	svc := NewTemplateService(&fakeGateway{})
	_, err := svc.Apply(context.Background(), tpl)
	te, ok := domain.IsTemplateError(err)
	require.True(t, ok)
	assert.Equal(t, -1, te.Index)
}

func TestApply_MidwayFailureReturnsPartialResult(t *testing.T) {
	gw := &fakeGateway{
		addErr:        errors.New("boom"),
		addErrAtIndex: 2,
	}
	svc := NewTemplateService(gw)

	result, err := svc.Apply(context.Background(), validTemplate())
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.QuestionsAdded)
	assert.Contains(t, err.Error(), "add question 2")
}

func TestExport_DropsNonQuestionItems(t *testing.T) {
	gw := &fakeGateway{
		getFormResult: &domain.FormDetail{
			FormID: "f1",
			Info:   domain.FormInfo{Title: "Survey"},
			Items: []domain.FormItem{
				{ItemID: "i1", Title: "Name", Question: &domain.QuestionSpec{Type: domain.ShortAnswer, Title: "Name"}},
				{ItemID: "i2", Title: "Part two", PageBreak: true},
				{ItemID: "i3", Title: "Team", Question: &domain.QuestionSpec{Type: domain.Dropdown, Title: "Team", Options: []string{"A"}}},
			},
		},
	}
	svc := NewTemplateService(gw)

	tpl, err := svc.Export(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Survey", tpl.Form.Title)
	require.Len(t, tpl.Questions, 2)
	assert.Equal(t, domain.Dropdown, tpl.Questions[1].Type)
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	tpl := validTemplate()

	var buf bytes.Buffer
	require.NoError(t, EncodeTemplate(&buf, &tpl))

	decoded, err := DecodeTemplate(&buf)
	require.NoError(t, err)
	assert.Equal(t, tpl, *decoded)
}

func TestDecodeTemplate_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeTemplate(strings.NewReader("form:\n  title: x\nquesitons: []\n"))
	assert.Error(t, err)
}

func TestDecodeTemplate_ParsesQuestionKinds(t *testing.T) {
	input := `form:
  title: Onboarding
questions:
  - type: SHORT_ANSWER
    title: Full name
    required: true
  - type: MULTIPLE_CHOICE_GRID
    title: Rate each area
    rows: [Speed, Quality]
    columns: ["1", "2", "3"]
`
	tpl, err := DecodeTemplate(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tpl.Questions, 2)
	assert.True(t, tpl.Questions[0].Required)
	assert.Equal(t, domain.MultipleChoiceGrid, tpl.Questions[1].Type)
	assert.Equal(t, []string{"Speed", "Quality"}, tpl.Questions[1].Rows)
}
