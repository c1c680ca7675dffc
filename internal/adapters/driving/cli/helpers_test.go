package cli

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gtools-cli/internal/core/ports/driving"
)

// fakeFormsGateway is a canned driven.FormsGateway for command tests.
type fakeFormsGateway struct {
	list         *domain.FormList
	detail       *domain.FormDetail
	createResult *domain.CreateResult
	responses    *domain.ResponseList
	response     *domain.ResponseSummary
	export       *domain.ExportResult
	err          error

	gotForm       string
	deletedForm   string
	addedQuestion domain.QuestionSpec
	movedItem     string
	movedTo       int
	patch         domain.ItemPatch
}

func (f *fakeFormsGateway) CreateForm(_ context.Context, _, _ string) (*domain.CreateResult, error) {
	return f.createResult, f.err
}

func (f *fakeFormsGateway) ListForms(_ context.Context, _ int64, _ string) (*domain.FormList, error) {
	return f.list, f.err
}

func (f *fakeFormsGateway) GetForm(_ context.Context, formID string) (*domain.FormDetail, error) {
	f.gotForm = formID
	return f.detail, f.err
}

func (f *fakeFormsGateway) UpdateForm(_ context.Context, _ string, _, _ *string) (*domain.FormDetail, error) {
	return f.detail, f.err
}

func (f *fakeFormsGateway) DeleteForm(_ context.Context, formID string) error {
	f.deletedForm = formID
	return f.err
}

func (f *fakeFormsGateway) AddQuestion(_ context.Context, _ string, q domain.QuestionSpec) error {
	f.addedQuestion = q
	return f.err
}

func (f *fakeFormsGateway) UpdateItem(_ context.Context, _, _ string, patch domain.ItemPatch) error {
	f.patch = patch
	return f.err
}

func (f *fakeFormsGateway) DeleteItem(_ context.Context, _, _ string) error {
	return f.err
}

func (f *fakeFormsGateway) MoveItem(_ context.Context, _, itemID string, newIndex int) error {
	f.movedItem = itemID
	f.movedTo = newIndex
	return f.err
}

func (f *fakeFormsGateway) AddSection(_ context.Context, _, _, _ string, _ int) error {
	return f.err
}

func (f *fakeFormsGateway) ListResponses(_ context.Context, _ string, _ int64, _ string) (*domain.ResponseList, error) {
	return f.responses, f.err
}

func (f *fakeFormsGateway) GetResponse(_ context.Context, _, _ string) (*domain.ResponseSummary, error) {
	return f.response, f.err
}

func (f *fakeFormsGateway) ExportResponsesCSV(_ context.Context, _ string, _, _ bool) (*domain.ExportResult, error) {
	return f.export, f.err
}

func (f *fakeFormsGateway) Duplicate(_ context.Context, _, _ string) (*domain.DuplicateResult, error) {
	return nil, f.err
}

func (f *fakeFormsGateway) Personalize(_ context.Context, _ string, _ map[string]string) (*domain.PersonalizeResult, error) {
	return nil, f.err
}

// fakeSheetsGateway is a canned driven.SheetsGateway.
type fakeSheetsGateway struct {
	info   *domain.SpreadsheetInfo
	sheets []domain.SheetMetadata
	data   *domain.SheetData
	err    error
}

func (f *fakeSheetsGateway) GetSpreadsheet(_ context.Context, _ string) (*domain.SpreadsheetInfo, error) {
	return f.info, f.err
}

func (f *fakeSheetsGateway) ListSheets(_ context.Context, _ string) ([]domain.SheetMetadata, error) {
	return f.sheets, f.err
}

func (f *fakeSheetsGateway) ReadValues(_ context.Context, _, _, _ string) (*domain.SheetData, error) {
	return f.data, f.err
}

// fakeTemplateService is a canned driving.TemplateService.
type fakeTemplateService struct {
	applyResult *domain.CreateResult
	tpl         *domain.FormTemplate
	err         error

	applied domain.FormTemplate
}

func (f *fakeTemplateService) Apply(_ context.Context, tpl domain.FormTemplate) (*domain.CreateResult, error) {
	f.applied = tpl
	return f.applyResult, f.err
}

func (f *fakeTemplateService) Export(_ context.Context, _ string) (*domain.FormTemplate, error) {
	return f.tpl, f.err
}

// fakeDuplicateService is a canned driving.DuplicateService.
type fakeDuplicateService struct {
	result *domain.DuplicateResult
	err    error

	personalizeName string
}

func (f *fakeDuplicateService) Duplicate(_ context.Context, _, _, personalizeName string) (*domain.DuplicateResult, error) {
	f.personalizeName = personalizeName
	return f.result, f.err
}

// fakeAuthService is a canned driving.AuthService.
type fakeAuthService struct {
	report *driving.AuthReport
	err    error
}

func (f *fakeAuthService) Check(_ context.Context) (*driving.AuthReport, error) {
	return f.report, f.err
}

// fakeSettingsStore is a canned driven.SettingsStore.
type fakeSettingsStore struct {
	settings driven.Settings
	err      error
}

func (f *fakeSettingsStore) Load() (driven.Settings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsStore) Save(driven.Settings) error {
	return f.err
}

func (f *fakeSettingsStore) Path() string {
	return "/tmp/config.toml"
}

// testServices bundles the fakes installed by setupTestServices.
type testServices struct {
	forms     *fakeFormsGateway
	sheets    *fakeSheetsGateway
	template  *fakeTemplateService
	duplicate *fakeDuplicateService
	auth      *fakeAuthService
}

// setupTestServices swaps the package services for fakes with benign
// canned results. The returned cleanup restores the previous wiring
// and resets the persistent flags.
func setupTestServices() (*testServices, func()) {
	prev := Config{
		Auth:      authService,
		Template:  templateService,
		Duplicate: duplicateService,
		Forms:     formsGateway,
		Sheets:    sheetsGateway,
		Store:     credentialsStore,
		Settings:  settingsStore,
		Exchanger: tokenExchanger,
	}

	svc := &testServices{
		forms: &fakeFormsGateway{
			list: &domain.FormList{
				Forms: []domain.FormSummary{
					{FormID: "form-1", Title: "Team survey", ResponseCount: 2},
				},
			},
			detail: &domain.FormDetail{
				FormID: "form-1",
				Info:   domain.FormInfo{Title: "Team survey"},
				Items: []domain.FormItem{
					{ItemID: "item-1", Title: "Name", Question: &domain.QuestionSpec{Type: domain.ShortAnswer, Required: true}},
				},
			},
			createResult: &domain.CreateResult{
				FormID:       "form-1",
				ResponderURI: "https://docs.google.com/forms/d/e/abc/viewform",
				EditURI:      "https://docs.google.com/forms/d/form-1/edit",
			},
			responses: &domain.ResponseList{
				Responses: []domain.ResponseSummary{
					{ResponseID: "resp-1", CreateTime: "2026-03-01T10:00:00Z"},
				},
			},
			response: &domain.ResponseSummary{ResponseID: "resp-1", Answers: map[string]string{"Name": "Alice"}},
			export:   &domain.ExportResult{CSV: "Timestamp,Name\n2026-03-01T10:00:00Z,Alice\n", RowCount: 1},
		},
		sheets: &fakeSheetsGateway{
			info: &domain.SpreadsheetInfo{
				SpreadsheetID: "sheet-1",
				Title:         "Results",
				Sheets:        []domain.SheetMetadata{{SheetID: 0, Title: "Sheet1", RowCount: 100, ColumnCount: 26}},
			},
			sheets: []domain.SheetMetadata{{SheetID: 0, Title: "Sheet1", RowCount: 100, ColumnCount: 26}},
			data: &domain.SheetData{
				Range:       "Sheet1!A1:B2",
				Values:      [][]string{{"Name", "Score"}, {"Alice", "42"}},
				RowCount:    2,
				ColumnCount: 2,
			},
		},
		template: &fakeTemplateService{
			applyResult: &domain.CreateResult{
				FormID:         "form-1",
				EditURI:        "https://docs.google.com/forms/d/form-1/edit",
				ResponderURI:   "https://docs.google.com/forms/d/e/abc/viewform",
				QuestionsAdded: 1,
			},
			tpl: &domain.FormTemplate{
				Form:      domain.FormInfo{Title: "Team survey"},
				Questions: []domain.QuestionSpec{{Type: domain.ShortAnswer, Title: "Name"}},
			},
		},
		duplicate: &fakeDuplicateService{
			result: &domain.DuplicateResult{
				NewFormID:   "form-2",
				EditURI:     "https://docs.google.com/forms/d/form-2/edit",
				CopiedItems: 3,
				TotalItems:  3,
			},
		},
		auth: &fakeAuthService{
			report: &driving.AuthReport{
				Path:        "/tmp/credentials.env",
				TokenExpiry: "2026-03-01T11:00:00Z",
			},
		},
	}

	SetServices(&Config{
		Auth:      svc.auth,
		Template:  svc.template,
		Duplicate: svc.duplicate,
		Forms:     svc.forms,
		Sheets:    svc.sheets,
		Settings:  &fakeSettingsStore{settings: driven.Settings{OutputFormat: "table", PageSize: 100, CallbackPort: 8765}},
	})

	return svc, func() {
		SetServices(&prev)
		flagFormat = ""
		flagOutput = ""
		flagVerbose = false
	}
}
