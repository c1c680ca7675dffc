package mcp

import (
	"context"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// mockFormsGateway is a mock implementation of driven.FormsGateway.
type mockFormsGateway struct {
	list         *domain.FormList
	detail       *domain.FormDetail
	createResult *domain.CreateResult
	responses    *domain.ResponseList
	response     *domain.ResponseSummary
	export       *domain.ExportResult
	err          error

	gotForm          string
	addedTo          string
	addedQuestion    domain.QuestionSpec
	patchedItem      string
	patch            domain.ItemPatch
	deletedForm      string
	exportTimestamps bool
	exportEmail      bool
}

func (m *mockFormsGateway) CreateForm(_ context.Context, _, _ string) (*domain.CreateResult, error) {
	return m.createResult, m.err
}

func (m *mockFormsGateway) ListForms(_ context.Context, _ int64, _ string) (*domain.FormList, error) {
	return m.list, m.err
}

func (m *mockFormsGateway) GetForm(_ context.Context, formID string) (*domain.FormDetail, error) {
	m.gotForm = formID
	return m.detail, m.err
}

func (m *mockFormsGateway) UpdateForm(_ context.Context, _ string, _, _ *string) (*domain.FormDetail, error) {
	return m.detail, m.err
}

func (m *mockFormsGateway) DeleteForm(_ context.Context, formID string) error {
	m.deletedForm = formID
	return m.err
}

func (m *mockFormsGateway) AddQuestion(_ context.Context, formID string, q domain.QuestionSpec) error {
	m.addedTo = formID
	m.addedQuestion = q
	return m.err
}

func (m *mockFormsGateway) UpdateItem(_ context.Context, _, itemID string, patch domain.ItemPatch) error {
	m.patchedItem = itemID
	m.patch = patch
	return m.err
}

func (m *mockFormsGateway) DeleteItem(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockFormsGateway) MoveItem(_ context.Context, _, _ string, _ int) error {
	return m.err
}

func (m *mockFormsGateway) AddSection(_ context.Context, _, _, _ string, _ int) error {
	return m.err
}

func (m *mockFormsGateway) ListResponses(_ context.Context, _ string, _ int64, _ string) (*domain.ResponseList, error) {
	return m.responses, m.err
}

func (m *mockFormsGateway) GetResponse(_ context.Context, _, _ string) (*domain.ResponseSummary, error) {
	return m.response, m.err
}

func (m *mockFormsGateway) ExportResponsesCSV(_ context.Context, _ string, includeTimestamps, includeEmail bool) (*domain.ExportResult, error) {
	m.exportTimestamps = includeTimestamps
	m.exportEmail = includeEmail
	return m.export, m.err
}

func (m *mockFormsGateway) Duplicate(_ context.Context, _, _ string) (*domain.DuplicateResult, error) {
	return nil, m.err
}

func (m *mockFormsGateway) Personalize(_ context.Context, _ string, _ map[string]string) (*domain.PersonalizeResult, error) {
	return nil, m.err
}

// mockSheetsGateway is a mock implementation of driven.SheetsGateway.
type mockSheetsGateway struct {
	info   *domain.SpreadsheetInfo
	sheets []domain.SheetMetadata
	data   *domain.SheetData
	err    error
}

func (m *mockSheetsGateway) GetSpreadsheet(_ context.Context, _ string) (*domain.SpreadsheetInfo, error) {
	return m.info, m.err
}

func (m *mockSheetsGateway) ListSheets(_ context.Context, _ string) ([]domain.SheetMetadata, error) {
	return m.sheets, m.err
}

func (m *mockSheetsGateway) ReadValues(_ context.Context, _, _, _ string) (*domain.SheetData, error) {
	return m.data, m.err
}

// mockTemplateService is a mock implementation of driving.TemplateService.
type mockTemplateService struct {
	applyResult *domain.CreateResult
	tpl         *domain.FormTemplate
	err         error

	applied domain.FormTemplate
}

func (m *mockTemplateService) Apply(_ context.Context, tpl domain.FormTemplate) (*domain.CreateResult, error) {
	m.applied = tpl
	return m.applyResult, m.err
}

func (m *mockTemplateService) Export(_ context.Context, _ string) (*domain.FormTemplate, error) {
	return m.tpl, m.err
}

// mockDuplicateService is a mock implementation of driving.DuplicateService.
type mockDuplicateService struct {
	result *domain.DuplicateResult
	err    error

	formID   string
	newTitle string
	name     string
}

func (m *mockDuplicateService) Duplicate(_ context.Context, formID, newTitle, personalizeName string) (*domain.DuplicateResult, error) {
	m.formID = formID
	m.newTitle = newTitle
	m.name = personalizeName
	return m.result, m.err
}
