package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gtools-cli/internal/core/domain"
)

// newTestClient builds a client whose API calls hit the given handler.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)

	ctx := context.Background()
	formsSvc, err := forms.NewService(ctx,
		option.WithoutAuthentication(), option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	driveSvc, err := drive.NewService(ctx,
		option.WithoutAuthentication(), option.WithEndpoint(srv.URL))
	require.NoError(t, err)

	return NewClient(formsSvc, driveSvc), srv
}

func TestCreateForm_TitleOnlyNeedsOneCall(t *testing.T) {
	var batchUpdates int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/forms", func(w http.ResponseWriter, r *http.Request) {
		var form forms.Form
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Survey", form.Info.Title)

		_ = json.NewEncoder(w).Encode(&forms.Form{
			FormId:       "f1",
			Info:         &forms.Info{Title: "Survey"},
			ResponderUri: "https://docs.google.com/forms/d/e/xyz/viewform",
		})
	})
	mux.HandleFunc("POST /v1/forms/{op}", func(w http.ResponseWriter, _ *http.Request) {
		batchUpdates++
		_ = json.NewEncoder(w).Encode(&forms.BatchUpdateFormResponse{})
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	result, err := client.CreateForm(context.Background(), "Survey", "")
	require.NoError(t, err)
	assert.Equal(t, "f1", result.FormID)
	assert.Equal(t, "https://docs.google.com/forms/d/f1/edit", result.EditURI)
	assert.Equal(t, 0, batchUpdates)
}

func TestCreateForm_DescriptionNeedsBatchUpdate(t *testing.T) {
	var batchUpdates int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/forms", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(&forms.Form{FormId: "f1"})
	})
	mux.HandleFunc("POST /v1/forms/{op}", func(w http.ResponseWriter, r *http.Request) {
		batchUpdates++
		var req forms.BatchUpdateFormRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Requests, 1)
		assert.Equal(t, "Annual survey", req.Requests[0].UpdateFormInfo.Info.Description)
		assert.Equal(t, "description", req.Requests[0].UpdateFormInfo.UpdateMask)
		_ = json.NewEncoder(w).Encode(&forms.BatchUpdateFormResponse{})
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	_, err := client.CreateForm(context.Background(), "Survey", "Annual survey")
	require.NoError(t, err)
	assert.Equal(t, 1, batchUpdates)
}

func TestGetForm_RateLimitedMapsToTransientWithoutRetry(t *testing.T) {
	var calls int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/forms/{id}", func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Quota exceeded"}}`))
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	_, err := client.GetForm(context.Background(), "f1")
	assert.True(t, domain.IsTransient(err))
	assert.Equal(t, 1, calls)
}

func TestDeleteForm_UsesDrive(t *testing.T) {
	var deleted string
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /files/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	require.NoError(t, client.DeleteForm(context.Background(), "f1"))
	assert.Equal(t, "f1", deleted)
}

func TestListForms_CountDegradesOnResponsesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /files", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "application/vnd.google-apps.form")
		_ = json.NewEncoder(w).Encode(&drive.FileList{
			Files: []*drive.File{{Id: "f1", Name: "Survey"}},
		})
	})
	mux.HandleFunc("GET /v1/forms/{id}/responses", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"missing scope"}}`))
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	list, err := client.ListForms(context.Background(), 100, "")
	require.NoError(t, err)
	require.Len(t, list.Forms, 1)
	assert.Equal(t, "Survey", list.Forms[0].Title)
	assert.Equal(t, 0, list.Forms[0].ResponseCount)
}

func TestUpdateItem_UnknownItemIsInvalidRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/forms/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(&forms.Form{
			FormId: "f1",
			Items:  []*forms.Item{{ItemId: "other"}},
		})
	})

	client, srv := newTestClient(t, mux)
	defer srv.Close()

	title := "New"
	err := client.UpdateItem(context.Background(), "f1", "missing", domain.ItemPatch{Title: &title})
	ge, ok := domain.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, domain.GatewayInvalidRequest, ge.Kind)
	assert.Contains(t, ge.Detail, "missing")
}
