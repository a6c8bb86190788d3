package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	restctx "github.com/dtroode/quill-server/internal/api/rest/context"
	"github.com/dtroode/quill-server/internal/api/rest/response"
	"github.com/dtroode/quill-server/internal/model"
)

// newRequest builds a request with a JSON body, chi URL params given as
// name/value pairs and, when userID is set, an authenticated caller.
func newRequest(t *testing.T, method, target string, body any, userID uuid.UUID, params ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	r := httptest.NewRequest(method, target, &buf)

	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)

	if userID != uuid.Nil {
		ctx = restctxManager().SetClaimsToContext(ctx, model.Claims{SubjectID: userID, Role: model.RoleUser})
	}

	return r.WithContext(ctx)
}

func restctxManager() *restctx.Manager {
	return restctx.NewManager()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	return decodeBody[response.ErrorBody](t, rec)
}
