package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tracker/config"
	"tracker/internal/delivery/api/router"
	"tracker/internal/delivery/api/router/handler"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/validation"
	"tracker/internal/infra/metrics"
	"tracker/internal/infra/persistence/memory"
	"tracker/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo    *echo.Echo
	metrics *metrics.Metrics
}

// newTestAPI wires the real handlers and services over the in-memory store.
func newTestAPI(t *testing.T, maxBody string) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = maxBody

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()

	params := impl.RecordServiceParams{
		Store:     memory.NewStore(),
		Validator: validation.New(),
		Metrics:   m,
		Logger:    logger,
	}

	records := handler.RecordHandlerParams{
		ActivityUC:   impl.NewActivityService(params),
		LearnerUC:    impl.NewLearnerService(params),
		EngagementUC: impl.NewEngagementService(params),
		Logger:       logger,
	}

	routerParams := router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(params),
			Logger: logger,
		}),
		LogHandler: handler.NewLogHandler(handler.LogHandlerParams{
			LogUC:  impl.NewLogService(params),
			Logger: logger,
		}),
		ActivityHandler:   handler.NewActivityHandler(records),
		LearnerHandler:    handler.NewLearnerHandler(records),
		EngagementHandler: handler.NewEngagementHandler(records),
		Metrics:           m,
	}

	return &testAPI{
		echo:    NewEcho(cfg, logger, routerParams),
		metrics: m,
	}
}

func (a *testAPI) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

type errorBody struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
	Errors []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"errors"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) errorBody {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeJSON[errorBody](t, rec)
	assert.Equal(t, detail, body.Detail)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)

	return body
}

func createUser(t *testing.T, a *testAPI, body string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user := decodeJSON[map[string]any](t, rec)
	id, ok := user["_id"].(string)
	require.True(t, ok)

	return id
}

func TestServer_Health(t *testing.T) {
	a := newTestAPI(t, "1MB")

	rec := a.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_CreateUser(t *testing.T) {
	a := newTestAPI(t, "1MB")

	rec := a.do(t, http.MethodPost, "/users", `{"name":"Test User"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user := decodeJSON[map[string]any](t, rec)
	assert.Regexp(t, `^[0-9a-f]{24}$`, user["_id"])
	assert.NotContains(t, user, "id")
	assert.Equal(t, "Test User", user["name"])
	assert.Equal(t, float64(0), user["launch_count"])
	assert.Equal(t, []any{}, user["conversations"])
	for _, key := range []string{"tg_id", "gender", "language", "recommendation_method", "current_bundle_version", "bundle_version_at_install"} {
		assert.Contains(t, user, key)
		assert.Nil(t, user[key], key)
	}

	got := a.do(t, http.MethodGet, "/users/"+user["_id"].(string), "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.JSONEq(t, rec.Body.String(), got.Body.String())
}

func TestServer_CreateUser_Validation(t *testing.T) {
	a := newTestAPI(t, "1MB")

	rec := a.do(t, http.MethodPost, "/users", `{"name":"","gender":"robot"}`)
	body := assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "field required", body.Errors[0].Reason)
	assert.Equal(t, "gender", body.Errors[1].Field)

	rec = a.do(t, http.MethodPost, "/users", `{"name":`)
	body = assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "body", body.Errors[0].Field)
}

func TestServer_CreateUser_TypeErrorsNameTheField(t *testing.T) {
	a := newTestAPI(t, "1MB")

	rec := a.do(t, http.MethodPost, "/users", `{"name":"x","launch_count":"many","tg_id":"abc"}`)
	body := assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")

	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"launch_count", "tg_id"}, fields)

	rec = a.do(t, http.MethodPost, "/users", `{"name":12}`)
	body = assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)
}

func TestServer_UserNotFound(t *testing.T) {
	a := newTestAPI(t, "1MB")

	missing := "507f1f77bcf86cd799439011"

	body := assertError(t, a.do(t, http.MethodGet, "/users/"+missing, ""), http.StatusNotFound, "User not found")
	assert.Equal(t, "USER_NOT_FOUND", body.Code)
	assert.Empty(t, body.Errors)

	assertError(t, a.do(t, http.MethodGet, "/users/not-a-hex-id", ""), http.StatusNotFound, "User not found")
	assertError(t, a.do(t, http.MethodDelete, "/users/"+missing, ""), http.StatusNotFound, "User not found")
	assertError(t, a.do(t, http.MethodPut, "/users/"+missing, `{"name":"x"}`), http.StatusNotFound, "User not updated")
	assertError(t, a.do(t, http.MethodGet, "/users/"+missing+"/messages", ""), http.StatusNotFound, "User not found")
	assertError(t, a.do(t, http.MethodPost, "/users/"+missing+"/conversations", `{}`),
		http.StatusNotFound, "User not found or conversation not added")
}

func TestServer_UpdateAndDeleteUser(t *testing.T) {
	a := newTestAPI(t, "1MB")
	id := createUser(t, a, `{"name":"Ann"}`)

	rec := a.do(t, http.MethodPut, "/users/"+strings.ToUpper(id), `{"name":"Ann","launch_count":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `true`, rec.Body.String())

	// Replacing with identical content still succeeds.
	rec = a.do(t, http.MethodPut, "/users/"+id, `{"name":"Ann","launch_count":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	user := decodeJSON[map[string]any](t, a.do(t, http.MethodGet, "/users/"+id, ""))
	assert.Equal(t, id, user["_id"])
	assert.Equal(t, float64(3), user["launch_count"])

	rec = a.do(t, http.MethodDelete, "/users/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assertError(t, a.do(t, http.MethodGet, "/users/"+id, ""), http.StatusNotFound, "User not found")
}

func TestServer_TelegramRoutes(t *testing.T) {
	a := newTestAPI(t, "1MB")
	createUser(t, a, `{"name":"Bob","tg_id":42}`)

	rec := a.do(t, http.MethodGet, "/users/tg/42", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, float64(42), user["tg_id"])

	assertError(t, a.do(t, http.MethodGet, "/users/tg/abc", ""), http.StatusNotFound, "User not found")

	rec = a.do(t, http.MethodDelete, "/users/tg/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assertError(t, a.do(t, http.MethodDelete, "/users/tg/42", ""), http.StatusNotFound, "User not found")
}

func TestServer_ConversationFlow(t *testing.T) {
	a := newTestAPI(t, "1MB")
	id := createUser(t, a, `{"name":"Cid"}`)

	rec := a.do(t, http.MethodPost, "/users/"+id+"/conversations", `{"user_id":7}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `true`, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/users/"+id+"/conversations/0/messages",
		`{"sender":"user","text":"hi","time":"2024-05-01T10:00:00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/users/"+id+"/conversations/0/messages",
		`{"sender":"bot","text":"hello","time":"2024-05-01T10:00:01Z"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/users/"+id+"/conversations/0", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"user_id": 7,
		"messages": [
			{"sender":"user","text":"hi","time":"2024-05-01T10:00:00Z"},
			{"sender":"bot","text":"hello","time":"2024-05-01T10:00:01Z"}
		]
	}`, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/users/"+id+"/messages", "")
	require.Equal(t, http.StatusOK, rec.Code)
	messages := decodeJSON[[]map[string]any](t, rec)
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0]["text"])
	assert.Equal(t, "hello", messages[1]["text"])

	assertError(t, a.do(t, http.MethodGet, "/users/"+id+"/conversations/3", ""),
		http.StatusNotFound, "User or conversation not found")
	assertError(t, a.do(t, http.MethodPost, "/users/"+id+"/conversations/-1/messages",
		`{"sender":"user","text":"x","time":"2024-05-01T10:00:00Z"}`),
		http.StatusNotFound, "User or conversation not found")

	body := assertError(t, a.do(t, http.MethodGet, "/users/"+id+"/conversations/first", ""),
		http.StatusUnprocessableEntity, "Validation failed")
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "idx", body.Errors[0].Field)

	body = assertError(t, a.do(t, http.MethodPost, "/users/"+id+"/conversations/0/messages",
		`{"sender":"alien","text":"","time":"2024-05-01T10:00:00Z"}`),
		http.StatusUnprocessableEntity, "Validation failed")
	assert.Len(t, body.Errors, 2)
}

func TestServer_Logs(t *testing.T) {
	a := newTestAPI(t, "1MB")

	payload := `{
		"user_id": "1",
		"activity_id": "lesson-1",
		"type": "quiz",
		"value": "0.5",
		"start_time": "2024-05-01T10:00:00",
		"completion_time": "2024-05-01T10:05:00"
	}`

	rec := a.do(t, http.MethodPost, "/logs", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	log := decodeJSON[map[string]any](t, rec)
	id := log["_id"].(string)
	assert.Equal(t, "0.5", log["value"])
	assert.Contains(t, log, "build_version")
	assert.Nil(t, log["build_version"])

	rec = a.do(t, http.MethodGet, "/logs/user/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decodeJSON[[]map[string]any](t, rec)
	require.Len(t, logs, 1)
	assert.Equal(t, id, logs[0]["_id"])

	rec = a.do(t, http.MethodGet, "/logs/user/nobody", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/logs", `{
		"user_id": "1", "activity_id": "a", "type": "t",
		"start_time": "2024-05-01T10:00:00Z", "completion_time": "2024-05-01T10:00:00Z",
		"unexpected": 1
	}`)
	assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")

	assertError(t, a.do(t, http.MethodGet, "/logs/zzz", ""), http.StatusNotFound, "Log not found")

	rec = a.do(t, http.MethodDelete, "/logs/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assertError(t, a.do(t, http.MethodDelete, "/logs/"+id, ""), http.StatusNotFound, "Log not deleted")
	assertError(t, a.do(t, http.MethodPut, "/logs/"+id, payload), http.StatusNotFound, "Log not updated")
}

func TestServer_Activities(t *testing.T) {
	a := newTestAPI(t, "1MB")

	rec := a.do(t, http.MethodPost, "/activities", `{
		"type": "lesson",
		"title": "Greetings",
		"items": [{"type": "quiz", "title": "Hello"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	activity := decodeJSON[map[string]any](t, rec)
	id := activity["_id"].(string)

	items, ok := activity["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.NotContains(t, items[0], "_id")

	rec = a.do(t, http.MethodPost, "/activities", `{"type":"lesson","title":"x","items":[{"type":"quiz"}]}`)
	body := assertError(t, rec, http.StatusUnprocessableEntity, "Validation failed")
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "items[0].title", body.Errors[0].Field)

	assertError(t, a.do(t, http.MethodGet, "/activities/"+strings.Repeat("0", 24), ""),
		http.StatusNotFound, "Resource not found")
	assertError(t, a.do(t, http.MethodPut, "/engagements/bad", `{}`), http.StatusNotFound, "Resource not updated")

	rec = a.do(t, http.MethodDelete, "/activities/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_EngagementRequiresValue(t *testing.T) {
	a := newTestAPI(t, "1MB")

	payload := `{
		"learner_id": "l1",
		"activity_id": "a1",
		"type": "view",
		"start_date": "2024-01-01T00:00:00Z",
		"completion_date": "2024-01-01T00:05:00Z"`

	body := assertError(t, a.do(t, http.MethodPost, "/engagements", payload+"}"),
		http.StatusUnprocessableEntity, "Validation failed")
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "value", body.Errors[0].Field)
	assert.Equal(t, "field required", body.Errors[0].Reason)

	rec := a.do(t, http.MethodPost, "/engagements", payload+`, "value": 0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	engagement := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, float64(0), engagement["value"])
}

func TestServer_HTTPErrors(t *testing.T) {
	a := newTestAPI(t, "1K")

	body := assertError(t, a.do(t, http.MethodGet, "/nowhere", ""), http.StatusNotFound, "Not Found")
	assert.Equal(t, "HTTP_ERROR", body.Code)

	large := `{"name":"` + strings.Repeat("a", 2048) + `"}`
	body = assertError(t, a.do(t, http.MethodPost, "/users", large),
		http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
	assert.Equal(t, "HTTP_ERROR", body.Code)
}

func TestServer_RequestIDAndMetrics(t *testing.T) {
	a := newTestAPI(t, "1MB")

	req := httptest.NewRequest(http.MethodGet, "/users/"+strings.Repeat("a", 24), nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	body := assertError(t, rec, http.StatusNotFound, "User not found")
	assert.Equal(t, "req-123", body.Meta.RequestID)

	createUser(t, a, `{"name":"Metered"}`)

	rec = a.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	exposition := rec.Body.String()
	assert.Contains(t, exposition, `tracker_http_requests_total{method="GET",route="/users/:id",status="404"} 1`)
	assert.Contains(t, exposition, `tracker_http_requests_total{method="POST",route="/users",status="200"} 1`)
	assert.Contains(t, exposition, `tracker_documents_created_total{collection="users"} 1`)
}
