package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvmorais/daily-diet-api/internal/api"
	"github.com/dvmorais/daily-diet-api/internal/config"
	"github.com/dvmorais/daily-diet-api/internal/repository/sqldb"
	"github.com/dvmorais/daily-diet-api/internal/services"
	"github.com/dvmorais/daily-diet-api/internal/testutil"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	repos := sqldb.NewRepositories(testutil.NewSQLiteDB(t))
	us := services.NewUserService(repos.Users)
	fs := services.NewFoodService(repos.Foods)
	return api.NewRouter(config.Config{Env: "test"}, us, fs, repos.Users)
}

func do(t *testing.T, h http.Handler, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "sessionId", Value: session})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

var johnDoe = map[string]any{
	"name":     "John Doe",
	"email":    "johndoe@example.com",
	"username": "john.doe",
	"password": "123456",
}

// register creates the user and returns a live session cookie value.
func register(t *testing.T, h http.Handler, user map[string]any) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/users", "", user)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/users/sessions", "", map[string]any{
		"username": user["username"],
		"password": user["password"],
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "sessionId" {
			return c.Value
		}
	}
	t.Fatal("no sessionId cookie set")
	return ""
}

type foodJSON struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsItOnDiet  bool   `json:"is_it_on_diet"`
}

func createFood(t *testing.T, h http.Handler, session string, name string, onDiet bool) {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/foods", session, map[string]any{
		"name":        name,
		"description": "food description",
		"date":        "2025-05-28T12:00:00Z",
		"isItOnDiet":  onDiet,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func listFoods(t *testing.T, h http.Handler, session string) []foodJSON {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/foods", session, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Foods []foodJSON `json:"foods"`
	}
	decode(t, rec, &body)
	return body.Foods
}

func TestRegisterUser(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/users", "", johnDoe)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestAPI(t)

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", "", johnDoe).Code)

	rec := do(t, h, http.MethodPost, "/users", "", johnDoe)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []struct {
			Field string `json:"field"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	decode(t, rec, &body)
	seen := map[string]bool{}
	for _, e := range body.Errors {
		seen[e.Field] = true
	}
	assert.True(t, seen["email"])
	assert.True(t, seen["username"])
}

func TestRegisterValidation(t *testing.T) {
	h := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/users", "", map[string]any{
		"name":     "John Doe",
		"email":    "not-an-email",
		"username": "jd",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSetsExactlyOneCookie(t *testing.T) {
	h := newTestAPI(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", "", johnDoe).Code)

	rec := do(t, h, http.MethodPost, "/users/sessions", "", map[string]any{
		"username": "john.doe",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	setCookies := rec.Result().Header.Values("Set-Cookie")
	require.Len(t, setCookies, 1)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionId", cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 7*24*60*60, cookies[0].MaxAge)

	var body struct {
		User map[string]string `json:"user"`
	}
	decode(t, rec, &body)
	assert.Equal(t, map[string]string{
		"name":     "John Doe",
		"email":    "johndoe@example.com",
		"username": "john.doe",
	}, body.User)
}

func TestLoginFailureIsUniform(t *testing.T) {
	h := newTestAPI(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/users", "", johnDoe).Code)

	wrongPassword := do(t, h, http.MethodPost, "/users/sessions", "", map[string]any{
		"username": "john.doe",
		"password": "654321",
	})
	unknownUser := do(t, h, http.MethodPost, "/users/sessions", "", map[string]any{
		"username": "jane.doe",
		"password": "123456",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	assert.JSONEq(t, `{"error":"Username or password invalid."}`, wrongPassword.Body.String())
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestFoodRoutesRequireSession(t *testing.T) {
	h := newTestAPI(t)

	paths := []struct{ method, path string }{
		{http.MethodPost, "/foods"},
		{http.MethodGet, "/foods"},
		{http.MethodGet, "/foods/metrics"},
		{http.MethodGet, "/foods/a7f4f08a-2b9e-4b5f-8f57-0e9a3a3b1c11"},
		{http.MethodPut, "/foods/a7f4f08a-2b9e-4b5f-8f57-0e9a3a3b1c11"},
		{http.MethodDelete, "/foods/a7f4f08a-2b9e-4b5f-8f57-0e9a3a3b1c11"},
	}
	for _, p := range paths {
		rec := do(t, h, p.method, p.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}

	// a stale cookie value is just as unauthenticated as none
	rec := do(t, h, http.MethodGet, "/foods", "not-a-live-session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndListFoods(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)

	createFood(t, h, session, "Humburguer", false)

	foods := listFoods(t, h, session)
	require.Len(t, foods, 1)
	assert.Equal(t, "Humburguer", foods[0].Name)
	assert.Equal(t, "food description", foods[0].Description)
	assert.NotEmpty(t, foods[0].ID)
}

func TestGetFoodByID(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)
	createFood(t, h, session, "Humburguer", false)
	foods := listFoods(t, h, session)
	require.Len(t, foods, 1)

	t.Run("found", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/foods/"+foods[0].ID, session, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Food *foodJSON `json:"food"`
		}
		decode(t, rec, &body)
		require.NotNil(t, body.Food)
		assert.Equal(t, foods[0].ID, body.Food.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/foods/a7f4f08a-2b9e-4b5f-8f57-0e9a3a3b1c11", session, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/foods/not-a-uuid", session, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateFood(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)
	createFood(t, h, session, "Humburguer", false)
	foods := listFoods(t, h, session)
	require.Len(t, foods, 1)

	rec := do(t, h, http.MethodPut, "/foods/"+foods[0].ID, session, map[string]any{
		"name":        "Humburguer updated",
		"description": "food description updated",
		"date":        "2025-05-29T12:00:00Z",
		"isItOnDiet":  true,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	updated := listFoods(t, h, session)
	require.Len(t, updated, 1)
	assert.Equal(t, foods[0].ID, updated[0].ID)
	assert.Equal(t, foods[0].UserID, updated[0].UserID)
	assert.Equal(t, "Humburguer updated", updated[0].Name)
	assert.Equal(t, "food description updated", updated[0].Description)
	assert.True(t, updated[0].IsItOnDiet)
}

func TestUpdateFoodNotFound(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)

	rec := do(t, h, http.MethodPut, "/foods/a7f4f08a-2b9e-4b5f-8f57-0e9a3a3b1c11", session, map[string]any{
		"name":        "x",
		"description": "y",
		"date":        "2025-05-28T12:00:00Z",
		"isItOnDiet":  true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Food not found "}`, rec.Body.String())
}

func TestDeleteFood(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)
	createFood(t, h, session, "Humburguer", false)
	foods := listFoods(t, h, session)
	require.Len(t, foods, 1)

	rec := do(t, h, http.MethodDelete, "/foods/"+foods[0].ID, session, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Empty(t, listFoods(t, h, session))

	rec = do(t, h, http.MethodDelete, "/foods/"+foods[0].ID, session, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Food not found "}`, rec.Body.String())
}

func TestCrossUserIsolation(t *testing.T) {
	h := newTestAPI(t)
	johnSession := register(t, h, johnDoe)
	janeSession := register(t, h, map[string]any{
		"name":     "Jane Doe",
		"email":    "janedoe@example.com",
		"username": "jane.doe",
		"password": "123456",
	})

	createFood(t, h, johnSession, "Humburguer", false)
	foods := listFoods(t, h, johnSession)
	require.Len(t, foods, 1)
	foodID := foods[0].ID

	t.Run("list is scoped", func(t *testing.T) {
		assert.Empty(t, listFoods(t, h, janeSession))
	})

	t.Run("get behaves as not found", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/foods/"+foodID, janeSession, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("update is rejected without mutation", func(t *testing.T) {
		rec := do(t, h, http.MethodPut, "/foods/"+foodID, janeSession, map[string]any{
			"name":        "stolen",
			"description": "stolen",
			"date":        "2025-05-28T12:00:00Z",
			"isItOnDiet":  true,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Food not found "}`, rec.Body.String())

		foods := listFoods(t, h, johnSession)
		require.Len(t, foods, 1)
		assert.Equal(t, "Humburguer", foods[0].Name)
	})

	t.Run("delete is rejected", func(t *testing.T) {
		rec := do(t, h, http.MethodDelete, "/foods/"+foodID, janeSession, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.Len(t, listFoods(t, h, johnSession), 1)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestAPI(t)
	session := register(t, h, johnDoe)

	type metricsBody struct {
		Metrics struct {
			TotalFoods        int      `json:"totalFoods"`
			TotalDietFoods    int      `json:"totalDietFoods"`
			TotalOutDietFoods int      `json:"totalOutDietFoods"`
			FoodsWithinDiet   *float64 `json:"foodsWithinDiet"`
		} `json:"metrics"`
	}

	t.Run("no foods yet", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/foods/metrics", session, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body metricsBody
		decode(t, rec, &body)
		assert.Zero(t, body.Metrics.TotalFoods)
		assert.Nil(t, body.Metrics.FoodsWithinDiet)
	})

	createFood(t, h, session, "Salad", true)
	createFood(t, h, session, "Humburguer", false)

	rec := do(t, h, http.MethodGet, "/foods/metrics", session, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body metricsBody
	decode(t, rec, &body)
	assert.Equal(t, 2, body.Metrics.TotalFoods)
	assert.Equal(t, 1, body.Metrics.TotalDietFoods)
	assert.Equal(t, 1, body.Metrics.TotalOutDietFoods)
	require.NotNil(t, body.Metrics.FoodsWithinDiet)
	assert.InDelta(t, 50.0, *body.Metrics.FoodsWithinDiet, 0.0001)
}

func TestHealth(t *testing.T) {
	h := newTestAPI(t)
	rec := do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
