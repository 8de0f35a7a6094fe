package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/configs"
	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/users/user/dto"
	userService "rumahmengaji_backend/internals/features/users/user/service"
	"rumahmengaji_backend/internals/helpers/testdb"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestRoutesEndToEnd(t *testing.T) {
	configs.JWTSecret = "route-test-secret"
	db := testdb.New(t)
	app := fiber.New()
	SetupRoutes(app, db)

	_, err := userService.NewUserService(db).Create(context.Background(), dto.CreateUserRequest{
		Email:    "admin@example.my",
		Password: "admin-rahsia",
		FullName: "Admin Pusat",
		Role:     string(constants.RoleCenterAdmin),
	})
	require.NoError(t, err)

	status, _ := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/api/classes", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env := do(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@example.my", "password": "admin-rahsia",
	})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	token := login.AccessToken

	center := testdb.Center(t, db)
	teacher := testdb.Teacher(t, db, center.StudyCenterID)

	class := map[string]any{
		"study_center_id": center.StudyCenterID,
		"name":            "Iqra Pagi",
		"class_type":      "physical",
		"teacher_id":      teacher.TeacherID,
		"schedule_day":    "monday",
		"start_time":      "09:00",
		"end_time":        "10:30",
		"capacity":        1,
	}
	status, env = do(t, app, http.MethodPost, "/api/classes", token, class)
	require.Equal(t, fiber.StatusCreated, status, env.Message)

	class["name"] = "Iqra Bertindih"
	class["start_time"] = "10:00"
	class["end_time"] = "11:30"
	status, env = do(t, app, http.MethodPost, "/api/classes", token, class)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "SCHEDULE_CONFLICT", env.ErrorCode)

	status, _ = do(t, app, http.MethodGet, "/api/study-centers/999/financial-report", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, "/api/classes", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
