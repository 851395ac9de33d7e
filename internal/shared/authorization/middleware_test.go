package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performWithRole(t *testing.T, handler gin.HandlerFunc, role string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.GET("/guarded", func(c *gin.Context) {
		if role != "" {
			c.Set(ContextKeyUserRole, role)
		}
	}, handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{role: "TECH", want: http.StatusOK},
		{role: "ADMIN", want: http.StatusOK},
		{role: "STUDENT", want: http.StatusForbidden},
		{role: "FACULTY", want: http.StatusForbidden},
		{role: "", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		w := performWithRole(t, RequireStaff(), tt.role)
		assert.Equal(t, tt.want, w.Code, "role %q", tt.role)
	}
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, performWithRole(t, RequireAdmin(), "ADMIN").Code)
	assert.Equal(t, http.StatusForbidden, performWithRole(t, RequireAdmin(), "TECH").Code)
	assert.Equal(t, http.StatusForbidden, performWithRole(t, RequireAdmin(), "STUDENT").Code)
}

func TestRequireRoles_ResponseShape(t *testing.T) {
	w := performWithRole(t, RequireRoles(RoleAdmin), "STUDENT")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"insufficient role"`)
	assert.Contains(t, w.Body.String(), `"forbidden"`)
}

func TestUserRole_Predicates(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleTech.IsAdmin())
	assert.True(t, RoleTech.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.False(t, RoleStudent.IsStaff())
	assert.False(t, RoleFaculty.IsStaff())
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleTech, ParseUserRole("TECH"))
	assert.Equal(t, RoleStudent, ParseUserRole("WIZARD"))
	assert.Equal(t, RoleStudent, ParseUserRole(""))
}
