package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/permissions"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions_EmbeddedRoutes(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantOpt   bool
		wantRoles []string
	}{
		{name: "liveness", path: "/health", method: "GET", wantSkip: true},
		{name: "swagger", path: "/swagger/*", method: "GET", wantSkip: true},
		{name: "login", path: "/api/auth/login", method: "POST", wantSkip: true},
		{name: "profile", path: "/api/auth/me", method: "GET", wantRoles: []string{"user", "admin"}},
		{name: "change password", path: "/api/auth/me/password", method: "PATCH", wantRoles: []string{"user", "admin"}},
		{name: "public services", path: "/api/services/", method: "GET", wantSkip: true},
		{name: "public service", path: "/api/services/{id}", method: "GET", wantSkip: true},
		{name: "public post", path: "/api/blog/{slug}", method: "GET", wantSkip: true},
		{name: "contact form", path: "/api/contact/", method: "POST", wantSkip: true},
		{name: "create booking", path: "/api/bookings/", method: "POST", wantOpt: true},
		{name: "my bookings", path: "/api/bookings/my", method: "GET", wantRoles: []string{"user", "admin"}},
		{name: "admin dashboard", path: "/api/admin/dashboard", method: "GET", wantRoles: []string{"admin"}},
		{name: "admin status", path: "/api/admin/bookings/{id}/status", method: "PATCH", wantRoles: []string{"admin"}},
		{name: "admin delete", path: "/api/admin/users/{id}", method: "DELETE", wantRoles: []string{"admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, got.Skip)
			assert.Equal(t, tt.wantOpt, got.Optional)
			assert.Equal(t, tt.wantRoles, got.Permissions)
		})
	}
}

func TestFindPermissions_Matching(t *testing.T) {
	data, err := permissions.Parse([]byte(`{
		"endpoints": [
			{"path": "/api/*", "method": "*", "permissions": ["user"]},
			{"path": "/api/admin/*", "method": "*", "permissions": ["admin"]},
			{"path": "/api/admin/open", "method": "GET", "skip": true},
			{"path": "/api/items*", "method": "GET", "skip": true}
		]
	}`))
	require.NoError(t, err)

	t.Run("exact beats prefix", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/api/admin/open", "GET").Skip)
	})

	t.Run("method mismatch falls back to prefix", func(t *testing.T) {
		got := data.FindPermissions("/api/admin/open", "POST")
		assert.False(t, got.Skip)
		assert.Equal(t, []string{"admin"}, got.Permissions)
	})

	t.Run("longest prefix wins", func(t *testing.T) {
		assert.Equal(t, []string{"admin"}, data.FindPermissions("/api/admin/users/", "GET").Permissions)
		assert.Equal(t, []string{"user"}, data.FindPermissions("/api/orders/", "GET").Permissions)
	})

	t.Run("method is case insensitive", func(t *testing.T) {
		assert.True(t, data.FindPermissions("/api/items/{id}", "get").Skip)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Equal(t, permissions.Permission{}, data.FindPermissions("/metrics", "GET"))
	})
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))
	assert.Error(t, err)
}
