package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aayish123/Final-aayishFoods/authmodal"
)

func TestRequireAuthSuspendsWhileLoading(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAuth(Session{Loading: true}, modal)

	assert.Equal(t, Suspend, d)
	assert.Equal(t, 0, modal.OpenCount())
}

func TestRequireAuthOpensModalOnceForAnonymous(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAuth(Session{}, modal)

	assert.Equal(t, RequiresAuth, d)
	assert.True(t, modal.IsOpen())
	assert.Equal(t, 1, modal.OpenCount())
}

func TestRequireAuthAuthorizesSignedInUser(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAuth(Session{UserID: "u1"}, modal)

	assert.Equal(t, Authorized, d)
	assert.False(t, modal.IsOpen())
}

func TestRequireAdminSuspendsWhileLoading(t *testing.T) {
	modal := authmodal.NewController()
	// Role may lag behind the user during resolution; loading wins.
	d := RequireAdmin(Session{UserID: "u1", Loading: true}, modal)

	assert.Equal(t, Suspend, d)
}

func TestRequireAdminRedirectsNonAdminWithoutModal(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAdmin(Session{UserID: "u1", Role: "customer"}, modal)

	assert.Equal(t, RequiresRole, d)
	assert.False(t, modal.IsOpen())
	assert.Equal(t, 0, modal.OpenCount())
}

func TestRequireAdminOpensModalForAnonymous(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAdmin(Session{}, modal)

	assert.Equal(t, RequiresAuth, d)
	assert.Equal(t, 1, modal.OpenCount())
}

func TestRequireAdminAuthorizesAdmin(t *testing.T) {
	modal := authmodal.NewController()
	d := RequireAdmin(Session{UserID: "u1", Role: RoleAdmin}, modal)

	assert.Equal(t, Authorized, d)
}

func TestModalCloseResetsMode(t *testing.T) {
	modal := authmodal.NewController()
	modal.SetMode(authmodal.ModeSignUp)
	modal.Open()
	modal.Close()

	assert.False(t, modal.IsOpen())
	assert.Equal(t, authmodal.ModeSignIn, modal.CurrentMode())
}
