package user_test

import (
	"testing"

	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid_registration_defaults_to_customer", func(t *testing.T) {
		u, err := user.NewUser("maria", "secret", "maria@example.com", "12 Mabini St", "+63 912 000 1111")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "maria", u.Username())
		assert.Equal(t, user.RoleCustomer, u.Role())
		assert.Equal(t, "12 Mabini St", u.Address())
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		testCases := []struct {
			name               string
			username, password string
			email              string
		}{
			{name: "empty_username", username: "", password: "secret", email: "a@b.c"},
			{name: "blank_username", username: "   ", password: "secret", email: "a@b.c"},
			{name: "empty_password", username: "maria", password: "", email: "a@b.c"},
			{name: "empty_email", username: "maria", password: "secret", email: ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewUser(tc.username, tc.password, tc.email, "", "")
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("malformed_email", func(t *testing.T) {
		_, err := user.NewUser("maria", "secret", "not-an-email", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("restores_role", func(t *testing.T) {
		u, err := user.RestoreUser("barista1", "pw", "b1@faithcafe.ph", user.RoleStaff, "", "")

		require.NoError(t, err)
		assert.Equal(t, user.RoleStaff, u.Role())
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := user.RestoreUser("x", "pw", "x@y.z", user.Role(42), "", "")
		require.Error(t, err)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	u, err := user.NewUser("maria", "secret", "maria@example.com", "", "")
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUser_Session(t *testing.T) {
	t.Run("session_omits_password", func(t *testing.T) {
		u, err := user.RestoreUser("maria", "secret", "maria@example.com", user.RoleCustomer, "12 Mabini St", "+63 912 000 1111")
		require.NoError(t, err)

		s := u.Session()

		assert.Equal(t, "maria", s.Username)
		assert.Equal(t, "customer", s.Role)
		assert.Equal(t, "12 Mabini St", s.Address)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("nil_fails", func(t *testing.T) {
		var u *user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestRoleFromString(t *testing.T) {
	testCases := []struct {
		in      string
		want    user.Role
		wantErr bool
	}{
		{in: "customer", want: user.RoleCustomer},
		{in: "staff", want: user.RoleStaff},
		{in: "admin", want: user.RoleAdmin},
		{in: "", want: user.RoleCustomer},
		{in: "owner", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run("role_"+tc.in, func(t *testing.T) {
			got, err := user.RoleFromString(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "customer", user.RoleCustomer.String())
	assert.Equal(t, "staff", user.RoleStaff.String())
	assert.Equal(t, "admin", user.RoleAdmin.String())
	assert.Equal(t, "unknown", user.RoleUnknown.String())
}
