package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
	Role  string `json:"role" validate:"required,is-user-role"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Name:  "Ravi Kumar",
		Email: "ravi@example.com",
		Phone: "+919000000001",
		Role:  "worker",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Name:  "R",
		Email: "not-an-email",
		Role:  "worker",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Name")
}

func TestValidate_UserRoleRule(t *testing.T) {
	v := New()

	// admin не регистрируется через публичную форму
	for _, role := range []string{"admin", "superuser", ""} {
		err := v.Validate(&registerForm{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Role:  role,
		})
		assert.Error(t, err, "role %q must be rejected", role)
	}

	for _, role := range []string{"worker", "employer"} {
		err := v.Validate(&registerForm{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Role:  role,
		})
		assert.NoError(t, err, "role %q must be accepted", role)
	}
}

func TestValidate_PhoneRule(t *testing.T) {
	v := New()

	valid := []string{"9000000001", "+919000000001", "12345678"}
	for _, phone := range valid {
		err := v.Validate(&registerForm{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Phone: phone,
			Role:  "worker",
		})
		assert.NoError(t, err, "phone %q must be accepted", phone)
	}

	invalid := []string{"12345", "phone-number", "+91 9000000001"}
	for _, phone := range invalid {
		err := v.Validate(&registerForm{
			Name:  "Ravi Kumar",
			Email: "ravi@example.com",
			Phone: phone,
			Role:  "worker",
		})
		assert.Error(t, err, "phone %q must be rejected", phone)
	}
}
