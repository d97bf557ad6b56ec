package validator

import (
	"testing"

	domainerrors "pabw/internal/domain/errors"
	"pabw/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
	Quantity        int    `json:"quantity" validate:"gt=0"`
	Role            string `json:"role" validate:"omitempty,oneof=Customer Courier"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form signupForm
		want map[string]string
	}{
		{
			name: "valid form",
			form: signupForm{Email: "ana@x.io", Password: "secret123", ConfirmPassword: "secret123", Quantity: 1},
		},
		{
			name: "fields keyed by json name",
			form: signupForm{Email: "ana", Password: "short", ConfirmPassword: "other", Quantity: 0, Role: "Admin"},
			want: map[string]string{
				"email":            "must be a valid email address",
				"password":         "must be at least 8",
				"confirm_password": "must match password",
				"quantity":         "must be greater than 0",
				"role":             "must be one of Customer Courier",
			},
		},
		{
			name: "missing email",
			form: signupForm{Password: "secret123", ConfirmPassword: "secret123", Quantity: 2},
			want: map[string]string{"email": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.form)
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, validationErr.Fields)
		})
	}
}

func TestCustomValidator_NonStructIsAnError(t *testing.T) {
	err := New().Validate("not a form")

	require.Error(t, err)
	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
