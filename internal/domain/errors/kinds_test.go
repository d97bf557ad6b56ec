package errors

import (
	"net/http"
	"testing"

	"pabw/internal/domain/entity"
	"pabw/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	transport := &TransportError{Status: http.StatusInternalServerError}
	auth := NewAuthorizationError(&TransportError{Status: http.StatusUnauthorized})

	assert.Equal(t, entity.ErrorKindTransport, KindOf(errors.Wrap(transport, "load products")))
	assert.Equal(t, entity.ErrorKindAuthorization, KindOf(errors.Wrap(auth, "load profile")))
	assert.Equal(t, entity.ErrorKindValidation, KindOf(NewValidationError("email", "required")))
	assert.Equal(t, entity.ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, entity.ErrorKind(""), KindOf(nil))
}

func TestTransportError_MessagePriority(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "server message wins",
			err:  &TransportError{Status: 402, ServerMessage: "Your balance is not sufficient", Body: `{"message":"Your balance is not sufficient"}`},
			want: "Your balance is not sufficient",
		},
		{
			name: "raw body when no message field",
			err:  &TransportError{Status: 500, Body: "upstream exploded"},
			want: "upstream exploded",
		},
		{
			name: "transport error text last",
			err:  &TransportError{Err: errors.New("dial tcp: connection refused")},
			want: "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
		})
	}
}

func TestValidationError_ErrorIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"password": "too short", "email": "invalid"}}

	assert.Equal(t, "validation failed: email: invalid; password: too short", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
}
