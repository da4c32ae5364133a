package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Budget   int    `json:"budget" validate:"omitempty,min=1000"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(signup{Email: "a@b.co", Password: "longenough"}))

	err := Struct(signup{Email: "nope", Password: "short", Budget: 10})
	require.Error(t, err)

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, "email", verrs[0].Tag)
	assert.Equal(t, "password", verrs[1].Field)
	assert.Equal(t, "8", verrs[1].Param)
	assert.Contains(t, err.Error(), "budget failed on min=1000")
}

func TestErrors_Empty(t *testing.T) {
	assert.Equal(t, "validation failed", Errors{}.Error())
}
