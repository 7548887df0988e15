package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldErrorsAdd(t *testing.T) {
	errs := FieldErrors{}

	assert.False(t, errs.HasErrors())

	errs.Add("date", ReasonRequired)
	errs.Add("date", ReasonPastDateTime) // first reason wins

	assert.True(t, errs.HasErrors())
	assert.Equal(t, ReasonRequired, errs["date"])
	assert.Len(t, errs, 1)
}
