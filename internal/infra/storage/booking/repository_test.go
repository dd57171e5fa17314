package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionViolation(t *testing.T) {
	assert.True(t, isExclusionViolation(&pq.Error{Code: "23P01"}))
	assert.True(t, isExclusionViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"})))
	assert.False(t, isExclusionViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isExclusionViolation(errors.New("23P01")))
}

func TestActiveStatusStrings(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, activeStatusStrings())
}
