package kinetics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateError(t *testing.T) {
	err := invalidInput(3, "negative concentration %g", -0.5)

	assert.Equal(t, "kinetics: invalid input: negative concentration -0.5 (sample 3)", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrDegenerateData)

	wrapped := fmt.Errorf("estimate batch 7: %w", err)
	var estErr *EstimateError
	require.True(t, errors.As(wrapped, &estErr))
	assert.Equal(t, 3, estErr.Index)

	assert.Equal(t, "kinetics: degenerate data: no spread", degenerate("no spread").Error())
	assert.ErrorIs(t, numericFailure("NaN"), ErrNumericFailure)
}
