package util

import (
	"testing"

	"dompet-gateway/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-07-20", "2024-07-26")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.True(t, r.Contains("2024-07-20"))
	assert.True(t, r.Contains("2024-07-26"))
	assert.False(t, r.Contains("2024-07-19"))
	assert.False(t, r.Contains("2024-07-27"))
}

func TestParseDateRangeBothOrNeither(t *testing.T) {
	r, err := ParseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = ParseDateRange("2024-07-20", "")
	require.NoError(t, err)
	assert.Nil(t, r, "single bound skips the filter entirely")

	r, err = ParseDateRange("", "2024-07-26")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestParseDateRangeInvalid(t *testing.T) {
	var gwErr *models.GatewayError

	_, err := ParseDateRange("20-07-2024", "2024-07-26")
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, models.ErrInvalidRequest, gwErr.Kind)

	_, err = ParseDateRange("2024-07-26", "2024-07-20")
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, models.ErrInvalidRequest, gwErr.Kind)
}
