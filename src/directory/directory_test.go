package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedList(t *testing.T) {
	d := Seed()

	institutions := d.List()
	require.Len(t, institutions, 6)
	assert.Equal(t, "ins_bca", institutions[0].ID)
	assert.Equal(t, "Bank Central Asia", institutions[0].DisplayName)
}

func TestGet(t *testing.T) {
	d := Seed()

	ins, ok := d.Get("ins_gopay")
	require.True(t, ok)
	assert.Equal(t, "GoPay", ins.DisplayName)

	_, ok = d.Get("ins_unknown")
	assert.False(t, ok)
}
