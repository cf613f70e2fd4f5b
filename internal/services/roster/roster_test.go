package roster

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New(&Config{MaxPlayers: 12})
	require.NoError(t, err)

	assert.Equal(t, 12, r.Max())
	assert.Equal(t, []string{"Hawkeye"}, r.Shooters())

	r.SetCount(3)
	assert.Equal(t, []string{"Hawkeye", "???-02", "???-03"}, r.Shooters())
}

func TestNew_ConfiguredNames(t *testing.T) {
	r, err := New(&Config{MaxPlayers: 4, Names: []string{"Robin", " ", "Tell"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Robin", "???-02", "Tell"}, r.Shooters())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&Config{})
	assert.ErrorIs(t, err, ErrInvalidMaxPlayers)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrInvalidMaxPlayers)
}

func TestSetCount_Clamps(t *testing.T) {
	r, err := New(&Config{MaxPlayers: 12})
	require.NoError(t, err)

	assert.Equal(t, 12, r.SetCount(40))
	assert.Equal(t, 1, r.SetCount(0))
	assert.Equal(t, 1, r.SetCount(-3))
	assert.Equal(t, 5, r.SetCount(5))
	assert.Equal(t, 5, r.Count())
}

func TestRename(t *testing.T) {
	faker := gofakeit.New(3)
	r, err := New(&Config{MaxPlayers: 3})
	require.NoError(t, err)
	r.SetCount(2)

	name := faker.FirstName()
	require.NoError(t, r.Rename(1, name))
	assert.Equal(t, []string{"Hawkeye", name}, r.Shooters())

	assert.ErrorIs(t, r.Rename(0, name), ErrDuplicateName)
	assert.ErrorIs(t, r.Rename(3, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Rename(0, "  "), ErrEmptyName)
}
