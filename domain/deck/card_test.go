package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickHage/HackKU/domain/random"
)

func TestNewCardValidation(t *testing.T) {
	_, err := NewCard(4, 10)
	assert.Error(t, err)

	_, err = NewCard(Heart, 1)
	assert.Error(t, err)

	_, err = NewCard(Heart, 15)
	assert.Error(t, err)

	c, err := NewCard(Heart, Ace)
	require.NoError(t, err)
	assert.Equal(t, uint8(Heart), c.Suit())
	assert.Equal(t, uint8(Ace), c.Rank())
}

func TestCardStringFaces(t *testing.T) {
	c, err := NewCard(Heart, Ace)
	require.NoError(t, err)
	assert.Contains(t, c.String(), "A")

	c, err = NewCard(Club, Jack)
	require.NoError(t, err)
	assert.Contains(t, c.String(), "J")

	c, err = NewCard(Spade, 10)
	require.NoError(t, err)
	assert.Contains(t, c.String(), "10")
}

func TestRandomCardAlwaysValid(t *testing.T) {
	rnd := random.New(7)
	for i := 0; i < 1000; i++ {
		c := Random(rnd)
		assert.LessOrEqual(t, c.Suit(), uint8(Spade))
		assert.GreaterOrEqual(t, c.Rank(), uint8(2))
		assert.LessOrEqual(t, c.Rank(), uint8(Ace))
	}
}
