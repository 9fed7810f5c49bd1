package catalog

import (
	"testing"

	"github.com/KirkDiggler/hydroquest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	monsters := c.List()
	assert.Len(t, monsters, 10)
	assert.Equal(t, "sand_slime", monsters[0].ID)

	for _, id := range models.DefaultUnlockedMonsters {
		_, err := c.Get(id)
		assert.NoError(t, err, id)
	}

	skull, err := c.Get("sun-baked_skull")
	require.NoError(t, err)
	assert.Equal(t, "Sun-Baked Skull", skull.Name)
	assert.Equal(t, 250, skull.Cost)
}

func TestGet_Unknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Get("kraken")
	assert.ErrorIs(t, err, ErrMonsterNotFound)
	assert.Equal(t, "kraken", c.Name("kraken"))
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "monsters: [",
		"empty id":        "monsters:\n  - name: Nobody\n",
		"negative cost":   "monsters:\n  - id: sand_slime\n    cost: -1\n",
		"missing default": "monsters:\n  - id: dust_mite\n    cost: 80\n",
		"duplicate":       "monsters:\n  - id: dust_mite\n  - id: dust_mite\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}
