package models

// DefaultMonsterID is the placeholder monster of an idle session
const DefaultMonsterID = "sand_slime"

// DefaultUnlockedMonsters are unlocked on every install
var DefaultUnlockedMonsters = []string{"sand_slime", "cactus_golem", "dust_phoenix", "drought_king"}

// Monster is a purchasable opponent
type Monster struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Cost int    `yaml:"cost" json:"cost"`
}

// SpriteLevel maps a difficulty to the sprite tier shown while fighting.
// Tier 5 has no sprite, so difficulty 9 and 10 both show tier 6.
func SpriteLevel(difficulty int) int {
	switch {
	case difficulty >= 9:
		return 6
	case difficulty >= 7:
		return 4
	case difficulty >= 5:
		return 3
	case difficulty >= 3:
		return 2
	default:
		return 1
	}
}

// TrophyLevel maps a difficulty to its trophy room slot (1..6)
func TrophyLevel(difficulty int) int {
	switch {
	case difficulty >= 10:
		return 6
	case difficulty == 9:
		return 5
	case difficulty >= 7:
		return 4
	case difficulty >= 5:
		return 3
	case difficulty >= 3:
		return 2
	default:
		return 1
	}
}
