package entities

// Rarity grades how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CategoryMilestones AchievementCategory = "milestones"
	CategoryStreaks    AchievementCategory = "streaks"
	CategorySpeed      AchievementCategory = "speed"
	CategoryMastery    AchievementCategory = "mastery"
	CategoryDedication AchievementCategory = "dedication"
	CategoryTime       AchievementCategory = "time"
	CategorySocial     AchievementCategory = "social"
	CategorySecret     AchievementCategory = "secret"
)

// Criteria is the unlock condition of an achievement.
// The set of implementations is closed: see criteria.go.
type Criteria interface {
	isCriteria()
}

// AchievementDefinition is one static entry of the achievement table.
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    AchievementCategory
	Points      int
	Rarity      Rarity
	Criteria    Criteria
}
