package achievement

import (
	"slices"
	"time"

	"github.com/aliskhannn/rebuzzle-bot/internal/domain/entities"
)

// table is the full achievement catalogue in evaluation order.
var table = []entities.AchievementDefinition{
	{
		ID:          "puzzles_solved_1",
		Name:        "First Steps",
		Description: "Solve your first puzzle",
		Icon:        "🎯",
		Category:    entities.CategoryMilestones,
		Points:      10,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 1},
	},
	{
		ID:          "puzzles_solved_5",
		Name:        "Getting Started",
		Description: "Solve 5 puzzles",
		Icon:        "🌱",
		Category:    entities.CategoryMilestones,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 5},
	},
	{
		ID:          "puzzles_solved_10",
		Name:        "Puzzle Enthusiast",
		Description: "Solve 10 puzzles",
		Icon:        "🧩",
		Category:    entities.CategoryMilestones,
		Points:      50,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 10},
	},
	{
		ID:          "puzzles_solved_25",
		Name:        "Rebus Regular",
		Description: "Solve 25 puzzles",
		Icon:        "📚",
		Category:    entities.CategoryMilestones,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 25},
	},
	{
		ID:          "puzzles_solved_50",
		Name:        "Half Century",
		Description: "Solve 50 puzzles",
		Icon:        "🏅",
		Category:    entities.CategoryMilestones,
		Points:      200,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 50},
	},
	{
		ID:          "puzzles_solved_75",
		Name:        "Seasoned Solver",
		Description: "Solve 75 puzzles",
		Icon:        "🎓",
		Category:    entities.CategoryMilestones,
		Points:      300,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 75},
	},
	{
		ID:          "puzzles_solved_100",
		Name:        "Centurion",
		Description: "Solve 100 puzzles",
		Icon:        "💯",
		Category:    entities.CategoryMilestones,
		Points:      500,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 100},
	},
	{
		ID:          "puzzles_solved_150",
		Name:        "Puzzle Devotee",
		Description: "Solve 150 puzzles",
		Icon:        "📖",
		Category:    entities.CategoryMilestones,
		Points:      600,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 150},
	},
	{
		ID:          "puzzles_solved_200",
		Name:        "Double Century",
		Description: "Solve 200 puzzles",
		Icon:        "🏆",
		Category:    entities.CategoryMilestones,
		Points:      800,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 200},
	},
	{
		ID:          "puzzles_solved_250",
		Name:        "Quarter Master",
		Description: "Solve 250 puzzles",
		Icon:        "🎖️",
		Category:    entities.CategoryMilestones,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 250},
	},
	{
		ID:          "puzzles_solved_365",
		Name:        "Year of Rebuses",
		Description: "Solve 365 puzzles",
		Icon:        "📅",
		Category:    entities.CategoryMilestones,
		Points:      1500,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 365},
	},
	{
		ID:          "puzzles_solved_500",
		Name:        "Rebus Scholar",
		Description: "Solve 500 puzzles",
		Icon:        "🧠",
		Category:    entities.CategoryMilestones,
		Points:      2000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 500},
	},
	{
		ID:          "puzzles_solved_750",
		Name:        "Rebus Sage",
		Description: "Solve 750 puzzles",
		Icon:        "🔮",
		Category:    entities.CategoryMilestones,
		Points:      3000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 750},
	},
	{
		ID:          "puzzles_solved_1000",
		Name:        "Rebus Legend",
		Description: "Solve 1000 puzzles",
		Icon:        "👑",
		Category:    entities.CategoryMilestones,
		Points:      5000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPuzzlesSolved, Threshold: 1000},
	},
	{
		ID:          "games_played_1",
		Name:        "Welcome Aboard",
		Description: "Play your first puzzle",
		Icon:        "👋",
		Category:    entities.CategoryDedication,
		Points:      5,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 1},
	},
	{
		ID:          "games_played_10",
		Name:        "Warming Up",
		Description: "Play 10 puzzles",
		Icon:        "🔥",
		Category:    entities.CategoryDedication,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 10},
	},
	{
		ID:          "games_played_50",
		Name:        "Regular Player",
		Description: "Play 50 puzzles",
		Icon:        "🎲",
		Category:    entities.CategoryDedication,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 50},
	},
	{
		ID:          "games_played_100",
		Name:        "Committed",
		Description: "Play 100 puzzles",
		Icon:        "📌",
		Category:    entities.CategoryDedication,
		Points:      250,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 100},
	},
	{
		ID:          "games_played_250",
		Name:        "Devoted",
		Description: "Play 250 puzzles",
		Icon:        "🗓️",
		Category:    entities.CategoryDedication,
		Points:      600,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 250},
	},
	{
		ID:          "games_played_500",
		Name:        "Unstoppable",
		Description: "Play 500 puzzles",
		Icon:        "🚂",
		Category:    entities.CategoryDedication,
		Points:      1200,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 500},
	},
	{
		ID:          "games_played_1000",
		Name:        "Lifer",
		Description: "Play 1000 puzzles",
		Icon:        "♾️",
		Category:    entities.CategoryDedication,
		Points:      3000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricGamesPlayed, Threshold: 1000},
	},
	{
		ID:          "perfect_solves_1",
		Name:        "Bullseye",
		Description: "Solve a puzzle on the first guess without hints",
		Icon:        "🎯",
		Category:    entities.CategoryMastery,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 1},
	},
	{
		ID:          "perfect_solves_5",
		Name:        "Sharp Eye",
		Description: "Make 5 perfect solves",
		Icon:        "👁️",
		Category:    entities.CategoryMastery,
		Points:      75,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 5},
	},
	{
		ID:          "perfect_solves_10",
		Name:        "Precision",
		Description: "Make 10 perfect solves",
		Icon:        "📐",
		Category:    entities.CategoryMastery,
		Points:      150,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 10},
	},
	{
		ID:          "perfect_solves_25",
		Name:        "Marksman",
		Description: "Make 25 perfect solves",
		Icon:        "🏹",
		Category:    entities.CategoryMastery,
		Points:      400,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 25},
	},
	{
		ID:          "perfect_solves_50",
		Name:        "Sniper",
		Description: "Make 50 perfect solves",
		Icon:        "🔭",
		Category:    entities.CategoryMastery,
		Points:      800,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 50},
	},
	{
		ID:          "perfect_solves_100",
		Name:        "Flawless Mind",
		Description: "Make 100 perfect solves",
		Icon:        "💎",
		Category:    entities.CategoryMastery,
		Points:      2000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 100},
	},
	{
		ID:          "perfect_solves_250",
		Name:        "Perfectionist",
		Description: "Make 250 perfect solves",
		Icon:        "🌟",
		Category:    entities.CategoryMastery,
		Points:      5000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricPerfectSolves, Threshold: 250},
	},
	{
		ID:          "hintless_solves_10",
		Name:        "No Help Needed",
		Description: "Solve 10 puzzles without hints",
		Icon:        "🙅",
		Category:    entities.CategoryMastery,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintlessSolves, Threshold: 10},
	},
	{
		ID:          "hintless_solves_50",
		Name:        "Self Reliant",
		Description: "Solve 50 puzzles without hints",
		Icon:        "🦾",
		Category:    entities.CategoryMastery,
		Points:      400,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintlessSolves, Threshold: 50},
	},
	{
		ID:          "hintless_solves_100",
		Name:        "Independent Thinker",
		Description: "Solve 100 puzzles without hints",
		Icon:        "🧭",
		Category:    entities.CategoryMastery,
		Points:      900,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintlessSolves, Threshold: 100},
	},
	{
		ID:          "hintless_solves_250",
		Name:        "Lone Wolf",
		Description: "Solve 250 puzzles without hints",
		Icon:        "🐺",
		Category:    entities.CategoryMastery,
		Points:      2500,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintlessSolves, Threshold: 250},
	},
	{
		ID:          "last_attempt_solves_1",
		Name:        "Clutch",
		Description: "Solve a puzzle on your last guess",
		Icon:        "😅",
		Category:    entities.CategoryMastery,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLastAttemptSolves, Threshold: 1},
	},
	{
		ID:          "last_attempt_solves_5",
		Name:        "Nerves of Steel",
		Description: "Solve 5 puzzles on your last guess",
		Icon:        "🧊",
		Category:    entities.CategoryMastery,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLastAttemptSolves, Threshold: 5},
	},
	{
		ID:          "last_attempt_solves_25",
		Name:        "Escape Artist",
		Description: "Solve 25 puzzles on your last guess",
		Icon:        "🪄",
		Category:    entities.CategoryMastery,
		Points:      400,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLastAttemptSolves, Threshold: 25},
	},
	{
		ID:          "hints_used_1",
		Name:        "Curious",
		Description: "Use your first hint",
		Icon:        "💡",
		Category:    entities.CategoryDedication,
		Points:      5,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintsUsed, Threshold: 1},
	},
	{
		ID:          "hints_used_50",
		Name:        "Hint Collector",
		Description: "Use 50 hints",
		Icon:        "🗝️",
		Category:    entities.CategoryDedication,
		Points:      50,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricHintsUsed, Threshold: 50},
	},
	{
		ID:          "total_points_1000",
		Name:        "Point Collector",
		Description: "Earn 1,000 points",
		Icon:        "🪙",
		Category:    entities.CategoryMilestones,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 1000},
	},
	{
		ID:          "total_points_5000",
		Name:        "Point Gatherer",
		Description: "Earn 5,000 points",
		Icon:        "💰",
		Category:    entities.CategoryMilestones,
		Points:      50,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 5000},
	},
	{
		ID:          "total_points_10000",
		Name:        "Five Figures",
		Description: "Earn 10,000 points",
		Icon:        "💵",
		Category:    entities.CategoryMilestones,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 10000},
	},
	{
		ID:          "total_points_25000",
		Name:        "High Roller",
		Description: "Earn 25,000 points",
		Icon:        "🎰",
		Category:    entities.CategoryMilestones,
		Points:      250,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 25000},
	},
	{
		ID:          "total_points_50000",
		Name:        "Point Hoarder",
		Description: "Earn 50,000 points",
		Icon:        "🏦",
		Category:    entities.CategoryMilestones,
		Points:      500,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 50000},
	},
	{
		ID:          "total_points_100000",
		Name:        "Six Figures",
		Description: "Earn 100,000 points",
		Icon:        "💸",
		Category:    entities.CategoryMilestones,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 100000},
	},
	{
		ID:          "total_points_250000",
		Name:        "Point Tycoon",
		Description: "Earn 250,000 points",
		Icon:        "🏰",
		Category:    entities.CategoryMilestones,
		Points:      2000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 250000},
	},
	{
		ID:          "total_points_500000",
		Name:        "Point Mogul",
		Description: "Earn 500,000 points",
		Icon:        "🛳️",
		Category:    entities.CategoryMilestones,
		Points:      3500,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 500000},
	},
	{
		ID:          "total_points_1000000",
		Name:        "Millionaire",
		Description: "Earn 1,000,000 points",
		Icon:        "🤑",
		Category:    entities.CategoryMilestones,
		Points:      5000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricTotalPoints, Threshold: 1000000},
	},
	{
		ID:          "level_5",
		Name:        "Level 5",
		Description: "Reach level 5",
		Icon:        "⬆️",
		Category:    entities.CategoryMilestones,
		Points:      50,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 5},
	},
	{
		ID:          "level_10",
		Name:        "Level 10",
		Description: "Reach level 10",
		Icon:        "🔟",
		Category:    entities.CategoryMilestones,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 10},
	},
	{
		ID:          "level_20",
		Name:        "Level 20",
		Description: "Reach level 20",
		Icon:        "🚀",
		Category:    entities.CategoryMilestones,
		Points:      250,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 20},
	},
	{
		ID:          "level_30",
		Name:        "Level 30",
		Description: "Reach level 30",
		Icon:        "🛰️",
		Category:    entities.CategoryMilestones,
		Points:      400,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 30},
	},
	{
		ID:          "level_50",
		Name:        "Level 50",
		Description: "Reach level 50",
		Icon:        "🌠",
		Category:    entities.CategoryMilestones,
		Points:      800,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 50},
	},
	{
		ID:          "level_75",
		Name:        "Level 75",
		Description: "Reach level 75",
		Icon:        "🌌",
		Category:    entities.CategoryMilestones,
		Points:      1500,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 75},
	},
	{
		ID:          "level_100",
		Name:        "Level 100",
		Description: "Reach level 100",
		Icon:        "🪐",
		Category:    entities.CategoryMilestones,
		Points:      3000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CountCriteria{Metric: entities.MetricLevel, Threshold: 100},
	},
	{
		ID:          "streak_3",
		Name:        "Hat Trick",
		Description: "Solve puzzles 3 days in a row",
		Icon:        "🎩",
		Category:    entities.CategoryStreaks,
		Points:      30,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 3},
	},
	{
		ID:          "streak_7",
		Name:        "Week Warrior",
		Description: "Solve puzzles 7 days in a row",
		Icon:        "📆",
		Category:    entities.CategoryStreaks,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 7},
	},
	{
		ID:          "streak_14",
		Name:        "Fortnight Focus",
		Description: "Solve puzzles 14 days in a row",
		Icon:        "🗓️",
		Category:    entities.CategoryStreaks,
		Points:      250,
		Rarity:      entities.RarityRare,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 14},
	},
	{
		ID:          "streak_30",
		Name:        "Monthly Master",
		Description: "Solve puzzles 30 days in a row",
		Icon:        "🌙",
		Category:    entities.CategoryStreaks,
		Points:      500,
		Rarity:      entities.RarityRare,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 30},
	},
	{
		ID:          "streak_50",
		Name:        "Fifty Days Strong",
		Description: "Solve puzzles 50 days in a row",
		Icon:        "💪",
		Category:    entities.CategoryStreaks,
		Points:      900,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 50},
	},
	{
		ID:          "streak_100",
		Name:        "Hundred Day Hero",
		Description: "Solve puzzles 100 days in a row",
		Icon:        "🦸",
		Category:    entities.CategoryStreaks,
		Points:      2000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 100},
	},
	{
		ID:          "streak_180",
		Name:        "Half Year Hero",
		Description: "Solve puzzles 180 days in a row",
		Icon:        "🌓",
		Category:    entities.CategoryStreaks,
		Points:      3500,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 180},
	},
	{
		ID:          "streak_365",
		Name:        "Year Long Legend",
		Description: "Solve puzzles 365 days in a row",
		Icon:        "☀️",
		Category:    entities.CategoryStreaks,
		Points:      7500,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakWins, Days: 365},
	},
	{
		ID:          "daily_challenge_7",
		Name:        "Daily Habit",
		Description: "Play 7 days in a row",
		Icon:        "☕",
		Category:    entities.CategoryDedication,
		Points:      50,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakDailyChallenge, Days: 7},
	},
	{
		ID:          "daily_challenge_30",
		Name:        "Creature of Habit",
		Description: "Play 30 days in a row",
		Icon:        "🐢",
		Category:    entities.CategoryDedication,
		Points:      250,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakDailyChallenge, Days: 30},
	},
	{
		ID:          "daily_challenge_100",
		Name:        "Daily Devotee",
		Description: "Play 100 days in a row",
		Icon:        "⛪",
		Category:    entities.CategoryDedication,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakDailyChallenge, Days: 100},
	},
	{
		ID:          "daily_challenge_365",
		Name:        "Every Single Day",
		Description: "Play 365 days in a row",
		Icon:        "🌍",
		Category:    entities.CategoryDedication,
		Points:      5000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakDailyChallenge, Days: 365},
	},
	{
		ID:          "best_streak_10",
		Name:        "Personal Best",
		Description: "Reach a best streak of 10 days",
		Icon:        "📈",
		Category:    entities.CategoryStreaks,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakBest, Days: 10},
	},
	{
		ID:          "best_streak_60",
		Name:        "Streak Veteran",
		Description: "Reach a best streak of 60 days",
		Icon:        "🎗️",
		Category:    entities.CategoryStreaks,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.StreakCriteria{Kind: entities.StreakBest, Days: 60},
	},
	{
		ID:          "speed_demon_10",
		Name:        "Speed Demon",
		Description: "Solve a puzzle in 10 seconds or less",
		Icon:        "⚡",
		Category:    entities.CategorySpeed,
		Points:      300,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 10, MinCount: 0},
	},
	{
		ID:          "quick_thinker_20",
		Name:        "Quick Thinker",
		Description: "Solve a puzzle in 20 seconds or less",
		Icon:        "🏎️",
		Category:    entities.CategorySpeed,
		Points:      150,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 20, MinCount: 0},
	},
	{
		ID:          "fast_fingers_30",
		Name:        "Fast Fingers",
		Description: "Solve a puzzle in 30 seconds or less",
		Icon:        "⏱️",
		Category:    entities.CategorySpeed,
		Points:      75,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 30, MinCount: 0},
	},
	{
		ID:          "minute_solver",
		Name:        "Minute Solver",
		Description: "Solve a puzzle in under a minute",
		Icon:        "⏲️",
		Category:    entities.CategorySpeed,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 60, MinCount: 0},
	},
	{
		ID:          "speedster_10",
		Name:        "Speedster",
		Description: "Make 10 speed solves",
		Icon:        "🐆",
		Category:    entities.CategorySpeed,
		Points:      300,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 60, MinCount: 10},
	},
	{
		ID:          "lightning_rod_50",
		Name:        "Lightning Rod",
		Description: "Make 50 speed solves",
		Icon:        "🌩️",
		Category:    entities.CategorySpeed,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.SpeedCriteria{MaxSeconds: 60, MinCount: 50},
	},
	{
		ID:          "win_rate_50",
		Name:        "Coin Flip Beater",
		Description: "Keep a 50% win rate over 10 games",
		Icon:        "⚖️",
		Category:    entities.CategoryMastery,
		Points:      50,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.WinRateCriteria{MinGames: 10, Percentage: 50},
	},
	{
		ID:          "win_rate_75",
		Name:        "Reliable Solver",
		Description: "Keep a 75% win rate over 20 games",
		Icon:        "📊",
		Category:    entities.CategoryMastery,
		Points:      200,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.WinRateCriteria{MinGames: 20, Percentage: 75},
	},
	{
		ID:          "win_rate_90",
		Name:        "Near Perfect",
		Description: "Keep a 90% win rate over 50 games",
		Icon:        "🥇",
		Category:    entities.CategoryMastery,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.WinRateCriteria{MinGames: 50, Percentage: 90},
	},
	{
		ID:          "win_rate_100",
		Name:        "Unbeaten",
		Description: "Win every one of your first 10 games",
		Icon:        "🛡️",
		Category:    entities.CategoryMastery,
		Points:      500,
		Rarity:      entities.RarityRare,
		Criteria:    entities.WinRateCriteria{MinGames: 10, Percentage: 100},
	},
	{
		ID:          "night_owl",
		Name:        "Night Owl",
		Description: "Solve a puzzle between midnight and 5 AM",
		Icon:        "🦉",
		Category:    entities.CategoryTime,
		Points:      50,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.TimeOfDayCriteria{FromHour: 0, ToHour: 5},
	},
	{
		ID:          "early_bird",
		Name:        "Early Bird",
		Description: "Solve a puzzle between 5 and 8 AM",
		Icon:        "🐦",
		Category:    entities.CategoryTime,
		Points:      50,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.TimeOfDayCriteria{FromHour: 5, ToHour: 8},
	},
	{
		ID:          "lunch_break",
		Name:        "Lunch Break",
		Description: "Solve a puzzle between noon and 2 PM",
		Icon:        "🥪",
		Category:    entities.CategoryTime,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.TimeOfDayCriteria{FromHour: 12, ToHour: 14},
	},
	{
		ID:          "after_hours",
		Name:        "After Hours",
		Description: "Solve a puzzle between 10 PM and 2 AM",
		Icon:        "🌃",
		Category:    entities.CategoryTime,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.TimeOfDayCriteria{FromHour: 22, ToHour: 2},
	},
	{
		ID:          "new_year",
		Name:        "Fresh Start",
		Description: "Solve a puzzle on New Year's Day",
		Icon:        "🎆",
		Category:    entities.CategoryTime,
		Points:      200,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 1, Day: 1},
	},
	{
		ID:          "valentines",
		Name:        "Puzzle Sweetheart",
		Description: "Solve a puzzle on Valentine's Day",
		Icon:        "💘",
		Category:    entities.CategoryTime,
		Points:      150,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 2, Day: 14},
	},
	{
		ID:          "leap_day",
		Name:        "Leap of Logic",
		Description: "Solve a puzzle on February 29",
		Icon:        "🐸",
		Category:    entities.CategoryTime,
		Points:      1000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.SpecialDateCriteria{Month: 2, Day: 29},
	},
	{
		ID:          "pi_day",
		Name:        "Pi Day",
		Description: "Solve a puzzle on March 14",
		Icon:        "🥧",
		Category:    entities.CategoryTime,
		Points:      314,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 3, Day: 14},
	},
	{
		ID:          "april_fools",
		Name:        "No Joke",
		Description: "Solve a puzzle on April Fools' Day",
		Icon:        "🃏",
		Category:    entities.CategoryTime,
		Points:      150,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 4, Day: 1},
	},
	{
		ID:          "halloween",
		Name:        "Spooky Solver",
		Description: "Solve a puzzle on Halloween",
		Icon:        "🎃",
		Category:    entities.CategoryTime,
		Points:      200,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 10, Day: 31},
	},
	{
		ID:          "christmas",
		Name:        "Holiday Spirit",
		Description: "Solve a puzzle on Christmas Day",
		Icon:        "🎄",
		Category:    entities.CategoryTime,
		Points:      250,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 12, Day: 25},
	},
	{
		ID:          "new_years_eve",
		Name:        "Last Call",
		Description: "Solve a puzzle on New Year's Eve",
		Icon:        "🥂",
		Category:    entities.CategoryTime,
		Points:      200,
		Rarity:      entities.RarityRare,
		Criteria:    entities.SpecialDateCriteria{Month: 12, Day: 31},
	},
	{
		ID:          "weekend_warrior",
		Name:        "Weekend Warrior",
		Description: "Solve a puzzle on a Saturday or Sunday",
		Icon:        "🏖️",
		Category:    entities.CategoryTime,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.WeekdayCriteria{Days: []int{int(time.Saturday), int(time.Sunday)}},
	},
	{
		ID:          "monday_motivation",
		Name:        "Monday Motivation",
		Description: "Solve a puzzle on a Monday",
		Icon:        "📎",
		Category:    entities.CategoryTime,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.WeekdayCriteria{Days: []int{int(time.Monday)}},
	},
	{
		ID:          "friday_feeling",
		Name:        "Friday Feeling",
		Description: "Solve a puzzle on a Friday",
		Icon:        "🎉",
		Category:    entities.CategoryTime,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.WeekdayCriteria{Days: []int{int(time.Friday)}},
	},
	{
		ID:          "top_100",
		Name:        "Top 100",
		Description: "Reach the top 100 of the leaderboard",
		Icon:        "📋",
		Category:    entities.CategorySocial,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.LeaderboardCriteria{MaxPosition: 100},
	},
	{
		ID:          "top_10",
		Name:        "Top 10",
		Description: "Reach the top 10 of the leaderboard",
		Icon:        "🔝",
		Category:    entities.CategorySocial,
		Points:      500,
		Rarity:      entities.RarityRare,
		Criteria:    entities.LeaderboardCriteria{MaxPosition: 10},
	},
	{
		ID:          "podium",
		Name:        "On the Podium",
		Description: "Reach the top 3 of the leaderboard",
		Icon:        "🥉",
		Category:    entities.CategorySocial,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.LeaderboardCriteria{MaxPosition: 3},
	},
	{
		ID:          "number_one",
		Name:        "Number One",
		Description: "Reach first place on the leaderboard",
		Icon:        "🥇",
		Category:    entities.CategorySocial,
		Points:      2500,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.LeaderboardCriteria{MaxPosition: 1},
	},
	{
		ID:          "first_try_no_hints",
		Name:        "Natural Talent",
		Description: "Solve a puzzle on the first guess with no hints",
		Icon:        "✨",
		Category:    entities.CategorySecret,
		Points:      25,
		Rarity:      entities.RarityCommon,
		Criteria:    entities.CustomCriteria{Name: "first_try_no_hints"},
	},
	{
		ID:          "comeback",
		Name:        "Comeback Kid",
		Description: "Solve a puzzle on your final guess",
		Icon:        "🔄",
		Category:    entities.CategorySecret,
		Points:      50,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CustomCriteria{Name: "comeback"},
	},
	{
		ID:          "lightning_no_hints",
		Name:        "Lightning Strike",
		Description: "Solve a puzzle in 15 seconds without hints",
		Icon:        "🌟",
		Category:    entities.CategorySecret,
		Points:      750,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CustomCriteria{Name: "lightning_no_hints"},
	},
	{
		ID:          "flawless_ten",
		Name:        "Flawless Ten",
		Description: "Solve 10 puzzles, all of them perfect",
		Icon:        "💠",
		Category:    entities.CategorySecret,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CustomCriteria{Name: "flawless_ten"},
	},
	{
		ID:          "achievements_unlocked_10",
		Name:        "Collector",
		Description: "Unlock 10 achievements",
		Icon:        "🗃️",
		Category:    entities.CategoryMilestones,
		Points:      100,
		Rarity:      entities.RarityUncommon,
		Criteria:    entities.CustomCriteria{Name: "achievements_unlocked_10"},
	},
	{
		ID:          "achievements_unlocked_25",
		Name:        "Curator",
		Description: "Unlock 25 achievements",
		Icon:        "🏛️",
		Category:    entities.CategoryMilestones,
		Points:      300,
		Rarity:      entities.RarityRare,
		Criteria:    entities.CustomCriteria{Name: "achievements_unlocked_25"},
	},
	{
		ID:          "achievements_unlocked_50",
		Name:        "Archivist",
		Description: "Unlock 50 achievements",
		Icon:        "📜",
		Category:    entities.CategoryMilestones,
		Points:      1000,
		Rarity:      entities.RarityEpic,
		Criteria:    entities.CustomCriteria{Name: "achievements_unlocked_50"},
	},
	{
		ID:          "achievements_unlocked_100",
		Name:        "Completionist",
		Description: "Unlock 100 achievements",
		Icon:        "🏵️",
		Category:    entities.CategoryMilestones,
		Points:      5000,
		Rarity:      entities.RarityLegendary,
		Criteria:    entities.CustomCriteria{Name: "achievements_unlocked_100"},
	},
}

var byID = indexTable(table)

func indexTable(defs []entities.AchievementDefinition) map[string]entities.AchievementDefinition {
	m := make(map[string]entities.AchievementDefinition, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return m
}

// All returns a copy of the achievement table.
func All() []entities.AchievementDefinition {
	return slices.Clone(table)
}

// Lookup returns the definition with the given id.
func Lookup(id string) (entities.AchievementDefinition, bool) {
	d, ok := byID[id]
	return d, ok
}
