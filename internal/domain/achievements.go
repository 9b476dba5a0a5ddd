package domain

// Achievement keys wired to trigger rules.
const (
	AchievementFirstQuiz    = "FIRST_QUIZ"
	AchievementPerfectScore = "PERFECT_SCORE"
	AchievementStreak5      = "STREAK_5"
	AchievementStreak10     = "STREAK_10"
	AchievementSpeedDemon   = "SPEED_DEMON"
	AchievementDockerMaster = "DOCKER_MASTER"
	AchievementYAMLGuru     = "YAML_GURU"
	AchievementComebackKid  = "COMEBACK_KID"
)

// AchievementCatalog maps achievement keys to their static definitions.
type AchievementCatalog map[string]AchievementDefinition

// Lookup returns the definition for key, if declared.
func (c AchievementCatalog) Lookup(key string) (AchievementDefinition, bool) {
	def, ok := c[key]
	return def, ok
}

// DefaultAchievements returns the built-in catalog. DOCKER_MASTER,
// YAML_GURU and COMEBACK_KID are declared but have no trigger rule; they
// show up in the achievements listing and are otherwise inert.
func DefaultAchievements() AchievementCatalog {
	return AchievementCatalog{
		AchievementFirstQuiz:    {Key: AchievementFirstQuiz, Name: "First Steps", Description: "Completed your first quiz", Points: 10},
		AchievementPerfectScore: {Key: AchievementPerfectScore, Name: "Perfectionist", Description: "Got 100% on a quiz", Points: 50},
		AchievementStreak5:      {Key: AchievementStreak5, Name: "On Fire", Description: "5 correct answers in a row", Points: 25},
		AchievementStreak10:     {Key: AchievementStreak10, Name: "Unstoppable", Description: "10 correct answers in a row", Points: 75},
		AchievementDockerMaster: {Key: AchievementDockerMaster, Name: "Docker Master", Description: "Completed all Docker quizzes", Points: 100},
		AchievementYAMLGuru:     {Key: AchievementYAMLGuru, Name: "YAML Guru", Description: "Completed all YAML quizzes", Points: 100},
		AchievementSpeedDemon:   {Key: AchievementSpeedDemon, Name: "Speed Demon", Description: "Answered 10 questions in under 5 minutes", Points: 30},
		AchievementComebackKid:  {Key: AchievementComebackKid, Name: "Comeback Kid", Description: "Improved score by 50% on retake", Points: 40},
	}
}
