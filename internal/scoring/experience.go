package scoring

const actionVerbBonus = 5

var actionVerbPattern = wordPattern(`project|developed|created|built|designed|implemented`)

// experienceSteps maps minimum declared years to a base score, highest first.
var experienceSteps = []struct {
	minYears int
	score    int
}{
	{5, 20},
	{3, 15},
	{1, 10},
}

const experienceFloor = 5

// ScoreExperience scores declared years of experience plus achievement language.
// years is trusted as given; callers must pass a non-negative value.
func ScoreExperience(text string, years int) int {
	score := experienceFloor
	for _, step := range experienceSteps {
		if years >= step.minYears {
			score = step.score
			break
		}
	}

	if actionVerbPattern.MatchString(text) {
		score += actionVerbBonus
	}

	return clampScore(score)
}
