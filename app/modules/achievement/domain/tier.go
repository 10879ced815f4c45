// Package achievementdomain defines achievement tiers and badge families.
package achievementdomain

// Tier is a player's single cross-course achievement level. A user holds
// exactly one tier at any time; modeling it as one tagged value (instead of
// badge-set membership) makes the exclusivity invariant structural.
type Tier string

const (
	TierNone    Tier = "none"
	TierScratch Tier = "scratch"
	TierAce     Tier = "ace"
)

// Tier promotion thresholds in distinct courses currently led.
const (
	ScratchCourseCount = 2
	AceCourseCount     = 3
)

// TierForCount derives the tier from the number of distinct courses where
// the user currently holds rank 1.
func TierForCount(lowmanCourseCount int) Tier {
	switch {
	case lowmanCourseCount >= AceCourseCount:
		return TierAce
	case lowmanCourseCount == ScratchCourseCount:
		return TierScratch
	default:
		return TierNone
	}
}

// Course-scoped badge families. Unlike tiers, these accumulate: a user may
// hold lowman badges on many courses and any number of hole-in-one badges.
const (
	BadgeLowman    = "lowman"
	BadgeHoleInOne = "hole_in_one"
)
