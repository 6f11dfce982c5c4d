package loadout

// Summary is the total-level view of a result.
type Summary struct {
	Skills            int
	TotalLevels       int
	MaxedSkills       int
	SetBonusSkills    int
	NatureBonusSkills int
	ActiveSetTiers    int
}

// Summarize counts levels clamped to each skill's cap.
func Summarize(r *Result) Summary {
	var sum Summary
	if r == nil {
		return sum
	}
	sum.Skills = len(r.Skills)
	for _, s := range r.Skills {
		sum.TotalLevels += s.ActiveLevel()
		if s.IsMaxed() {
			sum.MaxedSkills++
		}
		if s.IsSetBonus {
			sum.SetBonusSkills++
		}
		if s.IsNatureBonus {
			sum.NatureBonusSkills++
		}
	}
	for _, b := range r.SetBonuses {
		sum.ActiveSetTiers += b.ActiveTiers()
	}
	return sum
}
