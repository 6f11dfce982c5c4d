package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/mhwbuild/internal/game/loadout"
	"github.com/udisondev/mhwbuild/internal/model"
)

func render(out io.Writer, name string, res *loadout.Result) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if name != "" {
		fmt.Fprintf(w, "Build: %s\n\n", name)
	}

	fmt.Fprintln(w, "SKILL\tLEVEL\tSLOTS\tFLAGS")
	for _, s := range res.Skills {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, levelText(s), slotsText(s), flagsText(s))
	}

	if len(res.SetBonuses) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "SET BONUS\tPIECES\tTIERS")
		for _, b := range res.SetBonuses {
			tiers := make([]string, 0, len(b.Details))
			for _, d := range b.Details {
				mark := " "
				if b.Active(d) {
					mark = "x"
				}
				tiers = append(tiers, fmt.Sprintf("[%s] %d: %s", mark, d.RequiredCount, d.Skill.Name))
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", b.Name, b.EquippedCount, strings.Join(tiers, ", "))
		}
	}

	sum := loadout.Summarize(res)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d skills, %d levels, %d maxed, %d set tiers\n",
		sum.Skills, sum.TotalLevels, sum.MaxedSkills, sum.ActiveSetTiers)

	return w.Flush()
}

func levelText(s *model.EquippedSkill) string {
	text := fmt.Sprintf("%d/%d", s.EquippedCount, s.TotalLevelCount)
	if s.SecretLevelCount > 0 {
		text += fmt.Sprintf(" (+%d)", s.SecretLevelCount)
	}
	return text
}

func slotsText(s *model.EquippedSkill) string {
	counts := []struct {
		label string
		n     int
	}{
		{"W", s.WeaponCount},
		{"H", s.HeadCount},
		{"C", s.ChestCount},
		{"A", s.HandsCount},
		{"L", s.LegsCount},
		{"F", s.FeetCount},
		{"Ch", s.CharmCount},
		{"T", s.ToolCount},
	}
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", c.label, c.n))
		}
	}
	if s.EquippedTool1Count+s.EquippedTool2Count > 0 {
		parts = append(parts, fmt.Sprintf("idle:%d/%d", s.EquippedTool1Count, s.EquippedTool2Count))
	}
	return strings.Join(parts, " ")
}

func flagsText(s *model.EquippedSkill) string {
	var flags []string
	if s.IsSetBonus {
		flags = append(flags, "set")
	}
	if s.IsNatureBonus {
		flags = append(flags, "nature")
	}
	if s.IsMaxed() {
		flags = append(flags, "max")
	}
	return strings.Join(flags, ",")
}
