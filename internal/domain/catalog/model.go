package catalog

import (
	"fmt"
	"strings"
)

// InjuryChanceKey is the reserved impact name carrying an injury
// probability instead of a skill delta.
const InjuryChanceKey = "injury_chance"

// Requirements lists the resources a training template consumes at
// scheduling time.
type Requirements struct {
	Money int64
	Staff int
}

// Template is a read-only training blueprint supplied at
// initialization: success chance and impacts are percentages and
// signed skill deltas respectively.
type Template struct {
	ID            string
	Name          string
	Duration      int
	SuccessChance int
	Impacts       map[string]int
	Requirements  Requirements
}

func (t Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.SuccessChance < 0 || t.SuccessChance > 100 {
		return fmt.Errorf("template success chance out of range: %d", t.SuccessChance)
	}

	return nil
}

// SkillImpacts returns the named skill deltas without the reserved
// injury entry.
func (t Template) SkillImpacts() map[string]int {
	out := make(map[string]int, len(t.Impacts))
	for name, delta := range t.Impacts {
		if strings.EqualFold(name, InjuryChanceKey) {
			continue
		}
		out[name] = delta
	}
	return out
}

// InjuryChance returns the template's injury probability and whether
// one is declared.
func (t Template) InjuryChance() (int, bool) {
	for name, value := range t.Impacts {
		if strings.EqualFold(name, InjuryChanceKey) {
			return value, true
		}
	}
	return 0, false
}

// Catalog is the immutable set of training templates available to the
// scheduler.
type Catalog struct {
	byID  map[string]Template
	order []string
}

func New(templates []Template) *Catalog {
	byID := make(map[string]Template, len(templates))
	order := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if _, ok := byID[tpl.ID]; !ok {
			order = append(order, tpl.ID)
		}
		byID[tpl.ID] = tpl
	}

	return &Catalog{byID: byID, order: order}
}

func (c *Catalog) Get(templateID string) (Template, bool) {
	tpl, ok := c.byID[templateID]
	return tpl, ok
}

func (c *Catalog) List() []Template {
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
