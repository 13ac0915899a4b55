package catalog

import (
	"autoluxe/internal/models"
	"autoluxe/internal/utils"
)

// Pager implements reveal-count pagination: the visible slice is always the
// first N results, N starts at one step and grows by one step on demand.
// Changing any filter resets N.
type Pager struct {
	visible int
}

func NewPager() *Pager {
	return &Pager{visible: utils.RevealStep}
}

func (p *Pager) Visible() int {
	return p.visible
}

func (p *Pager) Reveal() {
	p.visible += utils.RevealStep
}

func (p *Pager) Reset() {
	p.visible = utils.RevealStep
}

func (p *Pager) Slice(vehicles []models.Vehicle) []models.Vehicle {
	if p.visible >= len(vehicles) {
		return vehicles
	}
	return vehicles[:p.visible]
}

func (p *Pager) HasMore(total int) bool {
	return p.visible < total
}

// ClampLimit normalizes a client-supplied reveal count to a positive multiple
// of the step, defaulting to one step.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return utils.RevealStep
	}
	return limit
}
