package view

import (
	"sync"

	"storefront-console/internal/models"
	"storefront-console/internal/services"
)

type regionState struct {
	render models.RenderInstruction
	latest uint64
}

// Board holds what every region and form of the console page currently
// shows. It is shared by all requests; a tokened render older than the
// newest token issued for its region is dropped.
type Board struct {
	mu      sync.RWMutex
	next    uint64
	regions map[models.Region]*regionState
	forms   map[models.Form]map[string]string
	metrics services.MetricsRecorderInterface
}

var _ services.PresenterInterface = (*Board)(nil)

func NewBoard(metrics services.MetricsRecorderInterface) *Board {
	b := &Board{
		regions: make(map[models.Region]*regionState, len(models.Regions)),
		forms:   make(map[models.Form]map[string]string, len(models.FormFields)),
		metrics: metrics,
	}
	for _, r := range models.Regions {
		b.regions[r] = &regionState{}
	}
	for f := range models.FormFields {
		b.forms[f] = map[string]string{}
	}
	return b
}

func (b *Board) Begin(region models.Region) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.state(region).latest = b.next
	return b.next
}

func (b *Board) Render(region models.Region, instr models.RenderInstruction) bool {
	b.mu.Lock()

	st := b.state(region)
	if instr.Token != 0 && instr.Token < st.latest {
		b.mu.Unlock()
		return false
	}
	st.render = instr
	filled := b.filledLocked()

	b.mu.Unlock()

	b.metrics.RecordGauge(services.MetricBoardRegionsFilled, float64(filled), nil)
	return true
}

// Clear empties regions. Issued tokens survive, so a lookup still in
// flight cannot be revived by clearing.
func (b *Board) Clear(regions ...models.Region) {
	b.mu.Lock()

	for _, r := range regions {
		b.state(r).render = models.RenderInstruction{}
	}
	filled := b.filledLocked()

	b.mu.Unlock()

	b.metrics.RecordGauge(services.MetricBoardRegionsFilled, float64(filled), nil)
}

func (b *Board) ResetForm(form models.Form) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.forms[form] = map[string]string{}
}

// KeepForm remembers submitted input so the page shows it until reset.
// Unknown field names are ignored.
func (b *Board) KeepForm(form models.Form, values map[string]string) {
	fields, ok := models.FormFields[form]
	if !ok {
		return
	}

	kept := make(map[string]string, len(fields))
	for _, f := range fields {
		if v, ok := values[f]; ok {
			kept[f] = v
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.forms[form] = kept
}

func (b *Board) FormValues(form models.Form) map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	values := make(map[string]string, len(b.forms[form]))
	for k, v := range b.forms[form] {
		values[k] = v
	}
	return values
}

// Snapshot returns the current content of region and whether it has any.
func (b *Board) Snapshot(region models.Region) (models.RenderInstruction, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	st, ok := b.regions[region]
	if !ok {
		return models.RenderInstruction{}, false
	}
	return st.render, !st.render.IsZero()
}

// Page copies the whole board for rendering
func (b *Board) Page() Page {
	b.mu.RLock()
	defer b.mu.RUnlock()

	page := Page{
		Regions: make(map[string]models.RenderInstruction, len(b.regions)),
		Forms:   make(map[string]map[string]string, len(b.forms)),
	}
	for r, st := range b.regions {
		page.Regions[string(r)] = st.render
	}
	for f, values := range b.forms {
		copied := make(map[string]string, len(values))
		for k, v := range values {
			copied[k] = v
		}
		page.Forms[string(f)] = copied
	}
	return page
}

// state must be called with mu held
func (b *Board) state(region models.Region) *regionState {
	st, ok := b.regions[region]
	if !ok {
		st = &regionState{}
		b.regions[region] = st
	}
	return st
}

func (b *Board) filledLocked() int {
	n := 0
	for _, st := range b.regions {
		if !st.render.IsZero() {
			n++
		}
	}
	return n
}
