// Package reveal models scroll-triggered entrance animations: a policy describing
// when an element animates in, and an observer that applies it to visibility changes.
package reveal

import (
	"html/template"
	"math"
	"strconv"
	"sync"
)

// Policy controls whether and how an element's entrance animation triggers.
type Policy struct {
	TriggerOnce         bool
	StaggerDelaySeconds float64
}

// Default is the policy used by landing page sections.
var Default = Policy{TriggerOnce: true, StaggerDelaySeconds: 0.1}

// Delay returns the entrance delay in seconds for the element at index i.
func (p Policy) Delay(i int) float64 {
	if i <= 0 || p.StaggerDelaySeconds <= 0 {
		return 0
	}
	return float64(i) * p.StaggerDelaySeconds
}

// Attrs returns the data attributes consumed by assets/js/reveal.js for index i.
func (p Policy) Attrs(i int) template.HTMLAttr {
	return template.HTMLAttr(`data-reveal data-reveal-once="` + strconv.FormatBool(p.TriggerOnce) +
		`" data-reveal-delay="` + FormatSeconds(p.Delay(i)) + `"`)
}

// FormatSeconds renders seconds with at most three decimals, e.g. 0.3 or 1.25.
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(math.Round(s*1000)/1000, 'f', -1, 64)
}

// Observer delivers entrance notifications for registered elements. Updates are
// level-triggered: a callback fires when an element goes from hidden to visible,
// and with TriggerOnce only the first time.
type Observer struct {
	mu      sync.Mutex
	targets map[string]*target
}

type target struct {
	policy  Policy
	fn      func(id string)
	visible bool
	fired   int
}

// NewObserver returns an empty Observer.
func NewObserver() *Observer {
	return &Observer{targets: map[string]*target{}}
}

// Watch registers fn for element id under policy p, replacing any previous registration.
func (o *Observer) Watch(id string, p Policy, fn func(id string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets[id] = &target{policy: p, fn: fn}
}

// Unwatch removes the registration for id.
func (o *Observer) Unwatch(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.targets, id)
}

// Update reports whether id currently intersects the viewport. It returns true when
// the callback was invoked. Unknown ids are ignored.
func (o *Observer) Update(id string, visible bool) bool {
	o.mu.Lock()
	t, ok := o.targets[id]
	if !ok {
		o.mu.Unlock()
		return false
	}
	entered := visible && !t.visible
	t.visible = visible
	if !entered || (t.policy.TriggerOnce && t.fired > 0) {
		o.mu.Unlock()
		return false
	}
	t.fired++
	fn := t.fn
	o.mu.Unlock()

	if fn != nil {
		fn(id)
	}
	return true
}

// Fired returns how many times the callback for id has run.
func (o *Observer) Fired(id string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.targets[id]; ok {
		return t.fired
	}
	return 0
}
