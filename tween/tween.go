// Package tween animates a single float value toward a target over a fixed
// duration with an easing curve. The hand zone uses it to glide cards into
// their layout slots.
package tween

type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

type Tween struct {
	from, to float64
	duration float64
	elapsed  float64
	easing   Easing
}

func New(from, to, duration float64, easing Easing) *Tween {
	if easing == nil {
		easing = Linear
	}
	return &Tween{from: from, to: to, duration: duration, easing: easing}
}

// Update advances the tween by dt seconds and returns the current value and
// whether the tween has finished. A non-positive duration finishes
// immediately at the target value.
func (t *Tween) Update(dt float64) (float64, bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to, true
	}
	frac := t.easing(t.elapsed / t.duration)
	return t.from + (t.to-t.from)*frac, false
}

// Target reports the value the tween is heading for.
func (t *Tween) Target() float64 { return t.to }
