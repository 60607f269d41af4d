package modbot

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// hoverDuration is how long a button takes to ease fully into or out of its
// hover color, in seconds.
const hoverDuration = 0.08

// hoverFade eases a single blend factor in [0, 1] between two colors.
// A new target restarts the tween from the current value, so reversing
// mid-fade never jumps.
type hoverFade struct {
	tween  *gween.Tween
	value  float64
	target float64
}

// setTarget retargets the fade. No-op if already heading there.
func (f *hoverFade) setTarget(target float64) {
	if f.target == target && (f.tween != nil || f.value == target) {
		return
	}
	f.target = target
	f.tween = gween.New(float32(f.value), float32(target), hoverDuration, ease.OutQuad)
}

// update advances the fade by dt seconds.
func (f *hoverFade) update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.value = float64(v)
	if done {
		f.value = f.target
		f.tween = nil
	}
}

// color returns from blended toward to by the current fade value.
func (f *hoverFade) color(from, to Color) Color {
	return from.Lerp(to, f.value)
}
