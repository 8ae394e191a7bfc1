package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/reactor/model"
)

const DefaultDuration = 0.25

// Action moves one atom from its source cell to its target cell.
type Action struct {
	Move     model.Movement
	progress float32
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// Progress goes from 0 at the source to 1 at the target.
func (a *Action) Progress() float32 {
	return a.progress
}

// Position interpolates the atom between cell centres, in cell units.
func (a *Action) Position() (row, col float32) {
	from, to := a.Move.From, a.Move.To
	row = float32(from.Row) + float32(to.Row-from.Row)*a.progress
	col = float32(from.Col) + float32(to.Col-from.Col)*a.progress
	return
}

type batch struct {
	remaining int
	done      func()
}

func (b *batch) finish() {
	b.remaining--
	if b.remaining == 0 && b.done != nil {
		b.done()
	}
}

// Timeline runs the atom movements of reaction waves. Every batch handed to
// Schedule gets a single completion callback, fired once all of its atoms
// arrived. Nothing happens between calls to Update.
type Timeline struct {
	Duration float32
	Easing   ease.TweenFunc

	Tweens    map[*gween.Tween]*Action
	atoms     map[model.AtomID]*Action
	immediate []func()
}

func NewTimeline(duration float32, easing ease.TweenFunc) *Timeline {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if easing == nil {
		easing = ease.InOutQuad
	}
	return &Timeline{
		Duration: duration,
		Easing:   easing,
		Tweens:   make(map[*gween.Tween]*Action),
		atoms:    make(map[model.AtomID]*Action),
	}
}

// Schedule starts moving all atoms of moves at once. done runs on the Update
// that finishes the last of them; an empty batch completes on the next Update.
func (t *Timeline) Schedule(moves []model.Movement, done func()) {
	if len(moves) == 0 {
		if done != nil {
			t.immediate = append(t.immediate, done)
		}
		return
	}
	b := &batch{remaining: len(moves), done: done}
	for _, m := range moves {
		action := &Action{Move: m}
		action.addOnFinish(b.finish)
		t.Tweens[gween.New(0, 1, t.Duration, t.Easing)] = action
		t.atoms[m.Atom] = action
	}
}

// Update advances every running tween by dt seconds.
func (t *Timeline) Update(dt float32) {
	finished := make([]*Action, 0)
	for tw, a := range t.Tweens {
		curr, isFinished := tw.Update(dt)
		a.progress = curr
		if isFinished {
			a.progress = 1
			finished = append(finished, a)
			delete(t.Tweens, tw)
			if t.atoms[a.Move.Atom] == a {
				delete(t.atoms, a.Move.Atom)
			}
		}
	}
	immediate := t.immediate
	t.immediate = nil
	for _, a := range finished {
		for _, onFinish := range a.onFinish {
			onFinish()
		}
	}
	for _, f := range immediate {
		f()
	}
}

// Action returns the running movement of atom, if any.
func (t *Timeline) Action(atom model.AtomID) (*Action, bool) {
	a, ok := t.atoms[atom]
	return a, ok
}

// Idle reports that nothing is moving or waiting to complete.
func (t *Timeline) Idle() bool {
	return len(t.Tweens) == 0 && len(t.immediate) == 0
}
