package core

import "testing"

func TestInputFrameHeldAndPressed(t *testing.T) {
	f := NewInputFrame()

	f.SetHeld(ActionThrust)
	if !f.Held(ActionThrust) {
		t.Error("SetHeld should mark the action held")
	}
	if f.Pressed(ActionThrust) {
		t.Error("SetHeld must not mark the action pressed")
	}

	f.SetPressed(ActionFire)
	if !f.Pressed(ActionFire) {
		t.Error("SetPressed should mark the action pressed")
	}
	if !f.Held(ActionFire) {
		t.Error("a pressed action is also held")
	}
}

func TestInputFrameClearPressed(t *testing.T) {
	f := NewInputFrame()
	f.SetPressed(ActionFire)
	f.SetHeld(ActionThrust)

	f.ClearPressed()

	if f.Pressed(ActionFire) {
		t.Error("ClearPressed should drop the rising edge")
	}
	if !f.Held(ActionFire) || !f.Held(ActionThrust) {
		t.Error("ClearPressed must keep held actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.SetPressed(ActionFire)
	f.SetHeld(ActionThrust)

	f.Clear()

	if f.Held(ActionThrust) || f.Held(ActionFire) || f.Pressed(ActionFire) {
		t.Error("Clear should reset all input state")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.SetPressed(ActionFire)

	clone := f.Clone()
	f.Clear()

	if !clone.Pressed(ActionFire) || !clone.Held(ActionFire) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Held(ActionThrust) || f.Pressed(ActionFire) {
		t.Error("zero-value frame reports nothing")
	}
	f.SetHeld(ActionThrust)
	f.SetPressed(ActionFire)
	if !f.Held(ActionThrust) || !f.Pressed(ActionFire) {
		t.Error("zero-value frame should lazily allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionThrust.String() != "Thrust" {
		t.Errorf("got %q", ActionThrust.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
