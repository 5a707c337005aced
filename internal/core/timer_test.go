package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("expected 50ms interval, got %v", fs.Interval())
	}

	// The first tick is granted immediately so the seeded grid advances once
	// the loop starts.
	if !fs.Advance(0) {
		t.Fatal("expected initial tick")
	}
	if fs.Advance(30 * time.Millisecond) {
		t.Fatal("tick granted before interval elapsed")
	}
	if !fs.Advance(30 * time.Millisecond) {
		t.Fatal("expected tick after 60ms")
	}

	// A long frame grants one tick per call and keeps the surplus.
	if !fs.Advance(120 * time.Millisecond) {
		t.Fatal("expected tick after long frame")
	}
	if !fs.Advance(0) {
		t.Fatal("expected carried-over tick")
	}
	if fs.Advance(0) {
		t.Fatal("surplus should be exhausted")
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 tps fallback, got %v", fs.Interval())
	}
}
