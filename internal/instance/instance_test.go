package instance_test

import (
	"testing"

	"github.com/aiSzzPL77/virtualc64/internal/instance"
)

func TestNewInstanceDefaults(t *testing.T) {
	ins := instance.NewInstance()
	if ins.Prefs.RandomState {
		t.Error("RandomState should default to false (deterministic poweron)")
	}
	if ins.Prefs.Standard != instance.PAL {
		t.Errorf("Standard = %v, want PAL", ins.Prefs.Standard)
	}
	if ins.Prefs.VICRevision != instance.VIC6569R3 {
		t.Errorf("VICRevision = %v, want VIC6569R3", ins.Prefs.VICRevision)
	}
	if ins.Prefs.GrayDotBug() {
		t.Error("6569R3 should not report the gray-dot bug")
	}
}

func TestGrayDotBugOnlyOnR1(t *testing.T) {
	var p instance.Preferences
	p.SetDefaults()
	p.VICRevision = instance.VIC6569R1
	if !p.GrayDotBug() {
		t.Error("6569R1 should report the gray-dot bug")
	}

	p.VICRevision = instance.VIC6567R8
	if p.GrayDotBug() {
		t.Error("6567R8 should not report the gray-dot bug")
	}
}

func TestNormaliseIsDeterministic(t *testing.T) {
	a := instance.NewInstance()
	a.Normalise()

	b := instance.NewInstance()
	b.Normalise()

	if a.Random.Intn(1000) != b.Random.Intn(1000) {
		t.Error("two normalised instances should draw the same sequence from their zeroed seed")
	}
}

func TestStandardString(t *testing.T) {
	if instance.PAL.String() != "PAL" {
		t.Errorf("PAL.String() = %q, want %q", instance.PAL.String(), "PAL")
	}
	if instance.NTSC.String() != "NTSC" {
		t.Errorf("NTSC.String() = %q, want %q", instance.NTSC.String(), "NTSC")
	}
}
