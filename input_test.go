package asteroids

import "testing"

func TestParseIntent(t *testing.T) {
	for i := Intent(0); i < intentCount; i++ {
		got, err := ParseIntent(i.String())
		if err != nil || got != i {
			t.Errorf("ParseIntent(%q) = %v, %v", i.String(), got, err)
		}
	}
	if _, err := ParseIntent("hyperspace"); err == nil {
		t.Error("expected error for unknown intent")
	}
}

func TestKeys(t *testing.T) {
	var k Keys
	k.Set(IntentThrust, true)
	if !k.Held(IntentThrust) || k.Held(IntentFire) {
		t.Error("only thrust should be held")
	}
	if k.Held(intentCount + 3) {
		t.Error("out-of-range intents are never held")
	}
	k.AnyDown = true
	k.Clear()
	if k.Held(IntentThrust) || k.AnyDown {
		t.Error("Clear should release everything")
	}
}

func TestKindSet(t *testing.T) {
	s := Kinds(KindShip, KindAsteroid)
	if !s.Has(KindShip) || !s.Has(KindAsteroid) || s.Has(KindBullet) {
		t.Errorf("set %b has wrong members", s)
	}
	if s.Empty() || !KindSet(0).Empty() {
		t.Error("Empty mismatch")
	}
	if KindAlienBullet.String() != "alienbullet" {
		t.Errorf("String = %q", KindAlienBullet.String())
	}
}
