package asteroids

import "testing"

var unitSquare = Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func TestPolygonContainsSquare(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 0.5, 0.5, true},
		{"near corner", 0.01, 0.99, true},
		{"right of", 1.5, 0.5, false},
		{"above", 0.5, -0.5, false},
		{"far away", 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unitSquare.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := unitSquare.reversed().Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("reversed Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPolygonContainsConcave(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	u := Polygon{{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3}}
	if !u.Contains(0.5, 2) {
		t.Error("left arm should be inside")
	}
	if !u.Contains(2.5, 2) {
		t.Error("right arm should be inside")
	}
	if u.Contains(1.5, 2) {
		t.Error("notch should be outside")
	}
}

func TestPolygonContainsDegenerate(t *testing.T) {
	if (Polygon{}).Contains(0, 0) {
		t.Error("empty polygon should contain nothing")
	}
	if (Polygon{{0, 0}, {1, 1}}).Contains(0.5, 0.5) {
		t.Error("two-point polygon should contain nothing")
	}
}

func TestPolygonAsteroidContainsOrigin(t *testing.T) {
	if !asteroidOutline.Contains(0, 0) {
		t.Error("asteroid outline should contain its origin")
	}
	if !asteroidOutline.reversed().Contains(0, 0) {
		t.Error("reversed asteroid outline should contain its origin")
	}
	if !alienOutline.Contains(0, 0) {
		t.Error("alien outline should contain its origin")
	}
}

func TestPolygonTransform(t *testing.T) {
	got := unitSquare.transform(Configure(2, Pose{X: 10, Y: 20}), nil)
	want := Polygon{{10, 20}, {12, 20}, {12, 22}, {10, 22}}
	for i := range want {
		assertNear(t, "x", got[i].X, want[i].X)
		assertNear(t, "y", got[i].Y, want[i].Y)
	}
}
