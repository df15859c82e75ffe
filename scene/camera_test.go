package scene

import "testing"

func TestCameraMovesForwardAlongForward(t *testing.T) {
	c := NewCamera(60)
	start := c.Position
	c.HandleKeys(1, 0, 0, false, 0, 1)

	moved := c.Position.Sub(start)
	if !almostEqual(moved.Length(), cameraMoveSpeed, 1e-4) {
		t.Fatalf("expected to move cameraMoveSpeed units in one second; moved %f", moved.Length())
	}
}

func TestCameraShiftQuadruplesSpeed(t *testing.T) {
	c1 := NewCamera(60)
	c1.HandleKeys(1, 0, 0, false, 0, 1)

	c2 := NewCamera(60)
	c2.HandleKeys(1, 0, 0, true, 0, 1)

	if !almostEqual(c2.Position.Length()/c1.Position.Length(), cameraShiftFactor, 1e-4) {
		t.Fatalf("expected shift to move 4x as far; ratio was %f", c2.Position.Length()/c1.Position.Length())
	}
}

func TestCameraFOVChangesAtMoveSpeed(t *testing.T) {
	c := NewCamera(90)
	c.HandleKeys(0, 0, 0, false, 1, 1)

	delta := c.FOV - 90
	if !almostEqual(delta, cameraMoveSpeed, 1e-4) {
		t.Fatalf("expected FOV to change by cameraMoveSpeed degrees in one second; got %f", delta)
	}
}

func TestCameraFOVClampsToRange(t *testing.T) {
	c := NewCamera(90)
	c.HandleKeys(0, 0, 0, false, -1000, 1)
	if c.FOV != minFOV {
		t.Fatalf("expected FOV to clamp to %f; got %f", minFOV, c.FOV)
	}

	c.HandleKeys(0, 0, 0, false, 1000, 1)
	if c.FOV != maxFOV {
		t.Fatalf("expected FOV to clamp to %f; got %f", maxFOV, c.FOV)
	}
}

func TestCameraYawTurnsNotTilts(t *testing.T) {
	c := NewCamera(60)
	c.HandleMouse(MouseButtons{Right: true}, 10, 0, 1)

	if !almostEqual(c.Forward[1], 0, 1e-4) {
		t.Fatalf("expected a pure yaw to leave Forward.Y at 0; got %f", c.Forward[1])
	}
	if almostEqual(c.Forward[0], 0, 1e-4) {
		t.Fatal("expected a pure yaw to change Forward.X")
	}
}

func TestCameraPitchTiltsNotTurns(t *testing.T) {
	c := NewCamera(60)
	c.HandleMouse(MouseButtons{Right: true}, 0, 10, 1)

	if !almostEqual(c.Forward[0], 0, 1e-4) {
		t.Fatalf("expected a pure pitch to leave Forward.X at 0; got %f", c.Forward[0])
	}
	if almostEqual(c.Forward[1], 0, 1e-4) {
		t.Fatal("expected a pure pitch to change Forward.Y")
	}
}

func TestCameraRightUpForwardStayOrthonormal(t *testing.T) {
	c := NewCamera(60)
	c.HandleMouse(MouseButtons{Right: true}, 10, 5, 1)

	if !almostEqual(c.Forward.Length(), 1, 1e-4) {
		t.Fatalf("expected unit forward vector; got length %f", c.Forward.Length())
	}
	if !almostEqual(c.Forward.Dot(c.Right), 0, 1e-4) {
		t.Fatalf("expected forward and right to stay orthogonal; dot was %f", c.Forward.Dot(c.Right))
	}
	if !almostEqual(c.Forward.Dot(c.Up), 0, 1e-4) {
		t.Fatalf("expected forward and up to stay orthogonal; dot was %f", c.Forward.Dot(c.Up))
	}
}
