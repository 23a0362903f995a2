package ebitenhost

import (
	"testing"
	"time"

	"github.com/phanxgames/kinex"
)

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera(Rect{X: 10, Y: 20, Width: 320, Height: 240})
	cam.ScrollTo(100, 50)
	sx, sy := cam.WorldToScreen(150, 60)
	if sx != 60 || sy != 30 {
		t.Errorf("WorldToScreen = (%v,%v), want (60,30)", sx, sy)
	}
	wx, wy := cam.ScreenToWorld(sx, sy)
	if wx != 150 || wy != 60 {
		t.Errorf("ScreenToWorld = (%v,%v), want (150,60)", wx, wy)
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.SetBounds(Rect{Width: 300, Height: 150})

	cam.ScrollTo(500, -20)
	if x, y := cam.ScrollPosition(); x != 200 || y != 0 {
		t.Errorf("clamped = (%v,%v), want (200,0)", x, y)
	}

	cam.ClearBounds()
	cam.ScrollTo(500, -20)
	if x, y := cam.ScrollPosition(); x != 500 || y != -20 {
		t.Errorf("unclamped = (%v,%v), want (500,-20)", x, y)
	}
}

func TestCameraBoundsSmallerThanViewport(t *testing.T) {
	cam := NewCamera(Rect{Width: 400, Height: 400})
	cam.SetBounds(Rect{X: 5, Y: 7, Width: 100, Height: 100})
	cam.ScrollTo(50, 50)
	if x, y := cam.ScrollPosition(); x != 5 || y != 7 {
		t.Errorf("pinned = (%v,%v), want (5,7)", x, y)
	}
}

func TestViewportTweenScrollsCamera(t *testing.T) {
	e := kinex.NewEngine(kinex.Config{})
	cam := NewCamera(Rect{Width: 100, Height: 100})
	cam.X = 30
	vp := kinex.NewViewport(cam)

	c, err := e.To(vp, 200*time.Millisecond, kinex.Props{}.Add("scrollY", 400), kinex.Options{})
	if err != nil {
		t.Fatalf("To: %v", err)
	}
	e.Loop().Advance(100 * time.Millisecond)
	if cam.Y != 200 || cam.X != 30 {
		t.Errorf("camera at half = (%v,%v), want (30,200)", cam.X, cam.Y)
	}
	e.Loop().Advance(200 * time.Millisecond)
	if !c.Finished() {
		t.Fatal("scroll tween not finished")
	}
	if cam.Y != 400 {
		t.Errorf("camera Y = %v, want 400", cam.Y)
	}
}
