package ui

import (
	"time"

	"gocv.io/x/gocv"
)

// Window manages the preview display and tracks display FPS.
type Window struct {
	window     *gocv.Window
	name       string
	lastFrame  time.Time
	frameCount int
	fps        float64
}

// NewWindow creates a preview window.
func NewWindow(name string) *Window {
	window := gocv.NewWindow(name)
	// Force window to appear on macOS
	window.ResizeWindow(1280, 720)
	window.MoveWindow(100, 100)
	return &Window{
		window:    window,
		name:      name,
		lastFrame: time.Now(),
	}
}

// Show displays a frame and updates the FPS counter. Callers that want the
// FPS on screen draw it via DrawHUD before showing.
func (w *Window) Show(frame *gocv.Mat) {
	w.frameCount++
	now := time.Now()

	elapsed := now.Sub(w.lastFrame)
	if elapsed >= time.Second {
		w.fps = float64(w.frameCount) / elapsed.Seconds()
		w.frameCount = 0
		w.lastFrame = now
	}

	w.window.IMShow(*frame)
}

// WaitKey waits for a key press, returning the key code or -1.
func (w *Window) WaitKey(delayMs int) int {
	return w.window.WaitKey(delayMs)
}

// FPS returns the measured display rate.
func (w *Window) FPS() float64 {
	return w.fps
}

// Close closes the window.
func (w *Window) Close() error {
	if w.window != nil {
		return w.window.Close()
	}
	return nil
}
