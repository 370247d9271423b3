package ui

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/faisalnazir/AnonCam/internal/landmark"
	"github.com/faisalnazir/AnonCam/internal/track"
)

const axisLength = 60

var (
	meshColor     = color.RGBA{R: 0, G: 180, B: 0, A: 255}
	keyPointColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	hudColor      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	searchColor   = color.RGBA{R: 160, G: 160, B: 160, A: 255}

	axisColors = [3]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
)

// DrawResult paints tracking diagnostics onto the frame: the mesh dots, the
// named key points, the pose axes anchored at the nose tip, and a one-line
// pose readout.
func DrawResult(frame *gocv.Mat, result track.Result) {
	width := frame.Cols()
	height := frame.Rows()

	if !result.HasFace {
		gocv.PutText(frame, "searching for face...", image.Pt(10, height-20),
			gocv.FontHersheyPlain, 1.5, searchColor, 2)
		return
	}

	for _, p := range result.Landmarks {
		gocv.Circle(frame, toPixel(p, width, height), 1, meshColor, -1)
	}

	kp := result.KeyPoints
	for _, p := range []landmark.Point{
		kp.LeftEye, kp.RightEye, kp.NoseTip, kp.UpperLip,
		kp.Chin, kp.LeftEar, kp.RightEar, kp.Forehead,
	} {
		gocv.Circle(frame, toPixel(p, width, height), 3, keyPointColor, -1)
	}

	anchor := toPixel(kp.NoseTip, width, height)
	dirs := axisDirections(result.Pose.ModelMatrix)
	for i, d := range dirs {
		end := image.Pt(
			anchor.X+int(d[0]*axisLength),
			anchor.Y+int(d[1]*axisLength),
		)
		gocv.Line(frame, anchor, end, axisColors[i], 2)
	}

	readout := fmt.Sprintf("conf %.2f  pitch %+.2f yaw %+.2f roll %+.2f",
		result.Confidence,
		result.Pose.Rotation[0], result.Pose.Rotation[1], result.Pose.Rotation[2])
	gocv.PutText(frame, readout, image.Pt(10, height-20),
		gocv.FontHersheyPlain, 1.5, hudColor, 2)
}

// DrawHUD paints the display FPS and pipeline stage timings in the top-left
// corner.
func DrawHUD(frame *gocv.Mat, fps float64, timing track.Timing) {
	fpsText := fmt.Sprintf("FPS: %.1f", fps)
	gocv.PutText(frame, fpsText, image.Pt(10, 30),
		gocv.FontHersheyPlain, 2, hudColor, 2)

	timingText := fmt.Sprintf("detect %.1fms  total %.1fms",
		float64(timing.Detect.Microseconds())/1000.0,
		float64(timing.Total.Microseconds())/1000.0)
	gocv.PutText(frame, timingText, image.Pt(10, 60),
		gocv.FontHersheyPlain, 1.5, hudColor, 2)
}

// toPixel maps a normalized landmark onto pixel coordinates.
func toPixel(p landmark.Point, width, height int) image.Point {
	return image.Pt(int(p.X*float32(width)), int(p.Y*float32(height)))
}

// axisDirections projects the model-space axes into image-space directions.
// Column i of the rotation block is the image of basis vector i; scene y
// points up while image y grows down, so the y component flips back.
func axisDirections(m track.Mat4) [3][2]float32 {
	var dirs [3][2]float32
	for i := 0; i < 3; i++ {
		dirs[i][0] = m[i]
		dirs[i][1] = -m[4+i]
	}
	return dirs
}
