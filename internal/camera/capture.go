package camera

import (
	"fmt"
	"strconv"
	"sync"

	"gocv.io/x/gocv"
)

// Capture manages frame capture from a webcam or a video file.
type Capture struct {
	source    *gocv.VideoCapture
	device    string
	targetFPS int
	width     int
	height    int
	mu        sync.Mutex
}

// NewCapture opens a capture device with the default 720p resolution. The
// device is a numeric camera ID ("0") or a video file path.
func NewCapture(device string, targetFPS int) (*Capture, error) {
	return NewCaptureWithResolution(device, targetFPS, 1280, 720)
}

// NewCaptureWithResolution opens a capture device with the requested
// resolution. Cameras that cannot honor it fall back to their nearest mode;
// Width and Height report what was actually negotiated.
func NewCaptureWithResolution(device string, targetFPS int, width, height int) (*Capture, error) {
	source, err := gocv.OpenVideoCapture(parseDevice(device))
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device %q: %w", device, err)
	}

	source.Set(gocv.VideoCaptureFrameWidth, float64(width))
	source.Set(gocv.VideoCaptureFrameHeight, float64(height))
	source.Set(gocv.VideoCaptureFPS, float64(targetFPS))

	actualWidth := int(source.Get(gocv.VideoCaptureFrameWidth))
	actualHeight := int(source.Get(gocv.VideoCaptureFrameHeight))

	return &Capture{
		source:    source,
		device:    device,
		targetFPS: targetFPS,
		width:     actualWidth,
		height:    actualHeight,
	}, nil
}

// parseDevice maps a numeric string to a camera ID and anything else to a
// file path, matching what gocv.OpenVideoCapture accepts.
func parseDevice(device string) interface{} {
	if id, err := strconv.Atoi(device); err == nil {
		return id
	}
	return device
}

// Read captures the next frame into the provided Mat.
func (c *Capture) Read(frame *gocv.Mat) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.source == nil {
		return false
	}

	return c.source.Read(frame)
}

// Width returns the negotiated frame width.
func (c *Capture) Width() int {
	return c.width
}

// Height returns the negotiated frame height.
func (c *Capture) Height() int {
	return c.height
}

// Close releases the capture device.
func (c *Capture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.source != nil {
		err := c.source.Close()
		c.source = nil
		return err
	}
	return nil
}
