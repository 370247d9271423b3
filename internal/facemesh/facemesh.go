// Package facemesh runs the 478-point face-mesh ONNX model and adapts its
// output to the tracking pipeline's landmark types.
package facemesh

import (
	"bytes"
	"fmt"
	"image"
	"math"

	ort "github.com/yalue/onnxruntime_go"
	"gocv.io/x/gocv"

	"github.com/faisalnazir/AnonCam/internal/inference"
	"github.com/faisalnazir/AnonCam/internal/landmark"
)

// meshOutputLen is the flat landmark tensor length: MeshPoints * (x, y, z).
const meshOutputLen = landmark.MeshPoints * 3

// Tensor names bound by the ONNX export bundled under models/. The model
// diagnostics (cmd/modelcheck, cmd/orttest) screen candidate files against
// the same contract.
const (
	TensorInput     = "input"
	TensorLandmarks = "landmarks"
	TensorScore     = "score"
)

// Detector runs the face-mesh model on whole frames. The model emits the
// full mesh plus a face presence score; frames whose score falls below the
// active threshold report no face. Not safe for concurrent use; the tracking
// session serializes access.
type Detector struct {
	session   *inference.Session
	inputSize int
	inputMean float32
	inputStd  float32

	minDetect float32
	minTrack  float32
	tracking  bool
}

// NewDetector creates a face-mesh detector. minDetect is the presence score
// needed to acquire a face; once a face is held, the lower minTrack score
// keeps it.
func NewDetector(modelPath string, minDetect, minTrack float32, accelerate bool) (*Detector, error) {
	inputNames := []string{TensorInput}
	outputNames := []string{TensorLandmarks, TensorScore}

	session, err := inference.NewSession(modelPath, inputNames, outputNames, accelerate)
	if err != nil {
		return nil, fmt.Errorf("failed to create face mesh session: %w", err)
	}

	return &Detector{
		session:   session,
		inputSize: 192,
		inputMean: 0.0,
		inputStd:  255.0,
		minDetect: minDetect,
		minTrack:  minTrack,
	}, nil
}

// Detect runs the mesh model on one frame. The model consumes the full
// resized frame, so landmark x and y come back normalized to frame
// dimensions directly. Returns nil when no face clears the active threshold.
func (d *Detector) Detect(frame gocv.Mat) (*landmark.Detection, error) {
	// Preprocess: resize to model input, BGR to RGB, scale to [0, 1]
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(frame, &resized, image.Pt(d.inputSize, d.inputSize), 0, 0, gocv.InterpolationLinear)

	rgb := gocv.NewMat()
	defer rgb.Close()
	gocv.CvtColor(resized, &rgb, gocv.ColorBGRToRGB)

	floatMat := gocv.NewMat()
	defer floatMat.Close()
	rgb.ConvertTo(&floatMat, gocv.MatTypeCV32FC3)
	gocv.AddWeighted(floatMat, 1.0/float64(d.inputStd), floatMat, 0, -float64(d.inputMean)/float64(d.inputStd), &floatMat)

	// Convert HWC to NCHW blob
	blob := gocv.BlobFromImage(floatMat, 1.0, image.Pt(d.inputSize, d.inputSize),
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	blobData := blob.ToBytes()
	floatData := bytesToFloat32(blobData)

	inputTensor, err := ort.NewTensor(
		ort.NewShape(1, 3, int64(d.inputSize), int64(d.inputSize)),
		floatData,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	meshTensor, err := inference.CreateEmptyTensor[float32]([]int64{1, meshOutputLen})
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh output tensor: %w", err)
	}
	defer meshTensor.Destroy()

	scoreTensor, err := inference.CreateEmptyTensor[float32]([]int64{1, 1})
	if err != nil {
		return nil, fmt.Errorf("failed to create score output tensor: %w", err)
	}
	defer scoreTensor.Destroy()

	err = d.session.Run([]ort.Value{inputTensor}, []ort.Value{meshTensor, scoreTensor})
	if err != nil {
		return nil, fmt.Errorf("face mesh inference failed: %w", err)
	}

	score := clampScore(scoreTensor.GetData()[0])
	if score < d.threshold() {
		d.tracking = false
		return nil, nil
	}
	d.tracking = true

	set := decodeMesh(meshTensor.GetData(), d.inputSize)
	return &landmark.Detection{Confidence: score, Landmarks: set}, nil
}

// threshold returns the active presence threshold: acquisition when no face
// is held, the lower tracking threshold once one is.
func (d *Detector) threshold() float32 {
	if d.tracking {
		return d.minTrack
	}
	return d.minDetect
}

// Close releases detector resources.
func (d *Detector) Close() error {
	return d.session.Destroy()
}

// MissingTensorNames reports which of the detector's required tensor names
// never appear in a raw ONNX model file. The protobuf stores tensor names as
// plain strings, so a byte scan makes a cheap screen for obviously
// incompatible files; the exact binding check needs the runtime (cmd/orttest).
func MissingTensorNames(model []byte) []string {
	var missing []string
	for _, name := range []string{TensorInput, TensorLandmarks, TensorScore} {
		if !bytes.Contains(model, []byte(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// decodeMesh converts the flat (x, y, z) output tensor to a landmark set.
// The model emits pixel coordinates in input space; dividing by the input
// size normalizes x and y to [0, 1] and keeps z on the same relative scale.
func decodeMesh(raw []float32, inputSize int) landmark.Set {
	set := make(landmark.Set, landmark.MeshPoints)
	scale := 1.0 / float32(inputSize)
	for i := range set {
		set[i] = landmark.Point{
			X: raw[i*3] * scale,
			Y: raw[i*3+1] * scale,
			Z: raw[i*3+2] * scale,
		}
	}
	return set
}

func clampScore(score float32) float32 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func bytesToFloat32(data []byte) []float32 {
	result := make([]float32, len(data)/4)
	for i := range result {
		bits := uint32(data[i*4]) | uint32(data[i*4+1])<<8 | uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24
		result[i] = math.Float32frombits(bits)
	}
	return result
}
