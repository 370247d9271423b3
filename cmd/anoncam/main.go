package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"github.com/faisalnazir/AnonCam/internal/camera"
	"github.com/faisalnazir/AnonCam/internal/facemesh"
	"github.com/faisalnazir/AnonCam/internal/inference"
	"github.com/faisalnazir/AnonCam/internal/landmark"
	"github.com/faisalnazir/AnonCam/internal/trace"
	"github.com/faisalnazir/AnonCam/internal/track"
	"github.com/faisalnazir/AnonCam/internal/ui"
)

func init() {
	// Lock the main goroutine to the main OS thread.
	// This is required on macOS for OpenCV's highgui (window creation).
	runtime.LockOSThread()
}

type Config struct {
	Device    string
	Model     string
	Synthetic bool
	UseGPU    bool
	MinDetect float64
	MinTrack  float64
	Record    string
	Preview   bool
	TargetFPS int
	Verbose   bool
}

func main() {
	config := parseFlags()

	if config.Model == "" && !config.Synthetic {
		fmt.Fprintln(os.Stderr, "Error: --model flag is required (or use --synthetic)")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}

	flag.StringVar(&config.Device, "device", "0", "Camera index or video file path")
	flag.StringVar(&config.Device, "d", "0", "Camera index or video file path (shorthand)")
	flag.StringVar(&config.Model, "model", "", "Face mesh ONNX model path")
	flag.StringVar(&config.Model, "m", "", "Face mesh ONNX model path (shorthand)")
	flag.BoolVar(&config.Synthetic, "synthetic", false, "Use the synthetic landmark source instead of a model")
	flag.BoolVar(&config.UseGPU, "gpu", false, "Use the CoreML execution provider")
	flag.BoolVar(&config.UseGPU, "g", false, "Use the CoreML execution provider (shorthand)")
	flag.Float64Var(&config.MinDetect, "min-detect", 0.5, "Minimum confidence to acquire a face")
	flag.Float64Var(&config.MinTrack, "min-track", 0.5, "Minimum confidence to keep a tracked face")
	flag.StringVar(&config.Record, "record", "", "Record per-frame results to this SQLite file")
	flag.StringVar(&config.Record, "r", "", "Record per-frame results to this SQLite file (shorthand)")
	flag.BoolVar(&config.Preview, "preview", true, "Show preview window")
	flag.BoolVar(&config.Preview, "p", true, "Show preview window (shorthand)")
	flag.IntVar(&config.TargetFPS, "fps", 30, "Target frames per second")
	flag.BoolVar(&config.Verbose, "verbose", false, "Log per-frame tracking diagnostics to stderr")
	flag.BoolVar(&config.Verbose, "v", false, "Log per-frame tracking diagnostics (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "AnonCam - Real-time face tracking core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: anoncam [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  anoncam --model models/face_mesh.onnx\n")
		fmt.Fprintf(os.Stderr, "  anoncam --model models/face_mesh.onnx --gpu --record session.db\n")
		fmt.Fprintf(os.Stderr, "  anoncam --synthetic --device testdata/clip.mp4\n")
	}

	flag.Parse()
	return config
}

func run(config Config) error {
	fmt.Println("AnonCam starting...")

	if config.Verbose {
		track.SetLogWriter(os.Stderr)
	}

	trackConfig := track.DefaultConfig()
	trackConfig.MinDetectionConfidence = float32(config.MinDetect)
	trackConfig.MinTrackingConfidence = float32(config.MinTrack)
	trackConfig.UseGPU = config.UseGPU

	var source track.LandmarkSource
	var sourceLabel string
	if config.Synthetic {
		fmt.Println("Using synthetic landmark source")
		source = landmark.NewSyntheticSource()
		sourceLabel = "synthetic"
	} else {
		fmt.Println("Loading face mesh model...")
		if err := inference.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize inference runtime: %w", err)
		}
		defer inference.Shutdown()

		detector, err := facemesh.NewDetector(config.Model,
			trackConfig.MinDetectionConfidence, trackConfig.MinTrackingConfidence,
			trackConfig.UseGPU)
		if err != nil {
			return fmt.Errorf("failed to load face mesh model: %w", err)
		}
		source = detector
		sourceLabel = config.Device
		fmt.Println("Model loaded successfully")
	}

	session, err := track.NewSession(trackConfig, source)
	if err != nil {
		source.Close()
		return fmt.Errorf("failed to create tracking session: %w", err)
	}
	defer session.Close()

	fmt.Printf("Opening capture device %s...\n", config.Device)
	cam, err := camera.NewCapture(config.Device, config.TargetFPS)
	if err != nil {
		return fmt.Errorf("failed to open capture device: %w", err)
	}
	defer cam.Close()
	fmt.Printf("Capture opened: %dx%d\n", cam.Width(), cam.Height())

	var recorder *trace.Recorder
	if config.Record != "" {
		db, err := trace.Open(config.Record)
		if err != nil {
			return fmt.Errorf("failed to open trace db: %w", err)
		}
		defer db.Close()

		recorder, err = trace.NewRecorder(db, sourceLabel)
		if err != nil {
			return fmt.Errorf("failed to start trace run: %w", err)
		}
		defer recorder.Finish()
		fmt.Printf("Recording to %s (run %s)\n", config.Record, recorder.RunID())
	}

	var window *ui.Window
	if config.Preview {
		window = ui.NewWindow("AnonCam")
		defer window.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	frame := gocv.NewMat()
	defer frame.Close()

	fmt.Println("\nRunning... Press 'q' to quit")

	seq := 0
	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		default:
		}

		if !cam.Read(&frame) {
			continue
		}
		if frame.Empty() {
			continue
		}

		result := session.ProcessFrame(&frame)
		timing := session.LastTiming()

		if recorder != nil {
			if err := recorder.Record(seq, time.Now(), result, timing); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		}
		seq++

		ui.DrawResult(&frame, result)

		if timing.Total > 0 {
			fps := 1.0 / timing.Total.Seconds()
			fmt.Printf("\rD:%3.0fms T:%3.0fms (%.1f FPS)  ",
				float64(timing.Detect.Milliseconds()),
				float64(timing.Total.Milliseconds()),
				fps)
		}

		if window != nil {
			ui.DrawHUD(&frame, window.FPS(), timing)
			window.Show(&frame)
			// WaitKey must be called to process window events on macOS
			key := window.WaitKey(10)
			if key == 'q' || key == 27 { // 'q' or ESC
				fmt.Println("\nQuitting...")
				return nil
			}
		}
	}
}
