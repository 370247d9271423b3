package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/tsawler/go-metal/checkpoints"

	"github.com/faisalnazir/AnonCam/internal/facemesh"
)

type Config struct {
	Model  string
	Layers bool
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}

	flag.StringVar(&config.Model, "model", "models/face_mesh.onnx", "ONNX model path to check")
	flag.StringVar(&config.Model, "m", "models/face_mesh.onnx", "ONNX model path to check (shorthand)")
	flag.BoolVar(&config.Layers, "layers", false, "Print every imported layer")
	flag.BoolVar(&config.Layers, "l", false, "Print every imported layer (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "modelcheck - face mesh model compatibility screen\n\n")
		fmt.Fprintf(os.Stderr, "Checks whether a model file names the tensors the tracking pipeline\n")
		fmt.Fprintf(os.Stderr, "binds, and whether go-metal's importer can load it for pure-Go\n")
		fmt.Fprintf(os.Stderr, "inspection. The authoritative runtime check is ./cmd/orttest.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modelcheck\n")
		fmt.Fprintf(os.Stderr, "  modelcheck --model models/face_mesh.onnx --layers\n")
	}

	flag.Parse()
	return config
}

func run(config Config) error {
	info, err := os.Stat(config.Model)
	if err != nil {
		return fmt.Errorf("model file %s not found (run ./scripts/download_models.sh)", config.Model)
	}
	fmt.Printf("Checking %s (%.1f MB)\n", config.Model, float64(info.Size())/(1024*1024))

	raw, err := os.ReadFile(config.Model)
	if err != nil {
		return fmt.Errorf("failed to read model: %w", err)
	}

	fmt.Println("\nTensor contract:")
	missing := facemesh.MissingTensorNames(raw)
	if len(missing) == 0 {
		fmt.Println("  ✓ file names every tensor the pipeline binds")
	} else {
		for _, name := range missing {
			fmt.Printf("  ❌ tensor name %q not found in file\n", name)
		}
	}

	fmt.Println("\ngo-metal import:")
	importer := checkpoints.NewONNXImporter()
	checkpoint, err := importer.ImportFromONNX(config.Model)
	if err != nil {
		fmt.Printf("  ❌ import failed: %v\n", err)
		fmt.Println("\n  go-metal covers Conv, MatMul, Add, Relu, LeakyRelu, Sigmoid,")
		fmt.Println("  Tanh, BatchNorm, Dropout, Softmax and Flatten; AnonCam runs")
		fmt.Println("  anything else through ONNX Runtime instead.")
		return fmt.Errorf("go-metal cannot import %s", config.Model)
	}

	params := 0
	for _, w := range checkpoint.Weights {
		params += len(w.Data)
	}
	fmt.Printf("  ✅ imported: %d layers, %d weight tensors, %d parameters\n",
		len(checkpoint.ModelSpec.Layers), len(checkpoint.Weights), params)
	if desc := checkpoint.Metadata.Description; desc != "" {
		fmt.Printf("  %s\n", desc)
	}

	kindCounts := make(map[string]int)
	for _, layer := range checkpoint.ModelSpec.Layers {
		kindCounts[layer.Type.String()]++
	}
	kinds := make([]string, 0, len(kindCounts))
	for kind := range kindCounts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	fmt.Println("\nLayer mix:")
	for _, kind := range kinds {
		fmt.Printf("  %-12s x%d\n", kind, kindCounts[kind])
	}

	if config.Layers {
		fmt.Println("\nLayers:")
		for i, layer := range checkpoint.ModelSpec.Layers {
			fmt.Printf("  %d: %s (%s)\n", i+1, layer.Name, layer.Type)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("model does not name required tensors %v; use ./cmd/orttest to inspect its real bindings", missing)
	}
	fmt.Println("\nModel passes the static screen. Run ./cmd/orttest for the runtime check.")
	return nil
}
