package main

import (
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/faisalnazir/AnonCam/internal/facemesh"
)

// The tensor names the tracking pipeline binds to. A model that loads but
// does not expose these will fail at session creation inside AnonCam.
var (
	requiredInputs  = []string{facemesh.TensorInput}
	requiredOutputs = []string{facemesh.TensorLandmarks, facemesh.TensorScore}
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: orttest <model.onnx>")
		fmt.Println("\nThis tool tests if ONNX Runtime can load a model and whether")
		fmt.Println("it exposes the tensors the face tracking pipeline expects.")
		os.Exit(1)
	}

	modelPath := os.Args[1]
	fmt.Printf("Testing ONNX model: %s\n", modelPath)

	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		fmt.Printf("Error: File not found: %s\n", modelPath)
		os.Exit(1)
	}

	libPath := os.Getenv("ONNXRUNTIME_LIB")
	if libPath == "" {
		libPath = "/opt/homebrew/lib/libonnxruntime.dylib"
	}
	ort.SetSharedLibraryPath(libPath)

	fmt.Println("Initializing ONNX Runtime...")
	err := ort.InitializeEnvironment()
	if err != nil {
		fmt.Printf("❌ Failed to initialize ONNX Runtime: %v\n", err)
		fmt.Println("\nYou may need to install ONNX Runtime:")
		fmt.Println("  brew install onnxruntime")
		os.Exit(1)
	}
	defer ort.DestroyEnvironment()

	fmt.Println("✓ ONNX Runtime initialized")

	fmt.Println("\nGetting model info...")
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		fmt.Printf("❌ Failed to get model info: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ SUCCESS! Model loaded successfully.")

	fmt.Printf("\nInputs (%d):\n", len(inputs))
	for _, info := range inputs {
		fmt.Printf("  %s: shape=%v, type=%v\n", info.Name, info.Dimensions, info.DataType)
	}

	fmt.Printf("\nOutputs (%d):\n", len(outputs))
	for _, info := range outputs {
		fmt.Printf("  %s: shape=%v, type=%v\n", info.Name, info.Dimensions, info.DataType)
	}

	fmt.Println("\nChecking face mesh tensor contract:")
	ok := true
	for _, name := range requiredInputs {
		if !hasTensor(inputs, name) {
			fmt.Printf("  ❌ missing input %q\n", name)
			ok = false
		}
	}
	for _, name := range requiredOutputs {
		if !hasTensor(outputs, name) {
			fmt.Printf("  ❌ missing output %q\n", name)
			ok = false
		}
	}
	if ok {
		fmt.Println("  ✓ all expected tensors present")
	} else {
		fmt.Println("  This model will not work with the tracking pipeline as-is.")
	}

	fmt.Println("\nMetadata:")
	metadata, err := ort.GetModelMetadata(modelPath)
	if err != nil {
		fmt.Printf("  (Could not read metadata: %v)\n", err)
	} else {
		if producer, err := metadata.GetProducerName(); err == nil {
			fmt.Printf("  Producer: %s\n", producer)
		}
		if version, err := metadata.GetVersion(); err == nil {
			fmt.Printf("  Version: %d\n", version)
		}
		if domain, err := metadata.GetDomain(); err == nil {
			fmt.Printf("  Domain: %s\n", domain)
		}
		if desc, err := metadata.GetDescription(); err == nil {
			fmt.Printf("  Description: %s\n", desc)
		}
		metadata.Destroy()
	}
}

func hasTensor(infos []ort.InputOutputInfo, name string) bool {
	for _, info := range infos {
		if info.Name == name {
			return true
		}
	}
	return false
}
