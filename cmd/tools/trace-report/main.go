package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/faisalnazir/AnonCam/internal/trace"
)

func main() {
	dbPath := flag.String("db", "", "Trace SQLite file recorded by anoncam --record")
	runID := flag.String("run", "", "Run ID to report on (default: latest)")
	outPath := flag.String("out", "trace_report.html", "Output HTML report path")
	list := flag.Bool("list", false, "List recorded runs and exit")
	keep := flag.Int("keep", 0, "Prune all but the newest N runs and exit")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: trace-report -db session.db [-run ID] [-out report.html]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	db, err := trace.Open(*dbPath)
	if err != nil {
		log.Fatalf("open %s: %v", *dbPath, err)
	}
	defer db.Close()

	if *list {
		runs, err := trace.ListRuns(db)
		if err != nil {
			log.Fatalf("list runs: %v", err)
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %s  %d frames\n",
				r.RunID, r.Started.Format("2006-01-02 15:04:05"), r.Source, r.FrameCount)
		}
		return
	}

	if *keep > 0 {
		removed, err := trace.PruneRuns(db, *keep)
		if err != nil {
			log.Fatalf("prune runs: %v", err)
		}
		fmt.Printf("Pruned %d run(s), kept newest %d\n", removed, *keep)
		return
	}

	id := *runID
	if id == "" {
		id, err = trace.LatestRunID(db)
		if err != nil {
			log.Fatalf("find latest run: %v", err)
		}
	}

	frames, err := trace.LoadFrames(db, id)
	if err != nil {
		log.Fatalf("load frames: %v", err)
	}
	if len(frames) == 0 {
		log.Fatalf("run %s has no frames", id)
	}

	summary := trace.Summarize(frames)
	printSummary(id, summary)

	if err := writeReport(*outPath, id, frames); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("Report written to %s\n", *outPath)
}

func printSummary(runID string, s trace.Summary) {
	fmt.Printf("Run %s: %d frames\n", runID, s.Frames)
	fmt.Printf("  face ratio:  %.1f%% (%d/%d)\n", s.FaceRatio*100, s.FaceFrames, s.Frames)
	fmt.Printf("  confidence:  mean %.3f\n", s.MeanConfidence)
	fmt.Printf("  pitch:       mean %+.3f rad, std %.3f\n", s.PitchMean, s.PitchStd)
	fmt.Printf("  yaw:         mean %+.3f rad, std %.3f\n", s.YawMean, s.YawStd)
	fmt.Printf("  roll:        mean %+.3f rad, std %.3f\n", s.RollMean, s.RollStd)
	fmt.Printf("  detect time: mean %.1fms, p95 %.1fms\n", s.DetectMeanMillis, s.DetectP95Millis)
}

func writeReport(path, runID string, frames []trace.FrameRow) error {
	var seq []int
	var pitch, yaw, roll, confidence, detect []opts.LineData
	for _, f := range frames {
		seq = append(seq, f.Seq)
		pitch = append(pitch, opts.LineData{Value: f.Pitch})
		yaw = append(yaw, opts.LineData{Value: f.Yaw})
		roll = append(roll, opts.LineData{Value: f.Roll})
		confidence = append(confidence, opts.LineData{Value: f.Confidence})
		detect = append(detect, opts.LineData{Value: float64(f.DetectMicros) / 1000.0})
	}

	poseChart := newLine("Head pose", "radians")
	poseChart.SetXAxis(seq).
		AddSeries("pitch", pitch).
		AddSeries("yaw", yaw).
		AddSeries("roll", roll)

	confChart := newLine("Detection confidence", "score")
	confChart.SetXAxis(seq).
		AddSeries("confidence", confidence)

	detectChart := newLine("Detect stage time", "ms")
	detectChart.SetXAxis(seq).
		AddSeries("detect", detect)

	page := components.NewPage()
	page.PageTitle = "AnonCam trace " + runID
	page.AddCharts(poseChart, confChart, detectChart)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}
