package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/davibonetto/titan-cli/internal/ui"
)

var visionStages = []string{
	"Detecting available cameras...",
	"Loading computer vision models...",
	"Calibrating optical sensors...",
	"Establishing data stream...",
}

// Detection is one scripted stream event
type Detection struct {
	Category   string
	Label      string
	Confidence float64
	Source     string
}

var detections = []Detection{
	{"OBJECT", "person", 0.95, "Primary frame"},
	{"MOTION", "walking", 0.87, "Vector analysis"},
	{"SCENE", "indoor", 0.92, "Environment"},
	{"OBJECT", "laptop", 0.89, "Secondary frame"},
	{"GESTURE", "typing", 0.78, "Action detection"},
}

// VisionOptions configures a vision session
type VisionOptions struct {
	Stream bool
	Index  uint
}

// Vision plays the connection stages and, when streaming, the detections
func Vision(ctx context.Context, env Env, opts VisionOptions) error {
	c := env.Console

	c.Blank()
	c.Header("OPTICUS VISION PIPELINE")
	c.Blank()
	c.Line("👁️ Connecting to OPTICUS stream...")
	c.Line("📷 Source index: %d", opts.Index)
	if opts.Stream {
		c.Line("📡 Streaming mode: %s", ui.SuccessStyle.Render("ENABLED"))
	}
	c.Blank()

	spin := ui.NewSpinner(c, spinner.Globe, "  ")
	spin.Start("Initializing vision pipeline...")
	for _, stage := range visionStages {
		spin.SetMessage(stage)
		if err := env.sleep(ctx, 400*time.Millisecond); err != nil {
			spin.Stop()
			return err
		}
	}
	spin.Stop()

	c.Divider()
	c.Blank()
	c.Success("Connection established!")
	c.Blank()

	c.Line("%s", ui.BoldAccent.Render("Stream Configuration:"))
	c.ShortDivider()
	c.KV("Resolution", "1920x1080")
	c.KV("FPS", "30")
	c.KV("Codec", "H.264")
	c.KV("Latency", "45ms")
	c.KV("Models", "YOLO-v8, ResNet-50")
	c.Blank()

	if opts.Stream {
		c.Line("%s", ui.WarningStyle.Bold(true).Render("Live Stream Output:"))
		c.ShortDivider()
		for _, d := range detections {
			c.Line("  %s", FormatDetection(d))
			if err := env.sleep(ctx, 200*time.Millisecond); err != nil {
				return err
			}
		}
		c.Blank()
		c.Line("%s Stream paused - Press Ctrl+C to exit", ui.WarningStyle.Render("⏸"))
	} else {
		c.Info("Use --stream flag for live output")
	}

	if env.Verbose {
		c.Blank()
		c.Line("%s", ui.MutedStyle.Render("Pipeline Metrics:"))
		c.KV("GPU Memory", "2.1GB / 8GB")
		c.KV("Inference", "12ms avg")
		c.KV("Throughput", "28 fps")
	}
	c.Blank()

	return nil
}

// FormatDetection renders a detection with a ten-cell confidence bar
func FormatDetection(d Detection) string {
	filled := int(d.Confidence * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}

	return fmt.Sprintf("%s [%.0f%%] %s%s %s (%s)",
		ui.AccentStyle.Render("["+d.Category+"]"),
		d.Confidence*100,
		ui.SuccessStyle.Render(strings.Repeat("█", filled)),
		ui.MutedStyle.Render(strings.Repeat("░", 10-filled)),
		ui.TitleStyle.Render(d.Label),
		ui.MutedStyle.Render(d.Source),
	)
}
