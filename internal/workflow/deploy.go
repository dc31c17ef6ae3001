package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/google/uuid"
)

const DefaultEnvironment = "staging"

// DeployableServices lists the valid deploy targets
var DeployableServices = []string{"cerberus", "kronos", "hermes", "vortex", "opticus", "all"}

// Stage is one scripted step of a deployment
type Stage struct {
	Label string
	Delay time.Duration
}

var deployStages = []Stage{
	{"Validating configuration", 500 * time.Millisecond},
	{"Building container image", 800 * time.Millisecond},
	{"Pushing to registry", 600 * time.Millisecond},
	{"Updating deployment manifest", 400 * time.Millisecond},
	{"Rolling out new pods", 1000 * time.Millisecond},
	{"Running health checks", 500 * time.Millisecond},
}

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// HuhConfirmer prompts on the terminal
type HuhConfirmer struct{}

// Confirm shows a huh confirm field defaulting to no
func (HuhConfirmer) Confirm(prompt string) (bool, error) {
	proceed := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes").
				Negative("No").
				Value(&proceed),
		),
	).WithTheme(huh.ThemeCatppuccin()).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return proceed, nil
}

// DeployOptions configures a deploy session
type DeployOptions struct {
	Service     string
	Environment string
	SkipConfirm bool
	Confirmer   Confirmer
}

// DeployResult reports how a deploy session ended
type DeployResult struct {
	Deployed     bool
	Cancelled    bool
	UnknownName  bool
	DeploymentID string
}

// IsDeployable reports whether service is a known deploy target
func IsDeployable(service string) bool {
	s := strings.ToLower(service)
	for _, valid := range DeployableServices {
		if s == valid {
			return true
		}
	}
	return false
}

// Deploy validates the target, confirms, and plays the deployment stages.
// An unknown service is reported on the console, not returned as an error.
func Deploy(ctx context.Context, env Env, opts DeployOptions) (DeployResult, error) {
	if opts.Environment == "" {
		opts.Environment = DefaultEnvironment
	}
	c := env.Console

	c.Blank()
	c.Header("TITAN DEPLOYMENT ENGINE")
	c.Blank()

	service := strings.ToLower(opts.Service)
	if !IsDeployable(service) {
		c.Line("%s Unknown service: %s", ui.ErrorStyle.Bold(true).Render("✖"), ui.ErrorStyle.Render(opts.Service))
		c.Blank()
		c.Line("%s", ui.MutedStyle.Render("Available services:"))
		for _, svc := range DeployableServices {
			c.Line("  %s %s", ui.AccentStyle.Render("•"), svc)
		}
		c.Blank()
		return DeployResult{UnknownName: true}, nil
	}

	label := ui.BoldAccent.Render(fmt.Sprintf("%s %s", ServiceIcon(service), strings.ToUpper(service)))
	envLabel := ui.WarningStyle.Bold(true).Render(opts.Environment)

	c.Line("📦 Deploy %s to %s", label, envLabel)
	c.Blank()
	c.Line("%s", ui.MutedStyle.Render("Deployment Configuration:"))
	c.ShortDivider()
	c.KV("Service", ui.AccentStyle.Render(strings.ToUpper(service)))
	c.KV("Environment", ui.WarningStyle.Render(opts.Environment))
	c.KV("Strategy", "Rolling Update")
	c.KV("Replicas", "3")
	c.KV("Health Check", "Enabled")
	c.Blank()

	if !opts.SkipConfirm {
		confirmer := opts.Confirmer
		if confirmer == nil {
			confirmer = HuhConfirmer{}
		}
		proceed, err := confirmer.Confirm("Proceed with deployment?")
		if err != nil {
			return DeployResult{}, err
		}
		if !proceed {
			c.Blank()
			c.Warning("Deployment cancelled")
			c.Blank()
			return DeployResult{Cancelled: true}, nil
		}
	}

	c.Blank()

	bar := ui.NewProgressBar(c, len(deployStages))
	for _, stage := range deployStages {
		bar.SetMessage(stage.Label)
		if err := env.sleep(ctx, stage.Delay); err != nil {
			bar.Finish()
			return DeployResult{}, err
		}
		bar.Inc()
	}
	bar.Finish()

	result := DeployResult{Deployed: true, DeploymentID: uuid.NewString()}

	c.Blank()
	c.Line("%s %s deployed successfully to %s!", ui.SuccessStyle.Bold(true).Render("✓"), label, envLabel)

	if env.Verbose {
		c.Blank()
		c.Line("%s", ui.MutedStyle.Render("Deployment Details:"))
		c.KV("Deployment ID", result.DeploymentID)
		c.KV("Image", fmt.Sprintf("titan/%s:latest", service))
		c.KV("Pods", "3/3 Running")
		c.KV("Endpoint", fmt.Sprintf("https://%s.%s.titan.io", service, opts.Environment))
	}
	c.Blank()

	return result, nil
}
