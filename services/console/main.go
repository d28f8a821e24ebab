package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/httpclient"
	"github.com/RuvinSL/content-seo-check/pkg/logger"
	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/RuvinSL/content-seo-check/services/console/core"
	"github.com/RuvinSL/content-seo-check/services/console/render"
	"github.com/RuvinSL/content-seo-check/services/console/ui"
)

const serviceName = "seo-check-console"

func main() {
	var (
		serverURL = flag.String("server", "http://localhost:3000", "analysis server base URL")
		urlInput  = flag.String("url", "", "page URL to audit (URL mode)")
		textInput = flag.String("text", "", "raw content to audit (text mode)")
	)
	flag.Parse()

	// Logs go to the side; stdout belongs to the report.
	log := logger.New(serviceName, slog.LevelWarn)

	mode := models.ModeText
	if *urlInput != "" {
		mode = models.ModeURL
	}
	state := ui.NewState(mode)

	// 1. Validation: bad input never reaches the network.
	state = state.StartValidation()
	req, err := core.Validate(state.Mode, *textInput, *urlInput)
	if err != nil {
		state = state.CompleteError(&models.AnalysisError{Message: err.Error()})
		fmt.Fprint(os.Stderr, render.RenderError(state.Err))
		os.Exit(1)
	}

	// 2. Cosmetic progress ramp, racing the real request.
	progress := ui.NewProgressController(ui.DefaultRampTime, func(percent int) {
		fmt.Fprintf(os.Stderr, "\rAnalyzing... %d%%", percent)
	})

	httpClient := httpclient.New(60*time.Second, log)
	orchestrator := core.NewOrchestrator(*serverURL, httpClient, log)

	state = state.BeginSubmission()
	progress.Start()

	report, submitErr := orchestrator.Submit(context.Background(), *req)

	// 3. Join point: the ramp stops only once the request settles.
	if submitErr != nil {
		progress.Reset()
		fmt.Fprint(os.Stderr, "\r\033[K")

		analysisErr, ok := submitErr.(*models.AnalysisError)
		if !ok {
			analysisErr = &models.AnalysisError{Message: submitErr.Error()}
		}
		state = state.CompleteError(analysisErr)
		fmt.Fprint(os.Stderr, render.RenderError(state.Err))
		os.Exit(1)
	}

	progress.Finish()
	fmt.Fprintf(os.Stderr, "\rAnalyzing... %d%%\n\n", progress.Percent())

	state = state.CompleteSuccess(report)
	fmt.Print(render.BuildView(*state.Report).Render())
}
