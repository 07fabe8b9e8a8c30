// Package enhance carries the built-in PulseGrid patch set: the Insights and
// Recession sections for the markup document, their init functions for the
// script, and their rules for the stylesheet.  The payloads are inert data
// embedded verbatim; all behavior lives in patch and runner.
package enhance

import (
	_ "embed"
	"strings"

	"github.com/pulsegrid/sitepatch/patch"
)

var (
	//go:embed fragments/insights.html
	insightsHTML string
	//go:embed fragments/recession.html
	recessionHTML string
	//go:embed fragments/app_functions.js
	uiFunctionsJS string
	//go:embed fragments/sections.css
	sectionsCSS string
)

// Section banners in the markup document double as anchors: the pipeline
// banner locates the insights insertion, and the insights banner (inserted by
// that very fragment) locates the recession insertion.
var (
	bannerBar       = strings.Repeat("═", 43)
	pipelineBanner  = sectionBanner("PIPELINE")
	insightsBanner  = sectionBanner("INSIGHTS — AI NARRATIVE REPORTS")
	recessionBanner = sectionBanner("RECESSION PREDICTOR")
)

func sectionBanner(title string) string {
	return "<!-- " + bannerBar + "\n     " + title + "\n" + bannerBar + " -->"
}

// Targets maps the patch set's logical names to the PulseGrid tree layout.
func Targets() map[string]string {
	return map[string]string{
		"markup": "index.html",
		"script": "js/app.js",
		"style":  "css/styles.css",
	}
}

// Plan returns the built-in specs in dependency order: the insights section
// must land before the recession section, whose anchor is the insights
// banner.  The stylesheet spec has no anchor; its rules are appended.
func Plan() *patch.Plan {
	return &patch.Plan{Specs: []*patch.Spec{
		{
			Name:      "markup/insights",
			Target:    "markup",
			Anchor:    pipelineBanner,
			Fragment:  insightsHTML,
			Placement: patch.Before,
			Marker:    insightsBanner,
		},
		{
			Name:      "markup/recession",
			Target:    "markup",
			Anchor:    insightsBanner,
			Fragment:  recessionHTML,
			Placement: patch.Before,
			Marker:    recessionBanner,
		},
		{
			Name:      "script/ui-init",
			Target:    "script",
			Anchor:    "function initPipelineSection()",
			Fragment:  uiFunctionsJS,
			Placement: patch.Before,
			Marker:    "function initInsights()",
		},
		{
			Name:      "style/sections",
			Target:    "style",
			Fragment:  sectionsCSS,
			Placement: patch.After,
			Marker:    "INSIGHTS & RECESSION TAB STYLES",
		},
	}}
}
