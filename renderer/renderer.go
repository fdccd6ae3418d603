// Package renderer assembles advisor values into markdown documents.
//
// Each document is a main assembly template that pulls in partial
// templates, all embedded from this directory. The data flowing through
// the templates comes from the view structs (Household, Plan, Digest)
// built by the New* constructors.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/sonpb/advisor"
)

//go:embed *.md
var templates embed.FS

// Now is the timestamp used in report footers.
// Tests override it through the environment.
func Now() time.Time {
	if os.Getenv("SPB_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("SPB_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// RenderHousehold renders the household analysis report to markdown.
func RenderHousehold(h *Household) string {
	partials := map[string]string{
		"household_title":    "household_title.md",
		"household_client":   "household_client.md",
		"household_balance":  "household_balance.md",
		"household_cashflow": "household_cashflow.md",
		"household_ratings":  "household_ratings.md",
		"household_expenses": "household_expenses.md",
		"household_verdict":  "household_verdict.md",
	}
	return renderTemplate("household", "household.md", partials, h)
}

// RenderPlan renders the goals and allocation plan to markdown.
// An empty goal list short-circuits to the fixed no-goals message.
func RenderPlan(p *Plan) string {
	if len(p.Goals) == 0 {
		return advisor.NoGoalsMessage
	}
	partials := map[string]string{
		"plan_title":      "plan_title.md",
		"plan_goals":      "plan_goals.md",
		"plan_allocation": "plan_allocation.md",
		"plan_strategy":   "plan_strategy.md",
		"plan_monthly":    "plan_monthly.md",
		"plan_monitoring": "plan_monitoring.md",
	}
	return renderTemplate("plan", "plan.md", partials, p)
}

// RenderDigest renders the condensed summary to markdown.
func RenderDigest(d *Digest) string {
	partials := map[string]string{
		"digest_title":      "digest_title.md",
		"digest_client":     "digest_client.md",
		"digest_goals":      "digest_goals.md",
		"digest_allocation": "digest_allocation.md",
	}
	return renderTemplate("digest", "digest.md", partials, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
