package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/filter"
	"arcade-catalog/feature/browse"
	"arcade-catalog/feature/integrity/checks"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	okColor      = color.New(color.FgHiGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

// topOrder is the order top lists are printed in.
var topOrder = []catalog.IndexKind{
	catalog.IndexManufacturers,
	catalog.IndexSeries,
	catalog.IndexLanguages,
	catalog.IndexPlayers,
	catalog.IndexCategories,
}

// writeStructured encodes v as json or yaml.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printReport(w io.Writer, r *browse.Report) {
	headingColor.Fprintln(w, "Catalog")
	rows := []struct {
		label string
		value int
	}{
		{"Machines", r.Stats.Machines},
		{"Originals", r.Stats.Originals},
		{"Clones", r.Stats.Clones},
		{"Series", r.Stats.Series},
		{"Manufacturers", r.Stats.Manufacturers},
		{"Players", r.Stats.Players},
		{"Languages", r.Stats.Languages},
		{"Categories", r.Stats.Categories},
		{"Subcategories", r.Stats.Subcategories},
		{"With history", r.Stats.WithHistory},
		{"With resources", r.Stats.WithResources},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-16s %d\n", row.label, row.value)
	}

	for _, kind := range topOrder {
		entries := r.Top[kind]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintln(w)
		headingColor.Fprintf(w, "Top %s\n", kind)
		for i, e := range entries {
			fmt.Fprintf(w, "  %2d. %-40s %d\n", i+1, e.Name, e.Machines)
		}
	}
}

// maxPlanSamples caps the machines listed per reason.
const maxPlanSamples = 5

func printPlan(w io.Writer, plan *filter.Plan) {
	headingColor.Fprintf(w, "Filter plan %v\n", plan.Kinds)
	fmt.Fprintf(w, "  Scanned:  %d\n", plan.Summary.Scanned)
	fmt.Fprintf(w, "  Removals: %d\n", plan.Summary.Removals)

	byReason := make(map[filter.Kind][]string)
	for _, a := range plan.Actions {
		byReason[a.Reason] = append(byReason[a.Reason], a.Key)
	}
	reasons := make([]string, 0, len(byReason))
	for r := range byReason {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)

	for _, r := range reasons {
		keys := byReason[filter.Kind(r)]
		fmt.Fprintln(w)
		warnColor.Fprintf(w, "  %s (%d)\n", r, len(keys))
		for i, k := range keys {
			if i == maxPlanSamples {
				fmt.Fprintf(w, "    ... %d more\n", len(keys)-maxPlanSamples)
				break
			}
			fmt.Fprintf(w, "    - %s\n", k)
		}
	}
}

func printSources(w io.Writer, statuses []checks.SourceStatus) {
	headingColor.Fprintln(w, "Sources")
	for _, s := range statuses {
		switch {
		case s.Found:
			okColor.Fprintf(w, "  ✓ %-10s", s.Source)
			fmt.Fprintf(w, " %s (%d bytes)\n", s.Path, s.Size)
		case s.Required:
			failColor.Fprintf(w, "  ✗ %-10s", s.Source)
			fmt.Fprintf(w, " missing %s\n", s.Path)
		default:
			warnColor.Fprintf(w, "  - %-10s", s.Source)
			fmt.Fprintf(w, " missing %s\n", s.Path)
		}
	}
}

func printSchema(w io.Writer, r *checks.SchemaReport) {
	headingColor.Fprintf(w, "Schema (%s)\n", r.Dialect)
	names := make([]string, 0, len(r.Tables))
	for name := range r.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := r.Tables[name]
		if t.Status == "ok" {
			okColor.Fprintf(w, "  ✓ %s\n", name)
			continue
		}
		failColor.Fprintf(w, "  ✗ %s (%s)\n", name, t.Status)
		for _, c := range t.MissingColumns {
			fmt.Fprintf(w, "      missing column %s\n", c)
		}
		for _, m := range t.TypeMismatches {
			fmt.Fprintf(w, "      %s\n", m)
		}
	}
	for _, e := range r.Errors {
		failColor.Fprintf(w, "  ! %s\n", e)
	}
}

func printPublished(w io.Writer, r *publishedResult) {
	headingColor.Fprintf(w, "Published (%s)\n", r.Bucket)
	if len(r.Missing) == 0 {
		okColor.Fprintln(w, "  ✓ all files present")
		return
	}
	for _, name := range r.Missing {
		failColor.Fprintf(w, "  ✗ %s\n", name)
	}
}
