package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/render"
	"github.com/de-tools/learn-atlas/pkg/services/config"
	"github.com/de-tools/learn-atlas/pkg/services/report"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
	"github.com/de-tools/learn-atlas/pkg/store/duckdb"
	"github.com/de-tools/learn-atlas/pkg/store/records"
)

type GenerateCmd struct {
	profilePath string
	profile     string
	templateID  string
	format      string
	departments []string
	courses     []string
	users       []string
	statuses    []string
	preset      string
	from        string
	to          string
	requestedBy string
	outputPath  string
	watermark   string

	registry templates.Registry
	output   io.Writer
}

func NewGenerateCmd(registry templates.Registry, output io.Writer) *cobra.Command {
	gc := &GenerateCmd{registry: registry, output: output}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and render a training report",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.profilePath, "profile", "", "Path to the profiles file")
	cmd.Flags().StringVar(&gc.profile, "profile-name", "default", "Profile name inside the profiles file")
	cmd.Flags().StringVar(&gc.templateID, "template", "", "Report template id")
	cmd.Flags().StringVar(&gc.format, "format", "text", "Output format (text, print, pdf, csv, excel)")
	cmd.Flags().StringSliceVar(&gc.departments, "department", nil, "Restrict to departments")
	cmd.Flags().StringSliceVar(&gc.courses, "course", nil, "Restrict to course ids")
	cmd.Flags().StringSliceVar(&gc.users, "user", nil, "Restrict to user ids")
	cmd.Flags().StringSliceVar(&gc.statuses, "status", nil, "Restrict to statuses")
	cmd.Flags().StringVar(&gc.preset, "preset", "", "Date range preset (today, this_week, this_month, last_month, this_quarter, this_year, custom)")
	cmd.Flags().StringVar(&gc.from, "from", "", "Custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.to, "to", "", "Custom range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.requestedBy, "requested-by", "cli", "Identity recorded as report author")
	cmd.Flags().StringVar(&gc.outputPath, "output", "", "Write the artifact to a file instead of stdout")
	cmd.Flags().StringVar(&gc.watermark, "watermark", "", "Watermark text for the rendered report")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	generator, err := gc.buildGenerator(ctx)
	if err != nil {
		return err
	}

	raw, err := gc.buildFilter()
	if err != nil {
		return err
	}

	data, err := generator.Generate(ctx, gc.templateID, raw, gc.requestedBy)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	cfg := domain.DefaultReportConfig()
	cfg.Watermark = gc.watermark

	out := gc.output
	if gc.outputPath != "" {
		f, err := os.Create(gc.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if render.Format(gc.format) == render.FormatPrint {
		return render.Print(out, data, cfg)
	}

	artifact, err := render.Render(data, render.Format(gc.format), cfg)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, err := out.Write(artifact.Content); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

func (gc *GenerateCmd) buildGenerator(ctx context.Context) (report.Generator, error) {
	profiles, err := config.NewRegistry(gc.profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles from %s: %w", gc.profilePath, err)
	}

	profile, err := profiles.GetProfile(ctx, gc.profile)
	if err != nil {
		return nil, err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.DbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open records database: %w", err)
	}

	store, err := records.NewStore(db)
	if err != nil {
		return nil, err
	}

	return report.NewGenerator(gc.registry, store), nil
}

func (gc *GenerateCmd) buildFilter() (domain.RawFilter, error) {
	raw := domain.RawFilter{
		Departments: gc.departments,
		CourseIDs:   gc.courses,
		UserIDs:     gc.users,
	}

	for _, s := range gc.statuses {
		raw.Status = append(raw.Status, domain.TrainingStatus(s))
	}

	if gc.preset != "" {
		dr := domain.RawDateRange{Preset: domain.DatePreset(gc.preset)}
		if gc.from != "" {
			from, err := time.Parse("2006-01-02", gc.from)
			if err != nil {
				return domain.RawFilter{}, fmt.Errorf("invalid --from date %q", gc.from)
			}
			dr.StartDate = &from
		}
		if gc.to != "" {
			to, err := time.Parse("2006-01-02", gc.to)
			if err != nil {
				return domain.RawFilter{}, fmt.Errorf("invalid --to date %q", gc.to)
			}
			dr.EndDate = &to
		}
		raw.DateRange = &dr
	}

	return raw, nil
}
