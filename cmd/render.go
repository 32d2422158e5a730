package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rozvrh-svg/rozvrh/app"
	"github.com/rozvrh-svg/rozvrh/config"
	"github.com/rozvrh-svg/rozvrh/core/model"
	"github.com/rozvrh-svg/rozvrh/core/source"
	"github.com/rozvrh-svg/rozvrh/core/timetable"
	_ "github.com/rozvrh-svg/rozvrh/infra/store"
)

var renderFlags struct {
	class string
	id    string
	start string
	end   string
	out   string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a timetable to an SVG file",
}

var renderWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Render the weekly view of a group, teacher or classroom",
	RunE:  runRenderWeek,
}

var renderSemesterCmd = &cobra.Command{
	Use:   "semester",
	Short: "Render the semester overview",
	RunE:  runRenderSemester,
}

func init() {
	for _, c := range []*cobra.Command{renderWeekCmd, renderSemesterCmd} {
		c.Flags().StringVarP(&renderFlags.class, "type", "t", "S", "entity type: S (group), T (teacher) or C (classroom)")
		c.Flags().StringVarP(&renderFlags.id, "id", "i", "", "group name, teacher id or classroom id")
		c.Flags().StringVarP(&renderFlags.start, "start", "s", "", "first day (YYYY-MM-DD)")
		c.Flags().StringVarP(&renderFlags.out, "out", "o", "-", "output file, - for stdout")
	}
	_ = renderWeekCmd.MarkFlagRequired("id")
	renderSemesterCmd.Flags().StringVarP(&renderFlags.end, "end", "e", "", "last day (YYYY-MM-DD)")
	renderCmd.AddCommand(renderWeekCmd, renderSemesterCmd)
	rootCmd.AddCommand(renderCmd)
}

func newRenderer(cfg *config.Config) (*app.Renderer, source.Source, error) {
	src, err := source.New(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("event source: %w", err)
	}
	return app.NewRenderer(src, cfg.Layout), src, nil
}

func runRenderWeek(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	class, err := model.ParseEntityClass(renderFlags.class)
	if err != nil {
		return err
	}
	start := timetable.WeekStart(time.Now())
	if renderFlags.start != "" {
		if start, err = time.Parse(config.DateLayout, renderFlags.start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}
	r, src, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	res, err := r.Weekly(background(cmd), timetable.WeeklyQuery{Class: class, ID: renderFlags.id, Start: start})
	if err != nil {
		return err
	}
	return writeResult(cmd, res)
}

func runRenderSemester(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if renderFlags.start != "" {
		cfg.Semester.Start = renderFlags.start
	}
	if renderFlags.end != "" {
		cfg.Semester.End = renderFlags.end
	}
	if err := cfg.Semester.Validate(); err != nil {
		return err
	}
	start, end, _ := cfg.Semester.Range()
	class, err := model.ParseEntityClass(renderFlags.class)
	if err != nil {
		return err
	}
	id := renderFlags.id
	if id == "" && class == model.ClassGroup {
		id = cfg.Semester.Group
	}
	if id == "" {
		return fmt.Errorf("--id is required for type %s", class.Tag())
	}
	r, src, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	res, err := r.Semester(background(cmd), timetable.SemesterQuery{Class: class, ID: id, Start: start, End: end})
	if err != nil {
		return err
	}
	return writeResult(cmd, res)
}

func writeResult(cmd *cobra.Command, res timetable.Result) error {
	var w io.Writer = cmd.OutOrStdout()
	if renderFlags.out != "-" && renderFlags.out != "" {
		f, err := os.Create(renderFlags.out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	if _, err := io.WriteString(w, res.SVG()); err != nil {
		return err
	}
	if len(res.Skipped) > 0 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d lessons had no grid position and were left out\n", len(res.Skipped))
	}
	return nil
}
