package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/schedule"
	"github.com/liantichess/variants/internal/ui"
)

var (
	scheduleDate      string
	scheduleDays      int
	scheduleFormat    string
	scheduleCreatedBy string
)

// scheduleCmd plans upcoming arenas.
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan upcoming arena tournaments",
	Long: `Plan the recurring arenas of the antichess family.

Each month has one monthly arena per variant on consecutive days, shields
for antichess, anti-antichess and losers, 960 monthlies, a coffee-day
arena and a weekly arena rotating through antiatomic, antihouse and
antipawns. This command lists the tournaments starting between the given
day and the end of the day --days later.

Examples:
  variants schedule
  variants schedule --date 2024-03-01 --days 14
  variants schedule --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Plan as of this UTC day, YYYY-MM-DD (default: today)")
	scheduleCmd.Flags().IntVar(&scheduleDays, "days", -1, "Days past the given day to plan (default: from config)")
	scheduleCmd.Flags().StringVar(&scheduleFormat, "format", "table", "Output format: table or yaml")
	scheduleCmd.Flags().StringVar(&scheduleCreatedBy, "created-by", "", "Tournament creator (default: from config)")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if scheduleFormat != "table" && scheduleFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want table or yaml)", scheduleFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if scheduleDate != "" {
		now, err = time.Parse(time.DateOnly, scheduleDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
	}
	now = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	opts := schedule.Options{
		MaxDays:   cfg.Schedule.Days,
		CreatedBy: cfg.Schedule.CreatedBy,
	}
	if scheduleDays >= 0 {
		opts.MaxDays = scheduleDays
	}
	if scheduleCreatedBy != "" {
		opts.CreatedBy = scheduleCreatedBy
	}

	tournaments := schedule.NewTournaments(nil, now, opts)

	out := cmd.OutOrStdout()
	if scheduleFormat == "yaml" {
		return writeYAML(out, tournaments)
	}

	ui.King("%d tournaments from %s through %s",
		len(tournaments), now.Format(time.DateOnly), now.AddDate(0, 0, opts.MaxDays).Format(time.DateOnly))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "START\tNAME\tVARIANT\tTC\tMINUTES")
	for _, t := range tournaments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d+%d\t%d\n",
			t.StartDate.Format("2006-01-02 15:04"), t.Name, t.Variant, t.Base, t.Inc, t.Minutes)
	}
	return w.Flush()
}
