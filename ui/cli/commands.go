// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/examlist/internal/db"
	"github.com/toeirei/examlist/internal/exam"
	"github.com/toeirei/examlist/internal/i18n"
	"github.com/toeirei/examlist/internal/logging"
	"github.com/toeirei/examlist/internal/schedule"
)

// fileArg returns the file named on the command line, falling back to the
// configured schedule file.
func fileArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if appConfig.Schedule.File != "" {
		return appConfig.Schedule.File, nil
	}
	return "", errors.New("no file given and schedule.file is not configured")
}

// loadSchedule reads the stored exams into a Schedule.
func loadSchedule(cmd *cobra.Command) (*schedule.Schedule, error) {
	l, err := store.LoadSchedule(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("could not load exams: %w", err)
	}
	return schedule.FromList(l), nil
}

func newAddCmd() *cobra.Command {
	var (
		course, month, day, duration int
		hour                         float64
		link                         string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an exam",
		Long: `Adds an exam to the schedule. Dates use a 12 month calendar with 30 days
per month; the start hour may carry a half hour, e.g. 9.5 for 9:30.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := exam.New(course, month, day, hour, duration, link)
			if err != nil {
				return err
			}
			if _, err := store.AddExam(cmd.Context(), e); err != nil {
				return fmt.Errorf("could not add exam: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.success", course))
			return nil
		},
	}
	cmd.Flags().IntVar(&course, "course", 0, "Course number")
	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12)")
	cmd.Flags().IntVar(&day, "day", 0, "Day (1-30)")
	cmd.Flags().Float64Var(&hour, "hour", 0, "Start hour (0-23.5)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in hours")
	cmd.Flags().StringVar(&link, "link", "", "Meeting link")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("hour")
	return cmd
}

func newListCmd() *cobra.Command {
	var course int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exams in calendar order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(cmd)
			if err != nil {
				return err
			}
			exams := s.Exams()
			if cmd.Flags().Changed("course") {
				exams = s.ForCourse(course).Values()
			}
			renderExams(cmd.OutOrStdout(), exams)
			return nil
		},
	}
	cmd.Flags().IntVar(&course, "course", 0, "Only list exams of this course")
	return cmd
}

func newUpcomingCmd() *cobra.Command {
	var month, day int
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List exams on or after a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 1 || month > exam.MaxMonth || day < 1 || day > exam.DaysInMonth {
				return exam.ErrInvalidDate
			}
			s, err := loadSchedule(cmd)
			if err != nil {
				return err
			}
			upcoming := s.Upcoming(month, day)
			if upcoming.Len() == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("upcoming.none", day, month))
				return nil
			}
			renderExams(cmd.OutOrStdout(), upcoming.Values())
			return nil
		},
	}
	cmd.Flags().IntVar(&month, "month", 1, "Month (1-12)")
	cmd.Flags().IntVar(&day, "day", 1, "Day (1-30)")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	var course int
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove every exam of a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(cmd)
			if err != nil {
				return err
			}
			n, err := s.RemoveCourse(course)
			if err != nil {
				return err
			}
			if n == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("remove.none", course))
				return nil
			}
			if err := store.ReplaceAll(cmd.Context(), s.List()); err != nil {
				return fmt.Errorf("could not store exams: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("remove.success", n, course))
			return nil
		},
	}
	cmd.Flags().IntVar(&course, "course", 0, "Course number")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newShiftCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Move every exam by a number of days",
		Long:  "Moves every exam by --days (negative values move backwards). Nothing changes if any exam would leave the year.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchedule(cmd)
			if err != nil {
				return err
			}
			if err := s.Shift(days); err != nil {
				return err
			}
			if err := store.ReplaceAll(cmd.Context(), s.List()); err != nil {
				return fmt.Errorf("could not store exams: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("shift.success", s.Len(), days))
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "Number of days")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

func newLinkCmd() *cobra.Command {
	var (
		course int
		url    string
	)
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Set the meeting link of a course's exams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := store.UpdateLink(cmd.Context(), course, url)
			if err != nil {
				return fmt.Errorf("could not update link: %w", err)
			}
			if n == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("remove.none", course))
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("link.success", n, course))
			return nil
		},
	}
	cmd.Flags().IntVar(&course, "course", 0, "Course number")
	cmd.Flags().StringVar(&url, "url", "", "Meeting link")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newImportCmd() *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import exams from a YAML file",
		Long:  "Imports exams from a YAML file; files ending in .zst are read zstd-compressed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fileArg(args)
			if err != nil {
				return err
			}
			in, err := schedule.Load(path)
			if err != nil {
				return err
			}
			if replace {
				if err := store.ReplaceAll(cmd.Context(), in.List()); err != nil {
					return fmt.Errorf("could not store exams: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("import.success", in.Len(), path))
				return nil
			}

			added := 0
			for _, e := range in.Exams() {
				if _, err := store.AddExam(cmd.Context(), e); err != nil {
					if errors.Is(err, db.ErrDuplicate) {
						logging.Warnf("skipping duplicate exam of course %d on %d.%d", e.CourseID(), e.Day(), e.Month())
						continue
					}
					return fmt.Errorf("could not add exam: %w", err)
				}
				added++
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("import.success", added, path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored exams instead of adding to them")
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export exams to a YAML file",
		Long:  "Exports all exams to a YAML file; files ending in .zst are written zstd-compressed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fileArg(args)
			if err != nil {
				return err
			}
			s, err := loadSchedule(cmd)
			if err != nil {
				return err
			}
			if err := s.Save(path); err != nil {
				return fmt.Errorf("could not export exams: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("export.success", s.Len(), path))
			return nil
		},
	}
	return cmd
}

func newMatamCmd() *cobra.Command {
	var add bool
	cmd := &cobra.Command{
		Use:   "matam",
		Short: "Show (or add) the Matam exam",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := exam.Matam()
			if add {
				if _, err := store.AddExam(cmd.Context(), e); err != nil {
					return fmt.Errorf("could not add exam: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("add.success", e.CourseID()))
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&add, "add", false, "Store the exam as well")
	return cmd
}
