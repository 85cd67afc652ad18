package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/output"
)

func newStudentCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "student",
		Short:       "Views for student accounts",
		Annotations: guarded(domain.RoleStudent),
	}
	cmd.AddCommand(
		newStudentDashboardCommand(st),
		newStudentJobsCommand(st),
		newStudentApplicationsCommand(st),
		newStudentProfileCommand(st),
		newStudentRecommendationsCommand(st),
	)
	return cmd
}

func newStudentDashboardCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Recent jobs, your applications and recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := st.app.Students.Dashboard(cmd.Context(), st.app.Sessions.CurrentIdentity())
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(d)
			}

			st.printer.Header("Applications")
			printStatusCounts(st.printer, d.StatusCounts)
			if err := printApplications(st.printer, d.Applications); err != nil {
				return err
			}
			st.printer.Header("Recent jobs")
			if err := printJobs(st.printer, d.RecentJobs); err != nil {
				return err
			}
			st.printer.Header("Recommended for you")
			return printJobs(st.printer, d.Recommendations)
		},
	}
}

func newStudentJobsCommand(st *state) *cobra.Command {
	var filter string
	list := func(cmd *cobra.Command, keyword string) error {
		jobs, err := st.app.Students.Jobs(cmd.Context(), keyword, filter)
		if err != nil {
			return err
		}
		if st.printer.JSONMode() {
			return st.printer.JSON(jobs)
		}
		return printJobs(st.printer, jobs)
	}

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse job offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, "")
		},
	}
	cmd.PersistentFlags().StringVar(&filter, "filter", "", "only show jobs matching this text")

	search := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search job offers on the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, args[0])
		},
	}

	show := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job offer with your match score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := st.app.Students.JobDetail(cmd.Context(), st.app.Sessions.CurrentIdentity(), id)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(d)
			}
			printJob(st.printer, d.Job)
			st.printer.Print("")
			if d.MatchScore != nil {
				st.printer.Field("Match", fmt.Sprintf("%d%%", *d.MatchScore))
			}
			if d.HasApplied {
				status := ""
				if d.Application != nil {
					status = string(d.Application.Status)
				}
				st.printer.Field("Applied", st.printer.StatusBadge(status))
			} else {
				st.printer.Info("apply with: recruitctl student jobs apply %d", d.Job.ID)
			}
			return nil
		},
	}

	var resumeURL string
	apply := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := st.app.Students.Apply(cmd.Context(), id, resumeURL)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(app)
			}
			st.printer.Success("applied to job %d (application %d, %s)", id, app.ID, app.Status)
			return nil
		},
	}
	apply.Flags().StringVar(&resumeURL, "resume-url", "", "resume to attach (defaults to the one on your profile)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every active job offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, "")
		},
	}

	cmd.AddCommand(listCmd, search, show, apply)
	return cmd
}

func newStudentApplicationsCommand(st *state) *cobra.Command {
	var filter, status string
	list := func(cmd *cobra.Command, args []string) error {
		apps, err := st.app.Students.Applications(cmd.Context(), st.app.Sessions.CurrentIdentity(), filter, status)
		if err != nil {
			return err
		}
		if st.printer.JSONMode() {
			return st.printer.JSON(apps)
		}
		return printApplications(st.printer, apps)
	}

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Your applications",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.PersistentFlags().StringVar(&filter, "filter", "", "only show applications matching this text")
	cmd.PersistentFlags().StringVar(&status, "status", domain.StatusAll, "only show this status (PENDING, REVIEWING, ACCEPTED, REJECTED, WITHDRAWN)")

	withdraw := &cobra.Command{
		Use:   "withdraw <application-id>",
		Short: "Withdraw an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := st.app.Students.Withdraw(cmd.Context(), id)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(app)
			}
			st.printer.Success("application %d is now %s", app.ID, app.Status)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List your applications", Args: cobra.NoArgs, RunE: list},
		withdraw,
	)
	return cmd
}

func newStudentProfileCommand(st *state) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		prof, err := st.app.Students.Profile(cmd.Context())
		if err != nil {
			return err
		}
		if st.printer.JSONMode() {
			return st.printer.JSON(prof)
		}
		printProfile(st.printer, *prof)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	var fullName, education, skills string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := st.app.Students.Profile(cmd.Context())
			if err != nil {
				return err
			}
			next := *current
			if cmd.Flags().Changed("name") {
				next.FullName = fullName
			}
			if cmd.Flags().Changed("education") {
				next.Education = education
			}
			if cmd.Flags().Changed("skills") {
				next.Skills = skills
			}

			saved, err := st.app.Students.UpdateProfile(cmd.Context(), next)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(saved)
			}
			st.printer.Success("profile saved")
			printProfile(st.printer, *saved)
			return nil
		},
	}
	update.Flags().StringVar(&fullName, "name", "", "full name")
	update.Flags().StringVar(&education, "education", "", "education")
	update.Flags().StringVar(&skills, "skills", "", "comma separated skills")

	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a resume and attach it to your profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return &output.CLIError{Summary: "cannot read resume", Detail: err.Error(), ExitCode: output.ExitUsageError, Err: err}
			}
			defer f.Close()

			prof, err := st.app.Students.UploadResume(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(prof)
			}
			st.printer.Success("resume uploaded: %s", prof.ResumeURL)
			return nil
		},
	}

	skillsCmd := &cobra.Command{
		Use:   "skills",
		Short: "Extract skills from your profile with the AI service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := st.app.Students.ExtractSkills(cmd.Context())
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(found)
			}
			if len(found) == 0 {
				st.printer.Info("no skills found")
				return nil
			}
			st.printer.Print("%s", strings.Join(found, ", "))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{Use: "show", Short: "Show your profile", Args: cobra.NoArgs, RunE: show},
		update, upload, skillsCmd,
	)
	return cmd
}

func newStudentRecommendationsCommand(st *state) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"ai"},
		Short:   "AI job recommendations and salary estimate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := st.app.Students.Recommendations(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(recs)
			}

			if !recs.Profile.Complete() {
				st.printer.Warning("add education and skills to your profile for better matches")
			}
			st.printer.Header("Recommended jobs")
			if err := printJobs(st.printer, recs.Jobs); err != nil {
				return err
			}
			if recs.Salary.Available() {
				st.printer.Header("Salary estimate")
				st.printer.Field("Range", salary(&recs.Salary.MinSalary, &recs.Salary.MaxSalary))
				st.printer.Field("Confidence", strconv.FormatFloat(recs.Salary.ConfidenceScore*100, 'f', 0, 64)+"%")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of recommendations (default 5)")
	return cmd
}
