package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/output"
)

func newRecruiterCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "recruiter",
		Short:       "Views for recruiter accounts",
		Annotations: guarded(domain.RoleRecruiter),
	}
	cmd.AddCommand(
		newRecruiterDashboardCommand(st),
		newRecruiterJobsCommand(st),
		newRecruiterApplicationsCommand(st),
	)
	return cmd
}

func newRecruiterDashboardCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Your postings, recent applications and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := st.app.Recruiters.Dashboard(cmd.Context(), st.app.Sessions.CurrentIdentity())
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(d)
			}

			st.printer.Header("Overview")
			st.printer.Field("Jobs", strconv.Itoa(d.Stats.TotalJobs))
			st.printer.Field("Active jobs", strconv.Itoa(d.Stats.ActiveJobs))
			st.printer.Field("Applications", strconv.Itoa(d.Stats.TotalApplications))
			st.printer.Field("Pending", strconv.Itoa(d.Stats.PendingApplications))
			st.printer.Header("Recent jobs")
			if err := printJobs(st.printer, d.RecentJobs); err != nil {
				return err
			}
			st.printer.Header("Recent applications")
			return printApplications(st.printer, d.RecentApplications)
		},
	}
}

// jobFlags are the editable fields of a job offer.
type jobFlags struct {
	title       string
	description string
	company     string
	skills      string
	salaryMin   float64
	salaryMax   float64
	inactive    bool
}

func (f *jobFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "job title")
	cmd.Flags().StringVar(&f.description, "description", "", "job description")
	cmd.Flags().StringVar(&f.company, "company", "", "company name")
	cmd.Flags().StringVar(&f.skills, "skills", "", "comma separated skills")
	cmd.Flags().Float64Var(&f.salaryMin, "salary-min", 0, "minimum salary")
	cmd.Flags().Float64Var(&f.salaryMax, "salary-max", 0, "maximum salary")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "hide the offer from students")
}

// apply copies the flags the user set onto job.
func (f *jobFlags) apply(cmd *cobra.Command, job *domain.JobOffer) {
	changed := cmd.Flags().Changed
	if changed("title") {
		job.Title = f.title
	}
	if changed("description") {
		job.Description = f.description
	}
	if changed("company") {
		job.CompanyName = f.company
	}
	if changed("skills") {
		job.Skills = f.skills
	}
	if changed("salary-min") {
		v := f.salaryMin
		job.SalaryMin = &v
	}
	if changed("salary-max") {
		v := f.salaryMax
		job.SalaryMax = &v
	}
	if changed("inactive") {
		job.Active = !f.inactive
	}
}

func newRecruiterJobsCommand(st *state) *cobra.Command {
	var filter string
	list := func(cmd *cobra.Command, args []string) error {
		jobs, err := st.app.Recruiters.Jobs(cmd.Context(), st.app.Sessions.CurrentIdentity(), filter)
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
		Short: "Manage your job offers",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.PersistentFlags().StringVar(&filter, "filter", "", "only show jobs matching this text")

	var createFlags jobFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Post a new job offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := domain.JobOffer{Active: true}
			createFlags.apply(cmd, &job)
			saved, err := st.app.Recruiters.CreateJob(cmd.Context(), job)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(saved)
			}
			st.printer.Success("job %d posted", saved.ID)
			return nil
		},
	}
	createFlags.register(create)

	var editFlags jobFlags
	edit := &cobra.Command{
		Use:   "edit <job-id>",
		Short: "Change a job offer; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, err := st.app.Recruiters.Job(cmd.Context(), id)
			if err != nil {
				return err
			}
			job := current.Job
			editFlags.apply(cmd, &job)
			saved, err := st.app.Recruiters.UpdateJob(cmd.Context(), id, job)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(saved)
			}
			st.printer.Success("job %d saved", saved.ID)
			return nil
		},
	}
	editFlags.register(edit)

	show := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job offer and the applications it received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rj, err := st.app.Recruiters.Job(cmd.Context(), id)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(rj)
			}
			printJob(st.printer, rj.Job)
			st.printer.Header(fmt.Sprintf("Applications (%d)", len(rj.Applications)))
			return printApplications(st.printer, rj.Applications)
		},
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete <job-id>",
		Short: "Delete a job offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return &output.CLIError{
					Summary:    fmt.Sprintf("refusing to delete job %d without confirmation", id),
					Suggestion: fmt.Sprintf("recruitctl recruiter jobs delete %d --yes", id),
					ExitCode:   output.ExitUsageError,
				}
			}
			if err := st.app.Recruiters.DeleteJob(cmd.Context(), id); err != nil {
				return err
			}
			st.printer.Success("job %d deleted", id)
			return nil
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	cmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List your job offers", Args: cobra.NoArgs, RunE: list},
		create, edit, show, del,
	)
	return cmd
}

func newRecruiterApplicationsCommand(st *state) *cobra.Command {
	var filter, status string
	list := func(cmd *cobra.Command, args []string) error {
		apps, err := st.app.Recruiters.Applications(cmd.Context(), st.app.Sessions.CurrentIdentity(), filter, status)
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
		Short: "Applications across all your job offers",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.PersistentFlags().StringVar(&filter, "filter", "", "only show applications matching student name or job title")
	cmd.PersistentFlags().StringVar(&status, "status", domain.StatusAll, "only show this status")

	show := &cobra.Command{
		Use:   "show <application-id>",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := st.app.Recruiters.Application(cmd.Context(), st.app.Sessions.CurrentIdentity(), id)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(app)
			}
			printApplication(st.printer, *app)
			return nil
		},
	}

	setStatus := &cobra.Command{
		Use:   "status <application-id> <status>",
		Short: "Move an application to PENDING, REVIEWING, ACCEPTED, REJECTED or WITHDRAWN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			next, err := domain.ParseApplicationStatus(args[1])
			if err != nil {
				return &output.CLIError{
					Summary:  fmt.Sprintf("unknown status %q", args[1]),
					Detail:   "use PENDING, REVIEWING, ACCEPTED, REJECTED or WITHDRAWN",
					ExitCode: output.ExitUsageError,
					Err:      err,
				}
			}
			app, err := st.app.Recruiters.UpdateStatus(cmd.Context(), id, next)
			if err != nil {
				return err
			}
			if st.printer.JSONMode() {
				return st.printer.JSON(app)
			}
			st.printer.Success("application %d is now %s", app.ID, st.printer.StatusBadge(string(app.Status)))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List applications", Args: cobra.NoArgs, RunE: list},
		show, setStatus,
	)
	return cmd
}
