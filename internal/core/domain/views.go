package domain

// StudentDashboard is the student's landing view.
type StudentDashboard struct {
	RecentJobs      []JobOffer                `json:"recentJobs"`
	Applications    []Application             `json:"applications"`
	StatusCounts    map[ApplicationStatus]int `json:"statusCounts"`
	Recommendations []JobOffer                `json:"recommendations"`
}

// JobDetail is a job offer seen by a student. MatchScore is nil when either
// the profile or the job lists no skills.
type JobDetail struct {
	Job         JobOffer     `json:"job"`
	MatchScore  *int         `json:"matchScore,omitempty"`
	HasApplied  bool         `json:"hasApplied"`
	Application *Application `json:"application,omitempty"`
	ResumeURL   string       `json:"resumeUrl,omitempty"`
}

// Recommendations is the AI view: suggested jobs and a salary estimate.
type Recommendations struct {
	Profile *StudentProfile   `json:"profile,omitempty"`
	Jobs    []JobOffer        `json:"jobs"`
	Salary  *SalaryPrediction `json:"salary,omitempty"`
}

// RecruiterStats summarises a recruiter's postings and incoming applications.
type RecruiterStats struct {
	TotalJobs           int `json:"totalJobs"`
	ActiveJobs          int `json:"activeJobs"`
	TotalApplications   int `json:"totalApplications"`
	PendingApplications int `json:"pendingApplications"`
}

// RecruiterDashboard is the recruiter's landing view.
type RecruiterDashboard struct {
	RecentJobs         []JobOffer     `json:"recentJobs"`
	RecentApplications []Application  `json:"recentApplications"`
	Stats              RecruiterStats `json:"stats"`
}

// RecruiterJob is one of the recruiter's postings with the applications it
// received.
type RecruiterJob struct {
	Job          JobOffer      `json:"job"`
	Applications []Application `json:"applications"`
}
