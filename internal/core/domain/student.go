package domain

// StudentProfile is the student's own profile record.
type StudentProfile struct {
	ID        int64  `json:"id,omitempty"`
	UserID    int64  `json:"userId,omitempty"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"fullName"`
	Education string `json:"education"`
	Skills    string `json:"skills"`
	ResumeURL string `json:"resumeUrl,omitempty"`
}

// Complete reports whether the profile carries what recommendations need.
func (p *StudentProfile) Complete() bool {
	return p != nil && p.Skills != "" && p.Education != ""
}

// ResumeUpload is the file service's answer to a resume upload.
type ResumeUpload struct {
	Filename        string `json:"filename"`
	FileDownloadURI string `json:"fileDownloadUri"`
	FileType        string `json:"fileType"`
	Size            string `json:"size"`
}
