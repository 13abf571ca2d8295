package domain

import "context"

// Interview email kinds
const (
	InterviewEmailInvitation = "invitation"
	InterviewEmailReminder   = "reminder"
)

// InterviewEmailRequest is the payload accepted by the notification endpoint.
// CandidateEmail, CandidateName, Position, InterviewDate and InterviewTime are
// required; the rest is optional presentation data for the templates.
type InterviewEmailRequest struct {
	CandidateEmail string `json:"candidate_email"`
	CandidateName  string `json:"candidate_name"`
	Position       string `json:"position"`
	InterviewDate  string `json:"interview_date"`
	InterviewTime  string `json:"interview_time"`
	Duration       string `json:"duration,omitempty"`
	JoinLink       string `json:"join_link,omitempty"`
	RecruiterName  string `json:"recruiter_name,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Kind           string `json:"kind,omitempty"`
}

// InterviewEmailResult is returned to the caller on successful dispatch.
type InterviewEmailResult struct {
	MessageID string `json:"message_id"`
}

type NotificationUsecase interface {
	SendInterviewEmail(ctx context.Context, req *InterviewEmailRequest) (*InterviewEmailResult, error)
}
