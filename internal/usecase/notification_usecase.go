package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/email"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/validation"
)

// EmailSender abstracts the SMTP service so dispatch can be tested without a relay.
type EmailSender interface {
	SendInterviewEmail(kind, toEmail string, data email.InterviewEmailData) (string, error)
	IsConfigured() bool
}

type notificationUsecase struct {
	sender EmailSender
}

func NewNotificationUsecase(sender EmailSender) domain.NotificationUsecase {
	return &notificationUsecase{sender: sender}
}

// SendInterviewEmail validates the request, then renders and dispatches the
// interview email. Validation failures never reach the SMTP relay.
func (u *notificationUsecase) SendInterviewEmail(ctx context.Context, req *domain.InterviewEmailRequest) (*domain.InterviewEmailResult, error) {
	if fields := missingFields(req); len(fields) > 0 {
		appErr := apperror.BadRequest("Champs obligatoires manquants : " + strings.Join(fields, ", "))
		appErr.Fields = make(map[string]string, len(fields))
		for _, f := range fields {
			appErr.Fields[f] = validation.FieldLabels[f] + " : champ obligatoire"
		}
		return nil, appErr
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.InterviewEmailInvitation
	}
	if kind != domain.InterviewEmailInvitation && kind != domain.InterviewEmailReminder {
		return nil, apperror.BadRequest("Type de notification inconnu : " + kind)
	}

	if !u.sender.IsConfigured() {
		return nil, apperror.New(http.StatusServiceUnavailable, "Service email non configuré", nil)
	}

	messageID, err := u.sender.SendInterviewEmail(kind, req.CandidateEmail, email.InterviewEmailData{
		CandidateName: req.CandidateName,
		Position:      req.Position,
		InterviewDate: req.InterviewDate,
		InterviewTime: req.InterviewTime,
		Duration:      req.Duration,
		JoinLink:      req.JoinLink,
		RecruiterName: req.RecruiterName,
		CompanyName:   req.CompanyName,
	})
	if err != nil {
		logger.Log.Error("interview email dispatch failed",
			slog.String("kind", kind), slog.String("error", err.Error()))
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("interview email sent",
		slog.String("kind", kind), slog.String("message_id", messageID))
	return &domain.InterviewEmailResult{MessageID: messageID}, nil
}

// missingFields lists the required fields absent from the request, in the
// order they appear on the form.
func missingFields(req *domain.InterviewEmailRequest) []string {
	var fields []string
	if strings.TrimSpace(req.CandidateEmail) == "" {
		fields = append(fields, "CandidateEmail")
	}
	if strings.TrimSpace(req.CandidateName) == "" {
		fields = append(fields, "CandidateName")
	}
	if strings.TrimSpace(req.Position) == "" {
		fields = append(fields, "Position")
	}
	if strings.TrimSpace(req.InterviewDate) == "" {
		fields = append(fields, "InterviewDate")
	}
	if strings.TrimSpace(req.InterviewTime) == "" {
		fields = append(fields, "InterviewTime")
	}
	return fields
}
