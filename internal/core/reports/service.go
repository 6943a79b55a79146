package reports

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Shibaboard/internal/core/content"
	"Shibaboard/internal/core/notifications"
	"Shibaboard/internal/core/users"
)

// reportService implements the Service interface
// Validation happens in a fixed order before any row is written; the admin
// alert fan-out runs after the report is persisted and is advisory only.
type reportService struct {
	repo        Repository
	contentRepo content.Repository
	userRepo    users.Repository
	dispatcher  notifications.Dispatcher
	dedupWindow time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewReportService creates a new report service instance.
// dedupWindow <= 0 falls back to the 24h default.
func NewReportService(
	repo Repository,
	contentRepo content.Repository,
	userRepo users.Repository,
	dispatcher notifications.Dispatcher,
	dedupWindow time.Duration,
	logger *slog.Logger,
) Service {
	if dedupWindow <= 0 {
		dedupWindow = DefaultDedupWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reportService{
		repo:        repo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		dedupWindow: dedupWindow,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *reportService) FileReport(ctx context.Context, reporterID *int64, targetKind string, targetID int64, reason string) (*Report, error) {
	// Validation order is part of the contract: each failure is distinct
	if reporterID == nil {
		return nil, ErrUnauthenticated
	}
	if !ValidTargetKind(targetKind) {
		return nil, ErrInvalidTargetKind
	}
	if len(strings.TrimSpace(reason)) < MinReasonLength {
		return nil, ErrReasonTooShort
	}
	if targetKind == TargetUser && *reporterID == targetID {
		return nil, ErrSelfReport
	}

	if err := s.checkTargetExists(ctx, targetKind, targetID); err != nil {
		return nil, err
	}

	since := s.now().UTC().Add(-s.dedupWindow)
	duplicate, err := s.repo.HasRecent(ctx, *reporterID, targetKind, targetID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate report: %w", err)
	}
	if duplicate {
		return nil, ErrDuplicateReport
	}

	report := &Report{
		ReporterID: *reporterID,
		TargetKind: targetKind,
		TargetID:   targetID,
		Reason:     strings.TrimSpace(reason),
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to file report: %w", err)
	}

	s.logger.Info("report filed",
		"report_id", report.ID,
		"reporter_id", report.ReporterID,
		"target_kind", report.TargetKind,
		"target_id", report.TargetID)

	// Advisory fan-out: the report is already persisted, so alert failures
	// are logged and swallowed
	s.alertAdmins(ctx, report)

	return report, nil
}

func (s *reportService) UpdateStatus(ctx context.Context, reportID, adminID int64, newStatus string) (*Report, error) {
	if !ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	// The repository locks the row and validates the transition against the
	// locked status, so concurrent admins serialize here
	updated, err := s.repo.UpdateStatus(ctx, reportID, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info("report status updated",
		"report_id", reportID,
		"admin_id", adminID,
		"to", newStatus)

	if newStatus == StatusAccepted || newStatus == StatusRejected {
		if err := s.dispatcher.Enqueue(ctx, updated.ReporterID, notifications.TypeReportResolved,
			fmt.Sprintf("Your report has been %s.", newStatus),
			fmt.Sprintf("/reports/%d", updated.ID)); err != nil {
			s.logger.Error("failed to notify reporter", "report_id", reportID, "error", err)
		}
	}

	return updated, nil
}

// checkTargetExists treats soft-deleted content as nonexistent for
// reporting purposes
func (s *reportService) checkTargetExists(ctx context.Context, targetKind string, targetID int64) error {
	switch targetKind {
	case TargetUser:
		if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				return ErrTargetNotFound
			}
			return fmt.Errorf("failed to validate report target: %w", err)
		}
	case TargetPost:
		exists, err := s.contentRepo.PostExists(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to validate report target: %w", err)
		}
		if !exists {
			return ErrTargetNotFound
		}
	case TargetComment:
		exists, err := s.contentRepo.CommentExists(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to validate report target: %w", err)
		}
		if !exists {
			return ErrTargetNotFound
		}
	}
	return nil
}

func (s *reportService) alertAdmins(ctx context.Context, report *Report) {
	adminIDs, err := s.userRepo.ListAdminIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list admins for report alert", "report_id", report.ID, "error", err)
		return
	}

	message := fmt.Sprintf("New %s report filed.", report.TargetKind)
	link := fmt.Sprintf("/admin/reports/%d", report.ID)
	for _, adminID := range adminIDs {
		if err := s.dispatcher.Enqueue(ctx, adminID, notifications.TypeReportFiled, message, link); err != nil {
			s.logger.Error("failed to alert admin of report",
				"report_id", report.ID,
				"admin_id", adminID,
				"error", err)
		}
	}
}
