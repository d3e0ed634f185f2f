package service

import (
	"context"
	"errors"
	"time"

	"tangle/internal/authz"
	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ModerationService files abuse reports and fans them out to the moderation
// topic and the moderator mailbox. Fan-out is best-effort: the report row is
// the source of truth, a failed publish or mail only logs.
type ModerationService struct {
	posts    *mysql.PostRepository
	reports  *mysql.ReportRepository
	producer *pkg.ReportProducer
	mailer   *pkg.Mailer
	alertTo  string
}

func NewModerationService(posts *mysql.PostRepository, reports *mysql.ReportRepository, producer *pkg.ReportProducer, mailer *pkg.Mailer, alertTo string) *ModerationService {
	return &ModerationService{
		posts:    posts,
		reports:  reports,
		producer: producer,
		mailer:   mailer,
		alertTo:  alertTo,
	}
}

func (s *ModerationService) ReportPost(ctx context.Context, actor *model.User, postID uint64, reason, reportType string) error {
	post, err := s.posts.FindActiveByID(postID)
	res, err := postResource(post, err, authz.KindPost)
	if err != nil {
		return err
	}
	if res.Exists {
		reported, err := s.reports.Exists(postID, actor.ID)
		if err != nil {
			return err
		}
		res.AlreadyReported = reported
	}

	d := authz.Authorize(actorOf(actor), res, authz.ActionReport)
	if !d.Allowed {
		return denyError(d, "Post not found")
	}

	report := &model.Report{
		PostID:     postID,
		ReporterID: actor.ID,
		Reason:     reason,
		Type:       reportType,
		Status:     model.ReportStatusPending,
	}
	if err := s.reports.Create(report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkg.BadRequest("You have already reported this post")
		}
		return err
	}

	if s.producer != nil {
		ev := pkg.ReportEvent{
			ReportID:   report.ID,
			PostID:     postID,
			ReporterID: actor.ID,
			Reason:     reason,
			Type:       reportType,
			FiledAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.producer.Publish(ctx, ev); err != nil {
			logrus.WithError(err).WithField("post_id", postID).Warn("report event publish failed")
		}
	}
	if s.mailer != nil && s.alertTo != "" {
		if err := s.mailer.SendReportAlert(s.alertTo, post.Title, reason, reportType); err != nil {
			logrus.WithError(err).WithField("post_id", postID).Warn("report alert mail failed")
		}
	}

	return nil
}
