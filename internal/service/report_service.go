package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

// ReportService guards every per-record report operation with the
// owner-or-admin policy. The existence check always runs first, so a missing
// report is never reported as a denial.
type ReportService struct {
	uow        uow.UOW
	reportRepo ReportRepository
}

func NewReportService(u uow.UOW) (*ReportService, error) {
	reportRepo, repoErr := uow.GetRepositoryAs[ReportRepository](u, uow.RepositoryName(repoargs.ReportRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &ReportService{
		uow:        u,
		reportRepo: reportRepo,
	}, nil
}

type CreateReportArgs struct {
	UserID   int64
	Nama     string
	Email    string
	Kategori string
	Isi      string
}

// Create stores a report owned by args.UserID. Blank reporter fields fall back
// to anonymous placeholders, the body is required (validated by the caller).
func (s *ReportService) Create(ctx context.Context, args CreateReportArgs) (*domain.Report, error) {
	nama := args.Nama
	if nama == "" {
		nama = "Anonim"
	}
	email := args.Email
	if email == "" {
		email = "-"
	}

	report, createErr := s.reportRepo.Create(ctx, repoargs.CreateReport{
		UserID:   args.UserID,
		Nama:     nama,
		Email:    email,
		Kategori: args.Kategori,
		Isi:      args.Isi,
		Status:   domain.ReportStatusDefault,
	})
	if createErr != nil {
		return nil, errors.Wrap(createErr, "creating report")
	}
	return report, nil
}

// GetByUser lists the actor's own reports, newest first.
func (s *ReportService) GetByUser(ctx context.Context, userID int64) ([]domain.Report, error) {
	reports, err := s.reportRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "getting user reports")
	}
	return reports, nil
}

// GetAll lists every report. The admin-only restriction sits on the route.
func (s *ReportService) GetAll(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.reportRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting all reports")
	}
	return reports, nil
}

// GetDetail returns one report if the actor owns it or is admin.
func (s *ReportService) GetDetail(ctx context.Context, actor domain.Actor, id int64) (*domain.Report, error) {
	report, err := s.authorize(ctx, actor, id, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return report, nil
}

type UpdateReportArgs struct {
	ID       int64
	Nama     string
	Email    string
	Kategori string
	Isi      string
}

func (s *ReportService) Update(ctx context.Context, actor domain.Actor, args UpdateReportArgs) error {
	if _, err := s.authorize(ctx, actor, args.ID, domain.ActionEdit); err != nil {
		return err
	}
	if err := s.reportRepo.Update(ctx, repoargs.UpdateReport{
		ID:       args.ID,
		Nama:     args.Nama,
		Email:    args.Email,
		Kategori: args.Kategori,
		Isi:      args.Isi,
	}); err != nil {
		return errors.Wrap(err, "updating report")
	}
	return nil
}

func (s *ReportService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := s.authorize(ctx, actor, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "deleting report")
	}
	return nil
}

// UpdateStatus sets the processing status. Admin-only, enforced on the route.
func (s *ReportService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := s.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "updating report status")
	}
	return nil
}

// authorize loads the report and applies the access policy. Order matters:
// not-found beats forbidden.
func (s *ReportService) authorize(
	ctx context.Context,
	actor domain.Actor,
	id int64,
	action domain.Action,
) (*domain.Report, error) {
	report, findErr := s.reportRepo.FindByID(ctx, id)
	if findErr != nil {
		return nil, errors.Wrap(findErr, "authorizing report access")
	}
	if !domain.CanAccess(actor, report.UserID, action) {
		return nil, domain.ErrAccessDenied
	}
	return report, nil
}
