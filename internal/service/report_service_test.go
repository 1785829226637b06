package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockUOW        *uowmocks.MockUOW
	mockReportRepo *mocks.MockReportRepository
	reportService  *ReportService
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockReportRepo = mocks.NewMockReportRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ReportRepoName)).
		Return(s.mockReportRepo, nil).AnyTimes()

	reportService, servErr := NewReportService(s.mockUOW)
	s.Require().NoError(servErr)
	s.reportService = reportService
}

func (s *ReportServiceTestSuite) TestCreateDefaults() {
	var userID int64 = 7
	isi := gofakeit.Sentence(8)

	created := domain.Report{ID: 1, UserID: userID, Nama: "Anonim", Email: "-", Isi: isi, Status: "pending"}

	// blank reporter fields get the anonymous placeholders
	s.mockReportRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(repoargs.CreateReport{
			UserID: userID,
			Nama:   "Anonim",
			Email:  "-",
			Isi:    isi,
			Status: domain.ReportStatusDefault,
		})).
		Return(&created, nil)

	report, err := s.reportService.Create(s.T().Context(), CreateReportArgs{UserID: userID, Isi: isi})
	s.Require().NoError(err)
	s.Equal(&created, report)
}

func (s *ReportServiceTestSuite) TestGetDetailAccess() {
	owner := domain.Actor{ID: 1, Username: "owner", Role: domain.RoleUser}
	stranger := domain.Actor{ID: 2, Username: "stranger", Role: domain.RoleUser}
	admin := domain.Actor{ID: 3, Username: "admin", Role: domain.RoleAdmin}

	var reportID int64 = 10
	var missingID int64 = 999

	report := domain.Report{ID: reportID, UserID: owner.ID, Isi: "isi"}

	s.mockReportRepo.EXPECT().FindByID(gomock.Any(), reportID).Return(&report, nil).Times(3)
	// the existence check runs first even for a stranger
	s.mockReportRepo.EXPECT().FindByID(gomock.Any(), missingID).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		actor   domain.Actor
		id      int64
		wantErr error
	}{
		{name: "owner allowed", actor: owner, id: reportID},
		{name: "admin allowed", actor: admin, id: reportID},
		{name: "stranger denied", actor: stranger, id: reportID, wantErr: domain.ErrAccessDenied},
		{name: "missing beats denial", actor: stranger, id: missingID, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := s.reportService.GetDetail(s.T().Context(), t.actor, t.id)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(&report, got)
			}
		})
	}
}

func (s *ReportServiceTestSuite) TestDeleteAccess() {
	owner := domain.Actor{ID: 1, Username: "owner", Role: domain.RoleUser}
	stranger := domain.Actor{ID: 2, Username: "stranger", Role: domain.RoleUser}

	var reportID int64 = 10
	report := domain.Report{ID: reportID, UserID: owner.ID}

	s.mockReportRepo.EXPECT().FindByID(gomock.Any(), reportID).Return(&report, nil).Times(2)
	s.mockReportRepo.EXPECT().Delete(gomock.Any(), reportID).Return(nil)

	s.Require().NoError(s.reportService.Delete(s.T().Context(), owner, reportID))
	s.Require().ErrorIs(
		s.reportService.Delete(s.T().Context(), stranger, reportID),
		domain.ErrAccessDenied,
	)
}

func (s *ReportServiceTestSuite) TestUpdateStatus() {
	s.mockReportRepo.EXPECT().UpdateStatus(gomock.Any(), int64(5), "diproses").Return(nil)
	s.Require().NoError(s.reportService.UpdateStatus(s.T().Context(), 5, "diproses"))
}
