package pgrepo

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type ReportRepository struct {
	db uow.DBTX
}

func NewReportRepository(db uow.DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, args repoargs.CreateReport) (*domain.Report, error) {
	const query = `
		INSERT INTO laporan (user_id, nama, email, kategori, isi, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, user_id, nama, email, kategori, isi, status`

	var report domain.Report
	err := r.db.QueryRow(ctx, query,
		args.UserID, args.Nama, args.Email, args.Kategori, args.Isi, args.Status).
		Scan(&report.ID, &report.CreatedAt, &report.UserID, &report.Nama,
			&report.Email, &report.Kategori, &report.Isi, &report.Status)
	if err != nil {
		return nil, convertErr(err, "creating report")
	}
	return &report, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*domain.Report, error) {
	const query = `
		SELECT id, created_at, user_id, nama, email, kategori, isi, status
		FROM laporan
		WHERE id = $1`

	var report domain.Report
	err := r.db.QueryRow(ctx, query, id).
		Scan(&report.ID, &report.CreatedAt, &report.UserID, &report.Nama,
			&report.Email, &report.Kategori, &report.Isi, &report.Status)
	if err != nil {
		return nil, convertErr(err, "finding report by id %d", id)
	}
	return &report, nil
}

// GetByUserID returns the user's reports, newest first.
func (r *ReportRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Report, error) {
	const query = `
		SELECT id, created_at, user_id, nama, email, kategori, isi, status
		FROM laporan
		WHERE user_id = $1
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, convertErr(err, "getting reports of user %d", userID)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		if scanErr := rows.Scan(&report.ID, &report.CreatedAt, &report.UserID, &report.Nama,
			&report.Email, &report.Kategori, &report.Isi, &report.Status); scanErr != nil {
			return nil, convertErr(scanErr, "scanning reports of user %d", userID)
		}
		reports = append(reports, report)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting reports of user %d", userID)
	}
	return reports, nil
}

// GetAll returns every report with the reporter's username joined in, newest
// first. Admin listing only.
func (r *ReportRepository) GetAll(ctx context.Context) ([]domain.Report, error) {
	const query = `
		SELECT l.id, l.created_at, l.user_id, l.nama, l.email, l.kategori, l.isi, l.status,
			COALESCE(u.username, '')
		FROM laporan l
		LEFT JOIN users u ON l.user_id = u.id
		ORDER BY l.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting all reports")
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		if scanErr := rows.Scan(&report.ID, &report.CreatedAt, &report.UserID, &report.Nama,
			&report.Email, &report.Kategori, &report.Isi, &report.Status, &report.Username); scanErr != nil {
			return nil, convertErr(scanErr, "scanning all reports")
		}
		reports = append(reports, report)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting all reports")
	}
	return reports, nil
}

func (r *ReportRepository) Update(ctx context.Context, args repoargs.UpdateReport) error {
	const query = `
		UPDATE laporan
		SET nama = $1, email = $2, kategori = $3, isi = $4
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, args.Nama, args.Email, args.Kategori, args.Isi, args.ID)
	if err != nil {
		return convertErr(err, "updating report %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating report %d", args.ID)
	}
	return nil
}

func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE laporan SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return convertErr(err, "updating status of report %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating status of report %d", id)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM laporan WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "deleting report %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting report %d", id)
	}
	return nil
}
