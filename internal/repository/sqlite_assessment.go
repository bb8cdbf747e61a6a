package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/metis/internal/db"
	"github.com/alexanderramin/metis/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssessmentRepo creates a new SQLiteAssessmentRepo.
func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, rec *domain.AssessmentRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	query := `INSERT INTO assessments (id, industry, company_size, employee_count,
		annual_revenue, region, total_score, maturity_level, answers, result, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		string(rec.Profile.Industry),
		string(rec.Profile.CompanySize),
		nullableIntToValue(rec.Profile.EmployeeCount),
		nullableFloatToValue(rec.Profile.AnnualRevenue),
		rec.Profile.Region,
		rec.Result.TotalScore,
		string(rec.Result.MaturityLevel),
		string(answers),
		string(result),
		rec.CompletedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	query := `SELECT id, industry, company_size, employee_count, annual_revenue,
		region, answers, result, completed_at
		FROM assessments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	rec, err := r.scanAssessment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment: %w", ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context) ([]*domain.AssessmentRecord, error) {
	query := `SELECT id, industry, company_size, employee_count, annual_revenue,
		region, answers, result, completed_at
		FROM assessments ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var records []*domain.AssessmentRecord
	for rows.Next() {
		rec, err := r.scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}
	return records, nil
}

func (r *SQLiteAssessmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assessment: %w", ErrNotFound)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteAssessmentRepo) scanAssessment(row scanner) (*domain.AssessmentRecord, error) {
	var rec domain.AssessmentRecord
	var industry, companySize string
	var employeeCount sql.NullInt64
	var annualRevenue sql.NullFloat64
	var region sql.NullString
	var answers, result, completedAt string

	err := row.Scan(
		&rec.ID,
		&industry,
		&companySize,
		&employeeCount,
		&annualRevenue,
		&region,
		&answers,
		&result,
		&completedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	rec.Profile = domain.OrganizationProfile{
		Industry:      domain.Industry(industry),
		CompanySize:   domain.CompanySize(companySize),
		EmployeeCount: int(employeeCount.Int64),
		AnnualRevenue: annualRevenue.Float64,
		Region:        nullableString(region),
	}
	if err := json.Unmarshal([]byte(answers), &rec.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	if err := json.Unmarshal([]byte(result), &rec.Result); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	rec.CompletedAt = parseTime(completedAt)
	return &rec, nil
}
