package repository

import (
	"database/sql"
	"doctorportal/internal/db"
	"fmt"
)

type DoctorRepository struct {
	DB *sql.DB
}

func NewDoctorRepository(db *sql.DB) *DoctorRepository {
	return &DoctorRepository{DB: db}
}

func (r *DoctorRepository) Create(doctor *db.Doctor) error {
	query := `
		INSERT INTO doctors (name, email, specialty, img)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.DB.QueryRow(query, doctor.Name, doctor.Email, doctor.Specialty, doctor.Img).Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("error inserting doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) List() ([]db.Doctor, error) {
	rows, err := r.DB.Query(`SELECT id, name, email, specialty, img FROM doctors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying doctors: %w", err)
	}
	defer rows.Close()

	var doctors []db.Doctor
	for rows.Next() {
		var d db.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Specialty, &d.Img); err != nil {
			return nil, fmt.Errorf("error scanning doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating doctor rows: %w", err)
	}
	return doctors, nil
}

func (r *DoctorRepository) DeleteByEmail(email string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM doctors WHERE email = $1`, email)
	if err != nil {
		return 0, fmt.Errorf("error deleting doctor %s: %w", email, err)
	}
	return result.RowsAffected()
}
