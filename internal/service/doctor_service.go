package service

import (
	"doctorportal/internal/db"
	"doctorportal/internal/repository"
)

type DoctorService struct {
	Repo *repository.DoctorRepository
}

func NewDoctorService(repo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{Repo: repo}
}

func (s *DoctorService) Create(doctor *db.Doctor) error {
	return s.Repo.Create(doctor)
}

func (s *DoctorService) List() ([]db.Doctor, error) {
	return s.Repo.List()
}

func (s *DoctorService) Delete(email string) (int64, error) {
	return s.Repo.DeleteByEmail(email)
}
