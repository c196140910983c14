package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/joveey/sistem-bk-online/entity"
	"github.com/joveey/sistem-bk-online/repository"
)

// StudentService implements the counselor-facing student administration.
type StudentService struct {
	repo *repository.StudentRepository
}

func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) List() ([]entity.Student, error) {
	return s.repo.FindAll()
}

func (s *StudentService) Get(id uint) (*entity.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Create(name, class, code string) (*entity.Student, error) {
	code = strings.TrimSpace(code)

	count, err := s.repo.CountByCode(code, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUniqueCodeTaken
	}

	student := &entity.Student{
		Name:       strings.TrimSpace(name),
		Class:      strings.TrimSpace(class),
		UniqueCode: code,
	}
	if err := s.repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update re-validates code uniqueness excluding the record itself.
func (s *StudentService) Update(id uint, name, class, code string) (*entity.Student, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	count, err := s.repo.CountByCode(code, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUniqueCodeTaken
	}

	updates := map[string]any{
		"name":        strings.TrimSpace(name),
		"class":       strings.TrimSpace(class),
		"unique_code": code,
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *StudentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
