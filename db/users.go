package db

import (
	"errors"

	"homecoming/alumni-api/model"

	"gorm.io/gorm"
)

// UserStore is the credential store adapter. Lookups return (nil, nil)
// when no record matches so callers can tell "absent" apart from an
// infrastructure failure.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindByEmail(email string) (*model.User, error) {
	return s.findOne("email = ?", email)
}

func (s *UserStore) FindByStudentID(id string) (*model.User, error) {
	return s.findOne("student_id = ?", id)
}

func (s *UserStore) FindByID(id string) (*model.User, error) {
	return s.findOne("id = ?", id)
}

// Insert persists a new user record. Email uniqueness is pre-checked by
// the register handler; the unique index is the backstop for the
// check-then-insert race.
func (s *UserStore) Insert(u *model.User) error {
	return s.db.Create(u).Error
}

func (s *UserStore) findOne(query string, arg string) (*model.User, error) {
	var user model.User

	err := s.db.Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}
