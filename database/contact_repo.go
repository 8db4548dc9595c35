package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns messages newest first. Archived rows are always excluded;
// nothing in the write paths sets archived, but the filter keeps the listing
// semantics stable if something ever does.
func (r *ContactRepo) FindAll(unreadOnly bool, limit int) ([]models.Contact, error) {
	q := r.db.Model(&models.Contact{}).Where("archived = ?", false)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	contacts := []models.Contact{}
	err := q.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// CountUnread counts unread, unarchived messages for the admin badge.
func (r *ContactRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).
		Where("read = ? AND archived = ?", false, false).
		Count(&count).Error
	return count, err
}

// FindByID returns (nil, nil) when the id does not resolve.
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
