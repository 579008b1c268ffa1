package services

import (
	"errors"
	"lms/models"

	"gorm.io/gorm"
)

// CreateRootCategory creates a top-level category. Name uniqueness is
// pre-checked for a friendly rejection and backed by the unique index for
// the concurrent case.
func CreateRootCategory(db *gorm.DB, name string) (*models.Category, error) {
	return createCategory(db, name, nil)
}

// CreateSubcategory creates a category under parentID. The parent must be an
// active root category; anything deeper is rejected with ErrExcessiveDepth.
func CreateSubcategory(db *gorm.DB, name string, parentID uint) (*models.Category, error) {
	return createCategory(db, name, &parentID)
}

func createCategory(db *gorm.DB, name string, parentID *uint) (*models.Category, error) {
	category := models.Category{Name: name, ParentID: parentID}

	err := db.Transaction(func(tx *gorm.DB) error {
		if parentID != nil {
			var parent models.Category
			if err := tx.Where("id = ? AND status = ?", *parentID, models.StatusActive).First(&parent).Error; err != nil {
				return err
			}
			if parent.ParentID != nil {
				return ErrExcessiveDepth
			}
		}

		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateName
		}

		return tx.Create(&category).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the race against a concurrent insert of the same name
		err = ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category and/or moves it under a new parent.
// A nil parentID leaves the current parent untouched; detachParent is the
// explicit way to promote a subcategory back to a root. Depth rules are
// re-validated on every save: the new parent must be a root, and a category
// that already has subcategories can never become one itself.
func UpdateCategory(db *gorm.DB, id uint, name string, parentID *uint, detachParent bool) (*models.Category, error) {
	var category models.Category

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}

		if parentID != nil {
			if *parentID == category.ID {
				return ErrExcessiveDepth
			}

			var parent models.Category
			if err := tx.Where("id = ? AND status = ?", *parentID, models.StatusActive).First(&parent).Error; err != nil {
				return err
			}
			if parent.ParentID != nil {
				return ErrExcessiveDepth
			}

			var children int64
			if err := tx.Model(&models.Category{}).Where("parent_id = ?", category.ID).Count(&children).Error; err != nil {
				return err
			}
			if children > 0 {
				return ErrExcessiveDepth
			}

			category.ParentID = parentID
		} else if detachParent {
			category.ParentID = nil
		}

		if name != "" && name != category.Name {
			var count int64
			if err := tx.Model(&models.Category{}).Where("name = ? AND id <> ?", name, category.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateName
			}
			category.Name = name
		}

		return tx.Save(&category).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ArchiveCategory soft-deactivates a category. Its subcategories and courses
// are left untouched so existing references stay intact.
func ArchiveCategory(db *gorm.DB, id uint) error {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return err
	}
	category.Status = models.StatusArchived
	return db.Save(&category).Error
}

// ListCategoryTree returns active root categories sorted by name, each with
// its active subcategories sorted by name.
func ListCategoryTree(db *gorm.DB) ([]models.Category, error) {
	var roots []models.Category
	err := db.Where("parent_id IS NULL AND status = ?", models.StatusActive).
		Order("name asc").
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.StatusActive).Order("name asc")
		}).
		Find(&roots).Error
	if err != nil {
		return nil, err
	}
	return roots, nil
}

// ListSubcategories returns the active direct children of a category, sorted
// by name.
func ListSubcategories(db *gorm.DB, parentID uint) ([]models.Category, error) {
	var children []models.Category
	err := db.Where("parent_id = ? AND status = ?", parentID, models.StatusActive).
		Order("name asc").
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}
