package services

import (
	"lms/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRootCategory(t *testing.T) {
	db := setupTestDB(t)

	category, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	assert.True(t, category.IsRoot())
	assert.NotEmpty(t, category.UUID)
	assert.Equal(t, models.StatusActive, category.Status)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)

	_, err = CreateRootCategory(db, "Programming")
	assert.ErrorIs(t, err, ErrDuplicateName)

	// case-sensitive exact match: a different casing is a different name
	_, err = CreateRootCategory(db, "programming")
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateSubcategoryDepthLimit(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)

	python, err := CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)
	assert.Equal(t, programming.ID, *python.ParentID)

	// a subcategory can never have children of its own
	_, err = CreateSubcategory(db, "Advanced Python", python.ID)
	assert.ErrorIs(t, err, ErrExcessiveDepth)

	// the failed save must leave the store unchanged
	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestUpdateCategoryRevalidatesDepth(t *testing.T) {
	db := setupTestDB(t)

	root, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	sub, err := CreateSubcategory(db, "Python", root.ID)
	require.NoError(t, err)
	other, err := CreateRootCategory(db, "Databases")
	require.NoError(t, err)

	// moving under a subcategory is rejected
	_, err = UpdateCategory(db, other.ID, "", &sub.ID, false)
	assert.ErrorIs(t, err, ErrExcessiveDepth)

	// a category with children cannot itself become a subcategory
	_, err = UpdateCategory(db, root.ID, "", &other.ID, false)
	assert.ErrorIs(t, err, ErrExcessiveDepth)

	// moving a leaf under a different root is fine
	moved, err := UpdateCategory(db, sub.ID, "", &other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, other.ID, *moved.ParentID)
}

func TestUpdateCategoryDuplicateName(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	databases, err := CreateRootCategory(db, "Databases")
	require.NoError(t, err)

	_, err = UpdateCategory(db, databases.ID, "Programming", nil, false)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestListCategoryTreeSorted(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	_, err = CreateRootCategory(db, "Databases")
	require.NoError(t, err)
	_, err = CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)
	_, err = CreateSubcategory(db, "Go", programming.ID)
	require.NoError(t, err)

	tree, err := ListCategoryTree(db)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	// roots sorted by name, subcategories sorted by name
	assert.Equal(t, "Databases", tree[0].Name)
	assert.Equal(t, "Programming", tree[1].Name)
	require.Len(t, tree[1].Subcategories, 2)
	assert.Equal(t, "Go", tree[1].Subcategories[0].Name)
	assert.Equal(t, "Python", tree[1].Subcategories[1].Name)
}

func TestArchiveCategoryKeepsChildren(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	python, err := CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)

	require.NoError(t, ArchiveCategory(db, programming.ID))

	// archived roots drop out of the active tree
	tree, err := ListCategoryTree(db)
	require.NoError(t, err)
	assert.Empty(t, tree)

	// but the subcategory row is still there, untouched
	var kept models.Category
	require.NoError(t, db.First(&kept, python.ID).Error)
	assert.Equal(t, models.StatusActive, kept.Status)
	assert.Equal(t, programming.ID, *kept.ParentID)

	// the archived name stays reserved
	_, err = CreateRootCategory(db, "Programming")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestListSubcategories(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	_, err = CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)
	archived, err := CreateSubcategory(db, "Cobol", programming.ID)
	require.NoError(t, err)
	require.NoError(t, ArchiveCategory(db, archived.ID))

	children, err := ListSubcategories(db, programming.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "Python", children[0].Name)
}

func TestUpdateCategoryRenameKeepsParent(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	python, err := CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)

	// a rename-only update must not touch the parent
	renamed, err := UpdateCategory(db, python.ID, "Python 3", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "Python 3", renamed.Name)
	require.NotNil(t, renamed.ParentID)
	assert.Equal(t, programming.ID, *renamed.ParentID)

	var stored models.Category
	require.NoError(t, db.First(&stored, python.ID).Error)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, programming.ID, *stored.ParentID)
}

func TestUpdateCategoryDetachParent(t *testing.T) {
	db := setupTestDB(t)

	programming, err := CreateRootCategory(db, "Programming")
	require.NoError(t, err)
	python, err := CreateSubcategory(db, "Python", programming.ID)
	require.NoError(t, err)

	promoted, err := UpdateCategory(db, python.ID, "", nil, true)
	require.NoError(t, err)
	assert.Nil(t, promoted.ParentID)
	assert.True(t, promoted.IsRoot())

	// now a root, it shows up in the tree on its own
	tree, err := ListCategoryTree(db)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Programming", tree[0].Name)
	assert.Equal(t, "Python", tree[1].Name)
}
