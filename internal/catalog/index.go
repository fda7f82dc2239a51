// Package catalog implements the product listing pipeline: faceted
// filtering, sorting, and pagination over an in-memory product list.
package catalog

import (
	"fmt"

	"marketplace-service/internal/models"
)

// CategoryIndex precomputes the parent -> child id mapping over the
// two-level category tree so the category facet resolves in O(1).
type CategoryIndex struct {
	children map[int64][]int64
	byID     map[int64]models.Category
}

// NewCategoryIndex builds an index from the category list. Categories
// whose parent is missing or is itself a subcategory are rejected: the
// tree is at most two levels deep.
func NewCategoryIndex(categories []models.Category) (*CategoryIndex, error) {
	idx := &CategoryIndex{
		children: make(map[int64][]int64),
		byID:     make(map[int64]models.Category, len(categories)),
	}
	for _, c := range categories {
		idx.byID[c.ID] = c
	}
	for _, c := range categories {
		if c.ParentID == nil {
			continue
		}
		parent, ok := idx.byID[*c.ParentID]
		if !ok {
			return nil, fmt.Errorf("category %d: parent %d does not exist", c.ID, *c.ParentID)
		}
		if parent.ParentID != nil {
			return nil, fmt.Errorf("category %d: parent %d is not top-level", c.ID, *c.ParentID)
		}
		idx.children[parent.ID] = append(idx.children[parent.ID], c.ID)
	}
	return idx, nil
}

// Children returns the subcategory ids of a top-level category.
func (idx *CategoryIndex) Children(parentID int64) []int64 {
	return idx.children[parentID]
}

// Contains reports whether categoryID is the given top-level category
// or one of its direct subcategories.
func (idx *CategoryIndex) Contains(topLevelID, categoryID int64) bool {
	if topLevelID == categoryID {
		return true
	}
	for _, child := range idx.children[topLevelID] {
		if child == categoryID {
			return true
		}
	}
	return false
}

// Category returns the category record, if indexed.
func (idx *CategoryIndex) Category(id int64) (models.Category, bool) {
	c, ok := idx.byID[id]
	return c, ok
}
