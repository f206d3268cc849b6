package menu

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
)

var (
	// ErrMenuIsNotConstructed is returned when a Menu instance was not created
	// through NewMenu or RestoreMenu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu or RestoreMenu")
)

// Menu is one orderable catalog item. Its price is the value copied into
// line items at ordering time; changing it later never touches past orders.
type Menu struct {
	id            int64
	name          string
	description   string
	imageURL      string
	price         kernel.Money
	isFavorite    bool
	categoryID    int64
	isConstructed bool
}

// NewMenu creates a catalog item in the given category.
func NewMenu(name, description, imageURL string, price kernel.Money, categoryID int64) (*Menu, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if categoryID <= 0 {
		return nil, errs.NewValueIsInvalidError("category_id")
	}

	return &Menu{
		name:          name,
		description:   description,
		imageURL:      imageURL,
		price:         price.Round2(),
		categoryID:    categoryID,
		isConstructed: true,
	}, nil
}

// RestoreMenuParams carries the persisted state needed to rebuild a menu.
type RestoreMenuParams struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	Price       kernel.Money
	IsFavorite  bool
	CategoryID  int64
}

// RestoreMenu rebuilds a menu from persistence.
func RestoreMenu(params RestoreMenuParams) (*Menu, error) {
	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	return &Menu{
		id:            params.ID,
		name:          params.Name,
		description:   params.Description,
		imageURL:      params.ImageURL,
		price:         params.Price,
		isFavorite:    params.IsFavorite,
		categoryID:    params.CategoryID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Menu instance was properly constructed.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// AttachID binds the database-generated identifier after the insert.
func (m *Menu) AttachID(id int64) error {
	if id <= 0 || m.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	m.id = id
	return nil
}

func (m *Menu) ID() int64 {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Description() string {
	return m.description
}

func (m *Menu) ImageURL() string {
	return m.imageURL
}

func (m *Menu) Price() kernel.Money {
	return m.price
}

func (m *Menu) IsFavorite() bool {
	return m.isFavorite
}

func (m *Menu) CategoryID() int64 {
	return m.categoryID
}

// Patch holds the fields an admin may change on a catalog item. Nil fields
// stay untouched.
type Patch struct {
	Name        *string
	Description *string
	ImageURL    *string
	Price       *kernel.Money
	IsFavorite  *bool
	CategoryID  *int64
}

// Apply updates the item with the non-nil fields of the patch.
func (m *Menu) Apply(patch Patch) error {
	if patch.Name != nil {
		if *patch.Name == "" {
			return errs.NewValueIsRequiredError("name")
		}
		m.name = *patch.Name
	}
	if patch.Description != nil {
		m.description = *patch.Description
	}
	if patch.ImageURL != nil {
		m.imageURL = *patch.ImageURL
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return errs.NewValueIsInvalidError("price")
		}
		m.price = patch.Price.Round2()
	}
	if patch.IsFavorite != nil {
		m.isFavorite = *patch.IsFavorite
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID <= 0 {
			return errs.NewValueIsInvalidError("category_id")
		}
		m.categoryID = *patch.CategoryID
	}
	return nil
}
