package user

import (
	"errors"
	"net/mail"

	"lytefood/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// Profile groups the optional self-service fields of an account.
type Profile struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	DeliveryAddress string
}

// Roles are the boolean privilege flags of an account. A user can hold any
// combination; an admin is not implicitly a livreur and vice versa.
type Roles struct {
	IsActive     bool
	IsLivreur    bool
	IsAdmin      bool
	IsSuperAdmin bool
}

// User is the account aggregate. It never sees raw passwords: hashing happens
// at the application boundary and only the hash crosses into the aggregate.
type User struct {
	id             int64
	email          string
	hashedPassword string
	profile        Profile
	roles          Roles
	isConstructed  bool
}

// NewUser creates an active customer account with no privileges.
func NewUser(email, hashedPassword string, profile Profile) (*User, error) {
	return NewUserWithRoles(email, hashedPassword, profile,
		Roles{IsActive: true})
}

// NewUserWithRoles creates an account with explicit privilege flags. Used by
// the super-admin user creation path; self-registration goes through NewUser.
func NewUserWithRoles(email, hashedPassword string, profile Profile, roles Roles) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if hashedPassword == "" {
		return nil, errs.NewValueIsRequiredError("hashed_password")
	}

	return &User{
		email:          email,
		hashedPassword: hashedPassword,
		profile:        profile,
		roles:          roles,
		isConstructed:  true,
	}, nil
}

// RestoreUserParams carries the persisted state needed to rebuild a user.
type RestoreUserParams struct {
	ID             int64
	Email          string
	HashedPassword string
	Profile        Profile
	Roles          Roles
}

// RestoreUser rebuilds a user from persistence.
func RestoreUser(params RestoreUserParams) (*User, error) {
	if params.ID <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}
	if err := validateEmail(params.Email); err != nil {
		return nil, err
	}

	return &User{
		id:             params.ID,
		email:          params.Email,
		hashedPassword: params.HashedPassword,
		profile:        params.Profile,
		roles:          params.Roles,
		isConstructed:  true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AttachID binds the database-generated identifier after the insert.
func (u *User) AttachID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if u.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	u.id = id
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

// HashedPassword returns the stored credential hash.
func (u *User) HashedPassword() string {
	return u.hashedPassword
}

func (u *User) Profile() Profile {
	return u.profile
}

func (u *User) Roles() Roles {
	return u.roles
}

func (u *User) IsActive() bool {
	return u.roles.IsActive
}

func (u *User) IsLivreur() bool {
	return u.roles.IsLivreur
}

// IsAdmin reports administrative privilege. A super-admin counts as an admin
// everywhere an admin is required.
func (u *User) IsAdmin() bool {
	return u.roles.IsAdmin || u.roles.IsSuperAdmin
}

func (u *User) IsSuperAdmin() bool {
	return u.roles.IsSuperAdmin
}

// ProfilePatch holds the fields a user may change about themselves. Nil
// fields are left untouched. Identity and credentials are deliberately
// absent: email is immutable and passwords go through SetHashedPassword.
type ProfilePatch struct {
	FirstName       *string
	LastName        *string
	PhoneNumber     *string
	DeliveryAddress *string
}

// ApplyProfilePatch updates the whitelisted profile fields.
func (u *User) ApplyProfilePatch(patch ProfilePatch) {
	if patch.FirstName != nil {
		u.profile.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.profile.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		u.profile.PhoneNumber = *patch.PhoneNumber
	}
	if patch.DeliveryAddress != nil {
		u.profile.DeliveryAddress = *patch.DeliveryAddress
	}
}

// SetHashedPassword replaces the stored credential hash.
func (u *User) SetHashedPassword(hashedPassword string) error {
	if hashedPassword == "" {
		return errs.NewValueIsRequiredError("hashed_password")
	}
	u.hashedPassword = hashedPassword
	return nil
}

// SetAdmin grants or revokes the admin flag.
func (u *User) SetAdmin(isAdmin bool) {
	u.roles.IsAdmin = isAdmin
}

// SetLivreur grants or revokes the livreur flag.
func (u *User) SetLivreur(isLivreur bool) {
	u.roles.IsLivreur = isLivreur
}

// SetSuperAdmin grants or revokes the super-admin flag. A super-admin cannot
// revoke their own flag; that would risk leaving the system without one.
func (u *User) SetSuperAdmin(isSuperAdmin bool, actorID int64) error {
	if u.id == actorID && !isSuperAdmin {
		return errs.NewNotAuthorizedError("revoke own super-admin status")
	}
	u.roles.IsSuperAdmin = isSuperAdmin
	return nil
}

// SetActive activates or deactivates the account. A super-admin cannot
// deactivate their own account.
func (u *User) SetActive(isActive bool, actorID int64) error {
	if u.id == actorID && !isActive {
		return errs.NewNotAuthorizedError("deactivate own account")
	}
	u.roles.IsActive = isActive
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	return nil
}
