package core

import "github.com/shopspring/decimal"

// User is an account holder belonging to a company.
// Tokens is the only field that changes after load: the report builder
// credits the company top-up to it in place.
type User struct {
	CompanyID    int             `json:"company_id"`
	ActiveStatus bool            `json:"active_status"`
	EmailStatus  bool            `json:"email_status"`
	LastName     string          `json:"last_name"`
	FirstName    string          `json:"first_name"`
	Email        string          `json:"email"`
	Tokens       decimal.Decimal `json:"tokens"`
}

// Company is read-only once loaded.
type Company struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	TopUp decimal.Decimal `json:"top_up"`
}

// CompanyIndex maps a company id to its record.
type CompanyIndex map[int]Company

// UserRecord is the raw shape of one element of the users document.
// Pointer fields let a missing key be told apart from a zero value.
type UserRecord struct {
	CompanyID    *int             `json:"company_id" validate:"required" jsonschema_description:"Identifier of the company the user belongs to"`
	ActiveStatus *bool            `json:"active_status" validate:"required" jsonschema_description:"Only active users receive a top-up and appear in the report"`
	EmailStatus  *bool            `json:"email_status" validate:"required" jsonschema_description:"Whether the user is listed under Users Emailed"`
	LastName     *string          `json:"last_name" validate:"required" jsonschema_description:"Sort key within a company"`
	FirstName    *string          `json:"first_name" validate:"required"`
	Email        *string          `json:"email" validate:"required"`
	Tokens       *decimal.Decimal `json:"tokens" validate:"required" jsonschema_description:"Current token balance"`
}

// CompanyRecord is the raw shape of one element of the companies document.
type CompanyRecord struct {
	ID    *int             `json:"id" validate:"required" jsonschema_description:"Unique company identifier"`
	Name  *string          `json:"name" validate:"required"`
	TopUp *decimal.Decimal `json:"top_up" validate:"required" jsonschema_description:"Amount credited to every active user of the company"`
}

// ToUser converts a validated record. It must only be called after
// validation has confirmed every field is present.
func (r UserRecord) ToUser() User {
	return User{
		CompanyID:    *r.CompanyID,
		ActiveStatus: *r.ActiveStatus,
		EmailStatus:  *r.EmailStatus,
		LastName:     *r.LastName,
		FirstName:    *r.FirstName,
		Email:        *r.Email,
		Tokens:       *r.Tokens,
	}
}

// ToCompany converts a validated record.
func (r CompanyRecord) ToCompany() Company {
	return Company{
		ID:    *r.ID,
		Name:  *r.Name,
		TopUp: *r.TopUp,
	}
}
