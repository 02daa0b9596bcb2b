// Package users holds the account routes of the users namespace.
package users

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

// accountIDLength is the fixed length of an account id.
const accountIDLength = 40

// Name holds the parts of a user's name.
type Name struct {
	GivenName       string `json:"given_name"`
	Surname         string `json:"surname"`
	FamiliarName    string `json:"familiar_name"`
	DisplayName     string `json:"display_name"`
	AbbreviatedName string `json:"abbreviated_name"`
}

// Account is the information shared by every account.
type Account struct {
	AccountID       string `json:"account_id"`
	Name            Name   `json:"name"`
	Email           string `json:"email"`
	EmailVerified   bool   `json:"email_verified"`
	Disabled        bool   `json:"disabled"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// BasicAccount is another user's account as seen by the caller.
type BasicAccount struct {
	Account
	IsTeammate   bool   `json:"is_teammate"`
	TeamMemberID string `json:"team_member_id,omitempty"`
}

// AccountType is one of "basic", "pro" or "business".
type AccountType struct {
	Tag string `json:".tag"`
}

// RootInfo describes the root namespace of an account.
type RootInfo struct {
	Tag             string `json:".tag"`
	RootNamespaceID string `json:"root_namespace_id"`
	HomeNamespaceID string `json:"home_namespace_id"`
	HomePath        string `json:"home_path,omitempty"`
}

// FullAccount is the caller's own account.
type FullAccount struct {
	Account
	Country      string      `json:"country,omitempty"`
	Locale       string      `json:"locale"`
	ReferralLink string      `json:"referral_link"`
	IsPaired     bool        `json:"is_paired"`
	AccountType  AccountType `json:"account_type"`
	RootInfo     RootInfo    `json:"root_info"`
}

// GetAccountArg is the argument of GetAccount.
type GetAccountArg struct {
	AccountID string `json:"account_id"`
}

// Validate validates this get account arg
func (m *GetAccountArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAccountID(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *GetAccountArg) validateAccountID(formats strfmt.Registry) error {
	if err := validate.MinLength("account_id", "body", m.AccountID, accountIDLength); err != nil {
		return err
	}
	if err := validate.MaxLength("account_id", "body", m.AccountID, accountIDLength); err != nil {
		return err
	}
	return nil
}

// SpaceAllocation is the quota of an account. Tag is "individual" or "team".
type SpaceAllocation struct {
	Tag       string `json:".tag"`
	Allocated uint64 `json:"allocated"`

	// Used is only set for team allocations.
	Used uint64 `json:"used,omitempty"`
}

// SpaceUsage is the space used by an account.
type SpaceUsage struct {
	Used       uint64          `json:"used"`
	Allocation SpaceAllocation `json:"allocation"`
}

// Free returns the unused part of the allocation, zero when over quota.
func (s *SpaceUsage) Free() uint64 {
	if s.Used >= s.Allocation.Allocated {
		return 0
	}
	return s.Allocation.Allocated - s.Used
}

var (
	getCurrentAccountRoute = dropbox.Route[dropbox.Void, FullAccount]{
		Endpoint: endpoint.UsersGetCurrentAccount,
		Headers:  header.None,
	}
	getAccountRoute = dropbox.Route[GetAccountArg, BasicAccount]{
		Endpoint: endpoint.UsersGetAccount,
		Headers:  header.JSON,
	}
	getSpaceUsageRoute = dropbox.Route[dropbox.Void, SpaceUsage]{
		Endpoint: endpoint.UsersGetSpaceUsage,
		Headers:  header.None,
	}
)

// GetCurrentAccount returns the account of the token's owner.
func GetCurrentAccount(token string) *dropbox.Request[dropbox.Void, FullAccount] {
	return getCurrentAccountRoute.New(token, nil)
}

// GetAccount returns information about another user's account.
func GetAccount(token string, arg *GetAccountArg) *dropbox.Request[GetAccountArg, BasicAccount] {
	return getAccountRoute.New(token, arg)
}

// GetSpaceUsage returns the space usage of the token's owner.
func GetSpaceUsage(token string) *dropbox.Request[dropbox.Void, SpaceUsage] {
	return getSpaceUsageRoute.New(token, nil)
}
