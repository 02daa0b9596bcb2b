// Package sharing holds the shared link and shared folder routes of the
// sharing namespace.
package sharing

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

const (
	patternPath           = `^((/(.|[\r\n])*|id:.*)|(rev:[0-9a-f]{9,})|(ns:[0-9]+(/.*)?))$`
	patternWritePath      = `^((/(.|[\r\n])*)|(ns:[0-9]+(/.*)?))$`
	patternSharedFolderID = `^[-_0-9a-zA-Z:]+$`
)

// Audience and access tags.
const (
	AudiencePublic = "public"
	AudienceTeam   = "team"
	AudienceNoOne  = "no_one"

	AccessViewer = "viewer"
	AccessEditor = "editor"
)

// Tagged is a union member without fields.
type Tagged struct {
	Tag string `json:".tag"`
}

// SharedLinkSettings configures a new shared link.
type SharedLinkSettings struct {
	RequirePassword *bool              `json:"require_password,omitempty"`
	LinkPassword    *string            `json:"link_password,omitempty"`
	Expires         *dropbox.Timestamp `json:"expires,omitempty"`
	Audience        *Tagged            `json:"audience,omitempty"`
	Access          *Tagged            `json:"access,omitempty"`
	AllowDownload   *bool              `json:"allow_download,omitempty"`
}

// CreateSharedLinkWithSettingsArg is the argument of
// CreateSharedLinkWithSettings.
type CreateSharedLinkWithSettingsArg struct {
	Path     string              `json:"path"`
	Settings *SharedLinkSettings `json:"settings,omitempty"`
}

// Validate validates this create shared link with settings arg
func (m *CreateSharedLinkWithSettingsArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, patternPath); err != nil {
		res = append(res, err)
	}

	if err := m.validateSettings(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *CreateSharedLinkWithSettingsArg) validateSettings(formats strfmt.Registry) error {
	if m.Settings == nil || m.Settings.Audience == nil {
		return nil
	}
	if err := validate.EnumCase("settings.audience", "body", m.Settings.Audience.Tag,
		[]any{AudiencePublic, AudienceTeam, AudienceNoOne}, true); err != nil {
		return err
	}
	return nil
}

// LinkPermissions describes what the caller may do with a link.
type LinkPermissions struct {
	CanRevoke           bool    `json:"can_revoke"`
	ResolvedVisibility  *Tagged `json:"resolved_visibility,omitempty"`
	RequestedVisibility *Tagged `json:"requested_visibility,omitempty"`
	AllowDownload       bool    `json:"allow_download"`
}

// SharedLinkMetadata describes a shared link. Tag is "file" or "folder".
type SharedLinkMetadata struct {
	Tag             string             `json:".tag"`
	URL             string             `json:"url"`
	Name            string             `json:"name"`
	ID              string             `json:"id,omitempty"`
	Expires         *dropbox.Timestamp `json:"expires,omitempty"`
	PathLower       string             `json:"path_lower,omitempty"`
	LinkPermissions LinkPermissions    `json:"link_permissions"`

	// File links only.
	Rev            string             `json:"rev,omitempty"`
	Size           uint64             `json:"size,omitempty"`
	ClientModified *dropbox.Timestamp `json:"client_modified,omitempty"`
	ServerModified *dropbox.Timestamp `json:"server_modified,omitempty"`
}

// ListSharedLinksArg is the argument of ListSharedLinks.
type ListSharedLinksArg struct {
	Path       string `json:"path,omitempty"`
	Cursor     string `json:"cursor,omitempty"`
	DirectOnly *bool  `json:"direct_only,omitempty"`
}

// Validate validates this list shared links arg
func (m *ListSharedLinksArg) Validate(formats strfmt.Registry) error {
	if m.Path == "" {
		return nil
	}
	if err := validate.Pattern("path", "body", m.Path, patternPath); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// ListSharedLinksResult is one page of shared links.
type ListSharedLinksResult struct {
	Links   []SharedLinkMetadata `json:"links"`
	HasMore bool                 `json:"has_more"`
	Cursor  string               `json:"cursor,omitempty"`
}

// Folder policies.
const (
	MemberPolicyTeam   = "team"
	MemberPolicyAnyone = "anyone"
)

// ShareFolderArg is the argument of ShareFolder.
type ShareFolderArg struct {
	Path             string  `json:"path"`
	MemberPolicy     *Tagged `json:"member_policy,omitempty"`
	ACLUpdatePolicy  *Tagged `json:"acl_update_policy,omitempty"`
	SharedLinkPolicy *Tagged `json:"shared_link_policy,omitempty"`
	ForceAsync       bool    `json:"force_async,omitempty"`
}

// Validate validates this share folder arg
func (m *ShareFolderArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, patternWritePath); err != nil {
		res = append(res, err)
	}
	if m.MemberPolicy != nil {
		if err := validate.EnumCase("member_policy", "body", m.MemberPolicy.Tag,
			[]any{MemberPolicyTeam, MemberPolicyAnyone}, true); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SharedFolderMetadata describes a shared folder.
type SharedFolderMetadata struct {
	SharedFolderID string             `json:"shared_folder_id"`
	Name           string             `json:"name"`
	PathLower      string             `json:"path_lower,omitempty"`
	PreviewURL     string             `json:"preview_url,omitempty"`
	IsInsideTeam   bool               `json:"is_inside_team_folder"`
	IsTeamFolder   bool               `json:"is_team_folder"`
	TimeInvited    *dropbox.Timestamp `json:"time_invited,omitempty"`
	AccessType     *Tagged            `json:"access_type,omitempty"`
	Policy         *FolderPolicy      `json:"policy,omitempty"`
}

// FolderPolicy holds the policies of a shared folder.
type FolderPolicy struct {
	MemberPolicy     *Tagged `json:"member_policy,omitempty"`
	ACLUpdatePolicy  *Tagged `json:"acl_update_policy,omitempty"`
	SharedLinkPolicy *Tagged `json:"shared_link_policy,omitempty"`
}

// Job tags.
const (
	TagAsyncJobID = "async_job_id"
	TagComplete   = "complete"
)

// ShareFolderLaunch is the result of ShareFolder. Tag is TagAsyncJobID, or
// TagComplete with the folder metadata inline.
type ShareFolderLaunch struct {
	Tag        string `json:".tag"`
	AsyncJobID string `json:"async_job_id,omitempty"`
	SharedFolderMetadata
}

// RelinquishFolderMembershipArg is the argument of
// RelinquishFolderMembership.
type RelinquishFolderMembershipArg struct {
	SharedFolderID string `json:"shared_folder_id"`
	LeaveACopy     bool   `json:"leave_a_copy,omitempty"`
}

// Validate validates this relinquish folder membership arg
func (m *RelinquishFolderMembershipArg) Validate(formats strfmt.Registry) error {
	if err := validate.Pattern("shared_folder_id", "body", m.SharedFolderID, patternSharedFolderID); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// LaunchEmptyResult is the result of jobs without output. Tag is
// TagAsyncJobID or TagComplete.
type LaunchEmptyResult struct {
	Tag        string `json:".tag"`
	AsyncJobID string `json:"async_job_id,omitempty"`
}

var (
	createSharedLinkWithSettingsRoute = dropbox.Route[CreateSharedLinkWithSettingsArg, SharedLinkMetadata]{
		Endpoint: endpoint.SharingCreateSharedLinkWithSettings,
		Headers:  header.JSON,
	}
	listSharedLinksRoute = dropbox.Route[ListSharedLinksArg, ListSharedLinksResult]{
		Endpoint: endpoint.SharingListSharedLinks,
		Headers:  header.JSON,
	}
	shareFolderRoute = dropbox.Route[ShareFolderArg, ShareFolderLaunch]{
		Endpoint: endpoint.SharingShareFolder,
		Headers:  header.JSON,
	}
	relinquishFolderMembershipRoute = dropbox.Route[RelinquishFolderMembershipArg, LaunchEmptyResult]{
		Endpoint: endpoint.SharingRelinquishFolderMembership,
		Headers:  header.JSON,
	}
)

// CreateSharedLinkWithSettings creates a shared link to a file or folder.
func CreateSharedLinkWithSettings(token string, arg *CreateSharedLinkWithSettingsArg) *dropbox.Request[CreateSharedLinkWithSettingsArg, SharedLinkMetadata] {
	return createSharedLinkWithSettingsRoute.New(token, arg)
}

// ListSharedLinks lists the shared links of the caller, optionally for one
// path.
func ListSharedLinks(token string, arg *ListSharedLinksArg) *dropbox.Request[ListSharedLinksArg, ListSharedLinksResult] {
	return listSharedLinksRoute.New(token, arg)
}

// ShareFolder shares a folder, possibly as a background job.
func ShareFolder(token string, arg *ShareFolderArg) *dropbox.Request[ShareFolderArg, ShareFolderLaunch] {
	return shareFolderRoute.New(token, arg)
}

// RelinquishFolderMembership removes the caller from a shared folder.
func RelinquishFolderMembership(token string, arg *RelinquishFolderMembershipArg) *dropbox.Request[RelinquishFolderMembershipArg, LaunchEmptyResult] {
	return relinquishFolderMembershipRoute.New(token, arg)
}
