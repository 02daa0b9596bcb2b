// Package filerequests holds the routes of the file_requests namespace. A
// file request collects uploads from anyone into a destination folder.
package filerequests

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

const (
	patternDestination   = `^/(.|[\r\n])*$`
	patternFileRequestID = `^[-_0-9a-zA-Z]+$`

	// DefaultListLimit is the page size of ListV2 when none is given.
	DefaultListLimit = 1000
)

// Grace periods after a deadline.
const (
	GracePeriodOneDay     = "one_day"
	GracePeriodTwoDays    = "two_days"
	GracePeriodSevenDays  = "seven_days"
	GracePeriodThirtyDays = "thirty_days"
	GracePeriodAlways     = "always"
)

// GracePeriod is the time late uploads are still accepted.
type GracePeriod struct {
	Tag string `json:".tag"`
}

// FileRequestDeadline is when a file request stops accepting uploads.
type FileRequestDeadline struct {
	Deadline         dropbox.Timestamp `json:"deadline"`
	AllowLateUploads *GracePeriod      `json:"allow_late_uploads,omitempty"`
}

func (m *FileRequestDeadline) validate(path string) error {
	if m == nil || m.AllowLateUploads == nil {
		return nil
	}
	if err := validate.EnumCase(path+".allow_late_uploads", "body", m.AllowLateUploads.Tag, []any{
		GracePeriodOneDay, GracePeriodTwoDays, GracePeriodSevenDays, GracePeriodThirtyDays, GracePeriodAlways,
	}, true); err != nil {
		return err
	}
	return nil
}

// FileRequest describes a file request.
type FileRequest struct {
	ID          string               `json:"id"`
	URL         string               `json:"url"`
	Title       string               `json:"title"`
	Created     dropbox.Timestamp    `json:"created"`
	IsOpen      bool                 `json:"is_open"`
	FileCount   int64                `json:"file_count"`
	Destination *string              `json:"destination,omitempty"`
	Deadline    *FileRequestDeadline `json:"deadline,omitempty"`
	Description *string              `json:"description,omitempty"`
}

// CreateFileRequestArgs is the argument of Create.
type CreateFileRequestArgs struct {
	Title string `json:"title"`

	// Destination is the folder uploads land in, created when missing.
	Destination string               `json:"destination"`
	Deadline    *FileRequestDeadline `json:"deadline,omitempty"`

	// Open defaults to true on the server.
	Open        *bool   `json:"open,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate validates this create file request args
func (m *CreateFileRequestArgs) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinLength("title", "body", m.Title, 1); err != nil {
		res = append(res, err)
	}

	if err := validate.Pattern("destination", "body", m.Destination, patternDestination); err != nil {
		res = append(res, err)
	}

	if err := m.Deadline.validate("deadline"); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetFileRequestArgs is the argument of Get.
type GetFileRequestArgs struct {
	ID string `json:"id"`
}

// Validate validates this get file request args
func (m *GetFileRequestArgs) Validate(formats strfmt.Registry) error {
	if err := validate.Pattern("id", "body", m.ID, patternFileRequestID); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// Deadline update tags.
const (
	DeadlineNoUpdate = "no_update"
	DeadlineUpdate   = "update"
)

// UpdateFileRequestDeadline changes or clears a deadline. Tag is
// DeadlineNoUpdate, or DeadlineUpdate with Deadline set to the new value
// (nil removes the deadline).
type UpdateFileRequestDeadline struct {
	Tag              string             `json:".tag"`
	Deadline         *dropbox.Timestamp `json:"deadline,omitempty"`
	AllowLateUploads *GracePeriod       `json:"allow_late_uploads,omitempty"`
}

// UpdateFileRequestArgs is the argument of Update. Nil fields are left
// unchanged.
type UpdateFileRequestArgs struct {
	ID          string                     `json:"id"`
	Title       *string                    `json:"title,omitempty"`
	Destination *string                    `json:"destination,omitempty"`
	Deadline    *UpdateFileRequestDeadline `json:"deadline,omitempty"`
	Open        *bool                      `json:"open,omitempty"`
	Description *string                    `json:"description,omitempty"`
}

// Validate validates this update file request args
func (m *UpdateFileRequestArgs) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("id", "body", m.ID, patternFileRequestID); err != nil {
		res = append(res, err)
	}

	if m.Title != nil {
		if err := validate.MinLength("title", "body", swag.StringValue(m.Title), 1); err != nil {
			res = append(res, err)
		}
	}

	if m.Destination != nil {
		if err := validate.Pattern("destination", "body", swag.StringValue(m.Destination), patternDestination); err != nil {
			res = append(res, err)
		}
	}

	if m.Deadline != nil {
		if err := validate.EnumCase("deadline", "body", m.Deadline.Tag,
			[]any{DeadlineNoUpdate, DeadlineUpdate}, true); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ListFileRequestsArg is the argument of ListV2.
type ListFileRequestsArg struct {
	Limit uint64 `json:"limit,omitempty"`
}

// ListFileRequestsContinueArg is the argument of ListContinue.
type ListFileRequestsContinueArg struct {
	Cursor string `json:"cursor"`
}

// Validate validates this list file requests continue arg
func (m *ListFileRequestsContinueArg) Validate(formats strfmt.Registry) error {
	if err := validate.MinLength("cursor", "body", m.Cursor, 1); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// ListFileRequestsV2Result is one page of file requests.
type ListFileRequestsV2Result struct {
	FileRequests []FileRequest `json:"file_requests"`
	Cursor       string        `json:"cursor"`
	HasMore      bool          `json:"has_more"`
}

// DeleteFileRequestArgs is the argument of Delete.
type DeleteFileRequestArgs struct {
	IDs []string `json:"ids"`
}

// Validate validates this delete file request args
func (m *DeleteFileRequestArgs) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinItems("ids", "body", int64(len(m.IDs)), 1); err != nil {
		res = append(res, err)
	}
	for _, id := range m.IDs {
		if err := validate.Pattern("ids", "body", id, patternFileRequestID); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// DeleteFileRequestsResult holds the deleted file requests.
type DeleteFileRequestsResult struct {
	FileRequests []FileRequest `json:"file_requests"`
}

// CountFileRequestsResult is the result of Count.
type CountFileRequestsResult struct {
	FileRequestCount uint64 `json:"file_request_count"`
}

var (
	createRoute = dropbox.Route[CreateFileRequestArgs, FileRequest]{
		Endpoint: endpoint.FileRequestsCreate,
		Headers:  header.JSON,
	}
	getRoute = dropbox.Route[GetFileRequestArgs, FileRequest]{
		Endpoint: endpoint.FileRequestsGet,
		Headers:  header.JSON,
	}
	updateRoute = dropbox.Route[UpdateFileRequestArgs, FileRequest]{
		Endpoint: endpoint.FileRequestsUpdate,
		Headers:  header.JSON,
	}
	listV2Route = dropbox.Route[ListFileRequestsArg, ListFileRequestsV2Result]{
		Endpoint: endpoint.FileRequestsListV2,
		Headers:  header.JSON,
	}
	listContinueRoute = dropbox.Route[ListFileRequestsContinueArg, ListFileRequestsV2Result]{
		Endpoint: endpoint.FileRequestsListContinue,
		Headers:  header.JSON,
	}
	deleteRoute = dropbox.Route[DeleteFileRequestArgs, DeleteFileRequestsResult]{
		Endpoint: endpoint.FileRequestsDelete,
		Headers:  header.JSON,
	}
	deleteAllClosedRoute = dropbox.Route[dropbox.Void, DeleteFileRequestsResult]{
		Endpoint: endpoint.FileRequestsDeleteAllClosed,
		Headers:  header.None,
	}
	countRoute = dropbox.Route[dropbox.Void, CountFileRequestsResult]{
		Endpoint: endpoint.FileRequestsCount,
		Headers:  header.None,
	}
)

// Create creates a file request.
func Create(token string, arg *CreateFileRequestArgs) *dropbox.Request[CreateFileRequestArgs, FileRequest] {
	return createRoute.New(token, arg)
}

// Get returns a file request.
func Get(token string, arg *GetFileRequestArgs) *dropbox.Request[GetFileRequestArgs, FileRequest] {
	return getRoute.New(token, arg)
}

// Update changes a file request.
func Update(token string, arg *UpdateFileRequestArgs) *dropbox.Request[UpdateFileRequestArgs, FileRequest] {
	return updateRoute.New(token, arg)
}

// ListV2 lists the caller's file requests. A nil arg uses DefaultListLimit.
func ListV2(token string, arg *ListFileRequestsArg) *dropbox.Request[ListFileRequestsArg, ListFileRequestsV2Result] {
	if arg == nil {
		arg = &ListFileRequestsArg{Limit: DefaultListLimit}
	}
	return listV2Route.New(token, arg)
}

// ListContinue returns the next page of ListV2.
func ListContinue(token string, arg *ListFileRequestsContinueArg) *dropbox.Request[ListFileRequestsContinueArg, ListFileRequestsV2Result] {
	return listContinueRoute.New(token, arg)
}

// Delete deletes file requests.
func Delete(token string, arg *DeleteFileRequestArgs) *dropbox.Request[DeleteFileRequestArgs, DeleteFileRequestsResult] {
	return deleteRoute.New(token, arg)
}

// DeleteAllClosed deletes every closed file request.
func DeleteAllClosed(token string) *dropbox.Request[dropbox.Void, DeleteFileRequestsResult] {
	return deleteAllClosedRoute.New(token, nil)
}

// Count returns the number of file requests.
func Count(token string) *dropbox.Request[dropbox.Void, CountFileRequestsResult] {
	return countRoute.New(token, nil)
}
