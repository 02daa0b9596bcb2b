package files

import (
	"fmt"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"

	"github.com/tomblancdev/dropbox-go"
)

// Path patterns accepted by the files routes.
const (
	// patternReadPath matches "", absolute paths, file ids and namespace paths.
	patternReadPath = `^((/(.|[\r\n])*)?|id:.*|(ns:[0-9]+(/.*)?))$`

	// patternWritePath matches absolute paths and namespace paths.
	patternWritePath = `^((/(.|[\r\n])*)|(ns:[0-9]+(/.*)?))$`

	// patternMetadataPath also matches revisions.
	patternMetadataPath = `^((/(.|[\r\n])*|id:.*)|(rev:[0-9a-f]{9,})|(ns:[0-9]+(/.*)?))$`

	// patternRelocationPath matches paths, ids and namespace paths, but not "".
	patternRelocationPath = `^((/(.|[\r\n])*)|(ns:[0-9]+(/.*)?)|(id:.*))$`
)

// Metadata tags.
const (
	TagFile    = "file"
	TagFolder  = "folder"
	TagDeleted = "deleted"
)

// Metadata describes a file, a folder or a deleted entry. Tag tells which;
// fields that do not apply to the kind are left empty.
type Metadata struct {
	Tag         string `json:".tag"`
	Name        string `json:"name"`
	PathLower   string `json:"path_lower,omitempty"`
	PathDisplay string `json:"path_display,omitempty"`

	// ID is set for files and folders.
	ID string `json:"id,omitempty"`

	// File fields.
	ClientModified *dropbox.Timestamp `json:"client_modified,omitempty"`
	ServerModified *dropbox.Timestamp `json:"server_modified,omitempty"`
	Rev            string             `json:"rev,omitempty"`
	Size           uint64             `json:"size,omitempty"`
	ContentHash    string             `json:"content_hash,omitempty"`
	IsDownloadable *bool              `json:"is_downloadable,omitempty"`

	// SharingInfo is set for shared files and folders.
	SharingInfo *SharingInfo `json:"sharing_info,omitempty"`
}

// SharingInfo describes the sharing state of an entry.
type SharingInfo struct {
	ReadOnly             bool   `json:"read_only"`
	ParentSharedFolderID string `json:"parent_shared_folder_id,omitempty"`
	SharedFolderID       string `json:"shared_folder_id,omitempty"`
	ModifiedBy           string `json:"modified_by,omitempty"`
}

// IsFile reports whether m describes a file.
func (m *Metadata) IsFile() bool { return m.Tag == TagFile }

// IsFolder reports whether m describes a folder.
func (m *Metadata) IsFolder() bool { return m.Tag == TagFolder }

// IsDeleted reports whether m describes a deleted entry.
func (m *Metadata) IsDeleted() bool { return m.Tag == TagDeleted }

// ListFolderArg is the argument of ListFolder and ListFolderGetLatestCursor.
type ListFolderArg struct {
	// Path is the folder to list; "" is the root.
	Path                            string  `json:"path"`
	Recursive                       bool    `json:"recursive,omitempty"`
	IncludeDeleted                  bool    `json:"include_deleted,omitempty"`
	IncludeHasExplicitSharedMembers bool    `json:"include_has_explicit_shared_members,omitempty"`
	IncludeMountedFolders           *bool   `json:"include_mounted_folders,omitempty"`
	Limit                           *uint32 `json:"limit,omitempty"`
	IncludeNonDownloadableFiles     *bool   `json:"include_non_downloadable_files,omitempty"`
}

// Validate validates this list folder arg
func (m *ListFolderArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, patternReadPath); err != nil {
		res = append(res, err)
	}

	if err := m.validateLimit(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *ListFolderArg) validateLimit(formats strfmt.Registry) error {
	if swag.IsZero(m.Limit) {
		return nil
	}
	if err := validate.MinimumUint("limit", "body", uint64(*m.Limit), 1, false); err != nil {
		return err
	}
	if err := validate.MaximumUint("limit", "body", uint64(*m.Limit), 2000, false); err != nil {
		return err
	}
	return nil
}

// ListFolderResult is one page of a folder listing.
type ListFolderResult struct {
	Entries []Metadata `json:"entries"`
	Cursor  string     `json:"cursor"`
	HasMore bool       `json:"has_more"`
}

// ListFolderContinueArg continues a listing from a cursor.
type ListFolderContinueArg struct {
	Cursor string `json:"cursor"`
}

// Validate validates this list folder continue arg
func (m *ListFolderContinueArg) Validate(formats strfmt.Registry) error {
	if err := validate.MinLength("cursor", "body", m.Cursor, 1); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// ListFolderGetLatestCursorResult holds a cursor for the current state of a
// folder.
type ListFolderGetLatestCursorResult struct {
	Cursor string `json:"cursor"`
}

// Longpoll timeout bounds, in seconds.
const (
	MinLongpollTimeout     = 30
	MaxLongpollTimeout     = 480
	DefaultLongpollTimeout = 30
)

// ListFolderLongpollArg waits for changes past Cursor.
type ListFolderLongpollArg struct {
	Cursor string `json:"cursor"`

	// Timeout is in seconds. The server adds up to 90 seconds of jitter.
	Timeout uint64 `json:"timeout,omitempty"`
}

// Validate validates this list folder longpoll arg
func (m *ListFolderLongpollArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinLength("cursor", "body", m.Cursor, 1); err != nil {
		res = append(res, err)
	}

	if m.Timeout != 0 {
		if err := validate.MinimumUint("timeout", "body", m.Timeout, MinLongpollTimeout, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumUint("timeout", "body", m.Timeout, MaxLongpollTimeout, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ListFolderLongpollResult reports whether the folder changed.
type ListFolderLongpollResult struct {
	Changes bool `json:"changes"`

	// Backoff is the number of seconds to wait before polling again.
	Backoff *uint64 `json:"backoff,omitempty"`
}

// GetMetadataArg is the argument of GetMetadata.
type GetMetadataArg struct {
	Path                            string `json:"path"`
	IncludeMediaInfo                bool   `json:"include_media_info,omitempty"`
	IncludeDeleted                  bool   `json:"include_deleted,omitempty"`
	IncludeHasExplicitSharedMembers bool   `json:"include_has_explicit_shared_members,omitempty"`
}

// Validate validates this get metadata arg
func (m *GetMetadataArg) Validate(formats strfmt.Registry) error {
	if err := validate.Pattern("path", "body", m.Path, patternMetadataPath); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// CreateFolderArg is the argument of CreateFolder.
type CreateFolderArg struct {
	Path       string `json:"path"`
	Autorename bool   `json:"autorename,omitempty"`
}

// Validate validates this create folder arg
func (m *CreateFolderArg) Validate(formats strfmt.Registry) error {
	if err := validate.Pattern("path", "body", m.Path, patternWritePath); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// CreateFolderResult holds the created folder.
type CreateFolderResult struct {
	Metadata Metadata `json:"metadata"`
}

// maxBatchPaths bounds the paths of a folder batch.
const maxBatchPaths = 10000

// CreateFolderBatchArg is the argument of CreateFolderBatch.
type CreateFolderBatchArg struct {
	Paths      []string `json:"paths"`
	Autorename bool     `json:"autorename,omitempty"`
	ForceAsync bool     `json:"force_async,omitempty"`
}

// Validate validates this create folder batch arg
func (m *CreateFolderBatchArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MaxItems("paths", "body", int64(len(m.Paths)), maxBatchPaths); err != nil {
		res = append(res, err)
	}

	for i, p := range m.Paths {
		if err := validate.Pattern(fmt.Sprintf("paths.%d", i), "body", p, patternWritePath); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Batch job tags.
const (
	TagAsyncJobID = "async_job_id"
	TagComplete   = "complete"
	TagInProgress = "in_progress"
	TagFailed     = "failed"
)

// CreateFolderBatchResultEntry is the outcome for one path of a batch.
// Tag is "success" or "failure".
type CreateFolderBatchResultEntry struct {
	Tag      string       `json:".tag"`
	Metadata *Metadata    `json:"metadata,omitempty"`
	Failure  *TaggedError `json:"failure,omitempty"`
}

// TaggedError is a route error reported inside a successful response.
type TaggedError struct {
	Tag string `json:".tag"`
}

// CreateFolderBatchLaunch is the result of CreateFolderBatch. Tag is
// TagAsyncJobID when the batch runs in the background, or TagComplete with
// Entries set.
type CreateFolderBatchLaunch struct {
	Tag        string                         `json:".tag"`
	AsyncJobID string                         `json:"async_job_id,omitempty"`
	Entries    []CreateFolderBatchResultEntry `json:"entries,omitempty"`
}

// PollArg polls a background job.
type PollArg struct {
	AsyncJobID string `json:"async_job_id"`
}

// Validate validates this poll arg
func (m *PollArg) Validate(formats strfmt.Registry) error {
	if err := validate.MinLength("async_job_id", "body", m.AsyncJobID, 1); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// CreateFolderBatchJobStatus is the state of a folder batch job. Tag is
// TagInProgress, TagComplete with Entries set, or TagFailed.
type CreateFolderBatchJobStatus struct {
	Tag     string                         `json:".tag"`
	Entries []CreateFolderBatchResultEntry `json:"entries,omitempty"`
	Failed  *TaggedError                   `json:"failed,omitempty"`
}

// Done reports whether the job has finished, successfully or not.
func (s *CreateFolderBatchJobStatus) Done() bool {
	return s.Tag != TagInProgress
}

// DeleteArg is the argument of Delete.
type DeleteArg struct {
	Path      string `json:"path"`
	ParentRev string `json:"parent_rev,omitempty"`
}

// Validate validates this delete arg
func (m *DeleteArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, patternRelocationPath); err != nil {
		res = append(res, err)
	}
	if m.ParentRev != "" {
		if err := validate.Pattern("parent_rev", "body", m.ParentRev, `^[0-9a-f]+$`); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// DeleteResult holds the deleted entry.
type DeleteResult struct {
	Metadata Metadata `json:"metadata"`
}

// RelocationArg is the argument of Move and Copy.
type RelocationArg struct {
	FromPath               string `json:"from_path"`
	ToPath                 string `json:"to_path"`
	Autorename             bool   `json:"autorename,omitempty"`
	AllowOwnershipTransfer bool   `json:"allow_ownership_transfer,omitempty"`
}

// Validate validates this relocation arg
func (m *RelocationArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("from_path", "body", m.FromPath, patternRelocationPath); err != nil {
		res = append(res, err)
	}
	if err := validate.Pattern("to_path", "body", m.ToPath, patternRelocationPath); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// RelocationResult holds the entry at its new location.
type RelocationResult struct {
	Metadata Metadata `json:"metadata"`
}

// maxSearchQueryLength bounds a search query.
const maxSearchQueryLength = 1000

// SearchOptions narrows a search.
type SearchOptions struct {
	Path         string  `json:"path,omitempty"`
	MaxResults   *uint64 `json:"max_results,omitempty"`
	FilenameOnly bool    `json:"filename_only,omitempty"`

	// FileStatus is "active" or "deleted".
	FileStatus *Tagged `json:"file_status,omitempty"`
}

// SearchArg is the argument of Search.
type SearchArg struct {
	Query   string         `json:"query"`
	Options *SearchOptions `json:"options,omitempty"`
}

// Validate validates this search arg
func (m *SearchArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MaxLength("query", "body", m.Query, maxSearchQueryLength); err != nil {
		res = append(res, err)
	}

	if m.Options != nil && m.Options.MaxResults != nil {
		maxResults := swag.Uint64Value(m.Options.MaxResults)
		if err := validate.MinimumUint("options.max_results", "body", maxResults, 1, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumUint("options.max_results", "body", maxResults, 1000, false); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// SearchMatch is one search hit.
type SearchMatch struct {
	Metadata struct {
		Tag      string   `json:".tag"`
		Metadata Metadata `json:"metadata"`
	} `json:"metadata"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Matches []SearchMatch `json:"matches"`
	HasMore bool          `json:"has_more"`
	Cursor  string        `json:"cursor,omitempty"`
}

// GetTemporaryLinkArg is the argument of GetTemporaryLink.
type GetTemporaryLinkArg struct {
	Path string `json:"path"`
}

// Validate validates this get temporary link arg
func (m *GetTemporaryLinkArg) Validate(formats strfmt.Registry) error {
	if err := validate.Pattern("path", "body", m.Path, patternRelocationPath); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// GetTemporaryLinkResult holds a four hour link to the file content.
type GetTemporaryLinkResult struct {
	Metadata Metadata `json:"metadata"`
	Link     string   `json:"link"`
}

// Thumbnail formats, sizes and modes.
const (
	ThumbnailJPEG = "jpeg"
	ThumbnailPNG  = "png"

	ThumbnailW64H64   = "w64h64"
	ThumbnailW256H256 = "w256h256"

	ThumbnailStrict  = "strict"
	ThumbnailBestFit = "bestfit"
	ThumbnailFitOne  = "fitone_bestfit"
)

// Tagged is a union member without fields.
type Tagged struct {
	Tag string `json:".tag"`
}

// ThumbnailArg requests one thumbnail.
type ThumbnailArg struct {
	Path   string  `json:"path"`
	Format *Tagged `json:"format,omitempty"`
	Size   *Tagged `json:"size,omitempty"`
	Mode   *Tagged `json:"mode,omitempty"`
}

// maxThumbnailBatch bounds the entries of a thumbnail batch.
const maxThumbnailBatch = 25

// GetThumbnailBatchArg is the argument of GetThumbnailBatch.
type GetThumbnailBatchArg struct {
	Entries []ThumbnailArg `json:"entries"`
}

// Validate validates this get thumbnail batch arg
func (m *GetThumbnailBatchArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MaxItems("entries", "body", int64(len(m.Entries)), maxThumbnailBatch); err != nil {
		res = append(res, err)
	}

	for i, e := range m.Entries {
		if err := validate.Pattern(fmt.Sprintf("entries.%d.path", i), "body", e.Path, patternRelocationPath); err != nil {
			res = append(res, err)
		}
		if e.Format != nil {
			if err := validate.EnumCase(fmt.Sprintf("entries.%d.format", i), "body", e.Format.Tag,
				[]any{ThumbnailJPEG, ThumbnailPNG}, true); err != nil {
				res = append(res, err)
			}
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetThumbnailBatchResultEntry is one thumbnail. Tag is "success" with
// Thumbnail holding base64 image data, or "failure".
type GetThumbnailBatchResultEntry struct {
	Tag       string       `json:".tag"`
	Metadata  *Metadata    `json:"metadata,omitempty"`
	Thumbnail string       `json:"thumbnail,omitempty"`
	Failure   *TaggedError `json:"failure,omitempty"`
}

// GetThumbnailBatchResult holds the thumbnails in request order.
type GetThumbnailBatchResult struct {
	Entries []GetThumbnailBatchResultEntry `json:"entries"`
}

// Write modes.
const (
	WriteModeAdd       = "add"
	WriteModeOverwrite = "overwrite"
	WriteModeUpdate    = "update"
)

// WriteMode selects what happens when the target path exists. Update is the
// revision to replace and only applies to WriteModeUpdate.
type WriteMode struct {
	Tag    string `json:".tag"`
	Update string `json:"update,omitempty"`
}

// CommitInfo is the argument of Upload and describes where content lands.
type CommitInfo struct {
	Path           string             `json:"path"`
	Mode           *WriteMode         `json:"mode,omitempty"`
	Autorename     bool               `json:"autorename,omitempty"`
	ClientModified *dropbox.Timestamp `json:"client_modified,omitempty"`
	Mute           bool               `json:"mute,omitempty"`
	StrictConflict bool               `json:"strict_conflict,omitempty"`
}

// Validate validates this commit info
func (m *CommitInfo) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Pattern("path", "body", m.Path, `^((/(.|[\r\n])*)|(ns:[0-9]+(/.*)?)|(id:.*))$`); err != nil {
		res = append(res, err)
	}

	if err := m.validateMode(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *CommitInfo) validateMode(formats strfmt.Registry) error {
	if m.Mode == nil {
		return nil
	}
	if err := validate.EnumCase("mode", "body", m.Mode.Tag,
		[]any{WriteModeAdd, WriteModeOverwrite, WriteModeUpdate}, true); err != nil {
		return err
	}
	if m.Mode.Tag == WriteModeUpdate {
		if err := validate.RequiredString("mode.update", "body", m.Mode.Update); err != nil {
			return err
		}
	}
	return nil
}

// UploadSessionStartArg is the argument of UploadSessionStart.
type UploadSessionStartArg struct {
	// Close marks the first chunk as the last one.
	Close bool `json:"close,omitempty"`
}

// UploadSessionStartResult identifies a new session.
type UploadSessionStartResult struct {
	SessionID string `json:"session_id"`
}

// UploadSessionCursor is a position within an upload session.
type UploadSessionCursor struct {
	SessionID string `json:"session_id"`
	Offset    uint64 `json:"offset"`
}

// UploadSessionAppendArg is the argument of UploadSessionAppend.
type UploadSessionAppendArg struct {
	Cursor UploadSessionCursor `json:"cursor"`
	Close  bool                `json:"close,omitempty"`
}

// Validate validates this upload session append arg
func (m *UploadSessionAppendArg) Validate(formats strfmt.Registry) error {
	if err := validate.RequiredString("cursor.session_id", "body", m.Cursor.SessionID); err != nil {
		return errors.CompositeValidationError(err)
	}
	return nil
}

// UploadSessionFinishArg is the argument of UploadSessionFinish.
type UploadSessionFinishArg struct {
	Cursor UploadSessionCursor `json:"cursor"`
	Commit CommitInfo          `json:"commit"`
}

// Validate validates this upload session finish arg
func (m *UploadSessionFinishArg) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("cursor.session_id", "body", m.Cursor.SessionID); err != nil {
		res = append(res, err)
	}
	if err := m.Commit.Validate(formats); err != nil {
		if ve, ok := err.(*errors.CompositeError); ok {
			err = ve.ValidateName("commit")
		}
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
