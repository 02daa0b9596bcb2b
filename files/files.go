// Package files holds the routes of the files namespace: listing, metadata,
// folder management, search, thumbnails and uploads.
//
// Each function returns a request to send with CallSync or Call:
//
//	res, err := files.ListFolder("", &files.ListFolderArg{Path: "/Photos"}).
//	    CallSync(ctx, client)
//
// ListAll and Watch build on these routes to follow cursors.
package files

import (
	"io"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/endpoint"
	"github.com/tomblancdev/dropbox-go/header"
)

var (
	listFolderRoute = dropbox.Route[ListFolderArg, ListFolderResult]{
		Endpoint: endpoint.FilesListFolder,
		Headers:  header.JSON,
	}
	listFolderContinueRoute = dropbox.Route[ListFolderContinueArg, ListFolderResult]{
		Endpoint: endpoint.FilesListFolderContinue,
		Headers:  header.JSON,
	}
	listFolderGetLatestCursorRoute = dropbox.Route[ListFolderArg, ListFolderGetLatestCursorResult]{
		Endpoint: endpoint.FilesListFolderGetLatestCursor,
		Headers:  header.JSON,
	}
	listFolderLongpollRoute = dropbox.Route[ListFolderLongpollArg, ListFolderLongpollResult]{
		Endpoint: endpoint.FilesListFolderLongpoll,
		Headers:  header.JSON,
		NoAuth:   true,
	}
	getMetadataRoute = dropbox.Route[GetMetadataArg, Metadata]{
		Endpoint: endpoint.FilesGetMetadata,
		Headers:  header.JSON,
	}
	createFolderRoute = dropbox.Route[CreateFolderArg, CreateFolderResult]{
		Endpoint: endpoint.FilesCreateFolderV2,
		Headers:  header.JSON,
	}
	createFolderBatchRoute = dropbox.Route[CreateFolderBatchArg, CreateFolderBatchLaunch]{
		Endpoint: endpoint.FilesCreateFolderBatch,
		Headers:  header.JSON,
	}
	createFolderBatchCheckRoute = dropbox.Route[PollArg, CreateFolderBatchJobStatus]{
		Endpoint: endpoint.FilesCreateFolderBatchCheck,
		Headers:  header.JSON,
	}
	deleteRoute = dropbox.Route[DeleteArg, DeleteResult]{
		Endpoint: endpoint.FilesDeleteV2,
		Headers:  header.JSON,
	}
	moveRoute = dropbox.Route[RelocationArg, RelocationResult]{
		Endpoint: endpoint.FilesMoveV2,
		Headers:  header.JSON,
	}
	copyRoute = dropbox.Route[RelocationArg, RelocationResult]{
		Endpoint: endpoint.FilesCopyV2,
		Headers:  header.JSON,
	}
	searchRoute = dropbox.Route[SearchArg, SearchResult]{
		Endpoint: endpoint.FilesSearchV2,
		Headers:  header.JSON,
	}
	getTemporaryLinkRoute = dropbox.Route[GetTemporaryLinkArg, GetTemporaryLinkResult]{
		Endpoint: endpoint.FilesGetTemporaryLink,
		Headers:  header.JSON,
	}
	getThumbnailBatchRoute = dropbox.Route[GetThumbnailBatchArg, GetThumbnailBatchResult]{
		Endpoint: endpoint.FilesGetThumbnailBatch,
		Headers:  header.ContentRPC,
	}
	uploadRoute = dropbox.Route[CommitInfo, Metadata]{
		Endpoint: endpoint.FilesUpload,
		Headers:  header.Upload,
		Style:    dropbox.Upload,
	}
	uploadSessionStartRoute = dropbox.Route[UploadSessionStartArg, UploadSessionStartResult]{
		Endpoint: endpoint.FilesUploadSessionStart,
		Headers:  header.Upload,
		Style:    dropbox.Upload,
	}
	uploadSessionAppendRoute = dropbox.Route[UploadSessionAppendArg, dropbox.Void]{
		Endpoint: endpoint.FilesUploadSessionAppendV2,
		Headers:  header.Upload,
		Style:    dropbox.Upload,
	}
	uploadSessionFinishRoute = dropbox.Route[UploadSessionFinishArg, Metadata]{
		Endpoint: endpoint.FilesUploadSessionFinish,
		Headers:  header.Upload,
		Style:    dropbox.Upload,
	}
)

// ListFolder starts listing the contents of a folder.
func ListFolder(token string, arg *ListFolderArg) *dropbox.Request[ListFolderArg, ListFolderResult] {
	return listFolderRoute.New(token, arg)
}

// ListFolderContinue returns the next page of a listing.
func ListFolderContinue(token string, arg *ListFolderContinueArg) *dropbox.Request[ListFolderContinueArg, ListFolderResult] {
	return listFolderContinueRoute.New(token, arg)
}

// ListFolderGetLatestCursor returns a cursor for the folder's current state
// without listing it.
func ListFolderGetLatestCursor(token string, arg *ListFolderArg) *dropbox.Request[ListFolderArg, ListFolderGetLatestCursorResult] {
	return listFolderGetLatestCursorRoute.New(token, arg)
}

// ListFolderLongpoll blocks until the folder changes past the cursor or the
// timeout elapses. It is served by the notify host and sends no credential;
// token is ignored.
func ListFolderLongpoll(arg *ListFolderLongpollArg) *dropbox.Request[ListFolderLongpollArg, ListFolderLongpollResult] {
	return listFolderLongpollRoute.New("", arg)
}

// GetMetadata returns the metadata of a file or folder.
func GetMetadata(token string, arg *GetMetadataArg) *dropbox.Request[GetMetadataArg, Metadata] {
	return getMetadataRoute.New(token, arg)
}

// CreateFolder creates a folder.
func CreateFolder(token string, arg *CreateFolderArg) *dropbox.Request[CreateFolderArg, CreateFolderResult] {
	return createFolderRoute.New(token, arg)
}

// CreateFolderBatch creates several folders, possibly as a background job.
func CreateFolderBatch(token string, arg *CreateFolderBatchArg) *dropbox.Request[CreateFolderBatchArg, CreateFolderBatchLaunch] {
	return createFolderBatchRoute.New(token, arg)
}

// CreateFolderBatchCheck polls a job started by CreateFolderBatch.
func CreateFolderBatchCheck(token string, arg *PollArg) *dropbox.Request[PollArg, CreateFolderBatchJobStatus] {
	return createFolderBatchCheckRoute.New(token, arg)
}

// Delete deletes a file or folder.
func Delete(token string, arg *DeleteArg) *dropbox.Request[DeleteArg, DeleteResult] {
	return deleteRoute.New(token, arg)
}

// Move moves a file or folder.
func Move(token string, arg *RelocationArg) *dropbox.Request[RelocationArg, RelocationResult] {
	return moveRoute.New(token, arg)
}

// Copy copies a file or folder.
func Copy(token string, arg *RelocationArg) *dropbox.Request[RelocationArg, RelocationResult] {
	return copyRoute.New(token, arg)
}

// Search searches file and folder names and content.
func Search(token string, arg *SearchArg) *dropbox.Request[SearchArg, SearchResult] {
	return searchRoute.New(token, arg)
}

// GetTemporaryLink returns a short-lived link to the content of a file.
func GetTemporaryLink(token string, arg *GetTemporaryLinkArg) *dropbox.Request[GetTemporaryLinkArg, GetTemporaryLinkResult] {
	return getTemporaryLinkRoute.New(token, arg)
}

// GetThumbnailBatch returns up to 25 thumbnails. The arguments are sent both
// as the JSON body and in the Dropbox-API-Arg header.
func GetThumbnailBatch(token string, arg *GetThumbnailBatchArg) *dropbox.Request[GetThumbnailBatchArg, GetThumbnailBatchResult] {
	return getThumbnailBatchRoute.New(token, arg)
}

// Upload creates a file from content, up to 150 MiB. Use upload sessions for
// anything larger.
func Upload(token string, arg *CommitInfo, content io.Reader) *dropbox.Request[CommitInfo, Metadata] {
	return uploadRoute.NewUpload(token, arg, content)
}

// UploadSessionStart opens an upload session with its first chunk.
func UploadSessionStart(token string, arg *UploadSessionStartArg, content io.Reader) *dropbox.Request[UploadSessionStartArg, UploadSessionStartResult] {
	return uploadSessionStartRoute.NewUpload(token, arg, content)
}

// UploadSessionAppend appends a chunk at the cursor offset.
func UploadSessionAppend(token string, arg *UploadSessionAppendArg, content io.Reader) *dropbox.Request[UploadSessionAppendArg, dropbox.Void] {
	return uploadSessionAppendRoute.NewUpload(token, arg, content)
}

// UploadSessionFinish uploads the last chunk and commits the file.
func UploadSessionFinish(token string, arg *UploadSessionFinishArg, content io.Reader) *dropbox.Request[UploadSessionFinishArg, Metadata] {
	return uploadSessionFinishRoute.NewUpload(token, arg, content)
}
