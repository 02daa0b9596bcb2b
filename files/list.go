package files

import (
	"context"

	"github.com/tomblancdev/dropbox-go"
)

// ListAll lists a folder and follows cursors until the listing is complete.
//
// A page that comes back with an empty body ends the listing.
func ListAll(ctx context.Context, c *dropbox.Client, token string, arg *ListFolderArg) ([]Metadata, error) {
	page, err := ListFolder(token, arg).CallSync(ctx, c)
	if err != nil {
		return nil, err
	}

	var entries []Metadata
	for page != nil {
		entries = append(entries, page.Entries...)
		if !page.HasMore {
			break
		}
		page, err = ListFolderContinue(token, &ListFolderContinueArg{Cursor: page.Cursor}).CallSync(ctx, c)
		if err != nil {
			return entries, err
		}
	}
	return entries, nil
}
