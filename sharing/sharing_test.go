package sharing_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/internal/apitest"
	"github.com/tomblancdev/dropbox-go/sharing"
)

func TestCreateSharedLinkWithSettings(t *testing.T) {
	// Arrange
	expires := dropbox.NewTimestamp(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	client := apitest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/sharing/create_shared_link_with_settings", r.URL.Path)

		var body map[string]any
		apitest.ReadJSON(r, &body)
		assert.Equal(t, "/Prime_Numbers.txt", body["path"])
		settings := body["settings"].(map[string]any)
		assert.Equal(t, "2027-01-01T00:00:00Z", settings["expires"])
		assert.Equal(t, map[string]any{".tag": "public"}, settings["audience"])

		apitest.WriteJSON(w, map[string]any{
			".tag":       "file",
			"url":        "https://www.dropbox.com/s/2sn712vy1ovegw8/Prime_Numbers.txt?dl=0",
			"name":       "Prime_Numbers.txt",
			"path_lower": "/prime_numbers.txt",
			"expires":    "2027-01-01T00:00:00Z",
			"size":       7212,
			"link_permissions": map[string]any{
				"can_revoke":          true,
				"resolved_visibility": map[string]string{".tag": "public"},
				"allow_download":      true,
			},
		})
	})

	// Act
	link, err := sharing.CreateSharedLinkWithSettings("t", &sharing.CreateSharedLinkWithSettingsArg{
		Path: "/Prime_Numbers.txt",
		Settings: &sharing.SharedLinkSettings{
			Expires:  &expires,
			Audience: &sharing.Tagged{Tag: sharing.AudiencePublic},
		},
	}).CallSync(context.Background(), client)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "file", link.Tag)
	assert.Contains(t, link.URL, "Prime_Numbers.txt")
	assert.True(t, link.LinkPermissions.CanRevoke)
	assert.Equal(t, "public", link.LinkPermissions.ResolvedVisibility.Tag)
	require.NotNil(t, link.Expires)
	assert.True(t, expires.Time().Equal(link.Expires.Time()))
}

// TestCreateSharedLink_Exists verifies the route error stays readable.
func TestCreateSharedLink_Exists(t *testing.T) {
	client := apitest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteError(w, http.StatusConflict, "shared_link_already_exists/..", "shared_link_already_exists")
	})

	_, err := sharing.CreateSharedLinkWithSettings("t", &sharing.CreateSharedLinkWithSettingsArg{
		Path: "/a.txt",
	}).CallSync(context.Background(), client)

	apiErr, ok := dropbox.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "shared_link_already_exists/..", apiErr.Summary)
	assert.Contains(t, string(apiErr.Body), "shared_link_already_exists")
}

func TestListSharedLinks(t *testing.T) {
	client := apitest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		var arg sharing.ListSharedLinksArg
		apitest.ReadJSON(r, &arg)
		assert.Empty(t, arg.Path)
		assert.Equal(t, "c1", arg.Cursor)

		apitest.WriteJSON(w, map[string]any{
			"links": []map[string]any{
				{".tag": "folder", "url": "https://www.dropbox.com/sh/abc", "name": "Photos"},
			},
			"has_more": false,
		})
	})

	res, err := sharing.ListSharedLinks("t", &sharing.ListSharedLinksArg{Cursor: "c1"}).CallSync(context.Background(), client)

	require.NoError(t, err)
	require.Len(t, res.Links, 1)
	assert.Equal(t, "Photos", res.Links[0].Name)
	assert.False(t, res.HasMore)
}

func TestShareFolder(t *testing.T) {
	client := apitest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		var arg sharing.ShareFolderArg
		apitest.ReadJSON(r, &arg)
		assert.Equal(t, sharing.MemberPolicyTeam, arg.MemberPolicy.Tag)

		apitest.WriteJSON(w, map[string]any{
			".tag":                  "complete",
			"shared_folder_id":      "84528192421",
			"name":                  "dir",
			"path_lower":            "/dir",
			"is_inside_team_folder": false,
			"is_team_folder":        false,
			"access_type":           map[string]string{".tag": "owner"},
		})
	})

	launch, err := sharing.ShareFolder("t", &sharing.ShareFolderArg{
		Path:         "/dir",
		MemberPolicy: &sharing.Tagged{Tag: sharing.MemberPolicyTeam},
	}).CallSync(context.Background(), client)

	require.NoError(t, err)
	assert.Equal(t, sharing.TagComplete, launch.Tag)
	assert.Equal(t, "84528192421", launch.SharedFolderID)
	assert.Equal(t, "owner", launch.AccessType.Tag)
}

func TestRelinquishFolderMembership(t *testing.T) {
	client := apitest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/sharing/relinquish_folder_membership", r.URL.Path)
		apitest.WriteJSON(w, map[string]string{".tag": "async_job_id", "async_job_id": "job-7"})
	})

	res, err := sharing.RelinquishFolderMembership("t", &sharing.RelinquishFolderMembershipArg{
		SharedFolderID: "84528192421",
		LeaveACopy:     true,
	}).CallSync(context.Background(), client)

	require.NoError(t, err)
	assert.Equal(t, sharing.TagAsyncJobID, res.Tag)
	assert.Equal(t, "job-7", res.AsyncJobID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		arg   interface{ Validate(strfmt.Registry) error }
	}{
		{"link on path", true, &sharing.CreateSharedLinkWithSettingsArg{Path: "/a"}},
		{"link on relative path", false, &sharing.CreateSharedLinkWithSettingsArg{Path: "a"}},
		{"unknown audience", false, &sharing.CreateSharedLinkWithSettingsArg{
			Path:     "/a",
			Settings: &sharing.SharedLinkSettings{Audience: &sharing.Tagged{Tag: "everyone"}},
		}},
		{"password only", true, &sharing.CreateSharedLinkWithSettingsArg{
			Path:     "/a",
			Settings: &sharing.SharedLinkSettings{RequirePassword: swag.Bool(true), LinkPassword: swag.String("s3cret")},
		}},
		{"list all links", true, &sharing.ListSharedLinksArg{}},
		{"share root namespace", true, &sharing.ShareFolderArg{Path: "ns:123/dir"}},
		{"unknown member policy", false, &sharing.ShareFolderArg{Path: "/dir", MemberPolicy: &sharing.Tagged{Tag: "world"}}},
		{"bad folder id", false, &sharing.RelinquishFolderMembershipArg{SharedFolderID: "84 52"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.arg.Validate(strfmt.Default)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
