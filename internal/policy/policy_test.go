package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quill-server/internal/model"
)

func TestAuthorize(t *testing.T) {
	postOwner := uuid.New()
	commenter := uuid.New()
	stranger := uuid.New()

	post := model.Post{ID: uuid.New(), AuthorID: postOwner}
	otherPost := model.Post{ID: uuid.New(), AuthorID: stranger}
	comment := model.Comment{ID: uuid.New(), PostID: post.ID, UserID: commenter}

	tests := []struct {
		name     string
		actor    uuid.UUID
		resource Resource
		action   Action
		wantErr  error
	}{
		{name: "post owner updates", actor: postOwner, resource: Post(post), action: ActionUpdate},
		{name: "post owner deletes", actor: postOwner, resource: Post(post), action: ActionDelete},
		{name: "post owner uploads cover", actor: postOwner, resource: Post(post), action: ActionUploadCover},
		{name: "stranger updates post", actor: stranger, resource: Post(post), action: ActionUpdate, wantErr: model.ErrForbidden},
		{name: "stranger deletes post", actor: stranger, resource: Post(post), action: ActionDelete, wantErr: model.ErrForbidden},
		{name: "missing post", actor: postOwner, resource: Missing(ResourcePost), action: ActionUpdate, wantErr: model.ErrNotFound},
		{name: "missing post for stranger is still not found", actor: stranger, resource: Missing(ResourcePost), action: ActionDelete, wantErr: model.ErrNotFound},
		{name: "post owner deletes comment they never wrote", actor: postOwner, resource: Comment(comment, post), action: ActionDelete},
		{name: "comment author who is not post owner", actor: commenter, resource: Comment(comment, post), action: ActionDelete, wantErr: model.ErrForbidden},
		{name: "stranger deletes comment", actor: stranger, resource: Comment(comment, post), action: ActionDelete, wantErr: model.ErrForbidden},
		{name: "comment under another post", actor: stranger, resource: Comment(comment, otherPost), action: ActionDelete, wantErr: model.ErrNotFound},
		{name: "missing comment", actor: postOwner, resource: Missing(ResourceComment), action: ActionDelete, wantErr: model.ErrNotFound},
		{name: "like create", actor: stranger, resource: Like(), action: ActionCreate},
		{name: "like delete", actor: stranger, resource: Like(), action: ActionDelete},
		{name: "like without actor", actor: uuid.Nil, resource: Like(), action: ActionCreate, wantErr: model.ErrForbidden},
		{name: "unknown action on post", actor: postOwner, resource: Post(post), action: ActionCreate, wantErr: model.ErrForbidden},
		{name: "comment update is not a rule", actor: postOwner, resource: Comment(comment, post), action: ActionUpdate, wantErr: model.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.resource, tt.action)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComment_FoundOnlyUnderParent(t *testing.T) {
	post := model.Post{ID: uuid.New(), AuthorID: uuid.New()}

	assert.True(t, Comment(model.Comment{PostID: post.ID}, post).Found)
	assert.False(t, Comment(model.Comment{PostID: uuid.New()}, post).Found)
}
