package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/quill-server/internal/mocks"
	"github.com/dtroode/quill-server/internal/model"
	"github.com/dtroode/quill-server/internal/sanitize"
	"github.com/dtroode/quill-server/internal/testutil"
)

func newCommentService(t *testing.T) (*Comment, *servermocks.CommentStore, *servermocks.PostStore) {
	t.Helper()
	comments := servermocks.NewCommentStore(t)
	posts := servermocks.NewPostStore(t)
	s := NewComment(comments, posts, sanitize.New(), testutil.MakeNoopLogger())
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s, comments, posts
}

func TestComment_Create(t *testing.T) {
	post := model.Post{ID: uuid.New(), AuthorID: uuid.New()}
	commenter := uuid.New()

	t.Run("missing post", func(t *testing.T) {
		s, _, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(model.Post{}, model.ErrNotFound)

		_, err := s.Create(context.Background(), model.CreateCommentParams{UserID: commenter, PostID: post.ID, Content: "hi"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("parent on another post", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		parentID := uuid.New()
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, parentID).Return(model.Comment{ID: parentID, PostID: uuid.New()}, nil)

		_, err := s.Create(context.Background(), model.CreateCommentParams{UserID: commenter, PostID: post.ID, Content: "hi", ParentID: &parentID})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing parent", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		parentID := uuid.New()
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, parentID).Return(model.Comment{}, model.ErrNotFound)

		_, err := s.Create(context.Background(), model.CreateCommentParams{UserID: commenter, PostID: post.ID, Content: "hi", ParentID: &parentID})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("markup only", func(t *testing.T) {
		s, _, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)

		_, err := s.Create(context.Background(), model.CreateCommentParams{UserID: commenter, PostID: post.ID, Content: "<script>x()</script>"})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("reply is stored as plain text", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		parentID := uuid.New()
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, parentID).Return(model.Comment{ID: parentID, PostID: post.ID}, nil)
		comments.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
			return c.Content == "nice & clean" && c.ParentID != nil && *c.ParentID == parentID && c.UserID == commenter
		})).Return(func(_ context.Context, c model.Comment) (model.CommentView, error) {
			return model.CommentView{Comment: c, User: model.Author{ID: commenter}}, nil
		})

		view, err := s.Create(context.Background(), model.CreateCommentParams{
			UserID:   commenter,
			PostID:   post.ID,
			Content:  "<b>nice</b> &amp; clean",
			ParentID: &parentID,
		})
		require.NoError(t, err)
		assert.Equal(t, commenter, view.User.ID)
		assert.Equal(t, s.now(), view.CreatedAt)
	})
}

func TestComment_List(t *testing.T) {
	s, comments, _ := newCommentService(t)
	postID := uuid.New()
	want := []model.CommentView{{Comment: model.Comment{ID: uuid.New(), PostID: postID}}}
	comments.On("ListByPost", mock.Anything, postID).Return(want, nil)

	got, err := s.List(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestComment_Delete(t *testing.T) {
	postOwner := uuid.New()
	commentAuthor := uuid.New()
	post := model.Post{ID: uuid.New(), AuthorID: postOwner}
	comment := model.Comment{ID: uuid.New(), PostID: post.ID, UserID: commentAuthor}

	t.Run("comment author who does not own the post", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil)

		err := s.Delete(context.Background(), commentAuthor, post.ID, comment.ID)
		assert.ErrorIs(t, err, model.ErrForbidden)
		comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("post owner who never commented", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil)
		comments.On("Delete", mock.Anything, comment.ID).Return(nil)

		err := s.Delete(context.Background(), postOwner, post.ID, comment.ID)
		assert.NoError(t, err)
	})

	t.Run("comment under another post", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		other := model.Post{ID: uuid.New(), AuthorID: postOwner}
		posts.On("GetByID", mock.Anything, other.ID).Return(other, nil)
		comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil)

		err := s.Delete(context.Background(), postOwner, other.ID, comment.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing comment", func(t *testing.T) {
		s, comments, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
		comments.On("GetByID", mock.Anything, comment.ID).Return(model.Comment{}, model.ErrNotFound)

		err := s.Delete(context.Background(), postOwner, post.ID, comment.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		s, _, posts := newCommentService(t)
		posts.On("GetByID", mock.Anything, post.ID).Return(model.Post{}, model.ErrNotFound)

		err := s.Delete(context.Background(), postOwner, post.ID, comment.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
