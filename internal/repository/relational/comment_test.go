package relational_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository/relational"
)

var commentCols = []string{"id", "content", "date", "is_delete", "username"}

func TestAddComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := relational.NewCommentRepository(db, fixedID, fixedClock)

	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	added, err := repo.AddComment(context.TODO(), domain.RegisterComment{
		Content:  "sebuah comment",
		ThreadID: "thread-123",
		UserID:   "user-123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RegisteredComment{ID: "comment-123", Content: "sebuah comment", Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByThreadID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := relational.NewCommentRepository(db, fixedID, fixedClock)

	mock.ExpectQuery("FROM comments AS c LEFT JOIN users AS u .+ ORDER BY c.date ASC").
		WithArgs("thread-123").
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow("comment-1", "first", fixedNow, false, "dicoding").
			AddRow("comment-2", "second", fixedNow.Add(time.Minute), true, "johndoe"))

	comments, err := repo.GetCommentsByThreadID(context.TODO(), "thread-123")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "comment-1", comments[0].ID)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "comment-2", comments[1].ID)
	assert.Equal(t, domain.DeletedCommentContent, comments[1].Content)
	assert.Equal(t, "2021-08-08T07:20:09.775Z", comments[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByThreadIDEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := relational.NewCommentRepository(db, fixedID, fixedClock)

	mock.ExpectQuery("FROM comments AS c").
		WillReturnRows(sqlmock.NewRows(commentCols))

	comments, err := repo.GetCommentsByThreadID(context.TODO(), "thread-123")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestGetCommentByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewCommentRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("FROM comments AS c .+ WHERE c.id = \\?").
			WillReturnRows(sqlmock.NewRows(commentCols).
				AddRow("comment-1", "first", fixedNow, false, "dicoding"))

		comment, err := repo.GetCommentByID(context.TODO(), "comment-1")
		require.NoError(t, err)
		assert.Equal(t, "dicoding", comment.Username)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewCommentRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("FROM comments AS c").
			WillReturnRows(sqlmock.NewRows(commentCols))

		_, err := repo.GetCommentByID(context.TODO(), "comment-xyz")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVerifyCommentOwner(t *testing.T) {
	cases := []struct {
		name   string
		rows   *sqlmock.Rows
		expect error
	}{
		{"owner", sqlmock.NewRows([]string{"user_id"}).AddRow("user-123"), nil},
		{"other user", sqlmock.NewRows([]string{"user_id"}).AddRow("user-456"), domain.ErrForbidden},
		{"missing", sqlmock.NewRows([]string{"user_id"}), domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := relational.NewCommentRepository(db, fixedID, fixedClock)

			mock.ExpectQuery("SELECT `user_id` FROM `comments`").
				WithArgs("comment-123").
				WillReturnRows(tc.rows)

			err := repo.VerifyCommentOwner(context.TODO(), "comment-123", "user-123")
			if tc.expect == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expect)
		})
	}
}

func TestDeleteComment(t *testing.T) {
	t.Run("owner flips the flag", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewCommentRepository(db, fixedID, fixedClock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT `user_id` FROM `comments` WHERE id = \\? FOR UPDATE").
			WithArgs("comment-123").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-123"))
		mock.ExpectExec("UPDATE `comments` SET `is_delete`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteComment(context.TODO(), "comment-123", "user-123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewCommentRepository(db, fixedID, fixedClock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT `user_id` FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-123"))
		mock.ExpectRollback()

		err := repo.DeleteComment(context.TODO(), "comment-123", "user-456")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewCommentRepository(db, fixedID, fixedClock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT `user_id` FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
		mock.ExpectRollback()

		err := repo.DeleteComment(context.TODO(), "comment-xyz", "user-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
