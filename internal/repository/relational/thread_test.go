package relational_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository/relational"
)

func TestAddThread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := relational.NewThreadRepository(db, fixedID, fixedClock)

	payload := domain.RegisterThread{
		Title: faker.Sentence(),
		Body:  faker.Paragraph(),
		Owner: "user-123",
	}

	mock.ExpectExec("INSERT INTO `threads`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	added, err := repo.AddThread(context.TODO(), payload)
	require.NoError(t, err)
	assert.Equal(t, domain.RegisteredThread{ID: "thread-123", Title: payload.Title, Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddThreadStorageError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := relational.NewThreadRepository(db, fixedID, fixedClock)

	mock.ExpectExec("INSERT INTO `threads`").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.AddThread(context.TODO(), domain.RegisterThread{Title: "t", Body: "b", Owner: "user-1"})
	assert.EqualError(t, err, "connection reset")
}

func TestVerifyThreadByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WithArgs("thread-123").
			WillReturnRows(countRows(1))

		assert.NoError(t, repo.VerifyThreadByID(context.TODO(), "thread-123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WillReturnRows(countRows(0))

		err := repo.VerifyThreadByID(context.TODO(), "thread-xyz")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGetThreadByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WillReturnRows(countRows(1))
		mock.ExpectQuery("SELECT t.id, t.title, t.body, t.date, .+ FROM threads AS t LEFT JOIN users AS u").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}).
				AddRow("thread-123", "sebuah thread", "sebuah body thread", fixedNow, "dicoding"))

		thread, err := repo.GetThreadByID(context.TODO(), "thread-123")
		require.NoError(t, err)
		assert.Equal(t, "thread-123", thread.ID)
		assert.Equal(t, "dicoding", thread.Username)
		assert.Equal(t, "2021-08-08T07:19:09.775Z", thread.Date)
		assert.Empty(t, thread.Comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found stops before the join", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := relational.NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads`").
			WillReturnRows(countRows(0))

		_, err := repo.GetThreadByID(context.TODO(), "thread-xyz")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
