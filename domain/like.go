package domain

import "context"

// LikeRepository defines the contract for comment likes.
// A (comment, user) pair has at most one like.
type LikeRepository interface {
	// AddLike returns ErrInvariant if storage reports no row inserted.
	AddLike(ctx context.Context, commentID, userID string) error

	// RemoveLike is a no-op when the like doesn't exist.
	RemoveLike(ctx context.Context, commentID, userID string) error

	// VerifyLikeByCommentID reports whether userID currently likes the comment.
	VerifyLikeByCommentID(ctx context.Context, commentID, userID string) (bool, error)

	GetLikeCountByCommentID(ctx context.Context, commentID string) (int64, error)
}

// LikeUsecase is the business contract for likes
type LikeUsecase interface {
	// LikeComment toggles the like of userID on the comment and returns the new state.
	LikeComment(ctx context.Context, threadID, commentID, userID string) (bool, error)
}
