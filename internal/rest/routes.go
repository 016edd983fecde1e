package rest

import "github.com/gin-gonic/gin"

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Thread  *ThreadHandler
	Comment *CommentHandler
	Reply   *ReplyHandler
	Like    *LikeHandler
	Health  *HealthHandler
}

// RegisterRoutes mounts the forum API on route. auth guards every route
// that acts on behalf of a user.
func RegisterRoutes(route gin.IRouter, auth gin.HandlerFunc, h Handlers) {
	route.GET("/healthz", h.Health.Healthz)
	route.GET("/threads/:threadId", h.Thread.GetThread)

	authorized := route.Group("/threads")
	authorized.Use(auth)
	{
		authorized.POST("", h.Thread.PostThread)
		authorized.POST("/:threadId/comments", h.Comment.PostComment)
		authorized.DELETE("/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/:threadId/comments/:commentId/replies", h.Reply.PostReply)
		authorized.DELETE("/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/:threadId/comments/:commentId/likes", h.Like.PutLike)
	}
}
