package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/rest/request"
	"github.com/forumapi/forum-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.Comment
	if err := request.Decode(c, domain.EntityRegisterComment, &req); err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), req.ToDomain(c.Param("threadId"), uid))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.Service.DeleteComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
