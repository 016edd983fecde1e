package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/rest/request"
	"github.com/forumapi/forum-api/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.Comment
	if err := request.Decode(c, domain.EntityRegisterCommentReply, &req); err != nil {
		respondError(c, err)
		return
	}

	p := req.ToReply(c.Param("threadId"), c.Param("commentId"), uid)
	added, err := h.Service.AddReply(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	err = h.Service.DeleteReply(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), c.Param("replyId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
