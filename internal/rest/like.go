package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// PutLike toggles the like of the caller on a comment
func (h *LikeHandler) PutLike(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	liked, err := h.Service.LikeComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"comment_id": c.Param("commentId"),
		"user_id":    uid,
		"liked":      liked,
	}).Debug("like toggled")

	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
