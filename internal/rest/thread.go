package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/rest/request"
	"github.com/forumapi/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread will store the thread by given request body
func (h *ThreadHandler) PostThread(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req request.Thread
	if err := request.Decode(c, domain.EntityRegisterThread, &req); err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), req.ToDomain(uid))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetThread will get the thread with its comments by given id
func (h *ThreadHandler) GetThread(c *gin.Context) {
	thread, err := h.Service.GetThread(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess(gin.H{
		"thread": response.NewThreadFromDomain(thread),
	}))
}
