package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"friendbook/models"
	"friendbook/store"
	"friendbook/utils"
)

type FriendHandler struct {
	Friends store.FriendStore
}

func NewFriendHandler(friends store.FriendStore) *FriendHandler {
	return &FriendHandler{Friends: friends}
}

// RegisterRoutes wires the friend endpoints. The literal /friends/all route
// coexists with the :id param route; gin matches the literal first.
func (h *FriendHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/friends/all", h.ListFriends)
	r.GET("/friends/:id", h.GetFriend)
	r.POST("/friends/new", h.CreateFriend)
}

func (h *FriendHandler) GetFriend(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "id must be an integer")
		return
	}

	friend, err := h.Friends.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFound(c, "friend not found")
		return
	}
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, friend)
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.Friends.ListAll(c.Request.Context())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	// ListAll never returns nil on success, so an empty table renders as [].
	utils.Success(c, friends)
}

// CreateFriend accepts either a JSON body or a URL-encoded form carrying the
// same fields. JSON wins when the client sends it; both paths insert and
// redirect to the new record.
func (h *FriendHandler) CreateFriend(c *gin.Context) {
	var newFriend models.NewFriend

	switch c.ContentType() {
	case "application/json":
		if err := c.ShouldBindJSON(&newFriend); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := c.ShouldBind(&newFriend); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
	default:
		utils.BadRequest(c, "body must be JSON or form-encoded")
		return
	}

	friend, err := h.Friends.Insert(c.Request.Context(), newFriend)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/friends/%d", friend.ID))
}
