package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

// CommentController exposes the comment thread. Both route families
// (/ideas/:id/comments and /comments/idea/:id) dispatch here, so the same
// owner-or-lead rule applies everywhere.
type CommentController struct {
	Comments *services.CommentService
}

type CommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// List returns the idea's comments in ascending creation order.
func (cc *CommentController) List(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := cc.Comments.ListForIdea(currentUserID(c), currentRole(c), ideaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Add appends a comment to the idea.
func (cc *CommentController) Add(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	comment, err := cc.Comments.Add(currentUserID(c), currentRole(c), ideaID, req.CommentText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
