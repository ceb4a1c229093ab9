package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"idea-management-api/services"
)

// IdeaController handles idea CRUD and status transitions.
type IdeaController struct {
	Ideas    *services.IdeaService
	Notifier *services.DecisionNotifier
}

type IdeaRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create stores a new idea owned by the caller, status Submitted.
func (i *IdeaController) Create(c *gin.Context) {
	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	detail, err := i.Ideas.Create(currentUserID(c), req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// ListMine returns the caller's ideas, newest first.
func (i *IdeaController) ListMine(c *gin.Context) {
	details, err := i.Ideas.ListMine(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListAll returns every idea. Lead-only (gated in the route table).
func (i *IdeaController) ListAll(c *gin.Context) {
	details, err := i.Ideas.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Get returns a single idea by id.
func (i *IdeaController) Get(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	idea, err := i.Ideas.GetByID(ideaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, idea)
}

// Update edits title/description. Owner-only, blocked once decided.
func (i *IdeaController) Update(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	detail, err := i.Ideas.Update(currentUserID(c), ideaID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Delete removes an idea and everything it owns. Owner-only, blocked once
// decided.
func (i *IdeaController) Delete(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := i.Ideas.Delete(currentUserID(c), ideaID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Idea deleted successfully"})
}

// SetStatus transitions an idea's status and appends the audit row.
func (i *IdeaController) SetStatus(c *gin.Context) {
	ideaID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	idea, oldStatus, err := i.Ideas.SetStatus(currentUserID(c), ideaID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	// Best effort: the decision is committed whether or not the mail goes out.
	if i.Notifier != nil && idea.Decided() {
		if err := i.Notifier.NotifyDecision(idea); err != nil {
			log.Printf("decision mail for idea %d failed: %v", idea.IdeaID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"old_status": oldStatus,
		"new_status": idea.Status,
	})
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid idea id", services.ErrInvalidInput)
	}
	return id, nil
}
