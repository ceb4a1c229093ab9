package services

import (
	"fmt"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// CommentService is the single comment thread component: one authorization
// rule (idea owner or team lead) for both reading and adding, regardless of
// which route family the request came in through.
type CommentService struct {
	db    *gorm.DB
	ideas *IdeaService
}

func NewCommentService(db *gorm.DB, ideas *IdeaService) *CommentService {
	return &CommentService{db: db, ideas: ideas}
}

// ListForIdea returns all comments on the idea in ascending creation order.
func (s *CommentService) ListForIdea(userID int, roleName string, ideaID int) ([]models.Comment, error) {
	idea, err := s.ideas.GetByID(ideaID)
	if err != nil {
		return nil, err
	}
	if err := CanAccessComments(userID, roleName, idea); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.Where("idea_id = ?", ideaID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Add appends a comment to the idea. Text is stored verbatim.
func (s *CommentService) Add(userID int, roleName string, ideaID int, text string) (*models.Comment, error) {
	idea, err := s.ideas.GetByID(ideaID)
	if err != nil {
		return nil, err
	}
	if err := CanAccessComments(userID, roleName, idea); err != nil {
		return nil, err
	}

	comment := models.Comment{
		IdeaID:      ideaID,
		CommentText: text,
		CommentedBy: userID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}
