package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// IdeaService owns the idea lifecycle: creation, guarded content mutation,
// lead-only status transitions with an audit trail, and enriched reads.
type IdeaService struct {
	db *gorm.DB
}

func NewIdeaService(db *gorm.DB) *IdeaService {
	return &IdeaService{db: db}
}

// OwnerSummary is the slim owner shape embedded in idea payloads.
type OwnerSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IdeaDetail is an idea enriched with its owner summary and ordered comments.
type IdeaDetail struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	UserID      int              `json:"user_id"`
	CreatedAt   time.Time        `json:"created_at"`
	Owner       OwnerSummary     `json:"owner"`
	Comments    []models.Comment `json:"comments"`
}

func newIdeaDetail(idea models.Idea, owner *models.User, comments []models.Comment) IdeaDetail {
	summary := OwnerSummary{ID: idea.UserID}
	if owner != nil {
		summary.ID = owner.UserID
		summary.Name = owner.Name
		summary.Email = owner.Email
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return IdeaDetail{
		ID:          idea.IdeaID,
		Title:       idea.Title,
		Description: idea.Description,
		Status:      idea.Status,
		UserID:      idea.UserID,
		CreatedAt:   idea.CreatedAt,
		Owner:       summary,
		Comments:    comments,
	}
}

// Create stores a new idea owned by userID with the initial status.
func (s *IdeaService) Create(userID int, title, description string) (*IdeaDetail, error) {
	idea := models.Idea{
		Title:       title,
		Description: description,
		Status:      models.StatusSubmitted,
		UserID:      userID,
	}
	if err := s.db.Create(&idea).Error; err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	owner, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	detail := newIdeaDetail(idea, owner, nil)
	return &detail, nil
}

// GetByID fetches a single idea.
func (s *IdeaService) GetByID(ideaID int) (*models.Idea, error) {
	var idea models.Idea
	if err := s.db.First(&idea, "idea_id = ?", ideaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: idea %d", ErrNotFound, ideaID)
		}
		return nil, fmt.Errorf("load idea: %w", err)
	}
	return &idea, nil
}

// ListMine returns the caller's ideas, newest first, enriched.
func (s *IdeaService) ListMine(userID int) ([]IdeaDetail, error) {
	var ideas []models.Idea
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	owner, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	commentMap, err := s.commentMap(ideaIDs(ideas))
	if err != nil {
		return nil, err
	}

	result := make([]IdeaDetail, 0, len(ideas))
	for _, idea := range ideas {
		result = append(result, newIdeaDetail(idea, owner, commentMap[idea.IdeaID]))
	}
	return result, nil
}

// ListAll returns every idea, newest first, enriched with owner summaries
// and ordered comments. Lead-only; the role gate lives in the route table.
func (s *IdeaService) ListAll() ([]IdeaDetail, error) {
	var ideas []models.Idea
	if err := s.db.Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	userMap := make(map[int]models.User, len(users))
	for _, u := range users {
		userMap[u.UserID] = u
	}

	commentMap, err := s.commentMap(ideaIDs(ideas))
	if err != nil {
		return nil, err
	}

	result := make([]IdeaDetail, 0, len(ideas))
	for _, idea := range ideas {
		var owner *models.User
		if u, ok := userMap[idea.UserID]; ok {
			owner = &u
		}
		result = append(result, newIdeaDetail(idea, owner, commentMap[idea.IdeaID]))
	}
	return result, nil
}

// Update edits title/description. Owner-only, blocked once decided.
func (s *IdeaService) Update(userID, ideaID int, title, description string) (*IdeaDetail, error) {
	idea, err := s.GetByID(ideaID)
	if err != nil {
		return nil, err
	}
	if err := CanModifyIdea(userID, idea); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"title": title, "description": description}
	if err := s.db.Model(&models.Idea{}).Where("idea_id = ?", ideaID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}
	idea.Title = title
	idea.Description = description

	owner, err := s.findUser(idea.UserID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentsForIdea(ideaID)
	if err != nil {
		return nil, err
	}
	detail := newIdeaDetail(*idea, owner, comments)
	return &detail, nil
}

// Delete removes the idea together with its comments and status history.
// Owner-only, blocked once decided.
func (s *IdeaService) Delete(userID, ideaID int) error {
	idea, err := s.GetByID(ideaID)
	if err != nil {
		return err
	}
	if err := CanModifyIdea(userID, idea); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", ideaID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", ideaID).Delete(&models.IdeaStatusHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Idea{}, "idea_id = ?", ideaID).Error
	})
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	return nil
}

// SetStatus transitions the idea to newStatus and appends exactly one
// history row. Both writes share one transaction: if the history insert
// fails the status change does not persist. The status value itself carries
// no terminal lock; a lead may re-decide.
func (s *IdeaService) SetStatus(actorID, ideaID int, newStatus string) (*models.Idea, string, error) {
	newStatus = strings.TrimSpace(newStatus)
	if !models.ValidStatus(newStatus) {
		return nil, "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, newStatus)
	}

	idea, err := s.GetByID(ideaID)
	if err != nil {
		return nil, "", err
	}
	oldStatus := idea.Status

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Idea{}).Where("idea_id = ?", ideaID).Update("status", newStatus).Error; err != nil {
			return err
		}
		history := models.IdeaStatusHistory{
			IdeaID:    ideaID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ChangedBy: actorID,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, "", fmt.Errorf("set status: %w", err)
	}

	idea.Status = newStatus
	return idea, oldStatus, nil
}

func (s *IdeaService) findUser(userID int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &user, nil
}

func (s *IdeaService) commentsForIdea(ideaID int) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("idea_id = ?", ideaID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return comments, nil
}

// commentMap loads comments for all given ideas in one batched query,
// grouped per idea in ascending creation order.
func (s *IdeaService) commentMap(ids []int) (map[int][]models.Comment, error) {
	commentMap := make(map[int][]models.Comment)
	if len(ids) == 0 {
		return commentMap, nil
	}
	var comments []models.Comment
	if err := s.db.Where("idea_id IN ?", ids).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	for _, c := range comments {
		commentMap[c.IdeaID] = append(commentMap[c.IdeaID], c)
	}
	return commentMap, nil
}

func ideaIDs(ideas []models.Idea) []int {
	ids := make([]int, 0, len(ideas))
	for _, idea := range ideas {
		ids = append(ids, idea.IdeaID)
	}
	return ids
}
