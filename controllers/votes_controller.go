package controllers

import (
	"errors"

	"github.com/NipunThakuria02/Student-Sphere/config"
	"github.com/NipunThakuria02/Student-Sphere/models"
	"github.com/NipunThakuria02/Student-Sphere/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VotesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewVotesController(db *gorm.DB, cfg *config.Config) *VotesController {
	return &VotesController{DB: db, Cfg: cfg}
}

// VoteRequest defines the request body for casting a vote
type VoteRequest struct {
	PostID    *uint `json:"postId,omitempty"`
	CommentID *uint `json:"commentId,omitempty"`
	Value     int   `json:"value" example:"1"`
}

// Vote godoc
// @Summary Cast or toggle a vote
// @Description Voting the same value again removes the vote; otherwise the vote is upserted
// @Tags votes
// @Accept json
// @Produce json
// @Param input body VoteRequest true "Vote data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /votes [post]
func (vc *VotesController) Vote(c *fiber.Ctx) error {
	user, err := currentUser(c, vc.DB, vc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if user.Status == models.UserStatusSuspended {
		return utils.Forbidden(c, "Suspended users cannot vote")
	}

	var input VoteRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Принимаются только апвоуты
	if input.Value != 1 {
		return utils.BadRequest(c, "Vote value must be 1")
	}
	if (input.PostID == nil) == (input.CommentID == nil) {
		return utils.BadRequest(c, "Exactly one of postId or commentId is required")
	}

	if input.PostID != nil {
		var post models.Post
		if err := vc.DB.First(&post, *input.PostID).Error; err != nil {
			return utils.NotFound(c, "Post not found")
		}
	} else {
		var comment models.Comment
		if err := vc.DB.First(&comment, *input.CommentID).Error; err != nil {
			return utils.NotFound(c, "Comment not found")
		}
	}

	// Уникальный индекс (user_id, target) сериализует конкурентные
	// переключения одного и того же голоса на уровне базы
	var userVote int
	txErr := vc.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ?", user.ID)
		if input.PostID != nil {
			query = query.Where("post_id = ?", *input.PostID)
		} else {
			query = query.Where("comment_id = ?", *input.CommentID)
		}

		var existing models.Vote
		err := query.First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{
				UserID:    user.ID,
				PostID:    input.PostID,
				CommentID: input.CommentID,
				Value:     input.Value,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			userVote = input.Value
		case err != nil:
			return err
		case existing.Value == input.Value:
			// Повторный голос тем же значением снимает голос
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			userVote = 0
		default:
			existing.Value = input.Value
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			userVote = input.Value
		}
		return nil
	})
	if txErr != nil {
		return utils.InternalServerError(c, "Could not process vote")
	}

	var voteScore int
	if input.PostID != nil {
		voteScore = postVoteScore(vc.DB, *input.PostID)
	} else {
		voteScore = commentVoteScore(vc.DB, *input.CommentID)
	}

	return c.JSON(fiber.Map{
		"userVote":  userVote,
		"voteScore": voteScore,
	})
}
