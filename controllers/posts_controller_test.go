package controllers_test

import (
	"fmt"
	"testing"

	"github.com/NipunThakuria02/Student-Sphere/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreatePost(t *testing.T) {
	user := createUser(t, "Alice", "alice.posts@example.com")
	token := tokenFor(t, user)

	resp := doRequest(t, "POST", "/api/posts", token, map[string]interface{}{
		"title":       "Help with calculus",
		"description": "How do I integrate by parts?",
		"category":    "ACADEMIC",
		"subject":     "Mathematics",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	result := decodeBody(t, resp)
	post := result["post"].(map[string]interface{})
	assert.Equal(t, "Help with calculus", post["title"])
	assert.Equal(t, "Mathematics", post["subject"])

	// Для неучебных постов предмет отбрасывается
	resp = doRequest(t, "POST", "/api/posts", token, map[string]interface{}{
		"title":    "Dorm movie night",
		"category": "NON_ACADEMIC",
		"subject":  "Mathematics",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	result = decodeBody(t, resp)
	post = result["post"].(map[string]interface{})
	assert.Nil(t, post["subject"])
}

func TestCreatePostValidation(t *testing.T) {
	user := createUser(t, "Bob", "bob.posts@example.com")
	token := tokenFor(t, user)

	resp := doRequest(t, "POST", "/api/posts", token, map[string]interface{}{
		"title":    "Bad category",
		"category": "SOMETHING",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/posts", token, map[string]interface{}{
		"category": "ACADEMIC",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/posts", "", map[string]interface{}{
		"title":    "No auth",
		"category": "ACADEMIC",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSuspendedUserCannotWrite(t *testing.T) {
	user := createUser(t, "Chuck", "chuck.suspended@example.com")
	db.Model(&user).Update("status", models.UserStatusSuspended)
	token := tokenFor(t, user)

	resp := doRequest(t, "POST", "/api/posts", token, map[string]interface{}{
		"title":    "Should fail",
		"category": "ACADEMIC",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	other := createUser(t, "Dana", "dana.suspended@example.com")
	post := createPost(t, other, "Existing post")

	resp = doRequest(t, "POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), token,
		map[string]interface{}{"content": "hi"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/votes", token,
		map[string]interface{}{"postId": post.ID, "value": 1})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/reports", token,
		map[string]interface{}{"postId": post.ID, "reason": "spam"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetPost(t *testing.T) {
	user := createUser(t, "Erin", "erin.posts@example.com")
	post := createPost(t, user, "Single post")
	token := tokenFor(t, user)

	comment := models.Comment{Content: "first", UserID: user.ID, PostID: post.ID}
	assert.NoError(t, db.Create(&comment).Error)

	resp := doRequest(t, "GET", fmt.Sprintf("/api/posts/%d", post.ID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	got := result["post"].(map[string]interface{})
	assert.Equal(t, "Single post", got["title"])
	assert.Equal(t, float64(1), got["commentCount"])

	resp = doRequest(t, "GET", "/api/posts/999999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetPostsFilters(t *testing.T) {
	user := createUser(t, "Faythe", "faythe.posts@example.com")
	token := tokenFor(t, user)

	resp := doRequest(t, "GET", "/api/posts?category=ACADEMIC", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	for _, raw := range result["posts"].([]interface{}) {
		post := raw.(map[string]interface{})
		assert.Equal(t, "ACADEMIC", post["category"])
	}

	resp = doRequest(t, "GET", "/api/posts?sort=top&limit=1", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decodeBody(t, resp)
	assert.LessOrEqual(t, len(result["posts"].([]interface{})), 1)

	resp = doRequest(t, "GET", "/api/posts?category=WRONG", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
