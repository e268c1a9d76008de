package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkulima/shamba-api/internal/domain/entity"
	"github.com/mkulima/shamba-api/internal/presentation/http/dto/response"
	"github.com/mkulima/shamba-api/pkg/apperror"
	"github.com/mkulima/shamba-api/pkg/money"
	"github.com/mkulima/shamba-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == entity.RoleAdmin
}

// pageParams reads page-based pagination from the query string
func pageParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}

// parseMoney converts a decimal string like "1200.50" to cents, replying
// with a field error when it does not parse
func parseMoney(c *gin.Context, field, raw string) (int64, bool) {
	cents, ok := money.ParseCents(raw)
	if !ok {
		response.Error(c, apperror.NewFieldError(field, "must be a decimal amount"))
		return 0, false
	}
	return cents, true
}

// parseDate converts a YYYY-MM-DD string, replying with a field error when
// it does not parse
func parseDate(c *gin.Context, field, raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.Error(c, apperror.NewFieldError(field, "must be a YYYY-MM-DD date"))
		return time.Time{}, false
	}
	return t, true
}

// parseTimestamp converts an RFC3339 string, replying with a field error
// when it does not parse
func parseTimestamp(c *gin.Context, field, raw string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.Error(c, apperror.NewFieldError(field, "must be an RFC3339 timestamp"))
		return time.Time{}, false
	}
	return t, true
}

// dateQuery parses an optional YYYY-MM-DD query parameter
func dateQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
