package middleware

import (
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	subjectKey     = contextKey("subject")
	roleKey        = contextKey("role")
	entityIDKey    = contextKey("entityID")
	displayNameKey = contextKey("displayName")
)

// GetActorFromContext assembles the authenticated actor from the Gin
// context. The boolean is false when no valid session was attached.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	roleVal, exists := c.Get(string(roleKey))
	if !exists {
		return domain.Actor{}, false
	}
	role, ok := roleVal.(domain.Role)
	if !ok || !role.IsValid() {
		return domain.Actor{}, false
	}

	actor := domain.Actor{Role: role}
	if name, exists := c.Get(string(displayNameKey)); exists {
		actor.Name, _ = name.(string)
	}
	if entityID, exists := c.Get(string(entityIDKey)); exists {
		actor.EntityID, _ = entityID.(string)
	}
	return actor, true
}

// GetSubjectFromContext retrieves the session subject (user ID or
// entity ID) from the Gin context.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subjectVal, exists := c.Get(string(subjectKey))
	if !exists {
		return "", false
	}
	subject, ok := subjectVal.(string)
	return subject, ok
}
