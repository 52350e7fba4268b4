package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ActorHeader  = "X-Actor"
	DefaultActor = "system"
	actorKey     = "actor"
)

// ActorMiddleware records who performs the request. Absent or blank headers
// fall back to DefaultActor.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = DefaultActor
		}
		if len(actor) > 100 {
			actor = actor[:100]
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) string {
	if v, ok := c.Get(actorKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if h := strings.TrimSpace(c.GetHeader(ActorHeader)); h != "" {
		return h
	}
	return DefaultActor
}
