package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the shared router: public routes on
// the open group, protected routes on the group behind the authorization
// middleware.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
