package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// ResearcherClaims is the token payload for the admin surface. There are no
// participant accounts; only researchers authenticate.
type ResearcherClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// RoleResearcher is the only role the admin surface issues.
const RoleResearcher = "researcher"
