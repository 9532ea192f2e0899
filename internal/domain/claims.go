package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações carregadas no token de acesso à API
type Claims struct {
	UserID     int
	UserName   string
	UserRoleID int
	jwt.RegisteredClaims
}
