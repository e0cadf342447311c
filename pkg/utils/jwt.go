package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(name string, email string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["name"] = name
	claims["email"] = email
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenAdmin returns the admin email carried by the token that the JWT
// middleware stored under "user". It returns "" when there is none.
func ExtractTokenAdmin(c echo.Context) string {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return ""
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
