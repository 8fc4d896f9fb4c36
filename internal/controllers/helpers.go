package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

// bindJSON decodes a request body into dst, rejecting fields dst does not
// declare. Gin's binder silently drops unknown fields, which hides client
// typos in optional-field forms.
func bindJSON(c *gin.Context, dst interface{}) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// serverError logs the backend failure in full and returns only the generic
// message the client is allowed to see.
func serverError(c *gin.Context, err error, message string) {
	logrus.WithError(err).Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
