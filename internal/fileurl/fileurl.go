// Package fileurl derives downloadable-resource URLs from stored filenames.
// The file store itself is external; this service only holds filenames and
// the fixed path convention rooted at the inbound request's origin.
package fileurl

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

const (
	// CategoryFiles is the path segment for documents: CV, cover letter,
	// portfolio and certificate files.
	CategoryFiles = "files"
	// CategoryImages is the path segment for profile photos.
	CategoryImages = "images"
)

// Resolve maps a stored filename to a fully-qualified fetch URL, or nil
// when no filename is stored. It never builds a URL from an empty string.
func Resolve(baseOrigin, category, filename string) *string {
	if filename == "" {
		return nil
	}
	u := fmt.Sprintf("%s/uploads/%s/%s", baseOrigin, category, filename)
	return &u
}

// Preferred picks the application-level document filename when present and
// falls back to the profile-level one. Every shaped response derives its
// document URLs through this single precedence rule.
func Preferred(applicationFile, profileFile string) string {
	if applicationFile != "" {
		return applicationFile
	}
	return profileFile
}

// RequestOrigin reconstructs scheme://host of the inbound request, trusting
// X-Forwarded-Proto when a proxy sets it.
func RequestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
