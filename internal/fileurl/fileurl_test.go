package fileurl

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResolveEmptyFilename(t *testing.T) {
	assert.Nil(t, Resolve("http://example.com", CategoryFiles, ""))
	assert.Nil(t, Resolve("http://example.com", CategoryImages, ""))
}

func TestResolveDocument(t *testing.T) {
	got := Resolve("http://example.com", CategoryFiles, "cv.pdf")
	if assert.NotNil(t, got) {
		assert.Equal(t, "http://example.com/uploads/files/cv.pdf", *got)
	}
}

func TestResolveImage(t *testing.T) {
	got := Resolve("https://example.com", CategoryImages, "photo.jpg")
	if assert.NotNil(t, got) {
		assert.Equal(t, "https://example.com/uploads/images/photo.jpg", *got)
	}
}

func TestPreferredPrecedence(t *testing.T) {
	assert.Equal(t, "app.pdf", Preferred("app.pdf", "profile.pdf"))
	assert.Equal(t, "profile.pdf", Preferred("", "profile.pdf"))
	assert.Equal(t, "", Preferred("", ""))
}

func TestRequestOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "http://localhost:8080/applications", nil)
	assert.Equal(t, "http://localhost:8080", RequestOrigin(c))

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://localhost:8080", RequestOrigin(c))
}
