package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "photo.jpg", "photo.jpg"},
		{"spaces", "my photo.jpg", "my_photo.jpg"},
		{"unix traversal", "../../etc/passwd", "passwd"},
		{"windows path", `C:\Users\me\shot.png`, "shot.png"},
		{"unicode", "fotó.jpg", "fot_.jpg"},
		{"only dots", "...", "file"},
		{"empty", "", "file"},
		{"keeps dashes and underscores", "IMG_2024-05-01.jpeg", "IMG_2024-05-01.jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}
