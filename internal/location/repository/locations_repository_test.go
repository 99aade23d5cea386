package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencross/internal/domain"
)

func TestNewStaticRepository_LoadsEmbeddedDirectory(t *testing.T) {
	repo, err := NewStaticRepository()
	require.NoError(t, err)

	locations := repo.FindAll()
	require.Len(t, locations, 3)

	main := locations[0]
	assert.Equal(t, "houston-main", main.ID)
	assert.Equal(t, "GreenCross Houston", main.Name)
	assert.Equal(t, domain.LocationOpen, main.Status)
	assert.Equal(t, []string{"9030 North Fwy", "Houston, TX 77037"}, main.AddressLines)
	assert.Equal(t, "(713) 555-0100", main.Phone)
	assert.Equal(t, 29.8896, main.Latitude)
	assert.Equal(t, -95.4118, main.Longitude)
}

func TestNewRepositoryFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "locations: {"},
		{name: "missing id", yaml: "locations:\n  - name: A\n    status: open\n"},
		{name: "duplicate id", yaml: "locations:\n  - id: a\n    status: open\n  - id: a\n    status: open\n"},
		{name: "unknown status", yaml: "locations:\n  - id: a\n    status: maybe\n"},
		{name: "latitude out of range", yaml: "locations:\n  - id: a\n    status: open\n    latitude: 91\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepositoryFromYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
