package seed

import (
	"os"
	"path/filepath"
	"testing"

	"mergington/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	activities := Default()
	require.Len(t, activities, 9)

	byName := make(map[string]*domain.Activity, len(activities))
	for _, a := range activities {
		require.NotContains(t, byName, a.Name, "duplicate seed activity")
		require.Empty(t, (&domain.ActivityDetails{
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string(nil), a.Participants...),
		}).Validate())
		byName[a.Name] = a
	}

	chess := byName["Chess Club"]
	require.NotNil(t, chess)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
	assert.Empty(t, byName["Debate Team"].Participants)
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	first := Default()
	first[0].Participants = append(first[0].Participants, "x@mergington.edu")
	assert.Len(t, Default()[0].Participants, 2)
}

const validSeed = `
activity "Robotics Club" {
  description      = "Build and program robots"
  schedule         = "Mondays, 4:00 PM - 5:30 PM"
  max_participants = 8
  participants     = ["Ada@Mergington.edu"]
}

activity "Choir" {
  max_participants = 25
}
`

func TestParse(t *testing.T) {
	activities, err := Parse([]byte(validSeed), "seed.hcl")
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Robotics Club", activities[0].Name)
	assert.Equal(t, "Build and program robots", activities[0].Description)
	assert.Equal(t, 8, activities[0].MaxParticipants)
	assert.Equal(t, []string{"ada@mergington.edu"}, activities[0].Participants)

	assert.Equal(t, "Choir", activities[1].Name)
	assert.Empty(t, activities[1].Participants)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `activity "Broken" {`},
		{"missing capacity", `activity "No Cap" { description = "x" }`},
		{"zero capacity", `activity "Zero" { max_participants = 0 }`},
		{"roster over capacity", `activity "Tiny" {
  max_participants = 1
  participants     = ["a@mergington.edu", "b@mergington.edu"]
}`},
		{"blank name", `activity " " { max_participants = 3 }`},
		{"unknown attribute", `activity "Extra" {
  max_participants = 3
  room             = "B12"
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "seed.hcl")
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	activities, err := Load("")
	require.NoError(t, err)
	assert.Len(t, activities, 9)

	path := filepath.Join(t.TempDir(), "activities.hcl")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))
	activities, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
