// Package seed provides the activities loaded into the catalog at startup.
package seed

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"mergington/internal/domain"
)

// Default returns the built-in Mergington High School activities.
func Default() []*domain.Activity {
	return []*domain.Activity{
		domain.NewActivity("Chess Club", domain.ActivityDetails{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}),
		domain.NewActivity("Programming Class", domain.ActivityDetails{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}),
		domain.NewActivity("Gym Class", domain.ActivityDetails{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}),
		domain.NewActivity("Basketball", domain.ActivityDetails{
			Description:     "Join the basketball team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
		}),
		domain.NewActivity("Soccer", domain.ActivityDetails{
			Description:     "Practice soccer skills and participate in tournaments",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
		}),
		domain.NewActivity("Painting Class", domain.ActivityDetails{
			Description:     "Explore your creativity with painting techniques",
			Schedule:        "Wednesdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 10,
		}),
		domain.NewActivity("Drama Club", domain.ActivityDetails{
			Description:     "Act in plays and improve your theatrical skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
		}),
		domain.NewActivity("Math Club", domain.ActivityDetails{
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 15,
		}),
		domain.NewActivity("Debate Team", domain.ActivityDetails{
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Tuesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
		}),
	}
}

// Load returns the activities in the HCL file at path, or Default when path is empty.
func Load(path string) ([]*domain.Activity, error) {
	if path == "" {
		return Default(), nil
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes seed activities from HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]*domain.Activity, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// hclSeedFile is the top-level structure of a seed file:
//
//	activity "Chess Club" {
//	  description      = "Learn strategies and compete in chess tournaments"
//	  schedule         = "Fridays, 3:30 PM - 5:00 PM"
//	  max_participants = 12
//	  participants     = ["michael@mergington.edu"]
//	}
type hclSeedFile struct {
	Activities []*hclActivity `hcl:"activity,block"`
}

type hclActivity struct {
	Name            string   `hcl:"name,label"`
	Description     string   `hcl:"description,optional"`
	Schedule        string   `hcl:"schedule,optional"`
	MaxParticipants int      `hcl:"max_participants"`
	Participants    []string `hcl:"participants,optional"`
}

func decode(file *hcl.File, filename string) ([]*domain.Activity, error) {
	var parsed hclSeedFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filename, diags)
	}

	activities := make([]*domain.Activity, 0, len(parsed.Activities))
	for _, block := range parsed.Activities {
		name := strings.TrimSpace(block.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w: activity name is required", filename, domain.ErrInvalidInput)
		}
		details := domain.ActivityDetails{
			Description:     block.Description,
			Schedule:        block.Schedule,
			MaxParticipants: block.MaxParticipants,
			Participants:    block.Participants,
		}
		if errs := details.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("%s: activity %q: %w: %s", filename, name, domain.ErrInvalidInput, strings.Join(errs, "; "))
		}
		activities = append(activities, domain.NewActivity(name, details))
	}
	return activities, nil
}
