// Package seed bootstraps site content from a YAML file. Entries are
// idempotent: existing rows are matched by natural key and updated, never
// duplicated.
package seed

import (
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"

	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/repositories"
)

type File struct {
	Admin *AdminSeed  `yaml:"admin"`
	Team  []TeamSeed  `yaml:"team"`
	Event []EventSeed `yaml:"events"`
}

type AdminSeed struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

type TeamSeed struct {
	Name      string `yaml:"name"`
	RoleTitle string `yaml:"role_title"`
	PhotoURL  string `yaml:"photo_url"`
}

type EventSeed struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	StartsAt    time.Time `yaml:"starts_at"`
	Venue       string    `yaml:"venue"`
	Published   bool      `yaml:"published"`
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func Apply(repos *repositories.Repos, file *File) error {
	if file.Admin != nil {
		if err := applyAdmin(repos, file.Admin); err != nil {
			return err
		}
	}
	for _, member := range file.Team {
		if err := applyTeamMember(repos, member); err != nil {
			return err
		}
	}
	for _, event := range file.Event {
		if err := applyEvent(repos, event); err != nil {
			return err
		}
	}
	return nil
}

func applyAdmin(repos *repositories.Repos, admin *AdminSeed) error {
	_, err := repos.User.FindByUsername(admin.Username)
	if err == nil {
		logx.Infof("seed: admin %q already present", admin.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		Username: admin.Username,
		Password: string(hashed),
		Role:     models.UserRoleAdmin,
	}
	if admin.Email != "" {
		user.Email = &admin.Email
	}
	logx.Infof("seed: creating admin %q", admin.Username)
	return repos.User.Create(user)
}

func applyTeamMember(repos *repositories.Repos, seed TeamSeed) error {
	members, err := repos.Team.List(false)
	if err != nil {
		return err
	}
	for i := range members {
		if members[i].Name == seed.Name {
			members[i].RoleTitle = seed.RoleTitle
			if seed.PhotoURL != "" {
				members[i].PhotoURL = &seed.PhotoURL
			}
			return repos.Team.Update(&members[i])
		}
	}

	max, err := repos.Team.MaxOrder()
	if err != nil {
		return err
	}
	member := &models.TeamMember{
		Name:      seed.Name,
		RoleTitle: seed.RoleTitle,
		Order:     max + 1,
		Active:    true,
	}
	if seed.PhotoURL != "" {
		member.PhotoURL = &seed.PhotoURL
	}
	return repos.Team.Create(member)
}

func applyEvent(repos *repositories.Repos, seed EventSeed) error {
	events, err := repos.Event.List(false)
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].Title == seed.Title {
			events[i].Description = seed.Description
			events[i].StartsAt = seed.StartsAt
			events[i].Published = seed.Published
			if seed.Venue != "" {
				events[i].Venue = &seed.Venue
			}
			return repos.Event.Update(&events[i])
		}
	}

	event := &models.Event{
		Title:       seed.Title,
		Description: seed.Description,
		StartsAt:    seed.StartsAt,
		Published:   seed.Published,
	}
	if seed.Venue != "" {
		event.Venue = &seed.Venue
	}
	return repos.Event.Create(event)
}
