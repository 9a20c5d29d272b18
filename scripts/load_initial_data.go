package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brokerage-rotation-backend/internal/config"
	"brokerage-rotation-backend/internal/database"
	"brokerage-rotation-backend/internal/database/models"
	"brokerage-rotation-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ParticipantData struct {
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	HiredAt     string `yaml:"hired_at"`
	Unit        string `yaml:"unit,omitempty"`
	IsLeader    bool   `yaml:"is_leader"`
	LinkedEmail string `yaml:"linked_email,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type RotationGroupData struct {
	Name      string `yaml:"name"`
	GroupKind string `yaml:"group_kind"`
	Active    bool   `yaml:"active"`
}

type MembershipData struct {
	GroupName string   `yaml:"group_name"`
	Emails    []string `yaml:"emails"`
}

type ParticipantsFile struct {
	Participants []ParticipantData `yaml:"participants"`
}

type RotationGroupsFile struct {
	RotationGroups []RotationGroupData `yaml:"rotation_groups"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	participants, err := loadParticipants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}

	groups, err := loadRotationGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rotation groups: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	participantMap := make(map[string]*models.Participant)
	created := 0
	for _, data := range participants {
		participant, wasCreated, err := createParticipant(db, data)
		if err != nil {
			return err
		}
		participantMap[data.Email] = participant
		if wasCreated {
			created++
		}
	}
	log.Printf("Participants: %d loaded, %d created", len(participants), created)

	// Second pass resolves relative links, which may point forward in the file
	for _, data := range participants {
		if data.LinkedEmail == "" {
			continue
		}
		if err := linkParticipants(db, participantMap, data.Email, data.LinkedEmail); err != nil {
			return err
		}
	}

	groupMap := make(map[string]*models.RotationGroup)
	created = 0
	for _, data := range groups {
		group, wasCreated, err := createRotationGroup(db, data)
		if err != nil {
			return err
		}
		groupMap[data.Name] = group
		if wasCreated {
			created++
		}
	}
	log.Printf("Rotation groups: %d loaded, %d created", len(groups), created)

	for _, data := range memberships {
		if err := createMembership(db, data, groupMap, participantMap); err != nil {
			return err
		}
	}

	return nil
}

func loadParticipants(dataDir string) ([]ParticipantData, error) {
	var all []ParticipantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "participants") {
			var file ParticipantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Participants...)
		}
		return nil
	})

	return all, err
}

func loadRotationGroups(dataDir string) ([]RotationGroupData, error) {
	var all []RotationGroupData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "rotation_groups") {
			var file RotationGroupsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.RotationGroups...)
		}
		return nil
	})

	return all, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var all []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Memberships...)
		}
		return nil
	})

	return all, err
}

func createParticipant(db *gorm.DB, data ParticipantData) (*models.Participant, bool, error) {
	var participant models.Participant
	if err := db.Where("email = ?", data.Email).First(&participant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hiredAt, err := time.Parse(models.DateOnly, data.HiredAt)
			if err != nil {
				return nil, false, fmt.Errorf("participant %s has invalid hired_at %q: %w", data.Email, data.HiredAt, err)
			}

			participant = models.Participant{
				FullName: data.FullName,
				Email:    data.Email,
				HiredAt:  hiredAt,
				IsLeader: data.IsLeader,
				IsActive: data.IsActive,
			}
			if data.Unit != "" {
				unitID := unitIDFor(data.Unit)
				participant.UnitID = &unitID
			}

			if err := db.Create(&participant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create participant %s: %w", data.Email, err)
			}
			return &participant, true, nil
		}
		return nil, false, fmt.Errorf("failed to query participant %s: %w", data.Email, err)
	}

	return &participant, false, nil
}

// unitIDFor derives a stable UUID from a unit name so repeated loads agree
func unitIDFor(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(name)))
}

func linkParticipants(db *gorm.DB, participantMap map[string]*models.Participant, email, linkedEmail string) error {
	participant := participantMap[email]
	linked := participantMap[linkedEmail]
	if participant == nil || linked == nil {
		return fmt.Errorf("cannot link %s to %s: participant not loaded", email, linkedEmail)
	}

	if participant.LinkedParticipantID != nil && *participant.LinkedParticipantID == linked.ID {
		return nil
	}

	participant.LinkedParticipantID = &linked.ID
	if err := db.Save(participant).Error; err != nil {
		return fmt.Errorf("failed to link %s to %s: %w", email, linkedEmail, err)
	}
	return nil
}

func createRotationGroup(db *gorm.DB, data RotationGroupData) (*models.RotationGroup, bool, error) {
	kind := models.GroupKind(data.GroupKind)
	if !kind.IsValid() {
		return nil, false, fmt.Errorf("rotation group %s has invalid group_kind %q", data.Name, data.GroupKind)
	}

	var group models.RotationGroup
	if err := db.Where("name = ?", data.Name).First(&group).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			group = models.RotationGroup{
				Name:      data.Name,
				GroupKind: kind,
				Active:    data.Active,
			}

			if err := db.Create(&group).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create rotation group %s: %w", data.Name, err)
			}
			return &group, true, nil
		}
		return nil, false, fmt.Errorf("failed to query rotation group %s: %w", data.Name, err)
	}

	return &group, false, nil
}

// createMembership adds each listed participant to the group roster and to the
// back of the queue, in file order. Existing members are left untouched.
func createMembership(db *gorm.DB, data MembershipData, groupMap map[string]*models.RotationGroup, participantMap map[string]*models.Participant) error {
	group := groupMap[data.GroupName]
	if group == nil {
		return fmt.Errorf("rotation group %s not found for membership", data.GroupName)
	}

	added := 0
	for _, email := range data.Emails {
		participant := participantMap[email]
		if participant == nil {
			return fmt.Errorf("participant %s not found for group %s", email, data.GroupName)
		}

		var entry models.RosterEntry
		err := db.Where("group_id = ? AND participant_id = ? AND active", group.ID, participant.ID).First(&entry).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to query roster entry for %s: %w", email, err)
		}

		max, err := repository.NewQueuePositionRepository(db).MaxPosition(group.ID)
		if err != nil {
			return fmt.Errorf("failed to read queue tail for group %s: %w", data.GroupName, err)
		}
		position := max + 1

		err = db.Transaction(func(tx *gorm.DB) error {
			entry = models.RosterEntry{
				GroupID:       group.ID,
				ParticipantID: participant.ID,
				JoinedAt:      time.Now().UTC(),
				Active:        true,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}

			queuePosition := models.QueuePosition{
				GroupID:       group.ID,
				ParticipantID: participant.ID,
				Position:      position,
			}
			return tx.Create(&queuePosition).Error
		})
		if err != nil {
			return fmt.Errorf("failed to add %s to group %s: %w", email, data.GroupName, err)
		}
		added++
	}

	log.Printf("Group %s: %d members added", data.GroupName, added)
	return nil
}
