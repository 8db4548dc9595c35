package database

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	db := New(gormDB)
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestSeedPopulatesEveryTable(t *testing.T) {
	db := newTestDatabase(t)

	if err := db.Seed(); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	counts := []struct {
		name string
		n    func() (int, error)
	}{
		{"projects", func() (int, error) {
			rows, err := db.ProjectRepo().FindAll(ProjectFilter{})
			return len(rows), err
		}},
		{"skills", func() (int, error) {
			rows, err := db.SkillRepo().FindAll(SkillFilter{})
			return len(rows), err
		}},
		{"about sections", func() (int, error) {
			rows, err := db.AboutRepo().FindAll(false)
			return len(rows), err
		}},
		{"project categories", func() (int, error) {
			rows, err := db.ProjectCategoryRepo().FindAll()
			return len(rows), err
		}},
		{"skill categories", func() (int, error) {
			rows, err := db.SkillCategoryRepo().FindAll()
			return len(rows), err
		}},
		{"socials", func() (int, error) {
			rows, err := db.SocialRepo().FindAll(false)
			return len(rows), err
		}},
		{"experiences", func() (int, error) {
			rows, err := db.ExperienceRepo().FindAll(false, 0)
			return len(rows), err
		}},
		{"educations", func() (int, error) {
			rows, err := db.EducationRepo().FindAll(false)
			return len(rows), err
		}},
		{"site config", func() (int, error) {
			rows, err := db.SiteConfigRepo().FindAll()
			return len(rows), err
		}},
	}

	for _, c := range counts {
		n, err := c.n()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if n == 0 {
			t.Errorf("%s: seed left the table empty", c.name)
		}
	}
}

func TestSeedIsRepeatable(t *testing.T) {
	db := newTestDatabase(t)

	if err := db.Seed(); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := db.Seed(); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	// The wipe pass must prevent unique-key collisions and duplicates.
	entries, err := db.SiteConfigRepo().FindAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("site config entries = %d, want 2", len(entries))
	}

	projects, err := db.ProjectRepo().FindAll(ProjectFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 3 {
		t.Errorf("projects = %d, want 3", len(projects))
	}
}
