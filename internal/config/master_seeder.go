package config

import (
	"log"

	"psc-chapterhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedMasterData seeds initial master data
func SeedMasterData(db *gorm.DB) error {
	// Seed Branches
	if err := seedBranches(db); err != nil {
		return err
	}

	// Seed Site Settings
	if err := seedSettings(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedBranches(db *gorm.DB) error {
	branches := []models.Branch{
		{
			Slug:        "central",
			Name:        "Central Branch",
			Region:      "Central Region",
			Description: "The founding branch, hosting the chapter secretariat",
			IsActive:    true,
		},
		{
			Slug:        "northern",
			Name:        "Northern Branch",
			Region:      "Northern Region",
			IsActive:    true,
		},
		{
			Slug:        "southern",
			Name:        "Southern Branch",
			Region:      "Southern Region",
			IsActive:    true,
		},
	}

	for _, b := range branches {
		var existing models.Branch
		if err := db.Where("slug = ?", b.Slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&b).Error; err != nil {
					return err
				}
				log.Printf("   Created branch: %s", b.Name)
			}
		}
	}
	return nil
}

func seedSettings(db *gorm.DB) error {
	settings := []models.Setting{
		{Key: "site_title", Value: "Professional Society Chapter"},
		{Key: "contact_email", Value: "info@chapterhub.psc.org"},
		{Key: "footer_text", Value: "© Professional Society Chapter. All rights reserved."},
		{Key: "maintenance_mode", Value: "false"},
	}

	for _, st := range settings {
		var existing models.Setting
		if err := db.Where("`key` = ?", st.Key).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&st).Error; err != nil {
					return err
				}
				log.Printf("   Created setting: %s", st.Key)
			}
		}
	}
	return nil
}
